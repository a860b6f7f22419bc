package cart

import (
	"context"
	"log"
	"sync"

	"nutriva/models"
)

// Remote is the capability set the store needs from the backing table:
// a filtered read joined with product snapshots, an upsert keyed by
// (userId, productId) that overwrites quantity on conflict, an update,
// a single delete and a delete-all.
type Remote interface {
	Fetch(ctx context.Context, userID string) ([]models.CartLine, error)
	Upsert(ctx context.Context, userID, productID string, quantity int) error
	Update(ctx context.Context, userID, productID string, quantity int) error
	Delete(ctx context.Context, userID, productID string) error
	DeleteAll(ctx context.Context, userID string) error
}

// Store is the single source of truth for one user's cart. Every mutation is
// a remote write followed by a full reload that replaces the snapshot
// wholesale. Mutations are tagged with a sequence number and a reload whose
// sequence is older than the newest applied one is discarded, so overlapping
// calls cannot leave a stale snapshot behind no matter which response lands
// last.
type Store struct {
	remote Remote

	mu      sync.Mutex
	userID  string
	lines   []models.CartLine
	seq     uint64 // last issued mutation sequence
	applied uint64 // sequence of the snapshot currently held
}

func NewStore(remote Remote, userID string) *Store {
	return &Store{remote: remote, userID: userID}
}

// Load hydrates the snapshot from the remote table. Without a signed-in
// identity the snapshot is simply cleared; carts are not kept anonymously.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	if s.userID == "" {
		s.lines = nil
		s.mu.Unlock()
		return
	}
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	s.reload(ctx, seq)
}

// Add upserts the row for productID, overwriting any existing quantity.
// Callers that want "one more" semantics must read the current quantity and
// send the accumulated value (the HTTP handler does exactly that).
// Remote failures are logged, not surfaced.
func (s *Store) Add(ctx context.Context, productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.remote.Upsert(ctx, s.userID, productID, quantity); err != nil {
		log.Println("cart: add failed:", err)
		return
	}
	s.reload(ctx, seq)
}

// Remove deletes the row for productID and reloads.
func (s *Store) Remove(ctx context.Context, productID string) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.remote.Delete(ctx, s.userID, productID); err != nil {
		log.Println("cart: remove failed:", err)
		return
	}
	s.reload(ctx, seq)
}

// UpdateQuantity sets the row's quantity. A quantity of zero or less is a
// removal. No upper bound and no stock check here.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.remote.Update(ctx, s.userID, productID, quantity); err != nil {
		log.Println("cart: update failed:", err)
		return
	}
	s.reload(ctx, seq)
}

// Clear deletes all rows for the user and empties the snapshot directly,
// without a reload round trip. The sequence still advances so an in-flight
// older reload cannot resurrect the cleared items.
func (s *Store) Clear(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.remote.DeleteAll(ctx, s.userID); err != nil {
		log.Println("cart: clear failed:", err)
		return
	}

	s.mu.Lock()
	if seq >= s.applied {
		s.applied = seq
		s.lines = nil
	}
	s.mu.Unlock()
}

// Items returns a copy of the current snapshot.
func (s *Store) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of all quantities in the snapshot.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity over the snapshot products.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// begin issues the next mutation sequence, or reports false when there is no
// signed-in identity to mutate for.
func (s *Store) begin() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return 0, false
	}
	s.seq++
	return s.seq, true
}

func (s *Store) reload(ctx context.Context, seq uint64) {
	lines, err := s.remote.Fetch(ctx, s.userID)
	if err != nil {
		log.Println("cart: reload failed:", err)
		return
	}
	s.applySnapshot(seq, lines)
}

// applySnapshot installs a fetched snapshot unless a newer mutation's
// snapshot has already been applied.
func (s *Store) applySnapshot(seq uint64, lines []models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		return
	}
	s.applied = seq
	s.lines = lines
}
