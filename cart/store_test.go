package cart

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"nutriva/models"
)

// fakeRemote keeps rows in memory and can be told to fail writes.
type fakeRemote struct {
	mu       sync.Mutex
	rows     map[string]int // productID -> quantity
	prices   map[string]float64
	failNext error
	fetches  int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		rows:   make(map[string]int),
		prices: map[string]float64{"whey-1kg": 29.99, "creatine": 18.50, "omega3": 12.00},
	}
}

func (f *fakeRemote) Fetch(_ context.Context, userID string) ([]models.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++

	ids := make([]string, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var lines []models.CartLine
	for _, id := range ids {
		lines = append(lines, models.CartLine{
			ProductID: id,
			Quantity:  f.rows[id],
			Product:   models.ProductSnapshot{ProductID: id, Name: id, Price: f.prices[id]},
		})
	}
	return lines, nil
}

func (f *fakeRemote) Upsert(_ context.Context, _, productID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.rows[productID] = quantity // overwrite, never sum
	return nil
}

func (f *fakeRemote) Update(_ context.Context, _, productID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.rows[productID] = quantity
	return nil
}

func (f *fakeRemote) Delete(_ context.Context, _, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, productID)
	return nil
}

func (f *fakeRemote) DeleteAll(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = make(map[string]int)
	return nil
}

func quantityOf(s *Store, productID string) (int, bool) {
	for _, line := range s.Items() {
		if line.ProductID == productID {
			return line.Quantity, true
		}
	}
	return 0, false
}

func TestAddOverwritesQuantity(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRemote(), "u1")

	store.Add(ctx, "whey-1kg", 2)
	store.Add(ctx, "whey-1kg", 5)

	q, ok := quantityOf(store, "whey-1kg")
	if !ok {
		t.Fatal("expected whey-1kg in cart")
	}
	if q != 5 {
		t.Fatalf("expected quantity 5 after overwrite, got %d", q)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRemote(), "u1")

	store.Add(ctx, "creatine", 3)
	store.UpdateQuantity(ctx, "creatine", 0)

	if _, ok := quantityOf(store, "creatine"); ok {
		t.Fatal("expected creatine removed when quantity drops to zero")
	}

	store.Add(ctx, "omega3", 1)
	store.UpdateQuantity(ctx, "omega3", -4)
	if _, ok := quantityOf(store, "omega3"); ok {
		t.Fatal("expected omega3 removed for negative quantity")
	}
}

func TestDerivedTotals(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRemote(), "u1")

	store.Add(ctx, "whey-1kg", 2)  // 2 * 29.99
	store.Add(ctx, "creatine", 1) // 1 * 18.50

	if got := store.TotalItems(); got != 3 {
		t.Fatalf("TotalItems = %d, want 3", got)
	}
	want := 2*29.99 + 18.50
	if got := store.TotalPrice(); got != want {
		t.Fatalf("TotalPrice = %v, want %v", got, want)
	}

	store.UpdateQuantity(ctx, "whey-1kg", 1)
	if got := store.TotalItems(); got != 2 {
		t.Fatalf("TotalItems after update = %d, want 2", got)
	}

	store.Clear(ctx)
	if store.TotalItems() != 0 || store.TotalPrice() != 0 {
		t.Fatalf("totals after Clear = %d/%v, want 0/0", store.TotalItems(), store.TotalPrice())
	}
}

func TestStaleReloadDiscarded(t *testing.T) {
	store := NewStore(newFakeRemote(), "u1")

	older := []models.CartLine{{ProductID: "whey-1kg", Quantity: 1}}
	newer := []models.CartLine{{ProductID: "whey-1kg", Quantity: 7}}

	seqA, _ := store.begin()
	seqB, _ := store.begin()

	// The later mutation's reload lands first; the earlier one arrives after.
	store.applySnapshot(seqB, newer)
	store.applySnapshot(seqA, older)

	q, ok := quantityOf(store, "whey-1kg")
	if !ok || q != 7 {
		t.Fatalf("expected newer snapshot (qty 7) to survive, got qty=%d ok=%v", q, ok)
	}
}

func TestClearBlocksStaleReload(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRemote(), "u1")

	store.Add(ctx, "whey-1kg", 2)
	seqOld, _ := store.begin()

	store.Clear(ctx)

	// A reload issued before Clear finishes late; it must not resurrect rows.
	store.applySnapshot(seqOld, []models.CartLine{{ProductID: "whey-1kg", Quantity: 2}})

	if store.TotalItems() != 0 {
		t.Fatalf("stale reload resurrected %d items after Clear", store.TotalItems())
	}
}

func TestRemoteFailureKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	store := NewStore(remote, "u1")

	store.Add(ctx, "whey-1kg", 2)

	remote.failNext = errors.New("network down")
	store.Add(ctx, "whey-1kg", 9)

	// Failed write is swallowed; snapshot stays at the last good state.
	q, _ := quantityOf(store, "whey-1kg")
	if q != 2 {
		t.Fatalf("expected quantity 2 after failed add, got %d", q)
	}
}

func TestAnonymousStoreStaysEmpty(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	store := NewStore(remote, "")

	store.Load(ctx)
	store.Add(ctx, "whey-1kg", 1)

	if store.TotalItems() != 0 {
		t.Fatal("anonymous cart must stay empty")
	}
	if remote.fetches != 0 {
		t.Fatalf("anonymous cart made %d remote fetches", remote.fetches)
	}
}

func TestConcurrentMutationsConverge(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	store := NewStore(remote, "u1")

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			store.Add(ctx, "creatine", q)
		}(i)
	}
	wg.Wait()

	// Whatever interleaving happened, the snapshot must match the remote.
	remote.mu.Lock()
	want := remote.rows["creatine"]
	remote.mu.Unlock()

	store.Load(ctx)
	got, _ := quantityOf(store, "creatine")
	if got != want {
		t.Fatalf("snapshot qty %d diverged from remote qty %d", got, want)
	}
}
