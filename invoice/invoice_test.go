package invoice

import (
	"bytes"
	"testing"
	"time"

	"nutriva/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderID:     "3f8a2b7c-9d41-4e6f-b123-0a5c7d9e1f22",
		UserID:      "u1",
		Status:      "paid",
		TotalAmount: 48.49,
		CreatedAt:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductID: "whey-1kg", Quantity: 1, Price: 29.99, Product: models.ProductSnapshot{Name: "Whey Protein 1kg", Price: 29.99}},
			{ProductID: "creatine", Quantity: 1, Price: 18.50, Product: models.ProductSnapshot{Name: "Creatine Monohydrate", Price: 18.50}},
		},
		ShippingAddress: &models.Address{
			Name:       "Jordan Reyes",
			Line1:      "12 High Street",
			City:       "Bristol",
			PostalCode: "BS1 4ST",
			Country:    "UK",
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	pdfBytes, filename, err := Render(sampleOrder(), "jordan@example.com")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
	if filename != "invoice-3f8a2b7c.pdf" {
		t.Fatalf("filename = %q, want invoice-3f8a2b7c.pdf", filename)
	}
}

func TestRenderZeroItemsKeepsStoredTotal(t *testing.T) {
	order := sampleOrder()
	order.Items = nil
	order.TotalAmount = 48.49 // stored total deliberately not reconciled

	if sub := Subtotal(order); !sub.IsZero() {
		t.Fatalf("subtotal of empty order = %s, want 0", sub)
	}

	pdfBytes, _, err := Render(order, "jordan@example.com")
	if err != nil {
		t.Fatalf("Render failed for empty order: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("empty order produced no document")
	}
}

func TestRenderMissingAddress(t *testing.T) {
	order := sampleOrder()
	order.ShippingAddress = nil

	if _, _, err := Render(order, ""); err != nil {
		t.Fatalf("Render must tolerate an absent shipping address: %v", err)
	}
}

func TestSubtotalResumsItems(t *testing.T) {
	order := sampleOrder()
	// Stored total disagrees with the items on purpose; the renderer keeps
	// both figures without reconciling them.
	order.TotalAmount = 999

	if got := Subtotal(order).StringFixed(2); got != "48.49" {
		t.Fatalf("subtotal = %s, want 48.49", got)
	}
}

func TestFilenameShortOrderID(t *testing.T) {
	if got := Filename("abc"); got != "invoice-abc.pdf" {
		t.Fatalf("short id filename = %q", got)
	}
}
