package invoice

import (
	"bytes"
	"fmt"

	"nutriva/models"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const brandName = "NUTRIVA"

// Render turns one order snapshot into a PDF invoice. It is pure: no network
// access, no side effects. Returns the document bytes and the download
// filename, which uses the first 8 characters of the order id.
//
// The subtotal line is re-summed from the line items; the grand total prints
// the order's stored totalAmount. The two are not reconciled here.
func Render(order models.Order, email string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(34, 87, 59)
	pdf.Rect(0, 0, 210, 32, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 22)
	pdf.SetXY(15, 9)
	pdf.CellFormat(100, 12, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.SetXY(15, 20)
	pdf.CellFormat(100, 8, brandName, "", 0, "L", false, 0, "")

	// Order QR on the right of the band area
	if qrPNG, err := qrcode.Encode(order.OrderID, qrcode.Medium, 128); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("orderqr", opts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("orderqr", 170, 36, 25, 25, false, opts, 0, "")
	}

	pdf.SetTextColor(30, 30, 30)

	// Order details block
	pdf.SetXY(15, 42)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Order Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetX(15)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order #%s", shortID(order.OrderID)), "", 1, "L", false, 0, "")
	pdf.SetX(15)
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.SetX(15)
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", order.Status), "", 1, "L", false, 0, "")

	// Billed-to block; every field degrades to empty, never panics
	pdf.SetXY(15, 70)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Billed To", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, line := range billedToLines(order.ShippingAddress, email) {
		pdf.SetX(15)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	// Line items table at a fixed origin; each row advances a fixed offset.
	// A long enough order runs off the page; accepted limitation.
	const tableY = 108.0
	const rowH = 8.0
	pdf.SetXY(15, tableY)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(238, 238, 238)
	pdf.CellFormat(95, rowH, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, rowH, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, rowH, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, rowH, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	y := tableY + rowH
	for _, item := range order.Items {
		lineTotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		pdf.SetXY(15, y)
		pdf.CellFormat(95, rowH, item.Product.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, rowH, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, rowH, money(decimal.NewFromFloat(item.Price)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, rowH, money(lineTotal), "1", 1, "R", false, 0, "")
		y += rowH
	}

	// Totals block
	subtotal := Subtotal(order)
	y += 4
	pdf.SetXY(110, y)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(35, 6, "Subtotal", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, money(subtotal), "", 1, "R", false, 0, "")
	if order.Discount > 0 {
		y += 6
		pdf.SetXY(110, y)
		pdf.CellFormat(35, 6, "Discount", "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, "-"+money(decimal.NewFromFloat(order.Discount)), "", 1, "R", false, 0, "")
	}
	y += 8
	pdf.SetXY(110, y)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(35, 7, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, money(decimal.NewFromFloat(order.TotalAmount)), "T", 1, "R", false, 0, "")

	// Footer
	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 8, fmt.Sprintf("Thank you for shopping with %s.", brandName), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), Filename(order.OrderID), nil
}

// Subtotal re-sums price*quantity over the line items with decimal
// arithmetic. Deliberately independent of the stored totalAmount.
func Subtotal(order models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range order.Items {
		sum = sum.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

func Filename(orderID string) string {
	return "invoice-" + shortID(orderID) + ".pdf"
}

func shortID(orderID string) string {
	if len(orderID) > 8 {
		return orderID[:8]
	}
	return orderID
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// billedToLines builds the address block. Absent fields render as empty
// strings rather than being skipped, matching the fixed-coordinate layout.
func billedToLines(addr *models.Address, email string) []string {
	var name, line1, line2, cityLine, country string
	if addr != nil {
		name = addr.Name
		line1 = addr.Line1
		line2 = addr.Line2
		cityLine = joinNonEmpty(addr.City, addr.PostalCode)
		country = addr.Country
	}
	return []string{name, email, line1, line2, cityLine, country}
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
