package render

import (
	"strings"
	"testing"
	"time"

	"github.com/andy/invoicer/internal/domain"
	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1234.5", "$1234.50"},
		{"0", "$0.00"},
		{"43.1784", "$43.18"},
		{"3.1984", "$3.20"},
		{"0.005", "$0.01"},
		{"-12.3", "-$12.30"},
	}

	for _, tt := range tests {
		got := FormatMoney("$", decimal.RequireFromString(tt.amount))
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-01-05"); got != "January 5, 2025" {
		t.Fatalf("expected January 5, 2025, got %s", got)
	}
	if got := FormatDate("next week"); got != "next week" {
		t.Fatalf("expected unparseable date unchanged, got %s", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines(`123 Main St\nSpringfield`)
	if len(got) != 2 || got[0] != "123 Main St" || got[1] != "Springfield" {
		t.Fatalf("unexpected lines %q", got)
	}
	if splitLines("   ") != nil {
		t.Fatal("expected nil for blank text")
	}
}

func testInvoice() *domain.Invoice {
	inv := domain.NewInvoice("INV-42", "a", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 30)
	inv.BusinessName = "Acme"
	inv.BusinessAddress = `1 Road\nTown`
	inv.ClientName = "Globex"
	inv.ClientEmail = "billing@globex.test"
	inv.LineItems[0].Description = "Widgets"
	inv.LineItems[0].Quantity = decimal.NewFromInt(2)
	inv.LineItems[0].Rate = decimal.RequireFromString("19.99")
	return inv
}

func TestBuild(t *testing.T) {
	inv := testInvoice()
	doc := Build(inv, "")

	if doc.Title != "INVOICE" || doc.InvoiceNumber != "INV-42" {
		t.Fatalf("unexpected header %q %q", doc.Title, doc.InvoiceNumber)
	}
	if doc.Issuer.Name != "Acme" || len(doc.Issuer.Address) != 2 {
		t.Fatalf("unexpected issuer %+v", doc.Issuer)
	}
	if doc.Recipient.Email != "billing@globex.test" {
		t.Fatalf("unexpected recipient %+v", doc.Recipient)
	}
	if doc.Dates[0].Value != "January 5, 2025" || doc.Dates[1].Value != "February 4, 2025" {
		t.Fatalf("unexpected dates %+v", doc.Dates)
	}
	if len(doc.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(doc.Rows))
	}
	row := doc.Rows[0]
	if row.Quantity != "2" || row.Rate != "₹19.99" || row.Amount != "₹39.98" {
		t.Fatalf("unexpected row %+v", row)
	}
	if doc.Totals.Tax != nil {
		t.Fatal("expected no tax line")
	}
	if doc.Notes != nil {
		t.Fatal("expected no notes")
	}
	if doc.Footer != FooterLine {
		t.Fatalf("unexpected footer %q", doc.Footer)
	}
}

func TestBuildDoesNotModifyInvoice(t *testing.T) {
	inv := testInvoice()
	before := inv.Clone()
	Build(inv, "$")

	if inv.BusinessAddress != before.BusinessAddress || !inv.Total().Equal(before.Total()) {
		t.Fatal("Build modified the invoice")
	}
}

func TestText(t *testing.T) {
	inv := testInvoice()
	inv.TaxRate = decimal.NewFromInt(8)
	inv.Notes = "Net 30"

	out := Text(Build(inv, "$"))

	for _, want := range []string{
		"INVOICE",
		"INV-42",
		"Bill To:",
		"billing@globex.test",
		"January 5, 2025",
		"Widgets",
		"Subtotal:",
		"Tax (8%):",
		"$3.20",
		"TOTAL:",
		"$43.18",
		"Notes:",
		"Net 30",
		"Thank you for your business!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected text to contain %q\n%s", want, out)
		}
	}
}

func TestTextOmitsTaxAndNotes(t *testing.T) {
	out := Text(Build(testInvoice(), "$"))

	if strings.Contains(out, "Tax (") {
		t.Errorf("expected no tax line\n%s", out)
	}
	if strings.Contains(out, "Notes:") {
		t.Errorf("expected no notes section\n%s", out)
	}
}

func TestBuildThreeItemsWithoutTax(t *testing.T) {
	inv := testInvoice()
	inv.LineItems = []domain.LineItem{
		{ID: "a", Description: "One", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(10)},
		{ID: "b", Description: "Two", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(20)},
		{ID: "c", Description: "Three", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(30)},
	}

	doc := Build(inv, "$")
	if doc.Totals.Subtotal != "$60.00" || doc.Totals.Total != "$60.00" {
		t.Fatalf("unexpected totals %+v", doc.Totals)
	}
	if doc.Totals.Tax != nil {
		t.Fatal("expected tax line omitted")
	}
	if doc.Rows[0].Amount != "$10.00" || doc.Rows[2].Amount != "$30.00" {
		t.Fatalf("unexpected row order %+v", doc.Rows)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Widgets", 10, "Widgets"},
		{"Consulting services", 10, "Consult..."},
		{"Café crème", 6, "Caf..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
