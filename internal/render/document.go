// Package render builds the printable view of an invoice. Build produces a
// structured Document that screens style however they like; Text lays the same
// Document out as plain text for printing and export.
package render

import (
	"fmt"

	"github.com/andy/invoicer/internal/domain"
)

const (
	DocumentTitle = "INVOICE"
	FooterLine    = "Thank you for your business!"
)

// Document is the rendered, display-ready form of an invoice
type Document struct {
	Title         string
	InvoiceNumber string
	Issuer        Party
	Recipient     Party
	Dates         []Meta
	Rows          []Row
	Totals        Totals
	Notes         []string // nil when the invoice has no notes
	Footer        string
}

// Party is an issuer or recipient identity block
type Party struct {
	Name    string
	Email   string
	Address []string
}

// Meta is a labelled value in the date block
type Meta struct {
	Label string
	Value string
}

// Row is one line item with display-formatted values
type Row struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

// Totals holds the formatted money summary. Tax is nil when the tax rate is zero.
type Totals struct {
	Subtotal string
	Tax      *TaxLine
	Total    string
}

type TaxLine struct {
	Label  string
	Amount string
}

// Build renders an invoice. The invoice is only read.
func Build(inv *domain.Invoice, currencySymbol string) Document {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	doc := Document{
		Title:         DocumentTitle,
		InvoiceNumber: inv.InvoiceNumber,
		Issuer: Party{
			Name:    inv.BusinessName,
			Address: splitLines(inv.BusinessAddress),
		},
		Recipient: Party{
			Name:    inv.ClientName,
			Email:   inv.ClientEmail,
			Address: splitLines(inv.ClientAddress),
		},
		Dates: []Meta{
			{Label: "Invoice Date", Value: FormatDate(inv.Date)},
			{Label: "Due Date", Value: FormatDate(inv.DueDate)},
		},
		Rows:   make([]Row, 0, len(inv.LineItems)),
		Notes:  splitLines(inv.Notes),
		Footer: FooterLine,
	}

	for _, item := range inv.LineItems {
		doc.Rows = append(doc.Rows, Row{
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			Rate:        FormatMoney(currencySymbol, item.Rate),
			Amount:      FormatMoney(currencySymbol, item.Amount()),
		})
	}

	doc.Totals.Subtotal = FormatMoney(currencySymbol, inv.Subtotal())
	if inv.HasTax() {
		doc.Totals.Tax = &TaxLine{
			Label:  fmt.Sprintf("Tax (%s%%)", inv.TaxRate.String()),
			Amount: FormatMoney(currencySymbol, inv.Tax()),
		}
	}
	doc.Totals.Total = FormatMoney(currencySymbol, inv.Total())

	return doc
}
