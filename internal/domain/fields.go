package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InvoiceField identifies a top-level scalar field of an invoice
type InvoiceField int

const (
	FieldInvoiceNumber InvoiceField = iota
	FieldDate
	FieldDueDate
	FieldBusinessName
	FieldBusinessAddress
	FieldClientName
	FieldClientEmail
	FieldClientAddress
	FieldTaxRate
	FieldNotes
	InvoiceFieldCount
)

// String returns the form label for the field
func (f InvoiceField) String() string {
	switch f {
	case FieldInvoiceNumber:
		return "Invoice Number"
	case FieldDate:
		return "Date"
	case FieldDueDate:
		return "Due Date"
	case FieldBusinessName:
		return "Business Name"
	case FieldBusinessAddress:
		return "Business Address"
	case FieldClientName:
		return "Client Name"
	case FieldClientEmail:
		return "Client Email"
	case FieldClientAddress:
		return "Client Address"
	case FieldTaxRate:
		return "Tax Rate (%)"
	case FieldNotes:
		return "Notes"
	default:
		return "Unknown"
	}
}

// LineItemField identifies an editable column of a line item
type LineItemField int

const (
	ItemDescription LineItemField = iota
	ItemQuantity
	ItemRate
	LineItemFieldCount
)

func (f LineItemField) String() string {
	switch f {
	case ItemDescription:
		return "Description"
	case ItemQuantity:
		return "Quantity"
	case ItemRate:
		return "Rate"
	default:
		return "Unknown"
	}
}

// Value returns the field's current value as form text
func (i *Invoice) Value(f InvoiceField) string {
	switch f {
	case FieldInvoiceNumber:
		return i.InvoiceNumber
	case FieldDate:
		return i.Date
	case FieldDueDate:
		return i.DueDate
	case FieldBusinessName:
		return i.BusinessName
	case FieldBusinessAddress:
		return i.BusinessAddress
	case FieldClientName:
		return i.ClientName
	case FieldClientEmail:
		return i.ClientEmail
	case FieldClientAddress:
		return i.ClientAddress
	case FieldTaxRate:
		return i.TaxRate.String()
	case FieldNotes:
		return i.Notes
	}
	return ""
}

// Set assigns form text to a field; the tax rate is parsed with ParseAmount
func (i *Invoice) Set(f InvoiceField, value string) {
	switch f {
	case FieldInvoiceNumber:
		i.InvoiceNumber = value
	case FieldDate:
		i.Date = value
	case FieldDueDate:
		i.DueDate = value
	case FieldBusinessName:
		i.BusinessName = value
	case FieldBusinessAddress:
		i.BusinessAddress = value
	case FieldClientName:
		i.ClientName = value
	case FieldClientEmail:
		i.ClientEmail = value
	case FieldClientAddress:
		i.ClientAddress = value
	case FieldTaxRate:
		i.TaxRate = ParseAmount(value)
	case FieldNotes:
		i.Notes = value
	}
}

// Value returns the column's current value as form text
func (li LineItem) Value(f LineItemField) string {
	switch f {
	case ItemDescription:
		return li.Description
	case ItemQuantity:
		return li.Quantity.String()
	case ItemRate:
		return li.Rate.String()
	}
	return ""
}

// Bounds for numeric form input
const maxAmountExponent = 12

var maxAmount = decimal.New(1, maxAmountExponent)

// ParseAmount parses numeric form input. Anything that is not a non-negative
// number no larger than 1e12 (with at most 12 decimal places) becomes zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero
	}
	if d.GreaterThan(maxAmount) {
		return decimal.Zero
	}
	return d
}
