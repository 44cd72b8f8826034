package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the machine-sortable form invoice dates are stored in
const DateLayout = "2006-01-02"

// DefaultDueDays is used when no due-day offset is configured
const DefaultDueDays = 30

var hundred = decimal.NewFromInt(100)

type Invoice struct {
	InvoiceNumber   string
	Date            string
	DueDate         string
	ClientName      string `validate:"required"`
	ClientEmail     string
	ClientAddress   string
	BusinessName    string `validate:"required"`
	BusinessAddress string
	LineItems       []LineItem `validate:"min=1,dive"`
	TaxRate         decimal.Decimal // Percentage (8 = 8%)
	Notes           string
}

type LineItem struct {
	ID          string
	Description string `validate:"required"`
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// NewLineItem creates an empty row with quantity 1 and rate 0
func NewLineItem(id string) LineItem {
	return LineItem{
		ID:       id,
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.Zero,
	}
}

// Amount is always quantity × rate; it is never stored
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.Rate)
}

// NewInvoice creates a fresh invoice dated today with a single empty line item
func NewInvoice(invoiceNumber, firstItemID string, now time.Time, dueDays int) *Invoice {
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}
	return &Invoice{
		InvoiceNumber: invoiceNumber,
		Date:          now.Format(DateLayout),
		DueDate:       now.AddDate(0, 0, dueDays).Format(DateLayout),
		LineItems:     []LineItem{NewLineItem(firstItemID)},
		TaxRate:       decimal.Zero,
	}
}

// Subtotal sums line item amounts in list order
func (i *Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range i.LineItems {
		sum = sum.Add(item.Amount())
	}
	return sum
}

// Tax is Subtotal × TaxRate / 100
func (i *Invoice) Tax() decimal.Decimal {
	return i.Subtotal().Mul(i.TaxRate).Div(hundred)
}

// Total is Subtotal + Tax
func (i *Invoice) Total() decimal.Decimal {
	return i.Subtotal().Add(i.Tax())
}

// HasTax reports whether a tax line applies
func (i *Invoice) HasTax() bool {
	return i.TaxRate.IsPositive()
}

// Clone returns a deep copy that shares no mutable state with the receiver
func (i *Invoice) Clone() Invoice {
	c := *i
	c.LineItems = make([]LineItem, len(i.LineItems))
	copy(c.LineItems, i.LineItems)
	return c
}

// FindLineItem returns the index of the line item with the given ID, or -1
func (i *Invoice) FindLineItem(id string) int {
	for idx, item := range i.LineItems {
		if item.ID == id {
			return idx
		}
	}
	return -1
}
