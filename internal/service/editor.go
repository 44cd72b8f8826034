package service

import (
	"errors"
	"time"

	"github.com/andy/invoicer/internal/domain"
	"github.com/andy/invoicer/internal/notify"
	"github.com/shopspring/decimal"
)

// EditorDefaults prefill a fresh invoice
type EditorDefaults struct {
	BusinessName    string
	BusinessAddress string
	TaxRate         decimal.Decimal
	DueDays         int
}

// Editor owns the in-progress invoice and every mutation on it
type Editor struct {
	invoice  *domain.Invoice
	ids      domain.IDGenerator
	notifier notify.Notifier
}

// NewEditor creates an editor holding a fresh invoice dated now
func NewEditor(defaults EditorDefaults, ids domain.IDGenerator, notifier notify.Notifier, now time.Time) *Editor {
	if notifier == nil {
		notifier = notify.Discard
	}

	inv := domain.NewInvoice(ids.InvoiceNumber(), ids.LineItemID(), now, defaults.DueDays)
	inv.BusinessName = defaults.BusinessName
	inv.BusinessAddress = defaults.BusinessAddress
	if defaults.TaxRate.IsPositive() {
		inv.TaxRate = defaults.TaxRate
	}

	return &Editor{
		invoice:  inv,
		ids:      ids,
		notifier: notifier,
	}
}

// Invoice returns a copy of the current draft
func (e *Editor) Invoice() domain.Invoice {
	return e.invoice.Clone()
}

// AddLineItem appends an empty row and returns its ID
func (e *Editor) AddLineItem() string {
	item := domain.NewLineItem(e.ids.LineItemID())
	e.invoice.LineItems = append(e.invoice.LineItems, item)
	return item.ID
}

// RemoveLineItem deletes the row with the given ID. The last remaining row
// cannot be removed; unknown IDs are ignored.
func (e *Editor) RemoveLineItem(id string) bool {
	if len(e.invoice.LineItems) <= 1 {
		return false
	}
	idx := e.invoice.FindLineItem(id)
	if idx < 0 {
		return false
	}
	items := make([]domain.LineItem, 0, len(e.invoice.LineItems)-1)
	items = append(items, e.invoice.LineItems[:idx]...)
	items = append(items, e.invoice.LineItems[idx+1:]...)
	e.invoice.LineItems = items
	return true
}

// CanRemoveLineItem reports whether a row may be removed right now
func (e *Editor) CanRemoveLineItem() bool {
	return len(e.invoice.LineItems) > 1
}

// UpdateLineItem sets one column of a row from form text. Quantity and rate
// input that is not a non-negative number becomes zero.
func (e *Editor) UpdateLineItem(id string, field domain.LineItemField, value string) {
	idx := e.invoice.FindLineItem(id)
	if idx < 0 {
		return
	}
	item := &e.invoice.LineItems[idx]
	switch field {
	case domain.ItemDescription:
		item.Description = value
	case domain.ItemQuantity:
		item.Quantity = domain.ParseAmount(value)
	case domain.ItemRate:
		item.Rate = domain.ParseAmount(value)
	}
}

// UpdateField sets a top-level field from form text
func (e *Editor) UpdateField(field domain.InvoiceField, value string) {
	e.invoice.Set(field, value)
}

func (e *Editor) Subtotal() decimal.Decimal {
	return e.invoice.Subtotal()
}

func (e *Editor) Tax() decimal.Decimal {
	return e.invoice.Tax()
}

func (e *Editor) Total() decimal.Decimal {
	return e.invoice.Total()
}

// SubmitForPreview validates the draft and returns a snapshot of it. On
// failure a destructive toast names the problem and the draft is left as is.
func (e *Editor) SubmitForPreview() (domain.Invoice, error) {
	if err := e.invoice.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			e.notifier.Notify(notify.Toast{
				Title:       verr.Title,
				Description: verr.Description,
				Severity:    notify.SeverityDestructive,
			})
		}
		return domain.Invoice{}, err
	}
	return e.invoice.Clone(), nil
}
