package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationCategory names which presence check failed
type ValidationCategory string

const (
	CategoryParties   ValidationCategory = "parties"
	CategoryLineItems ValidationCategory = "line_items"
)

var (
	ErrMissingParties     = errors.New("missing business or client name")
	ErrMissingDescription = errors.New("missing line item description")
)

// ValidationError is returned when an invoice is not ready for preview
type ValidationError struct {
	Category    ValidationCategory
	Title       string
	Description string
	Fields      []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Description)
}

func (e *ValidationError) Unwrap() error {
	if e.Category == CategoryParties {
		return ErrMissingParties
	}
	return ErrMissingDescription
}

var validate = validator.New()

// Validate runs the presence checks required before preview. Party names are
// reported ahead of line items regardless of which fields failed.
func (i *Invoice) Validate() error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate invoice: %w", err)
	}

	var parties, items []string
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "BusinessName", "ClientName":
			parties = append(parties, fe.StructNamespace())
		default:
			items = append(items, fe.StructNamespace())
		}
	}

	if len(parties) > 0 {
		return &ValidationError{
			Category:    CategoryParties,
			Title:       "Missing Information",
			Description: "Please fill in client name and business name",
			Fields:      parties,
		}
	}
	return &ValidationError{
		Category:    CategoryLineItems,
		Title:       "Missing Information",
		Description: "Please fill in all line item descriptions",
		Fields:      items,
	}
}
