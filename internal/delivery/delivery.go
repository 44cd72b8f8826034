// Package delivery defines the boundary for sending a finished invoice to its
// recipient. No transport ships with invoicer; the default sender reports that
// delivery is not implemented instead of pretending to succeed.
package delivery

import (
	"context"
	"errors"

	"github.com/andy/invoicer/internal/domain"
)

var ErrNotImplemented = errors.New("email delivery is not implemented")

// Sender submits an invoice snapshot to a recipient address
type Sender interface {
	Send(ctx context.Context, invoice domain.Invoice, to string) error
}

type unimplemented struct{}

// Unimplemented is the sender used when no delivery collaborator is configured
var Unimplemented Sender = unimplemented{}

func (unimplemented) Send(ctx context.Context, invoice domain.Invoice, to string) error {
	return ErrNotImplemented
}
