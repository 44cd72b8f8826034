package service

import (
	"context"
	"fmt"

	"github.com/andy/invoicer/internal/delivery"
	"github.com/andy/invoicer/internal/domain"
	"github.com/andy/invoicer/internal/logging"
	"github.com/andy/invoicer/internal/output"
	"github.com/andy/invoicer/internal/render"
	"github.com/sirupsen/logrus"
)

// Renderer presents one invoice snapshot. It never modifies the snapshot.
type Renderer struct {
	invoice        domain.Invoice
	currencySymbol string
	printer        output.Printer
	sender         delivery.Sender
	onBack         func()
	log            logrus.FieldLogger
}

// RendererDeps are the collaborators a Renderer delegates to
type RendererDeps struct {
	CurrencySymbol string
	Printer        output.Printer
	Sender         delivery.Sender
	Logger         logrus.FieldLogger
}

// NewRenderer takes its own copy of the snapshot. onBack is called by GoBack.
func NewRenderer(snapshot domain.Invoice, deps RendererDeps, onBack func()) *Renderer {
	sender := deps.Sender
	if sender == nil {
		sender = delivery.Unimplemented
	}
	var log logrus.FieldLogger = deps.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Renderer{
		invoice:        snapshot.Clone(),
		currencySymbol: deps.CurrencySymbol,
		printer:        deps.Printer,
		sender:         sender,
		onBack:         onBack,
		log:            log.WithField("invoice", snapshot.InvoiceNumber),
	}
}

// Invoice returns a copy of the snapshot being rendered
func (r *Renderer) Invoice() domain.Invoice {
	return r.invoice.Clone()
}

// Render builds the display document
func (r *Renderer) Render() render.Document {
	return render.Build(&r.invoice, r.currencySymbol)
}

// RequestPrint hands the plain-text document to the host print facility.
// The outcome belongs to the host; failures are only logged.
func (r *Renderer) RequestPrint(ctx context.Context) {
	if r.printer == nil {
		r.log.Warn("print requested but no printer is configured")
		return
	}
	body := []byte(render.Text(r.Render()))
	if err := r.printer.Print(ctx, r.invoice.InvoiceNumber, body); err != nil {
		logging.LogError(r.log, "service", "RequestPrint", r.printer.Destination(), err)
		return
	}
	r.log.WithField("destination", r.printer.Destination()).Info("invoice sent to printer")
}

// RequestEmailSend passes the snapshot to the delivery collaborator
func (r *Renderer) RequestEmailSend(ctx context.Context) error {
	if err := r.sender.Send(ctx, r.invoice.Clone(), r.invoice.ClientEmail); err != nil {
		return fmt.Errorf("send invoice %s: %w", r.invoice.InvoiceNumber, err)
	}
	return nil
}

// GoBack asks the controller to return to editing
func (r *Renderer) GoBack() {
	if r.onBack != nil {
		r.onBack()
	}
}
