package service

import (
	"errors"

	"github.com/andy/invoicer/internal/domain"
)

var ErrNotEditing = errors.New("a preview is already open")

// Mode is what the user is currently looking at
type Mode int

const (
	ModeEditing Mode = iota
	ModePreviewing
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "Editing"
	case ModePreviewing:
		return "Previewing"
	default:
		return "Unknown"
	}
}

// ViewController switches between editing and previewing and remembers the
// last snapshot handed to the preview.
type ViewController struct {
	mode     Mode
	snapshot *domain.Invoice
}

// NewViewController starts in editing mode with no snapshot
func NewViewController() *ViewController {
	return &ViewController{mode: ModeEditing}
}

func (c *ViewController) Mode() Mode {
	return c.mode
}

// LastSnapshot returns the most recent previewed invoice, if any
func (c *ViewController) LastSnapshot() (domain.Invoice, bool) {
	if c.snapshot == nil {
		return domain.Invoice{}, false
	}
	return c.snapshot.Clone(), true
}

// Submit asks the editor for a snapshot and switches to preview when it is
// valid. A validation failure leaves the mode unchanged and is returned.
func (c *ViewController) Submit(e *Editor) (domain.Invoice, error) {
	if c.mode != ModeEditing {
		return domain.Invoice{}, ErrNotEditing
	}
	snap, err := e.SubmitForPreview()
	if err != nil {
		return domain.Invoice{}, err
	}
	c.snapshot = &snap
	c.mode = ModePreviewing
	return snap.Clone(), nil
}

// Back returns to editing. The stored snapshot is kept.
func (c *ViewController) Back() {
	c.mode = ModeEditing
}
