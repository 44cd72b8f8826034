package service

import (
	"errors"
	"testing"

	"github.com/andy/invoicer/internal/domain"
)

func TestViewControllerStartsEditing(t *testing.T) {
	c := NewViewController()
	if c.Mode() != ModeEditing {
		t.Fatalf("expected editing mode, got %s", c.Mode())
	}
	if _, ok := c.LastSnapshot(); ok {
		t.Fatal("expected no snapshot")
	}
}

func TestViewControllerSubmitInvalid(t *testing.T) {
	c := NewViewController()
	e, _ := newTestEditor(t)

	_, err := c.Submit(e)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if c.Mode() != ModeEditing {
		t.Fatalf("expected mode unchanged, got %s", c.Mode())
	}
	if _, ok := c.LastSnapshot(); ok {
		t.Fatal("expected no snapshot after failed submit")
	}
}

func TestViewControllerRoundTrip(t *testing.T) {
	c := NewViewController()
	e, _ := newTestEditor(t)
	fillValid(e)

	snap, err := c.Submit(e)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Mode() != ModePreviewing {
		t.Fatalf("expected previewing mode, got %s", c.Mode())
	}

	if _, err := c.Submit(e); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("expected ErrNotEditing, got %v", err)
	}

	c.Back()
	if c.Mode() != ModeEditing {
		t.Fatalf("expected editing mode after Back, got %s", c.Mode())
	}

	last, ok := c.LastSnapshot()
	if !ok || last.InvoiceNumber != snap.InvoiceNumber {
		t.Fatalf("expected snapshot %s to be kept", snap.InvoiceNumber)
	}
}
