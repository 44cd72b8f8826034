package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/andy/invoicer/internal/app"
	"github.com/andy/invoicer/internal/config"
	"github.com/andy/invoicer/internal/domain"
	"github.com/andy/invoicer/internal/notify"
	"github.com/andy/invoicer/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Logging.Path = ""
	cfg.Print.OutputDir = t.TempDir()

	a, err := app.NewWithConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func typeText(m tea.Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(m tea.Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

// focusField tabs forward until the given top-level field has focus
func focusField(t *testing.T, m *EditorModel, f domain.InvoiceField) {
	t.Helper()
	for i := 0; i < m.slotCount(); i++ {
		if s := m.slotAt(m.focus); s.row < 0 && s.field == f {
			return
		}
		press(m, tea.KeyTab)
	}
	t.Fatalf("field %s never received focus", f)
}

func fillEditor(t *testing.T, m *EditorModel) {
	t.Helper()
	focusField(t, m, domain.FieldBusinessName)
	typeText(m, "Acme")
	focusField(t, m, domain.FieldClientName)
	typeText(m, "Globex")

	// The first line item follows the header fields
	for m.slotAt(m.focus).row < 0 {
		press(m, tea.KeyTab)
	}
	if s := m.slotAt(m.focus); s.row != 0 || s.col != domain.ItemDescription {
		t.Fatalf("expected first description focused, got %+v", s)
	}
	typeText(m, "Consulting")
}

func TestEditorTypingUpdatesInvoice(t *testing.T) {
	m := NewEditorModel(newTestApp(t))
	fillEditor(t, m)

	press(m, tea.KeyTab) // quantity
	press(m, tea.KeyBackspace)
	typeText(m, "2")
	press(m, tea.KeyTab) // rate
	press(m, tea.KeyBackspace)
	typeText(m, "19.99")

	inv := m.Editor().Invoice()
	if inv.BusinessName != "Acme" || inv.ClientName != "Globex" {
		t.Fatalf("unexpected parties %q / %q", inv.BusinessName, inv.ClientName)
	}
	item := inv.LineItems[0]
	if item.Description != "Consulting" {
		t.Fatalf("unexpected description %q", item.Description)
	}
	if got := item.Amount().StringFixed(2); got != "39.98" {
		t.Fatalf("expected amount 39.98, got %s", got)
	}
	if !strings.Contains(m.View(), "₹39.98") {
		t.Fatalf("expected live total in view:\n%s", m.View())
	}
}

func TestEditorAddAndRemoveLineItems(t *testing.T) {
	m := NewEditorModel(newTestApp(t))

	if strings.Contains(m.View(), "ctrl+d") {
		t.Fatal("expected remove hint hidden with a single line item")
	}

	press(m, tea.KeyCtrlN)
	if len(m.rows) != 2 || len(m.Editor().Invoice().LineItems) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(m.rows))
	}
	if s := m.slotAt(m.focus); s.row != 1 || s.col != domain.ItemDescription {
		t.Fatalf("expected new description focused, got %+v", s)
	}
	if !strings.Contains(m.View(), "ctrl+d") {
		t.Fatal("expected remove hint with two line items")
	}

	typeText(m, "Second")
	press(m, tea.KeyCtrlD)
	inv := m.Editor().Invoice()
	if len(m.rows) != 1 || len(inv.LineItems) != 1 {
		t.Fatalf("expected 1 row after removal, got %d", len(m.rows))
	}
	if inv.LineItems[0].Description != "" {
		t.Fatalf("expected the second row to be removed, got %q", inv.LineItems[0].Description)
	}

	// The last row stays
	press(m, tea.KeyCtrlD)
	if len(m.Editor().Invoice().LineItems) != 1 {
		t.Fatal("expected last line item to be kept")
	}
	if m.statusMsg == "" {
		t.Fatal("expected a status message explaining the refusal")
	}
}

func TestEditorNotifyShowsToast(t *testing.T) {
	m := NewEditorModel(newTestApp(t))
	m.Notify(notify.Toast{Title: "Missing Information", Description: "details", Severity: notify.SeverityDestructive})

	if !strings.Contains(m.View(), "Missing Information") {
		t.Fatal("expected toast in view")
	}

	m.Update(toastExpiredMsg{seq: m.toasts.seq})
	if strings.Contains(m.View(), "Missing Information") {
		t.Fatal("expected toast dismissed")
	}
}

func TestRootSubmitRejectsIncompleteInvoice(t *testing.T) {
	root := New(newTestApp(t))

	next, cmd := root.Update(SubmitPreviewMsg{})
	root = next.(Model)

	if root.controller.Mode() != service.ModeEditing {
		t.Fatalf("expected editing mode, got %s", root.controller.Mode())
	}
	if root.preview != nil {
		t.Fatal("expected no preview")
	}
	if cmd == nil {
		t.Fatal("expected a toast dismissal command")
	}
	if root.editor.toasts.current == nil || root.editor.toasts.current.Description != "Please fill in client name and business name" {
		t.Fatalf("unexpected toast %+v", root.editor.toasts.current)
	}
}

func TestRootPreviewRoundTrip(t *testing.T) {
	a := newTestApp(t)
	root := New(a)
	fillEditor(t, root.editor)
	first := root.editor

	next, _ := root.Update(SubmitPreviewMsg{})
	root = next.(Model)
	if root.controller.Mode() != service.ModePreviewing || root.preview == nil {
		t.Fatalf("expected preview mode, got %s", root.controller.Mode())
	}

	next, _ = root.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	root = next.(Model)
	view := root.View()
	for _, want := range []string{"Invoice Preview", "INVOICE", "Acme", "Globex", "Consulting"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected preview to contain %q", want)
		}
	}

	// Back goes through the renderer to the controller and swaps screens at once
	next, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = next.(Model)
	if root.controller.Mode() != service.ModeEditing {
		t.Fatalf("expected editing mode after back, got %s", root.controller.Mode())
	}

	if root.preview != nil {
		t.Fatal("expected preview closed")
	}
	if root.editor == first {
		t.Fatal("expected a fresh draft after back")
	}
	if got := root.editor.Editor().Invoice().ClientName; got != "" {
		t.Fatalf("expected empty client on fresh draft, got %q", got)
	}
}

func TestRootBackKeepsDraftWhenConfigured(t *testing.T) {
	a := newTestApp(t)
	a.Config.Invoice.KeepDraftOnBack = true
	root := New(a)
	fillEditor(t, root.editor)

	next, _ := root.Update(SubmitPreviewMsg{})
	root = next.(Model)
	next, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = next.(Model)

	if root.preview != nil {
		t.Fatal("expected preview closed")
	}
	if got := root.editor.Editor().Invoice().ClientName; got != "Globex" {
		t.Fatalf("expected draft kept, got client %q", got)
	}
}

func TestPreviewPrintAndEmail(t *testing.T) {
	a := newTestApp(t)
	root := New(a)
	fillEditor(t, root.editor)
	next, _ := root.Update(SubmitPreviewMsg{})
	root = next.(Model)

	// Print writes the text export
	next, cmd := root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	root = next.(Model)
	if cmd == nil {
		t.Fatal("expected a print command")
	}
	next, _ = root.Update(cmd())
	root = next.(Model)
	if !strings.Contains(root.preview.statusMsg, "Print requested") {
		t.Fatalf("unexpected status %q", root.preview.statusMsg)
	}

	// Email is not implemented and says so
	next, cmd = root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	root = next.(Model)
	next, _ = root.Update(cmd())
	root = next.(Model)
	toast := root.preview.toasts.current
	if toast == nil || toast.Severity != notify.SeverityWarning {
		t.Fatalf("expected a warning toast, got %+v", toast)
	}
	if !strings.Contains(toast.Description, "not implemented") {
		t.Fatalf("unexpected toast description %q", toast.Description)
	}
}

func TestQuitKeyIgnoredWhileTyping(t *testing.T) {
	root := New(newTestApp(t))

	number := root.editor.Editor().Invoice().InvoiceNumber
	root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if got := root.editor.Editor().Invoice().InvoiceNumber; got != number+"q" {
		t.Fatalf("expected q typed into the invoice number, got %q", got)
	}

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected ctrl+c to quit")
	}
}

func TestKeyAfterBackReachesNewEditor(t *testing.T) {
	root := New(newTestApp(t))
	fillEditor(t, root.editor)
	stale := root.editor
	staleNumber := stale.Editor().Invoice().InvoiceNumber

	next, _ := root.Update(SubmitPreviewMsg{})
	root = next.(Model)
	next, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = next.(Model)

	// No other message arrives between back and the next keystroke
	number := root.editor.Editor().Invoice().InvoiceNumber
	next, _ = root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")})
	root = next.(Model)

	if got := root.editor.Editor().Invoice().InvoiceNumber; got != number+"7" {
		t.Fatalf("expected key typed into the fresh draft, got %q", got)
	}
	if got := stale.Editor().Invoice().InvoiceNumber; got != staleNumber {
		t.Fatalf("key leaked into the previous draft: %q", got)
	}
}
