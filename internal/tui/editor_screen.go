package tui

import (
	"fmt"
	"strings"

	"github.com/andy/invoicer/internal/app"
	"github.com/andy/invoicer/internal/domain"
	"github.com/andy/invoicer/internal/notify"
	"github.com/andy/invoicer/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Fields shown above the line items, in focus order
var headerFields = []domain.InvoiceField{
	domain.FieldInvoiceNumber,
	domain.FieldDate,
	domain.FieldDueDate,
	domain.FieldBusinessName,
	domain.FieldBusinessAddress,
	domain.FieldClientName,
	domain.FieldClientEmail,
	domain.FieldClientAddress,
}

// Fields shown below the line items, in focus order
var trailerFields = []domain.InvoiceField{
	domain.FieldTaxRate,
	domain.FieldNotes,
}

const labelWidth = 18

// slot is one focusable input: either a top-level field (row < 0) or a
// line item column.
type slot struct {
	field domain.InvoiceField
	row   int
	col   domain.LineItemField
}

type itemRow struct {
	id     string
	inputs []textinput.Model // indexed by domain.LineItemField
}

// EditorModel is the invoice form. It also displays the editor's toasts.
type EditorModel struct {
	app    *app.App
	editor *service.Editor

	fields []textinput.Model // indexed by domain.InvoiceField
	rows   []itemRow
	focus  int

	toasts    toastState
	statusMsg string
}

// NewEditorModel creates a form over a fresh invoice draft
func NewEditorModel(a *app.App) *EditorModel {
	m := &EditorModel{app: a}
	m.editor = a.NewEditor(m)
	m.initForm()
	return m
}

// Notify implements notify.Notifier
func (m *EditorModel) Notify(t notify.Toast) {
	m.toasts.show(t)
}

// Editor exposes the underlying editor to the root model
func (m *EditorModel) Editor() *service.Editor {
	return m.editor
}

// IsCapturingInput is always true: every key goes to a text field
func (m *EditorModel) IsCapturingInput() bool {
	return true
}

func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditorModel) initForm() {
	inv := m.editor.Invoice()

	m.fields = make([]textinput.Model, domain.InvoiceFieldCount)
	for f := domain.InvoiceField(0); f < domain.InvoiceFieldCount; f++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 200
		ti.Width = 40
		ti.SetValue(inv.Value(f))
		m.fields[f] = ti
	}
	m.fields[domain.FieldBusinessName].Placeholder = "Your Company Name"
	m.fields[domain.FieldBusinessAddress].Placeholder = `123 Business St\nCity, State 12345`
	m.fields[domain.FieldClientName].Placeholder = "Client Company or Name"
	m.fields[domain.FieldClientEmail].Placeholder = "client@example.com"
	m.fields[domain.FieldClientAddress].Placeholder = `456 Client Ave\nCity, State 67890`
	m.fields[domain.FieldDate].Placeholder = domain.DateLayout
	m.fields[domain.FieldDueDate].Placeholder = domain.DateLayout
	m.fields[domain.FieldTaxRate].Width = 8
	m.fields[domain.FieldTaxRate].CharLimit = 10
	m.fields[domain.FieldNotes].Placeholder = "Payment terms, additional notes, etc."
	m.fields[domain.FieldNotes].Width = 60
	m.fields[domain.FieldNotes].CharLimit = 500

	m.rows = nil
	for _, item := range inv.LineItems {
		m.rows = append(m.rows, newItemRow(item))
	}

	m.focus = 0
	m.input(m.slotAt(m.focus)).Focus()
}

func newItemRow(item domain.LineItem) itemRow {
	row := itemRow{id: item.ID, inputs: make([]textinput.Model, domain.LineItemFieldCount)}

	desc := textinput.New()
	desc.Prompt = ""
	desc.Placeholder = "Item description"
	desc.CharLimit = 200
	desc.Width = 28
	desc.SetValue(item.Description)
	row.inputs[domain.ItemDescription] = desc

	qty := textinput.New()
	qty.Prompt = ""
	qty.CharLimit = 12
	qty.Width = 8
	qty.SetValue(item.Quantity.String())
	row.inputs[domain.ItemQuantity] = qty

	rate := textinput.New()
	rate.Prompt = ""
	rate.CharLimit = 12
	rate.Width = 10
	rate.SetValue(item.Rate.String())
	row.inputs[domain.ItemRate] = rate

	return row
}

func (m *EditorModel) slotCount() int {
	return len(headerFields) + len(m.rows)*int(domain.LineItemFieldCount) + len(trailerFields)
}

// slotAt maps a focus index to the input it designates
func (m *EditorModel) slotAt(i int) slot {
	if i < len(headerFields) {
		return slot{field: headerFields[i], row: -1}
	}
	i -= len(headerFields)
	cols := int(domain.LineItemFieldCount)
	if i < len(m.rows)*cols {
		return slot{row: i / cols, col: domain.LineItemField(i % cols)}
	}
	i -= len(m.rows) * cols
	return slot{field: trailerFields[i], row: -1}
}

// rowSlotIndex is the inverse of slotAt for line item columns
func (m *EditorModel) rowSlotIndex(row int, col domain.LineItemField) int {
	return len(headerFields) + row*int(domain.LineItemFieldCount) + int(col)
}

func (m *EditorModel) input(s slot) *textinput.Model {
	if s.row < 0 {
		return &m.fields[s.field]
	}
	return &m.rows[s.row].inputs[s.col]
}

func (m *EditorModel) setFocus(i int) tea.Cmd {
	n := m.slotCount()
	if m.focus < n {
		m.input(m.slotAt(m.focus)).Blur()
	}
	m.focus = (i + n) % n
	return m.input(m.slotAt(m.focus)).Focus()
}

// sync pushes the focused input's text into the editor
func (m *EditorModel) sync() {
	s := m.slotAt(m.focus)
	value := m.input(s).Value()
	if s.row < 0 {
		m.editor.UpdateField(s.field, value)
		return
	}
	m.editor.UpdateLineItem(m.rows[s.row].id, s.col, value)
}

func (m *EditorModel) addLineItem() tea.Cmd {
	id := m.editor.AddLineItem()
	inv := m.editor.Invoice()
	idx := inv.FindLineItem(id)
	m.input(m.slotAt(m.focus)).Blur()
	m.rows = append(m.rows, newItemRow(inv.LineItems[idx]))
	m.statusMsg = ""
	return m.setFocus(m.rowSlotIndex(len(m.rows)-1, domain.ItemDescription))
}

func (m *EditorModel) removeFocusedLineItem() tea.Cmd {
	s := m.slotAt(m.focus)
	if s.row < 0 {
		m.statusMsg = "Move to a line item to remove it"
		return nil
	}
	if !m.editor.RemoveLineItem(m.rows[s.row].id) {
		m.statusMsg = "An invoice needs at least one line item"
		return nil
	}
	m.input(s).Blur()
	m.rows = append(m.rows[:s.row], m.rows[s.row+1:]...)
	m.statusMsg = ""

	row := s.row
	if row >= len(m.rows) {
		row = len(m.rows) - 1
	}
	m.focus = m.rowSlotIndex(row, s.col)
	return m.input(m.slotAt(m.focus)).Focus()
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toastExpiredMsg:
		m.toasts.expire(msg.seq)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Preview):
			m.statusMsg = ""
			return m, func() tea.Msg { return SubmitPreviewMsg{} }

		case key.Matches(msg, DefaultKeyMap.AddItem):
			return m, m.addLineItem()

		case key.Matches(msg, DefaultKeyMap.RemoveItem):
			return m, m.removeFocusedLineItem()

		case key.Matches(msg, DefaultKeyMap.Prev):
			return m, m.setFocus(m.focus - 1)

		case msg.String() == "enter" && m.focus == m.slotCount()-1:
			// Enter on the last field submits
			return m, func() tea.Msg { return SubmitPreviewMsg{} }

		case key.Matches(msg, DefaultKeyMap.Next):
			return m, m.setFocus(m.focus + 1)
		}
	}

	// Update the focused text input
	in := m.input(m.slotAt(m.focus))
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.sync()
	}
	return m, cmd
}

// ShowSubmitFailure schedules dismissal of the toast raised by a failed submit
func (m *EditorModel) ShowSubmitFailure() tea.Cmd {
	return m.toasts.expireLater()
}

// Resume prepares a kept draft for editing again
func (m *EditorModel) Resume() tea.Cmd {
	m.toasts.clear()
	m.statusMsg = ""
	return m.input(m.slotAt(m.focus)).Focus()
}

func (m *EditorModel) View() string {
	var s strings.Builder
	symbol := m.app.Config.Invoice.CurrencySymbol

	s.WriteString(sectionStyle.Render("Invoice Details") + "\n")
	for i, f := range headerFields[:3] {
		s.WriteString(m.fieldLine(i, f))
	}

	s.WriteString(sectionStyle.Render("Your Business") + "\n")
	for i, f := range headerFields[3:5] {
		s.WriteString(m.fieldLine(i+3, f))
	}

	s.WriteString(sectionStyle.Render("Bill To") + "\n")
	for i, f := range headerFields[5:] {
		s.WriteString(m.fieldLine(i+5, f))
	}

	// Line items
	s.WriteString(sectionStyle.Render("Line Items") + "\n")
	s.WriteString(subtitleStyle.Render(fmt.Sprintf("  %-3s %-29s %-9s %-11s %10s",
		"#", "Description", "Qty", fmt.Sprintf("Rate (%s)", symbol), "Amount")) + "\n")

	inv := m.editor.Invoice()
	for r, row := range m.rows {
		indicator := "  "
		focusedRow := false
		if sl := m.slotAt(m.focus); sl.row == r {
			indicator = "> "
			focusedRow = true
		}
		amount := ""
		if idx := inv.FindLineItem(row.id); idx >= 0 {
			amount = formatMoney(symbol, inv.LineItems[idx].Amount())
		}
		num := fmt.Sprintf("%-3d", r+1)
		if focusedRow {
			num = focusStyle.Render(num)
		}
		s.WriteString(fmt.Sprintf("%s%s %s %s %s %10s\n",
			indicator,
			num,
			padInput(row.inputs[domain.ItemDescription], 29),
			padInput(row.inputs[domain.ItemQuantity], 9),
			padInput(row.inputs[domain.ItemRate], 11),
			amount,
		))
	}

	// Totals
	s.WriteString(sectionStyle.Render("Totals") + "\n")
	s.WriteString(fmt.Sprintf("  %-*s %s\n", labelWidth, "Subtotal:", formatMoney(symbol, m.editor.Subtotal())))
	taxIdx := len(headerFields) + len(m.rows)*int(domain.LineItemFieldCount)
	s.WriteString(fmt.Sprintf("%s  %s\n",
		strings.TrimRight(m.fieldLine(taxIdx, domain.FieldTaxRate), "\n"),
		formatMoney(symbol, m.editor.Tax())))
	s.WriteString(lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("  %-*s %s", labelWidth, "Total:", formatMoney(symbol, m.editor.Total()))) + "\n")

	s.WriteString(sectionStyle.Render("Notes") + "\n")
	s.WriteString(m.fieldLine(taxIdx+1, domain.FieldNotes))

	if m.statusMsg != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(warningColor).Render("  "+m.statusMsg) + "\n")
	}
	if t := m.toasts.view(); t != "" {
		s.WriteString("\n" + t + "\n")
	}

	help := "  tab/shift+tab: fields  ctrl+n: add item  ctrl+s: preview  ctrl+c: quit"
	if m.editor.CanRemoveLineItem() {
		help = "  tab/shift+tab: fields  ctrl+n: add item  ctrl+d: remove item  ctrl+s: preview  ctrl+c: quit"
	}
	s.WriteString("\n" + helpStyle.Render(help))

	return s.String()
}

// fieldLine renders "label  input" for the field at focus index i
func (m *EditorModel) fieldLine(i int, f domain.InvoiceField) string {
	indicator := "  "
	labelStyle := subtitleStyle
	if i == m.focus {
		indicator = "> "
		labelStyle = focusStyle
	}
	label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, f.String()+":"))
	return fmt.Sprintf("%s%s %s\n", indicator, label, m.fields[f].View())
}

// padInput renders an input padded to a fixed display width
func padInput(in textinput.Model, width int) string {
	return lipgloss.NewStyle().Width(width).Render(in.View())
}
