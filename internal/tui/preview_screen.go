package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/invoicer/internal/app"
	"github.com/andy/invoicer/internal/notify"
	"github.com/andy/invoicer/internal/render"
	"github.com/andy/invoicer/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const documentWidth = 72

// PreviewModel shows a read-only invoice snapshot
type PreviewModel struct {
	app      *app.App
	renderer *service.Renderer
	doc      render.Document

	viewport viewport.Model

	statusMsg string
	toasts    toastState
}

// NewPreviewModel renders the snapshot held by r
func NewPreviewModel(a *app.App, r *service.Renderer) *PreviewModel {
	m := &PreviewModel{
		app:      a,
		renderer: r,
		doc:      r.Render(),
	}
	m.viewport = viewport.New(documentWidth+6, 20)
	m.viewport.SetContent(m.renderDocument())
	return m
}

func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

// SetSize fits the document viewport into the space left by the frame
func (m *PreviewModel) SetSize(width, height int) {
	h := height - 14
	if h < 5 {
		h = 5
	}
	w := width - 8
	if w > documentWidth+6 {
		w = documentWidth + 6
	}
	if w < 20 {
		w = 20
	}
	m.viewport.Width = w
	m.viewport.Height = h
}

func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toastExpiredMsg:
		m.toasts.expire(msg.seq)
		return m, nil

	case printDoneMsg:
		m.statusMsg = fmt.Sprintf("Print requested (%s)", m.app.Printer.Destination())
		return m, nil

	case emailDoneMsg:
		if msg.err == nil {
			m.toasts.show(notify.Toast{
				Title:       "Email Sent",
				Description: fmt.Sprintf("Invoice sent to %s", m.doc.Recipient.Email),
				Severity:    notify.SeverityInfo,
			})
		} else {
			m.toasts.show(notify.Toast{
				Title:       "Send Email",
				Description: msg.err.Error(),
				Severity:    notify.SeverityWarning,
			})
		}
		return m, m.toasts.expireLater()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			// The root model swaps screens once the controller is back in editing
			m.renderer.GoBack()
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Print):
			m.statusMsg = "Printing..."
			r := m.renderer
			return m, func() tea.Msg {
				r.RequestPrint(context.Background())
				return printDoneMsg{}
			}

		case key.Matches(msg, DefaultKeyMap.Email):
			r := m.renderer
			return m, func() tea.Msg {
				return emailDoneMsg{err: r.RequestEmailSend(context.Background())}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *PreviewModel) View() string {
	var s strings.Builder

	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.statusMsg != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(successColor).Render(m.statusMsg) + "\n")
	}
	if t := m.toasts.view(); t != "" {
		s.WriteString(t + "\n")
	}

	s.WriteString("\n" + helpStyle.Render("esc/b: back to edit  p: print  m: send email  ↑/↓: scroll  q: quit"))
	return s.String()
}

// renderDocument lays the invoice document out with terminal styling
func (m *PreviewModel) renderDocument() string {
	doc := m.doc
	inner := documentWidth

	// Header: title and number on the left, issuer on the right
	left := docTitleStyle.Render(doc.Title) + "\n" + docMutedStyle.Render("#"+doc.InvoiceNumber)
	right := partyBlock(doc.Issuer, true)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)

	// Bill to and dates
	billTo := docMutedStyle.Render("Bill To:") + "\n" + partyBlock(doc.Recipient, false)
	var dates []string
	for _, d := range doc.Dates {
		dates = append(dates, fmt.Sprintf("%s %s", docMutedStyle.Render(d.Label+":"), d.Value))
	}
	dateBlock := lipgloss.NewStyle().Align(lipgloss.Right).Render(strings.Join(dates, "\n"))
	gap = inner - lipgloss.Width(billTo) - lipgloss.Width(dateBlock)
	if gap < 2 {
		gap = 2
	}
	parties := lipgloss.JoinHorizontal(lipgloss.Top, billTo, strings.Repeat(" ", gap), dateBlock)

	// Line item table
	rule := docRuleStyle.Render(strings.Repeat("─", inner))
	descWidth := inner - 8 - 14 - 14 - 3
	var table strings.Builder
	table.WriteString(lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%-*s %8s %14s %14s", descWidth, "Description", "Qty", "Rate", "Amount")) + "\n")
	table.WriteString(rule + "\n")
	for _, row := range doc.Rows {
		table.WriteString(fmt.Sprintf("%-*s %8s %14s %14s\n",
			descWidth, render.Truncate(row.Description, descWidth), row.Quantity, row.Rate, row.Amount))
	}
	table.WriteString(rule)

	// Totals
	totals := []string{fmt.Sprintf("%-16s %14s", "Subtotal:", doc.Totals.Subtotal)}
	if doc.Totals.Tax != nil {
		totals = append(totals, fmt.Sprintf("%-16s %14s", doc.Totals.Tax.Label+":", doc.Totals.Tax.Amount))
	}
	totals = append(totals, docTotalStyle.Render(fmt.Sprintf("%-16s %14s", "Total:", doc.Totals.Total)))
	totalBlock := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(strings.Join(totals, "\n"))

	parts := []string{header, "", parties, "", table.String(), totalBlock}

	if len(doc.Notes) > 0 {
		parts = append(parts, "", docMutedStyle.Render("Notes:"))
		parts = append(parts, doc.Notes...)
	}

	parts = append(parts, "", rule,
		lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Foreground(mutedColor).Render(doc.Footer))

	return docBoxStyle.Width(inner + 4).Render(strings.Join(parts, "\n"))
}

// partyBlock renders name, email and address lines
func partyBlock(p render.Party, alignRight bool) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(p.Name)}
	if p.Email != "" {
		lines = append(lines, p.Email)
	}
	lines = append(lines, p.Address...)
	style := lipgloss.NewStyle()
	if alignRight {
		style = style.Align(lipgloss.Right)
	}
	return style.Render(strings.Join(lines, "\n"))
}
