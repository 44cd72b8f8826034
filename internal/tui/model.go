package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andy/invoicer/internal/app"
	"github.com/andy/invoicer/internal/domain"
	"github.com/andy/invoicer/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	appName    = "InvoiceMaker"
	appTagline = "Professional invoice creation"
)

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, the single-letter quit key is passed through to the screen.
type InputCapturer interface {
	IsCapturingInput() bool
}

// Model is the root Bubble Tea model. It owns the view controller and
// routes messages to the editor or the preview.
type Model struct {
	app        *app.App
	controller *service.ViewController
	width      int
	height     int

	editor  *EditorModel
	preview *PreviewModel

	err error
}

// New creates a new root model in editing mode
func New(a *app.App) Model {
	return Model{
		app:        a,
		controller: service.NewViewController(),
		editor:     NewEditorModel(a),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m *Model) activeScreen() tea.Model {
	if m.controller.Mode() == service.ModePreviewing && m.preview != nil {
		return m.preview
	}
	return m.editor
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.preview != nil {
			m.preview.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		m.err = nil
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.activeScreenCapturingInput() && key.Matches(msg, DefaultKeyMap.Quit) {
			return m, tea.Quit
		}

	case SubmitPreviewMsg:
		return m.submit()
	}

	// Route message to current screen
	var cmd tea.Cmd
	if m.controller.Mode() == service.ModePreviewing && m.preview != nil {
		_, cmd = m.preview.Update(msg)
		if m.controller.Mode() == service.ModeEditing {
			// The preview's back action moved the controller; the editor
			// must own the very next key
			return m, tea.Batch(cmd, m.returnToEditor())
		}
	} else {
		_, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// returnToEditor drops the preview and resumes or replaces the draft
func (m *Model) returnToEditor() tea.Cmd {
	m.preview = nil
	if m.app.Config.Invoice.KeepDraftOnBack {
		return m.editor.Resume()
	}
	m.editor = NewEditorModel(m.app)
	return m.editor.Init()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	snap, err := m.controller.Submit(m.editor.Editor())
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			// The editor already raised the toast
			return m, m.editor.ShowSubmitFailure()
		}
		m.err = err
		return m, nil
	}

	m.editor.toasts.clear()
	controller := m.controller
	renderer := m.app.NewRenderer(snap, controller.Back)
	m.preview = NewPreviewModel(m.app, renderer)
	if m.width > 0 {
		m.preview.SetSize(m.width, m.height)
	}
	m.app.Logger.WithField("invoice", snap.InvoiceNumber).Info("invoice preview opened")
	return m, m.preview.Init()
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(appName) + subtitleStyle.Render("  "+appTagline)

	var title, subtitle, footer string
	if m.controller.Mode() == service.ModePreviewing {
		title = "Invoice Preview"
		subtitle = "Review your invoice before sending"
		footer = footerStyle.Render("[Esc] Back to Edit  [P]rint  [M] Send Email  [Q]uit")
	} else {
		title = "Create New Invoice"
		subtitle = "Fill in the details below to generate your invoice"
		footer = footerStyle.Render("[Tab] Next  [Ctrl+N] Add Item  [Ctrl+S] Preview  [Ctrl+C] Quit")
	}

	content := m.activeScreen().View()

	errorDisplay := ""
	if m.err != nil {
		errorDisplay = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n%s\n%s\n\n%s%s\n\n%s\n%s",
		header, divider, titleStyle.Render(title), subtitleStyle.Render(subtitle),
		content, errorDisplay, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
