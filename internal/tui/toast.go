package tui

import (
	"time"

	"github.com/andy/invoicer/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const toastDuration = 4 * time.Second

// toastState holds the currently visible toast, if any
type toastState struct {
	current *notify.Toast
	seq     int
}

func (s *toastState) show(t notify.Toast) {
	s.current = &t
	s.seq++
}

// expireLater schedules dismissal of the toast currently shown
func (s *toastState) expireLater() tea.Cmd {
	if s.current == nil {
		return nil
	}
	seq := s.seq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (s *toastState) expire(seq int) {
	if seq == s.seq {
		s.current = nil
	}
}

func (s *toastState) clear() {
	s.current = nil
}

func (s *toastState) view() string {
	if s.current == nil {
		return ""
	}
	color := primaryColor
	switch s.current.Severity {
	case notify.SeverityWarning:
		color = warningColor
	case notify.SeverityDestructive:
		color = errorColor
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(s.current.Title)
	return toastStyle.BorderForeground(color).Render(title + "\n" + s.current.Description)
}
