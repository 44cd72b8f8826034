// Package notify carries transient user-facing messages (toasts) from the
// services to whatever surface displays them.
package notify

// Severity controls how a toast is styled
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityDestructive
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityDestructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// Toast is a short message shown for a few seconds
type Toast struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier displays toasts
type Notifier interface {
	Notify(t Toast)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(t Toast)

func (f NotifierFunc) Notify(t Toast) { f(t) }

// Discard drops every toast
var Discard Notifier = NotifierFunc(func(Toast) {})

// Recorder keeps every toast it receives, in order
type Recorder struct {
	Toasts []Toast
}

func (r *Recorder) Notify(t Toast) {
	r.Toasts = append(r.Toasts, t)
}

// Last returns the most recent toast, if any
func (r *Recorder) Last() (Toast, bool) {
	if len(r.Toasts) == 0 {
		return Toast{}, false
	}
	return r.Toasts[len(r.Toasts)-1], true
}
