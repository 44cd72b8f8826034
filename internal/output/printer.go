// Package output hands rendered invoices to the host's print facility
package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Printer delivers a rendered document to the host. name identifies the
// document (the invoice number) and body is its printable text.
type Printer interface {
	Print(ctx context.Context, name string, body []byte) error
	// Destination describes where documents go, for status lines
	Destination() string
}

// CommandPrinter pipes documents to a spooler command such as lp
type CommandPrinter struct {
	Command []string
}

// NewCommandPrinter creates a printer running the given command line
func NewCommandPrinter(command []string) *CommandPrinter {
	return &CommandPrinter{Command: command}
}

func (p *CommandPrinter) Print(ctx context.Context, name string, body []byte) error {
	if len(p.Command) == 0 || p.Command[0] == "" {
		return errors.New("print command is not configured")
	}

	cmd := exec.CommandContext(ctx, p.Command[0], p.Command[1:]...)
	cmd.Stdin = bytes.NewReader(body)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("print %s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("print %s: %w", name, err)
	}
	return nil
}

func (p *CommandPrinter) Destination() string {
	return strings.Join(p.Command, " ")
}

// FilePrinter writes each document to <Dir>/<name>.txt
type FilePrinter struct {
	Dir string
}

// NewFilePrinter creates a printer exporting into dir
func NewFilePrinter(dir string) *FilePrinter {
	return &FilePrinter{Dir: dir}
}

func (p *FilePrinter) Print(ctx context.Context, name string, body []byte) error {
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(p.Path(name), body, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Path returns the file a document with the given name is written to
func (p *FilePrinter) Path(name string) string {
	return filepath.Join(p.Dir, safeFileName(name)+".txt")
}

func (p *FilePrinter) Destination() string {
	return p.Dir
}

// safeFileName keeps invoice numbers usable as file names
func safeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "invoice"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
