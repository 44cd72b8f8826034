package cli

import (
	"errors"
	"os"

	"github.com/andy/invoicer/internal/logging"
	"github.com/andy/invoicer/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the invoice editor needs an interactive terminal")

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive invoice editor and preview.`,
	RunE:  launchTUI,
}

func launchTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	if err := tui.Run(appInstance); err != nil {
		logging.LogError(appInstance.Logger, "cli", "launchTUI", "tui.Run", err)
		return err
	}
	return nil
}
