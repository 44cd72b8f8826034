package cli

import (
	"context"
	"fmt"

	"github.com/andy/invoicer/internal/app"
	"github.com/andy/invoicer/internal/config"
	"github.com/spf13/cobra"
)

var (
	appInstance *app.App
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "invoicer",
	Short: "Create professional invoices from the terminal",
	Long: `Invoicer builds an invoice in an interactive form, shows a printable
preview and sends it to a printer or a text file.

By default, running invoicer without arguments launches the interactive TUI.
The config file is read from --config, then $INVOICER_CONFIG, then
~/.config/invoicer/config.yaml. A .env file in the working directory is
loaded first.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		return launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// Close releases the app instance, if one was created
func Close() error {
	if appInstance == nil {
		return nil
	}
	return appInstance.Close()
}

// initApp builds the app once flags are parsed. Help never reaches it.
func initApp(cmd *cobra.Command, args []string) error {
	if appInstance != nil {
		return nil
	}

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a, err := app.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	SetApp(a)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}
