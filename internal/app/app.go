package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/andy/invoicer/internal/config"
	"github.com/andy/invoicer/internal/delivery"
	"github.com/andy/invoicer/internal/domain"
	"github.com/andy/invoicer/internal/logging"
	"github.com/andy/invoicer/internal/notify"
	"github.com/andy/invoicer/internal/output"
	"github.com/andy/invoicer/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Logger *logrus.Logger

	IDs     domain.IDGenerator
	Printer output.Printer
	Sender  delivery.Sender

	// Now is the clock used for default invoice dates
	Now func() time.Time

	logCloser io.Closer
}

// New loads the default config and builds an App from it
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	ids, err := domain.NewIDGenerator(cfg.Invoice.NumberPrefix, cfg.Invoice.NodeID)
	if err != nil {
		closer.Close()
		return nil, err
	}

	printer, err := newPrinter(cfg.Print)
	if err != nil {
		closer.Close()
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"print_mode":  cfg.Print.Mode,
		"destination": printer.Destination(),
	}).Info("invoicer started")

	return &App{
		Config:    cfg,
		Logger:    logger,
		IDs:       ids,
		Printer:   printer,
		Sender:    delivery.Unimplemented,
		Now:       time.Now,
		logCloser: closer,
	}, nil
}

func newPrinter(cfg config.PrintConfig) (output.Printer, error) {
	switch cfg.Mode {
	case config.PrintModeFile:
		return output.NewFilePrinter(cfg.OutputDir), nil
	case config.PrintModeCommand:
		return output.NewCommandPrinter(cfg.Command), nil
	default:
		return nil, fmt.Errorf("unknown print mode %q", cfg.Mode)
	}
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// NewEditor starts a fresh invoice draft using the configured defaults
func (a *App) NewEditor(notifier notify.Notifier) *service.Editor {
	defaults := service.EditorDefaults{
		BusinessName:    a.Config.Business.Name,
		BusinessAddress: a.Config.Business.Address,
		TaxRate:         decimal.NewFromFloat(a.Config.Invoice.DefaultTaxRate),
		DueDays:         a.Config.Invoice.DefaultDueDays,
	}
	return service.NewEditor(defaults, a.IDs, notifier, a.Now())
}

// NewRenderer wraps a snapshot with the configured print and delivery collaborators
func (a *App) NewRenderer(snapshot domain.Invoice, onBack func()) *service.Renderer {
	return service.NewRenderer(snapshot, service.RendererDeps{
		CurrencySymbol: a.Config.Invoice.CurrencySymbol,
		Printer:        a.Printer,
		Sender:         a.Sender,
		Logger:         a.Logger,
	}, onBack)
}

// SaveConfig saves the current configuration to path, or to the default
// location when path is empty
func (a *App) SaveConfig(path string) error {
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return a.Config.Save(path)
}
