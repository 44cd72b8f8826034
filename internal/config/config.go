package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default config file location
const EnvConfigPath = "INVOICER_CONFIG"

// Print modes
const (
	PrintModeFile    = "file"
	PrintModeCommand = "command"
)

type Config struct {
	// Issuer defaults prefilled into new invoices
	Business BusinessConfig `yaml:"business"`

	// Invoice settings
	Invoice InvoiceConfig `yaml:"invoice"`

	// Where printed invoices go
	Print PrintConfig `yaml:"print"`

	Logging LoggingConfig `yaml:"logging"`
}

type BusinessConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

type InvoiceConfig struct {
	NumberPrefix    string  `yaml:"number_prefix"`      // Invoice number prefix (e.g., "INV")
	DefaultDueDays  int     `yaml:"default_due_days"`   // Days until invoice due
	DefaultTaxRate  float64 `yaml:"default_tax_rate"`   // Percentage (8.25 = 8.25%)
	CurrencySymbol  string  `yaml:"currency_symbol"`    // Prefix for money values
	KeepDraftOnBack bool    `yaml:"keep_draft_on_back"` // Resume the draft after preview instead of starting fresh
	NodeID          int64   `yaml:"node_id"`            // Snowflake node for invoice numbers (0-1023)
}

type PrintConfig struct {
	Mode      string   `yaml:"mode"`       // "file" or "command"
	Command   []string `yaml:"command"`    // Spooler command, document on stdin
	OutputDir string   `yaml:"output_dir"` // Directory for exported invoices
}

type LoggingConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "invoicer")
	}
	return filepath.Join(homeDir, ".config", "invoicer")
}

// DefaultConfigPath returns $INVOICER_CONFIG or ~/.config/invoicer/config.yaml
func DefaultConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := configDir()

	return &Config{
		Invoice: InvoiceConfig{
			NumberPrefix:   "INV",
			DefaultDueDays: 30,
			DefaultTaxRate: 0,
			CurrencySymbol: "₹",
			NodeID:         1,
		},
		Print: PrintConfig{
			Mode:      PrintModeFile,
			Command:   []string{"lp"},
			OutputDir: filepath.Join(dir, "invoices"),
		},
		Logging: LoggingConfig{
			Path:  filepath.Join(dir, "invoicer.log"),
			Level: "info",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDefault reads ./.env when present, then loads from the default config path
func LoadDefault() (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()
	return Load(DefaultConfigPath())
}

// Validate checks values the rest of the program relies on
func (c *Config) Validate() error {
	if c.Invoice.DefaultDueDays < 0 {
		return fmt.Errorf("invoice.default_due_days cannot be negative")
	}
	if c.Invoice.DefaultTaxRate < 0 {
		return fmt.Errorf("invoice.default_tax_rate cannot be negative")
	}
	if c.Invoice.NodeID < 0 || c.Invoice.NodeID > 1023 {
		return fmt.Errorf("invoice.node_id must be between 0 and 1023")
	}
	switch c.Print.Mode {
	case PrintModeFile:
		if c.Print.OutputDir == "" {
			return fmt.Errorf("print.output_dir is required in file mode")
		}
	case PrintModeCommand:
		if len(c.Print.Command) == 0 {
			return fmt.Errorf("print.command is required in command mode")
		}
	default:
		return fmt.Errorf("unknown print.mode %q", c.Print.Mode)
	}
	return nil
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the log directory and, in file mode, the export directory
func (c *Config) EnsureDirectories() error {
	if c.Logging.Path != "" {
		if err := os.MkdirAll(filepath.Dir(c.Logging.Path), 0755); err != nil {
			return err
		}
	}

	if c.Print.Mode == PrintModeFile {
		if err := os.MkdirAll(c.Print.OutputDir, 0755); err != nil {
			return err
		}
	}

	return nil
}
