// Package config loads and saves callcost settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/callcost/internal/estimate"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"
)

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "flexoki-dark"

// ErrInvalidRate is returned when a configured cost per minute is unusable.
var ErrInvalidRate = errors.New("cost per minute must be a positive number")

// Config holds all callcost configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Pricing    PricingConfig    `toml:"pricing"`
	Budget     BudgetConfig     `toml:"budget"`
	Log        LogConfig        `toml:"log"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// PricingConfig overrides the built-in per-minute price.
type PricingConfig struct {
	CostPerMinute *float64 `toml:"cost_per_minute,omitempty"`
}

// BudgetConfig holds budget tracking settings.
type BudgetConfig struct {
	MonthlyUSD *float64 `toml:"monthly_usd,omitempty"`
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	File  string `toml:"file,omitempty"`
	Level string `toml:"level,omitempty"`
}

// envOverrides are read from the environment after the config file.
type envOverrides struct {
	Theme         string   `env:"CALLCOST_THEME"`
	CostPerMinute *float64 `env:"CALLCOST_COST_PER_MINUTE"`
	MonthlyBudget *float64 `env:"CALLCOST_MONTHLY_BUDGET"`
	LogFile       string   `env:"CALLCOST_LOG_FILE"`
	LogLevel      string   `env:"CALLCOST_LOG_LEVEL"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: DefaultTheme,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "callcost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "callcost")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads the config file and applies environment overrides.
// A missing file yields the defaults.
func Load() (Config, error) {
	cfg, err := LoadFile(Path())
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile reads a single TOML file over the defaults, without env overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	if o.Theme != "" {
		cfg.Appearance.Theme = o.Theme
	}
	if o.CostPerMinute != nil {
		cfg.Pricing.CostPerMinute = o.CostPerMinute
	}
	if o.MonthlyBudget != nil {
		cfg.Budget.MonthlyUSD = o.MonthlyBudget
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	return nil
}

// Validate checks values that would break the estimate.
func (c Config) Validate() error {
	if c.Pricing.CostPerMinute != nil && *c.Pricing.CostPerMinute <= 0 {
		return fmt.Errorf("pricing.cost_per_minute = %v: %w", *c.Pricing.CostPerMinute, ErrInvalidRate)
	}
	return nil
}

// Rates returns the formula constants with any pricing override applied.
func (c Config) Rates() estimate.Rates {
	r := estimate.DefaultRates
	if c.Pricing.CostPerMinute != nil && *c.Pricing.CostPerMinute > 0 {
		r.CostPerMinute = *c.Pricing.CostPerMinute
	}
	return r
}

// MonthlyBudget returns the configured budget, or 0 when none is set.
func (c Config) MonthlyBudget() float64 {
	if c.Budget.MonthlyUSD == nil || *c.Budget.MonthlyUSD <= 0 {
		return 0
	}
	return *c.Budget.MonthlyUSD
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's own config file
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
