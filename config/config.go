package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

// Config is the journal's complete configuration.
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Entry   EntryConfig   `json:"entry" yaml:"entry"`
}

// JournalConfig locates the persistent record store.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// EntryConfig carries the defaults pre-filled into a new entry.
type EntryConfig struct {
	Symbol     string  `json:"symbol" yaml:"symbol"`
	Timeframe  string  `json:"timeframe" yaml:"timeframe"`
	TradeType  string  `json:"trade_type" yaml:"trade_type"`
	Direction  string  `json:"direction" yaml:"direction"`
	MinWinRate float64 `json:"min_win_rate" yaml:"min_win_rate"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML or JSON based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if c.Entry.Symbol == "" {
		return fmt.Errorf("entry.symbol is required")
	}
	if _, ok := market.Instruments[c.Entry.Symbol]; !ok {
		return fmt.Errorf("unknown instrument: %s", c.Entry.Symbol)
	}
	if c.Entry.Timeframe == "" {
		return fmt.Errorf("entry.timeframe is required")
	}
	if c.Entry.TradeType != journal.TradeTypeReal && c.Entry.TradeType != journal.TradeTypeSim {
		return fmt.Errorf("entry.trade_type must be %q or %q", journal.TradeTypeReal, journal.TradeTypeSim)
	}
	if d := market.Direction(c.Entry.Direction); d != market.Long && d != market.Short {
		return fmt.Errorf("entry.direction must be long or short")
	}
	if c.Entry.MinWinRate < 0 || c.Entry.MinWinRate > 100 {
		return fmt.Errorf("entry.min_win_rate must be between 0 and 100")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./edgescope.sqlite",
		},
		Entry: EntryConfig{
			Symbol:     journal.DefaultSymbol,
			Timeframe:  journal.DefaultTimeframe,
			TradeType:  journal.TradeTypeReal,
			Direction:  string(market.Long),
			MinWinRate: journal.DefaultMinWinRate,
		},
	}
}
