package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/klineviz/indicators"
)

// Config represents the complete run configuration
type Config struct {
	Symbols []SymbolConfig `json:"symbols" yaml:"symbols" mapstructure:"symbols"`
	Load    LoadConfig     `json:"load" yaml:"load" mapstructure:"load"`
	Trends  TrendsConfig   `json:"trends" yaml:"trends" mapstructure:"trends"`
	Change  ChangeConfig   `json:"change" yaml:"change" mapstructure:"change"`
	Output  OutputConfig   `json:"output" yaml:"output" mapstructure:"output"`
	Log     LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
	Journal JournalConfig  `json:"journal" yaml:"journal" mapstructure:"journal"`
	Export  ExportConfig   `json:"export" yaml:"export" mapstructure:"export"`
}

// SymbolConfig maps a traded symbol to its kline CSV
type SymbolConfig struct {
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	Path   string `json:"path" yaml:"path" mapstructure:"path"`
}

// LoadConfig controls CSV ingestion
type LoadConfig struct {
	Sort bool `json:"sort" yaml:"sort" mapstructure:"sort"` // sort by close_time instead of rejecting
}

// TrendsConfig contains the trend chart parameters
type TrendsConfig struct {
	Window int `json:"window" yaml:"window" mapstructure:"window"`
}

// ChangeConfig bounds the close change chart. Empty bounds are open.
type ChangeConfig struct {
	From string `json:"from,omitempty" yaml:"from,omitempty" mapstructure:"from"` // YYYY-MM-DD or RFC 3339
	To   string `json:"to,omitempty" yaml:"to,omitempty" mapstructure:"to"`
}

// Range parses the bounds as UTC times. A bare date as To covers that
// whole day.
func (c ChangeConfig) Range() (from, to time.Time, err error) {
	if from, err = parseBound(c.From, false); err != nil {
		return from, to, fmt.Errorf("change.from: %w", err)
	}
	if to, err = parseBound(c.To, true); err != nil {
		return from, to, fmt.Errorf("change.to: %w", err)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("change.to %s is before change.from %s", c.To, c.From)
	}
	return from, to, nil
}

func parseBound(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Millisecond)
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("want YYYY-MM-DD or RFC 3339, got %q", s)
	}
	return t.UTC(), nil
}

// OutputConfig selects where the chart goes
type OutputConfig struct {
	Mode   string  `json:"mode" yaml:"mode" mapstructure:"mode"` // "show" or "save"
	Path   string  `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
	Format string  `json:"format" yaml:"format" mapstructure:"format"` // png, jpg, tif, svg, pdf, eps, html
	DPI    int     `json:"dpi" yaml:"dpi" mapstructure:"dpi"`
	Width  float64 `json:"width" yaml:"width" mapstructure:"width"`    // inches
	Height float64 `json:"height" yaml:"height" mapstructure:"height"` // inches
}

// LogConfig contains the logger options
type LogConfig struct {
	Level      string `json:"level" yaml:"level" mapstructure:"level"`    // debug, info, warn, error
	Format     string `json:"format" yaml:"format" mapstructure:"format"` // console or json
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty" mapstructure:"output_file"`
}

// JournalConfig contains run journaling parameters
type JournalConfig struct {
	Type string `json:"type" yaml:"type" mapstructure:"type"` // "none", "csv" or "sqlite"
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
}

// ExportConfig controls writing derived points to disk
type ExportConfig struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"` // "", csv, json or parquet
	Dir    string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`
}

const (
	ModeShow = "show"
	ModeSave = "save"
)

var (
	imageFormats  = map[string]bool{"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true, "svg": true, "pdf": true, "eps": true, "html": true}
	journalTypes  = map[string]bool{"": true, "none": true, "csv": true, "sqlite": true}
	exportFormats = map[string]bool{"": true, "csv": true, "json": true, "parquet": true}
)

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("at least one symbol is required")
	}
	seen := make(map[string]bool, len(c.Symbols))
	for i, s := range c.Symbols {
		if s.Symbol == "" {
			return fmt.Errorf("symbols[%d].symbol is required", i)
		}
		if s.Path == "" {
			return fmt.Errorf("symbols[%d].path is required for %s", i, s.Symbol)
		}
		if seen[s.Symbol] {
			return fmt.Errorf("duplicate symbol: %s", s.Symbol)
		}
		seen[s.Symbol] = true
	}
	if c.Trends.Window <= 0 {
		return fmt.Errorf("trends.window must be positive")
	}
	if _, _, err := c.Change.Range(); err != nil {
		return err
	}
	if c.Output.Mode != ModeShow && c.Output.Mode != ModeSave {
		return fmt.Errorf("output.mode must be 'show' or 'save'")
	}
	if !imageFormats[strings.ToLower(c.Output.Format)] {
		return fmt.Errorf("unsupported output.format: %s", c.Output.Format)
	}
	if c.Output.Mode == ModeSave && c.Output.Path == "" {
		return fmt.Errorf("output.path required in save mode")
	}
	if c.Output.DPI <= 0 {
		return fmt.Errorf("output.dpi must be positive")
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("output width and height must be positive")
	}
	if !journalTypes[c.Journal.Type] {
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if (c.Journal.Type == "csv" || c.Journal.Type == "sqlite") && c.Journal.Path == "" {
		return fmt.Errorf("journal.path required for %s journal", c.Journal.Type)
	}
	if !exportFormats[c.Export.Format] {
		return fmt.Errorf("export.format must be 'csv', 'json' or 'parquet'")
	}
	if c.Export.Format != "" && c.Export.Dir == "" {
		return fmt.Errorf("export.dir required when export.format is set")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Symbols: []SymbolConfig{
			{Symbol: "BTCUSDT", Path: "data/BTCUSDT.csv"},
			{Symbol: "DOGEUSDT", Path: "data/DOGEUSDT.csv"},
			{Symbol: "ETHUSDT", Path: "data/ETHUSDT.csv"},
			{Symbol: "SOLUSDT", Path: "data/SOLUSDT.csv"},
		},
		Trends: TrendsConfig{
			Window: indicators.DefaultWindow,
		},
		Output: OutputConfig{
			Mode:   ModeShow,
			Format: "png",
			DPI:    300,
			Width:  12,
			Height: 6,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}
