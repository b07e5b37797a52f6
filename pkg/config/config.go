package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config is the complete vtable configuration.
type Config struct {
	Table TableConfig `toml:"table" yaml:"table"`
	UI    UIConfig    `toml:"ui" yaml:"ui"`
	Log   LogConfig   `toml:"log" yaml:"log"`
}

// TableConfig controls the dataset and the virtualization geometry.
type TableConfig struct {
	// Rows is the number of records generated on start and on refresh.
	Rows int `toml:"rows" yaml:"rows"`

	// Seed feeds the record generator. 0 picks a random seed.
	Seed int64 `toml:"seed" yaml:"seed"`

	// Overscan is the number of extra rows rendered above and below the
	// visible range.
	Overscan int `toml:"overscan" yaml:"overscan"`

	// RowHeight is the estimated height of a row in terminal lines.
	RowHeight float64 `toml:"row_height" yaml:"row_height"`

	// Columns lists displayed column keys in order; empty shows all.
	Columns []string `toml:"columns" yaml:"columns"`
}

// UIConfig controls the interactive view.
type UIConfig struct {
	Theme         string   `toml:"theme" yaml:"theme"`
	Mouse         bool     `toml:"mouse" yaml:"mouse"`
	StatusTimeout Duration `toml:"status_timeout" yaml:"status_timeout"`
}

// LogConfig controls diagnostic logging. The TUI owns the terminal, so logs
// go to File; an empty File discards them.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Table.Rows < 0 {
		errs = append(errs, fmt.Errorf("table.rows must be >= 0, got %d", c.Table.Rows))
	}
	if c.Table.Overscan < 0 {
		errs = append(errs, fmt.Errorf("table.overscan must be >= 0, got %d", c.Table.Overscan))
	}
	if !(c.Table.RowHeight > 0) {
		errs = append(errs, fmt.Errorf("table.row_height must be > 0, got %v", c.Table.RowHeight))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", name)
	}
}
