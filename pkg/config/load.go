package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder used for a config stream.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/vtable/config.toml (then config.yaml)
//  2. ~/.config/vtable/config.toml (then config.yaml)
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. Files ending
// in .yaml or .yml are decoded as YAML, everything else as TOML. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadFromReader(f, formatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes configuration from r over the defaults.
func LoadFromReader(r io.Reader, format Format) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("config: parse YAML: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: parse TOML: %w", err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration: 50 000 rows, ten rows of
// overscan, one terminal line per row.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			Rows:      50_000,
			Overscan:  10,
			RowHeight: 1,
		},
		UI: UIConfig{
			Theme:         "default",
			Mouse:         true,
			StatusTimeout: Duration{3 * time.Second},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
// Unparseable numbers are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VTABLE_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Table.Rows = n
		}
	}
	if v := os.Getenv("VTABLE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Table.Seed = n
		}
	}
	if v := os.Getenv("VTABLE_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("VTABLE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	dirs := []string{xdgConfigHome(home)}

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	if defaultXDG := filepath.Join(home, ".config"); dirs[0] != defaultXDG {
		dirs = append(dirs, defaultXDG)
	}

	var paths []string
	for _, d := range dirs {
		paths = append(paths,
			filepath.Join(d, "vtable", "config.toml"),
			filepath.Join(d, "vtable", "config.yaml"),
		)
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
