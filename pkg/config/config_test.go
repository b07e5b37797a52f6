package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Table.Rows != 50_000 || cfg.Table.Overscan != 10 {
		t.Errorf("unexpected defaults %+v", cfg.Table)
	}
}

func TestLoadFromReaderTOML(t *testing.T) {
	src := `
[table]
rows = 1200
seed = 99
overscan = 4
row_height = 2
columns = ["id", "age"]

[ui]
theme = "nord"
mouse = false
status_timeout = "750ms"

[log]
level = "debug"
file = "/tmp/vtable.log"
`
	cfg, err := LoadFromReader(strings.NewReader(src), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	want := &Config{
		Table: TableConfig{Rows: 1200, Seed: 99, Overscan: 4, RowHeight: 2, Columns: []string{"id", "age"}},
		UI:    UIConfig{Theme: "nord", Mouse: false, StatusTimeout: Duration{750 * time.Millisecond}},
		Log:   LogConfig{Level: "debug", File: "/tmp/vtable.log"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromReaderYAML(t *testing.T) {
	src := `
table:
  rows: 300
  overscan: 2
ui:
  status_timeout: 5s
`
	cfg, err := LoadFromReader(strings.NewReader(src), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Table.Rows != 300 || cfg.Table.Overscan != 2 {
		t.Errorf("unexpected table config %+v", cfg.Table)
	}
	if cfg.Table.RowHeight != 1 {
		t.Errorf("expected default row height to survive, got %v", cfg.Table.RowHeight)
	}
	if cfg.UI.StatusTimeout.Duration != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.UI.StatusTimeout)
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("expected default theme, got %q", cfg.UI.Theme)
	}
}

func TestLoadFromReaderEmptyYAML(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("empty YAML should give defaults, got %v", err)
	}
	if cfg.Table.Rows != 50_000 {
		t.Errorf("expected defaults, got %+v", cfg.Table)
	}
}

func TestLoadFromReaderRejectsBadDuration(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[ui]\nstatus_timeout = \"-1s\"\n"), FormatTOML)
	if err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestLoadFromFileMissingGivesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Table.Rows != 50_000 {
		t.Errorf("expected defaults, got %+v", cfg.Table)
	}
}

func TestLoadFromFilePicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("table:\n  rows: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Table.Rows != 42 {
		t.Errorf("expected 42 rows, got %d", cfg.Table.Rows)
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "vtable"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "vtable", "config.toml"), []byte("[table]\nrows = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Table.Rows != 7 {
		t.Errorf("expected rows from XDG config, got %d", cfg.Table.Rows)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VTABLE_ROWS", "123")
	t.Setenv("VTABLE_SEED", "5")
	t.Setenv("VTABLE_THEME", "dracula")
	t.Setenv("VTABLE_LOG_LEVEL", "warn")

	cfg, err := LoadFromReader(strings.NewReader("[table]\nrows = 9\n"), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Table.Rows != 123 || cfg.Table.Seed != 5 {
		t.Errorf("env did not override table: %+v", cfg.Table)
	}
	if cfg.UI.Theme != "dracula" || cfg.Log.Level != "warn" {
		t.Errorf("env did not override ui/log: %+v %+v", cfg.UI, cfg.Log)
	}
}

func TestEnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv("VTABLE_ROWS", "many")
	cfg, _ := LoadFromReader(strings.NewReader(""), FormatTOML)
	if cfg.Table.Rows != 50_000 {
		t.Errorf("expected default rows, got %d", cfg.Table.Rows)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.Rows = -1
	cfg.Table.Overscan = -2
	cfg.Table.RowHeight = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"table.rows", "table.overscan", "table.row_height", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"debug", false}, {"INFO", false}, {"", false}, {"warning", false}, {"error", false}, {"trace", true},
	}
	for _, tt := range tests {
		_, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q): err=%v, wantErr=%v", tt.in, err, tt.wantErr)
		}
	}
}
