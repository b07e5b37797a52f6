// vtable is a virtualized, sortable table for the terminal.
//
// It generates a large collection of synthetic person records and shows
// them in a scrolling table that only renders the rows near the viewport.
// Columns sort with the number keys or a header click, and the dataset can
// be regenerated in place.
//
// Usage:
//
//	vtable [flags]
//
// Flags:
//
//	-config string   Path to configuration file (default: ~/.config/vtable/config.toml)
//	-rows int        Number of records to generate (overrides config)
//	-seed int        Generator seed, 0 = random (overrides config)
//	-theme string    Theme name or path to a .toml theme file
//	-dump            Print one frame to stdout and exit
//	-width int       Frame width for -dump (0 = auto-detect)
//	-height int      Frame height for -dump (0 = auto-detect)
//	-bench           Measure the hot paths against their budgets and exit
//	-verbose         Enable debug logging
//	-version         Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vtable/pkg/app"
	"gitlab.com/tinyland/lab/vtable/pkg/config"
	"gitlab.com/tinyland/lab/vtable/pkg/perf"
	"gitlab.com/tinyland/lab/vtable/pkg/record"
	"gitlab.com/tinyland/lab/vtable/pkg/terminal"
	"gitlab.com/tinyland/lab/vtable/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		rows        = flag.Int("rows", -1, "Number of records to generate (-1 = from config)")
		seed        = flag.Int64("seed", 0, "Generator seed (0 = from config, then random)")
		themeName   = flag.String("theme", "", "Theme name or path to a .toml theme file")
		dump        = flag.Bool("dump", false, "Print one frame to stdout and exit")
		width       = flag.Int("width", 0, "Frame width for -dump (0 = auto-detect)")
		height      = flag.Int("height", 0, "Frame height for -dump (0 = auto-detect)")
		bench       = flag.Bool("bench", false, "Measure the hot paths against their budgets and exit")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vtable %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the file and the environment.
	if *rows >= 0 {
		cfg.Table.Rows = *rows
	}
	if *seed != 0 {
		cfg.Table.Seed = *seed
	}
	if *themeName != "" {
		cfg.UI.Theme = *themeName
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if *bench {
		code := runBench(cfg.Table.Rows, logger)
		closeLog()
		os.Exit(code)
	}

	if cfg.Table.Seed == 0 {
		cfg.Table.Seed = rand.Int64()
	}

	caps := terminal.DetectCapabilities()
	logger.Debug("terminal capabilities",
		"term", caps.Term.String(),
		"size", fmt.Sprintf("%dx%d", caps.Size.Cols, caps.Size.Rows),
		"profile", caps.Profile,
		"interactive", caps.Interactive,
		"ssh", caps.SSH,
	)

	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetColorProfile(caps.Profile)
	th := theme.Adapt(resolveTheme(cfg.UI.Theme, logger), caps.Profile)

	opts := app.Options{
		Source:        record.NewGenerator(cfg.Table.Seed),
		Rows:          cfg.Table.Rows,
		Columns:       cfg.Table.Columns,
		Overscan:      cfg.Table.Overscan,
		RowHeight:     cfg.Table.RowHeight,
		Styles:        theme.NewStyles(th, renderer),
		Mouse:         cfg.UI.Mouse && caps.Mouse,
		StatusTimeout: cfg.UI.StatusTimeout.Duration,
		Logger:        logger,
	}
	logger.Info("starting", "version", version, "rows", opts.Rows, "seed", cfg.Table.Seed, "theme", th.Name)

	if *dump || !caps.Interactive {
		m, err := app.New(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		w, h := caps.Size.Cols, caps.Size.Rows
		if *width > 0 {
			w = *width
		}
		if *height > 0 {
			h = *height
		}
		fmt.Println(m.Snapshot(w, h))
		return
	}

	opts.Zones = zone.New()
	m, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runBench measures the perf suite over rows records and reports budget
// violations. It returns the process exit code.
func runBench(rows int, logger *slog.Logger) int {
	ops, err := perf.Suite(rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Printf("vtable %s: %d rows\n", version, rows)
	results := perf.Run(ops)
	perf.Report(os.Stdout, ops, results)

	violations := perf.CheckRegression(results, perf.DefaultThresholds())
	for _, v := range violations {
		logger.Warn("performance budget exceeded", "op", v.Threshold.Name, "field", v.Field, "actual", v.Actual)
		fmt.Fprintln(os.Stderr, v)
	}
	if len(violations) > 0 {
		return 1
	}
	return 0
}

// setupLogger writes text logs to cfg.File, or discards them when no file
// is configured. The TUI owns stdout and stderr while it runs.
func setupLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

// resolveTheme loads a theme file when name looks like a path and looks up
// a built-in palette otherwise. Unknown names fall back to the default.
func resolveTheme(name string, logger *slog.Logger) theme.Theme {
	if strings.HasSuffix(name, ".toml") {
		t, err := theme.LoadFile(name)
		if err == nil {
			return t
		}
		logger.Warn("failed to load theme file, using default", "path", name, "error", err)
		return theme.Get("default")
	}
	t, ok := theme.Lookup(name)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", name, "available", strings.Join(theme.Names(), ","))
	}
	return t
}
