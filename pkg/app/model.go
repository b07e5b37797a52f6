package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vtable/pkg/components"
	"gitlab.com/tinyland/lab/vtable/pkg/pipeline"
	"gitlab.com/tinyland/lab/vtable/pkg/record"
	"gitlab.com/tinyland/lab/vtable/pkg/sorting"
	"gitlab.com/tinyland/lab/vtable/pkg/theme"
	"gitlab.com/tinyland/lab/vtable/pkg/window"
)

// wheelLines is how far one wheel notch scrolls, in terminal lines.
const wheelLines = 3

// Options configures a Model.
type Options struct {
	// Source generates the initial collection and every refresh. Required.
	Source record.Source

	Rows      int
	Columns   []string // displayed column keys; empty shows all
	Overscan  int
	RowHeight float64 // terminal lines per row

	Styles        theme.Styles
	Mouse         bool
	StatusTimeout time.Duration

	// Zones marks header cells so clicks resolve through bubblezone. Nil
	// falls back to computing the column from the click position.
	Zones *zone.Manager

	Logger *slog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	opts   Options
	table  *pipeline.Pipeline[record.Record]
	view   *components.TableView
	keys   KeyMap
	help   help.Model
	logger *slog.Logger

	width, height int
	ready         bool
	quitting      bool
	refreshing    bool

	status    string
	statusErr bool
	statusSeq int
}

// New generates the initial collection and builds the model around it.
func New(opts Options) (Model, error) {
	if opts.Source == nil {
		return Model{}, errors.New("app: nil record source")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if !(opts.RowHeight > 0) || math.IsInf(opts.RowHeight, 0) {
		opts.RowHeight = window.DefaultRowHeight
	}

	began := time.Now()
	recs := opts.Source.Generate(opts.Rows)
	logger.Info("generated records", "rows", len(recs), "elapsed", time.Since(began))

	table, err := pipeline.New(pipeline.Config[record.Record]{
		Registry: record.Columns(),
		Columns:  opts.Columns,
		RowKey:   record.RowKey,
		Viewport: window.Viewport{RowHeight: opts.RowHeight, Overscan: opts.Overscan},
		Logger:   logger,
	}, recs)
	if err != nil {
		return Model{}, fmt.Errorf("app: %w", err)
	}

	view := components.NewTableView(opts.Styles)
	view.Decorators = Decorators(opts.Styles)
	if opts.Zones != nil {
		view.Mark = opts.Zones.Mark
	}

	h := help.New()
	h.Styles = helpStyles(opts.Styles)

	return Model{
		opts:   opts,
		table:  table,
		view:   view,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("vtable")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m.apply(resizeTo(m.tableHeight()))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.opts.Mouse {
			return m, nil
		}
		return m.handleMouse(msg)

	case RecordsRefreshedMsg:
		m.refreshing = false
		if msg.Err != nil {
			m.logger.Error("refresh failed", "error", msg.Err)
			cmd := m.setStatus(msg.Err.Error(), true)
			return m, cmd
		}
		m.logger.Info("refreshed records", "rows", len(msg.Records), "elapsed", msg.Elapsed)
		next, cmd, err := m.applyErr(pipeline.Refresh[record.Record]{Records: msg.Records})
		if err != nil {
			return next, cmd
		}
		cmd = next.setStatus(fmt.Sprintf("refreshed %d rows in %s", len(msg.Records), msg.Elapsed.Round(time.Millisecond)), false)
		return next, cmd

	case StatusExpiredMsg:
		if msg.Seq == m.statusSeq {
			m.status, m.statusErr = "", false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	rowH := m.opts.RowHeight
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.apply(resizeTo(m.tableHeight()))
	case key.Matches(msg, m.keys.Up):
		return m.apply(pipeline.ScrollBy{Delta: -rowH})
	case key.Matches(msg, m.keys.Down):
		return m.apply(pipeline.ScrollBy{Delta: rowH})
	case key.Matches(msg, m.keys.PageUp):
		return m.apply(pipeline.ScrollBy{Delta: -m.page()})
	case key.Matches(msg, m.keys.PageDown):
		return m.apply(pipeline.ScrollBy{Delta: m.page()})
	case key.Matches(msg, m.keys.Home):
		return m.apply(pipeline.Scroll{Offset: 0})
	case key.Matches(msg, m.keys.End):
		return m.apply(pipeline.Scroll{Offset: math.Inf(1)})
	case key.Matches(msg, m.keys.Sort):
		n := int(msg.String()[0] - '1')
		cols := m.table.Columns()
		if n < 0 || n >= len(cols) {
			cmd := m.setStatus(fmt.Sprintf("no column %d", n+1), true)
			return m, cmd
		}
		return m.toggle(cols[n])
	case key.Matches(msg, m.keys.Refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.statusSeq++
		m.status, m.statusErr = "refreshing…", false
		return m, RefreshCmd(m.opts.Source, m.opts.Rows)
	case key.Matches(msg, m.keys.Rerender):
		return m.apply(pipeline.Rerender{})
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.apply(pipeline.ScrollBy{Delta: -wheelLines})
	case msg.Button == tea.MouseButtonWheelDown:
		return m.apply(pipeline.ScrollBy{Delta: wheelLines})
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if k, ok := m.headerAt(msg); ok {
			return m.toggle(k)
		}
	}
	return m, nil
}

// headerAt resolves a click to a column key: first through the marked
// zones, then from the layout when zones are off or not scanned yet.
func (m Model) headerAt(msg tea.MouseMsg) (string, bool) {
	if msg.Y != 0 {
		return "", false
	}
	if m.opts.Zones != nil {
		for _, k := range m.table.Columns() {
			if m.opts.Zones.Get(components.HeaderZoneID(k)).InBounds(msg) {
				return k, true
			}
		}
	}
	return m.view.HeaderAt(m.table.Render(), m.width, m.tableHeight(), msg.X)
}

func (m Model) toggle(key string) (Model, tea.Cmd) {
	m, cmd, err := m.applyErr(pipeline.SortToggle{Key: key})
	if err != nil {
		return m, cmd
	}
	cmd = m.setStatus("sort: "+m.table.Spec().String(), false)
	return m, cmd
}

// apply runs ev through the pipeline and reports failures on the status
// line. The pipeline keeps its previous state on error.
func (m Model) apply(ev pipeline.Event) (Model, tea.Cmd) {
	m, cmd, _ := m.applyErr(ev)
	return m, cmd
}

func (m Model) applyErr(ev pipeline.Event) (Model, tea.Cmd, error) {
	err := m.table.Apply(ev)
	if err == nil {
		return m, nil, nil
	}
	// Configuration errors are logged once by the pipeline itself.
	var cfgErr *sorting.ConfigurationError
	if !errors.As(err, &cfgErr) {
		m.logger.Error("apply event", "event", fmt.Sprintf("%T", ev), "error", err)
	}
	cmd := m.setStatus(err.Error(), true)
	return m, cmd, err
}

func (m *Model) setStatus(s string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status, m.statusErr = s, isErr
	return StatusTimeoutCmd(m.opts.StatusTimeout, m.statusSeq)
}

// Width returns the terminal width from the last resize.
func (m Model) Width() int { return m.width }

// Height returns the terminal height from the last resize.
func (m Model) Height() int { return m.height }

// Table exposes the pipeline for inspection.
func (m Model) Table() *pipeline.Pipeline[record.Record] { return m.table }

// Status returns the status line message and whether it reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }
