// Package pipeline composes sorting and windowing into a single state
// machine. A Pipeline owns the record collection, the active sort, the row
// order and the viewport, and re-derives what it must after every event.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"gitlab.com/tinyland/lab/vtable/pkg/sorting"
	"gitlab.com/tinyland/lab/vtable/pkg/window"
)

// Config is used to construct a Pipeline.
type Config[T any] struct {
	// Registry resolves column keys. Required.
	Registry *sorting.Registry[T]

	// Columns lists the displayed column keys in order. Empty means every
	// registry column. Keys the registry does not know are shown disabled.
	Columns []string

	// RowKey returns the stable presentation key of a record. Defaults to
	// the record's position in the collection.
	RowKey func(T) string

	Viewport window.Viewport
	Logger   *slog.Logger
}

// Stats counts derivations, mostly for tests and the debug footer.
type Stats struct {
	Sorts     int
	Windows   int
	Renders   int
	Rerenders int
}

// Pipeline is the table state. It is not safe for concurrent use; drive it
// from a single event loop.
type Pipeline[T any] struct {
	registry *sorting.Registry[T]
	columns  []string
	rowKey   func(T) string
	logger   *slog.Logger
	windower *window.Windower

	records  []T
	spec     sorting.Spec
	order    []int
	request  window.Viewport // caller geometry, only ScrollOffset is clamped
	viewport window.Viewport // sanitized copy of request
	window   window.Result
	disabled map[string]bool
	stats    Stats
}

// New returns a pipeline over records with no active sort.
func New[T any](cfg Config[T], records []T) (*Pipeline[T], error) {
	if cfg.Registry == nil {
		return nil, errors.New("pipeline: nil column registry")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cols := cfg.Columns
	if len(cols) == 0 {
		cols = cfg.Registry.Keys()
	}

	p := &Pipeline[T]{
		registry: cfg.Registry,
		columns:  slices.Clone(cols),
		rowKey:   cfg.RowKey,
		logger:   logger,
		windower: window.NewWindower(logger),
		records:  records,
		request:  cfg.Viewport,
		disabled: make(map[string]bool),
	}
	for _, key := range p.columns {
		if _, ok := p.registry.Lookup(key); !ok {
			p.disable(&sorting.ConfigurationError{Key: key})
		}
	}
	if err := p.resort(); err != nil {
		return nil, err
	}
	p.rewindow()
	return p, nil
}

// Apply runs one event through the state machine. Sorting is only redone
// when the sort or the data changed; every event re-derives the window.
// Rerender re-derives the window alone.
//
// A *sorting.ConfigurationError from a SortToggle leaves the previous state
// in place and disables sorting on that column.
func (p *Pipeline[T]) Apply(ev Event) error {
	switch e := ev.(type) {
	case SortToggle:
		if err := p.toggle(e.Key); err != nil {
			return err
		}
	case Scroll:
		p.request.ScrollOffset = e.Offset
	case ScrollBy:
		p.request.ScrollOffset += e.Delta
	case Resize:
		p.request.Height = e.Height
	case Refresh[T]:
		p.records = e.Records
		if err := p.resort(); err != nil {
			return err
		}
	case Rerender:
		p.stats.Rerenders++
	default:
		return fmt.Errorf("pipeline: unsupported event %T", ev)
	}
	p.rewindow()
	return nil
}

func (p *Pipeline[T]) toggle(key string) error {
	if p.disabled[key] {
		return &sorting.ConfigurationError{Key: key, Reason: "sorting disabled"}
	}
	spec, err := p.registry.Toggle(p.spec, key)
	if err != nil {
		p.disable(err)
		return err
	}
	prev := p.spec
	p.spec = spec
	if err := p.resort(); err != nil {
		p.spec = prev
		return err
	}
	return nil
}

// resort recomputes the order for the current records and spec.
func (p *Pipeline[T]) resort() error {
	began := time.Now()
	order, err := p.registry.Sort(p.records, p.spec)
	if err != nil {
		p.disable(err)
		return err
	}
	p.order = order
	p.stats.Sorts++
	p.logger.Debug("sorted rows",
		"rows", len(order),
		"sort", p.spec.String(),
		"elapsed", time.Since(began),
	)
	return nil
}

// rewindow derives the window from the requested geometry. Only the clamped
// scroll offset is kept, so a short collection never shrinks the overscan.
func (p *Pipeline[T]) rewindow() {
	p.window, p.viewport = p.windower.Window(len(p.order), p.request)
	p.request.ScrollOffset = p.viewport.ScrollOffset
	p.stats.Windows++
}

func (p *Pipeline[T]) disable(err error) {
	var cfgErr *sorting.ConfigurationError
	if !errors.As(err, &cfgErr) {
		return
	}
	if !p.disabled[cfgErr.Key] {
		p.logger.Error("column sorting disabled", "column", cfgErr.Key, "error", err)
	}
	p.disabled[cfgErr.Key] = true
}

// Spec returns the active sort.
func (p *Pipeline[T]) Spec() sorting.Spec { return p.spec }

// Viewport returns the sanitized viewport of the last derivation.
func (p *Pipeline[T]) Viewport() window.Viewport { return p.viewport }

// Window returns the current window.
func (p *Pipeline[T]) Window() window.Result { return p.window }

// Len returns the number of records.
func (p *Pipeline[T]) Len() int { return len(p.records) }

// Records returns the current collection. Callers must not modify it.
func (p *Pipeline[T]) Records() []T { return p.records }

// Order returns a copy of the current row order.
func (p *Pipeline[T]) Order() []int { return slices.Clone(p.order) }

// Disabled reports whether sorting on key failed with a configuration error.
func (p *Pipeline[T]) Disabled(key string) bool { return p.disabled[key] }

// Stats returns derivation counters.
func (p *Pipeline[T]) Stats() Stats { return p.stats }

// Columns returns a copy of the displayed column keys in order.
func (p *Pipeline[T]) Columns() []string { return slices.Clone(p.columns) }
