// Package perf measures the table's critical paths and checks them against
// per-operation budgets. All private helpers are prefixed with "pf".
package perf

import (
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/vtable/pkg/components"
	"gitlab.com/tinyland/lab/vtable/pkg/pipeline"
	"gitlab.com/tinyland/lab/vtable/pkg/record"
	"gitlab.com/tinyland/lab/vtable/pkg/theme"
	"gitlab.com/tinyland/lab/vtable/pkg/window"
)

// Op is one named benchmark.
type Op struct {
	Name string
	Fn   func(b *testing.B)
}

// Frame dimensions used by the rendering ops.
const (
	pfWidth  = 120
	pfHeight = 40
)

// Suite returns the benchmark ops over a table of rows generated records.
// The ops share one pipeline and must run one at a time.
func Suite(rows int) ([]Op, error) {
	p, err := pfNewPipeline(rows)
	if err != nil {
		return nil, err
	}
	st := pfStyles()
	view := components.NewTableView(st)
	styled := st.HeaderSorted.Render("Profile Progress ▲") + " 世界 " + st.StatusOK.Render("relationship")

	return []Op{
		{Name: "sort_toggle", Fn: func(b *testing.B) {
			for b.Loop() {
				if err := p.Apply(pipeline.SortToggle{Key: record.KeyAge}); err != nil {
					b.Fatal(err)
				}
			}
		}},
		{Name: "window_compute", Fn: func(b *testing.B) {
			vp := window.Viewport{Height: pfHeight, RowHeight: 1, Overscan: 10}
			i := 0
			for b.Loop() {
				vp.ScrollOffset = float64(i % max(rows, 1))
				_ = window.Compute(rows, vp)
				i++
			}
		}},
		{Name: "scroll_step", Fn: func(b *testing.B) {
			for b.Loop() {
				if p.Viewport().ScrollOffset >= float64(rows-pfHeight) {
					_ = p.Apply(pipeline.Scroll{Offset: 0})
					continue
				}
				if err := p.Apply(pipeline.ScrollBy{Delta: 1}); err != nil {
					b.Fatal(err)
				}
			}
		}},
		{Name: "render_instruction", Fn: func(b *testing.B) {
			for b.Loop() {
				_ = p.Render()
			}
		}},
		{Name: "table_view_frame", Fn: func(b *testing.B) {
			ins := p.Render()
			for b.Loop() {
				_ = view.Render(ins, pfWidth, pfHeight)
			}
		}},
		{Name: "visible_len", Fn: func(b *testing.B) {
			for b.Loop() {
				_ = components.VisibleLen(styled)
			}
		}},
	}, nil
}

// Run measures every op in order with testing.Benchmark.
func Run(ops []Op) map[string]testing.BenchmarkResult {
	results := make(map[string]testing.BenchmarkResult, len(ops))
	for _, op := range ops {
		fn := op.Fn
		results[op.Name] = testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			fn(b)
		})
	}
	return results
}

// Report formats results one op per line in ops order.
func Report(w io.Writer, ops []Op, results map[string]testing.BenchmarkResult) {
	for _, op := range ops {
		r := results[op.Name]
		fmt.Fprintf(w, "%-20s %10d ns/op %10d B/op %6d allocs/op\n",
			op.Name, r.NsPerOp(), r.AllocedBytesPerOp(), r.AllocsPerOp())
	}
}

func pfNewPipeline(rows int) (*pipeline.Pipeline[record.Record], error) {
	return pipeline.New(pipeline.Config[record.Record]{
		Registry: record.Columns(),
		RowKey:   record.RowKey,
		Viewport: window.Viewport{Height: pfHeight - components.HeaderLines, RowHeight: 1, Overscan: 10},
	}, record.NewGenerator(1).Generate(rows))
}

// pfStyles renders true color so frames carry the full escape cost.
func pfStyles() theme.Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return theme.NewStyles(theme.Get("default"), r)
}
