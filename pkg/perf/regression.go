package perf

import (
	"fmt"
	"testing"
)

// Threshold defines a performance budget for a named operation. Benchmarks
// that exceed these thresholds indicate a performance regression that should
// be investigated before merging.
type Threshold struct {
	// Name identifies the operation (must match an Op name).
	Name string

	// MaxNs is the maximum allowed nanoseconds per operation. Zero disables
	// the check.
	MaxNs int64

	// MaxAlloc is the maximum allowed bytes allocated per operation. Zero
	// disables the check.
	MaxAlloc int64
}

// Violation records a threshold breach for a specific benchmark.
type Violation struct {
	// Threshold is the budget that was exceeded.
	Threshold Threshold

	// Actual is the measured value that exceeded the threshold.
	Actual int64

	// Field indicates which metric was violated: "ns" for time or "alloc"
	// for memory allocation.
	Field string
}

func (v Violation) String() string {
	limit := v.Threshold.MaxNs
	if v.Field == "alloc" {
		limit = v.Threshold.MaxAlloc
	}
	return fmt.Sprintf("%s: %d %s/op over budget %d", v.Threshold.Name, v.Actual, v.Field, limit)
}

// DefaultThresholds returns the budgets for the table's hot paths at the
// default 50 000 rows on a typical development machine.
//
//   - sort_toggle < 50ms: one stable sort of the full row order
//   - window_compute < 10us: pure arithmetic, no allocation
//   - scroll_step < 100us: window recompute after a one-line scroll
//   - render_instruction < 1ms: formats the cells of the windowed rows
//   - table_view_frame < 10ms: styles a 120x40 frame
//   - visible_len < 50us: ANSI-aware width of a styled line
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "sort_toggle", MaxNs: 50_000_000, MaxAlloc: 4_194_304},
		{Name: "window_compute", MaxNs: 10_000, MaxAlloc: 0},
		{Name: "scroll_step", MaxNs: 100_000, MaxAlloc: 8192},
		{Name: "render_instruction", MaxNs: 1_000_000, MaxAlloc: 262_144},
		{Name: "table_view_frame", MaxNs: 10_000_000, MaxAlloc: 2_097_152},
		{Name: "visible_len", MaxNs: 50_000, MaxAlloc: 2048},
	}
}

// CheckRegression compares benchmark results against thresholds and returns
// all violations found, in threshold order. A violation occurs when either
// the nanoseconds per operation exceed MaxNs or the bytes allocated per
// operation exceed MaxAlloc.
//
// Thresholds without a matching result are ignored, as are results without
// a matching threshold.
func CheckRegression(results map[string]testing.BenchmarkResult, thresholds []Threshold) []Violation {
	var violations []Violation
	for _, t := range thresholds {
		r, ok := results[t.Name]
		if !ok {
			continue
		}

		if ns := r.NsPerOp(); t.MaxNs > 0 && ns > t.MaxNs {
			violations = append(violations, Violation{Threshold: t, Actual: ns, Field: "ns"})
		}
		if alloc := r.AllocedBytesPerOp(); t.MaxAlloc > 0 && alloc > t.MaxAlloc {
			violations = append(violations, Violation{Threshold: t, Actual: alloc, Field: "alloc"})
		}
	}
	return violations
}
