// Package window computes which rows of a virtualized list must be rendered
// for a given scroll position, and how much space the unrendered rows above
// and below occupy. The functions here take plain geometry and know nothing
// about the renderer.
package window

import "math"

// Viewport is the scroll geometry of the list container. All lengths share
// one unit (pixels, terminal lines, ...).
type Viewport struct {
	ScrollOffset float64
	Height       float64
	RowHeight    float64
	Overscan     int
}

// Result is the slice of rows to render, [Start, End), and the space taken
// by the rows before and after it.
type Result struct {
	Start         int
	End           int
	PaddingTop    float64
	PaddingBottom float64
}

// Len returns the number of rows in the window.
func (r Result) Len() int {
	return r.End - r.Start
}

// Compute returns the window for rowCount uniformly sized rows. The viewport
// is sanitized first, so any input yields a valid Result:
//
//	0 <= Start <= End <= rowCount
//	PaddingTop + (End-Start)*RowHeight + PaddingBottom == rowCount*RowHeight
func Compute(rowCount int, vp Viewport) Result {
	if rowCount <= 0 {
		return Result{}
	}
	vp, _ = Sanitize(rowCount, vp)
	h := vp.RowHeight

	first := int(math.Floor(vp.ScrollOffset / h))
	last := rowCount
	if visible := math.Ceil(vp.Height / h); float64(first)+visible < float64(rowCount) {
		last = first + int(visible)
	}

	start, end := expand(first, last, vp.Overscan, rowCount)
	return Result{
		Start:         start,
		End:           end,
		PaddingTop:    float64(start) * h,
		PaddingBottom: math.Max(0, float64(rowCount-end)*h),
	}
}

// expand widens [first, last) by overscan rows on both sides and clamps the
// result to [0, n].
func expand(first, last, overscan, n int) (start, end int) {
	overscan = min(overscan, n)
	start = clampInt(first-overscan, 0, n)
	end = clampInt(last+overscan, start, n)
	return start, end
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
