package window

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// DefaultRowHeight replaces a missing or invalid row height.
const DefaultRowHeight = 1

// GeometryError lists the viewport fields that Sanitize had to adjust. It is
// informational: the sanitized viewport is always usable.
type GeometryError struct {
	Fields []string
}

func (e *GeometryError) Error() string {
	return "window: invalid viewport geometry: " + strings.Join(e.Fields, ", ")
}

// Sanitize returns vp with every field forced into a valid range for
// rowCount rows:
//
//   - RowHeight that is not a positive finite number becomes DefaultRowHeight
//   - Height that is negative or not finite becomes 0
//   - Overscan below 0 becomes 0
//   - ScrollOffset that is NaN becomes 0, then is clamped to
//     [0, max(0, rowCount*RowHeight - Height)]
//
// The returned error is a *GeometryError when any field other than an
// out-of-range ScrollOffset was changed, or when ScrollOffset was not a
// number. Scrolling past either end is ordinary and only clamped.
func Sanitize(rowCount int, vp Viewport) (Viewport, error) {
	var bad []string
	if rowCount < 0 {
		rowCount = 0
	}

	if !(vp.RowHeight > 0) || math.IsInf(vp.RowHeight, 0) {
		bad = append(bad, fmt.Sprintf("row height %v", vp.RowHeight))
		vp.RowHeight = DefaultRowHeight
	}
	if !(vp.Height >= 0) || math.IsInf(vp.Height, 0) {
		bad = append(bad, fmt.Sprintf("height %v", vp.Height))
		vp.Height = 0
	}
	if vp.Overscan < 0 {
		bad = append(bad, fmt.Sprintf("overscan %d", vp.Overscan))
		vp.Overscan = 0
	}
	if math.IsNaN(vp.ScrollOffset) {
		bad = append(bad, "scroll offset NaN")
		vp.ScrollOffset = 0
	}
	vp.ScrollOffset = max(vp.ScrollOffset, 0)
	if limit := MaxScrollOffset(rowCount, vp); vp.ScrollOffset > limit {
		vp.ScrollOffset = limit
	}

	if len(bad) > 0 {
		return vp, &GeometryError{Fields: bad}
	}
	return vp, nil
}

// MaxScrollOffset is the largest offset at which the viewport is still
// filled by rows, or 0 when every row fits. vp.RowHeight must be valid.
func MaxScrollOffset(rowCount int, vp Viewport) float64 {
	return math.Max(0, float64(rowCount)*vp.RowHeight-vp.Height)
}

// Windower computes windows and reports geometry that needed fixing as a
// warning. It never fails.
type Windower struct {
	logger *slog.Logger
}

// NewWindower returns a Windower logging to logger. A nil logger discards.
func NewWindower(logger *slog.Logger) *Windower {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Windower{logger: logger}
}

// Window sanitizes vp, logs any adjustment and returns the window together
// with the viewport it was computed from.
func (w *Windower) Window(rowCount int, vp Viewport) (Result, Viewport) {
	fixed, err := Sanitize(rowCount, vp)
	if err != nil {
		w.logger.Warn("clamped viewport geometry", "rows", rowCount, "error", err)
	}
	return Compute(rowCount, fixed), fixed
}
