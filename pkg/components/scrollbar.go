package components

import (
	"math"
)

// Scrollbar lays out a vertical scrollbar of height cells over content of
// total units of which viewport units are visible starting at offset. The
// result marks the cells the thumb covers. The thumb is at least one cell
// and reaches the last cell exactly when offset is at its maximum.
func Scrollbar(height int, offset, viewport, total float64) []bool {
	if height <= 0 {
		return nil
	}
	cells := make([]bool, height)
	if !(total > viewport) || !(viewport > 0) {
		for i := range cells {
			cells[i] = true
		}
		return cells
	}

	h := float64(height)
	thumb := min(max(int(math.Round(viewport/total*h)), 1), height)

	// Map the scroll range onto the free track so both ends are reachable.
	maxOffset := total - viewport
	frac := min(max(offset/maxOffset, 0), 1)
	start := int(math.Round(frac * float64(height-thumb)))

	for i := start; i < start+thumb; i++ {
		cells[i] = true
	}
	return cells
}
