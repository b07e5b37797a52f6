package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ellipsis marks a cell that did not fit its column.
const ellipsis = "…"

// VisibleLen returns the width of s in terminal cells. Escape sequences
// take no room and wide graphemes take two.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to width cells, keeping any escape sequences before the
// cut.
func Truncate(s string, width int) string {
	return TruncateWithTail(s, width, "")
}

// TruncateWithTail cuts s to width cells with tail as the last cells when
// anything was dropped.
func TruncateWithTail(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, tail)
}

// Fit makes s exactly width cells wide: overlong text ends in an ellipsis
// and short text is padded on the side align leaves open. An odd centering
// gap puts the extra cell on the right.
func Fit(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(s) > width {
		s = TruncateWithTail(s, width, ellipsis)
	}
	gap := width - VisibleLen(s)
	if gap <= 0 {
		return s
	}
	var left int
	switch align {
	case AlignRight:
		left = gap
	case AlignCenter:
		left = gap / 2
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
