package components

import (
	"gitlab.com/tinyland/lab/vtable/pkg/pipeline"
)

// minColumnWidth is the narrowest a column shrinks before it is dropped.
const minColumnWidth = 3

// ---------------------------------------------------------------------------
// Column width resolution (3-pass algorithm)
// ---------------------------------------------------------------------------

// resolveWidths sizes the columns of headers into total cells, one space
// between visible columns.
//
//  1. Every column gets its natural width: the declared width, but never
//     less than the title plus room for a sort indicator.
//  2. Slack is shared equally by the left-aligned (text) columns, or by the
//     last column when every column is right-aligned.
//  3. Overflow is cut from the right: columns shrink to minColumnWidth,
//     then drop out entirely. The first column is never dropped; it is
//     clipped to total instead.
func resolveWidths(headers []pipeline.Header, total int) []int {
	n := len(headers)
	if n == 0 {
		return nil
	}
	total = max(total, 0)

	widths := make([]int, n)
	for i, h := range headers {
		widths[i] = naturalWidth(h)
	}

	// Pass 2: share slack.
	if slack := total - usedWidth(widths); slack > 0 {
		var fill []int
		for i, h := range headers {
			if !h.AlignRight {
				fill = append(fill, i)
			}
		}
		if len(fill) == 0 {
			fill = []int{n - 1}
		}
		each, extra := slack/len(fill), slack%len(fill)
		for j, i := range fill {
			widths[i] += each
			if j < extra {
				widths[i]++
			}
		}
	}

	// Pass 3: trim overflow.
	for i := n - 1; i >= 0 && usedWidth(widths) > total; i-- {
		excess := usedWidth(widths) - total
		if spare := widths[i] - minColumnWidth; spare > 0 {
			widths[i] -= min(spare, excess)
		}
	}
	for i := n - 1; i > 0 && usedWidth(widths) > total; i-- {
		widths[i] = 0
	}
	if usedWidth(widths) > total {
		widths[0] = total
	}
	return widths
}

// naturalWidth is the width a header asks for before slack or overflow.
func naturalWidth(h pipeline.Header) int {
	return max(h.Width, VisibleLen(h.Title)+2, minColumnWidth)
}

// usedWidth is the cells the visible columns take including separators.
func usedWidth(widths []int) int {
	sum, visible := 0, 0
	for _, w := range widths {
		if w > 0 {
			sum += w
			visible++
		}
	}
	if visible > 1 {
		sum += visible - 1
	}
	return sum
}
