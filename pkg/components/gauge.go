package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block characters for sub-cell precision (8 levels per cell).
var gaugeBlocks = [9]rune{
	' ',      // 0/8 empty
	'\u258F', // 1/8 ▏
	'\u258E', // 2/8 ▎
	'\u258D', // 3/8 ▍
	'\u258C', // 4/8 ▌
	'\u258B', // 5/8 ▋
	'\u258A', // 6/8 ▊
	'\u2589', // 7/8 ▉
	'\u2588', // 8/8 █
}

// CellDecorator renders one formatted cell into exactly width cells. base
// carries the row background; decorators layer their own styling on it.
type CellDecorator func(cell string, width int, base lipgloss.Style) string

// GaugeStyle configures the progress gauge decorator.
type GaugeStyle struct {
	Low, Mid, High lipgloss.Style // fill colors below Warn, below OK, and above

	WarnThreshold float64 // ratio where Low turns into Mid
	OKThreshold   float64 // ratio where Mid turns into High
}

// gaugeLabelWidth fits " 100%".
const gaugeLabelWidth = 5

// GaugeCell decorates percentage cells such as "55%" with a bar that fills
// with sub-cell precision, keeping the percentage as a label. Cells that do
// not parse, and cells too narrow for a bar, render as plain text.
func GaugeCell(style GaugeStyle) CellDecorator {
	return func(cell string, width int, base lipgloss.Style) string {
		pct, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(cell), "%"))
		barWidth := width - gaugeLabelWidth
		if err != nil || !strings.HasSuffix(cell, "%") || barWidth < 2 {
			return base.Render(Fit(cell, width, AlignRight))
		}
		ratio := min(max(float64(pct)/100, 0), 1)

		fill := style.Low
		switch {
		case ratio >= style.OKThreshold:
			fill = style.High
		case ratio >= style.WarnThreshold:
			fill = style.Mid
		}

		label := fmt.Sprintf("%*s", gaugeLabelWidth, cell)
		return fill.Inherit(base).Render(gaugeRenderBar(ratio, barWidth)) + base.Render(label)
	}
}

// gaugeRenderBar builds a bar of width cells filled to ratio.
func gaugeRenderBar(ratio float64, width int) string {
	totalUnits := width * 8
	filledUnits := min(max(int(math.Round(ratio*float64(totalUnits))), 0), totalUnits)

	fullCells := filledUnits / 8
	partialEighths := filledUnits % 8
	emptyCells := width - fullCells
	if partialEighths > 0 {
		emptyCells--
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(string(gaugeBlocks[8]), fullCells))
	if partialEighths > 0 {
		b.WriteRune(gaugeBlocks[partialEighths])
	}
	b.WriteString(strings.Repeat(" ", max(emptyCells, 0)))
	return b.String()
}

// StyledCell decorates cells whose text has an entry in styles, such as
// enumerated status values. Other cells render with the row style.
func StyledCell(styles map[string]lipgloss.Style, align Align) CellDecorator {
	return func(cell string, width int, base lipgloss.Style) string {
		if s, ok := styles[cell]; ok {
			return s.Inherit(base).Render(Fit(cell, width, align))
		}
		return base.Render(Fit(cell, width, align))
	}
}
