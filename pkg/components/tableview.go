package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vtable/pkg/pipeline"
	"gitlab.com/tinyland/lab/vtable/pkg/sorting"
	"gitlab.com/tinyland/lab/vtable/pkg/theme"
	"gitlab.com/tinyland/lab/vtable/pkg/window"
)

// HeaderLines is the number of lines above the rows: titles and a rule.
const HeaderLines = 2

// Sort indicators appended to header titles.
const (
	IndicatorAscending  = "▲"
	IndicatorDescending = "▼"
	IndicatorDisabled   = "⊘"
)

// emptyMessage fills the first body line of a table with no rows.
const emptyMessage = "(no rows)"

// TableView draws a pipeline.Instruction: a header line, a rule, the rows
// intersecting the viewport and a scrollbar on the right edge. It holds no
// row data; every frame is drawn from the instruction alone.
type TableView struct {
	Styles theme.Styles

	// Decorators render cells of the keyed columns.
	Decorators map[string]CellDecorator

	// Mark, when set, wraps each rendered header cell. It receives
	// HeaderZoneID(key) so clicks can be mapped back to a column.
	Mark func(id, s string) string

	Scrollbar bool
}

// NewTableView returns a view drawing with st and a scrollbar.
func NewTableView(st theme.Styles) *TableView {
	return &TableView{Styles: st, Scrollbar: true}
}

// HeaderZoneID names the clickable zone of a column header.
func HeaderZoneID(key string) string {
	return "vtable-header-" + key
}

// BodyHeight is the number of row lines in a frame of height lines.
func BodyHeight(height int) int {
	return max(height-HeaderLines, 0)
}

// Render draws ins into exactly height lines of width cells. Output is
// empty when either dimension is not positive.
func (v *TableView) Render(ins pipeline.Instruction, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bodyH := BodyHeight(height)
	rowH := rowHeight(ins.Viewport)
	content := contentHeight(ins, rowH)

	bar := v.Scrollbar && width > 1 && bodyH > 0 && content > float64(bodyH)
	inner := width
	if bar {
		inner--
	}
	widths := resolveWidths(ins.Headers, inner)

	lines := make([]string, 0, height)
	header := v.renderHeader(ins.Headers, widths, inner)
	rule := v.Styles.Rule.Render(strings.Repeat("─", inner))
	if bar {
		header += v.Styles.Header.Render(" ")
		rule += v.Styles.Rule.Render("─")
	}
	lines = append(lines, header, rule)

	body := v.renderBody(ins, widths, inner, bodyH, rowH)
	var thumb []bool
	if bar {
		thumb = Scrollbar(bodyH, ins.Viewport.ScrollOffset, float64(bodyH), content)
	}
	for i, line := range body {
		if bar {
			if thumb[i] {
				line += v.Styles.ScrollThumb.Render("┃")
			} else {
				line += v.Styles.ScrollTrack.Render("│")
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines[:height], "\n")
}

// HeaderAt returns the key of the column whose header spans cell x of a
// frame width cells wide. It mirrors the layout Render produces.
func (v *TableView) HeaderAt(ins pipeline.Instruction, width, height, x int) (string, bool) {
	if x < 0 || width <= 0 {
		return "", false
	}
	inner := width
	if v.Scrollbar && width > 1 && BodyHeight(height) > 0 &&
		contentHeight(ins, rowHeight(ins.Viewport)) > float64(BodyHeight(height)) {
		inner--
	}
	widths := resolveWidths(ins.Headers, inner)
	pos := 0
	for i, w := range widths {
		if w == 0 {
			continue
		}
		if pos > 0 {
			pos++ // separator
		}
		if x >= pos && x < pos+w {
			return ins.Headers[i].Key, true
		}
		pos += w
	}
	return "", false
}

// SortIndicator is the marker shown after a header title.
func SortIndicator(h pipeline.Header) string {
	switch {
	case h.Disabled:
		return IndicatorDisabled
	case h.Direction == sorting.Ascending:
		return IndicatorAscending
	case h.Direction == sorting.Descending:
		return IndicatorDescending
	default:
		return ""
	}
}

// ---------------------------------------------------------------------------
// Internal rendering helpers
// ---------------------------------------------------------------------------

func (v *TableView) renderHeader(headers []pipeline.Header, widths []int, inner int) string {
	var b strings.Builder
	used := 0
	for i, h := range headers {
		w := widths[i]
		if w == 0 {
			continue
		}
		if used > 0 {
			b.WriteString(v.Styles.Header.Render(" "))
			used++
		}

		style := v.Styles.Header
		switch {
		case h.Disabled:
			style = v.Styles.HeaderDisabled
		case h.Direction != sorting.None:
			style = v.Styles.HeaderSorted
		}
		cell := style.Render(headerLabel(h, w))
		if v.Mark != nil {
			cell = v.Mark(HeaderZoneID(h.Key), cell)
		}
		b.WriteString(cell)
		used += w
	}
	if used < inner {
		b.WriteString(v.Styles.Header.Render(strings.Repeat(" ", inner-used)))
	}
	return b.String()
}

// headerLabel fits the title and its indicator into w cells, truncating
// the title rather than the indicator.
func headerLabel(h pipeline.Header, w int) string {
	align := AlignLeft
	if h.AlignRight {
		align = AlignRight
	}
	ind := SortIndicator(h)
	if ind == "" || w < 3 {
		return Fit(h.Title, w, align)
	}
	title := h.Title
	if VisibleLen(title) > w-2 {
		title = TruncateWithTail(title, w-2, "…")
	}
	return Fit(title+" "+ind, w, align)
}

func (v *TableView) renderBody(ins pipeline.Instruction, widths []int, inner, bodyH int, rowH float64) []string {
	out := make([]string, bodyH)
	blank := strings.Repeat(" ", inner)
	if bodyH == 0 {
		return out
	}
	if ins.Total == 0 {
		out[0] = v.Styles.Missing.Render(Fit(emptyMessage, inner, AlignCenter))
		for i := 1; i < bodyH; i++ {
			out[i] = blank
		}
		return out
	}

	byPos := make(map[int]pipeline.Row, len(ins.Rows))
	for _, r := range ins.Rows {
		byPos[r.Position] = r
	}

	top := math.Floor(ins.Viewport.ScrollOffset)
	for i := range out {
		y := top + float64(i)
		pos := int(math.Floor(y / rowH))
		row, ok := byPos[pos]
		if !ok {
			out[i] = blank
			continue
		}
		base := v.Styles.RowEven
		if pos%2 == 1 {
			base = v.Styles.RowOdd
		}
		if y-float64(pos)*rowH >= 1 {
			// Continuation line of a row taller than one line.
			out[i] = base.Render(blank)
			continue
		}
		out[i] = v.renderRow(row, ins.Headers, widths, inner, base)
	}
	return out
}

func (v *TableView) renderRow(row pipeline.Row, headers []pipeline.Header, widths []int, inner int, base lipgloss.Style) string {
	var b strings.Builder
	used := 0
	for i, h := range headers {
		w := widths[i]
		if w == 0 {
			continue
		}
		if used > 0 {
			b.WriteString(base.Render(" "))
			used++
		}
		cell := ""
		if i < len(row.Cells) {
			cell = row.Cells[i]
		}
		align := AlignLeft
		if h.AlignRight {
			align = AlignRight
		}

		switch d := v.Decorators[h.Key]; {
		case cell == pipeline.MissingCell:
			b.WriteString(v.Styles.Missing.Inherit(base).Render(Fit(cell, w, AlignCenter)))
		case d != nil:
			b.WriteString(d(cell, w, base))
		default:
			b.WriteString(base.Render(Fit(cell, w, align)))
		}
		used += w
	}
	if used < inner {
		b.WriteString(base.Render(strings.Repeat(" ", inner-used)))
	}
	return b.String()
}

func rowHeight(vp window.Viewport) float64 {
	if h := vp.RowHeight; h > 0 && !math.IsInf(h, 0) {
		return h
	}
	return window.DefaultRowHeight
}

// contentHeight is the full scrollable height, recovered from the paddings
// around the rendered rows.
func contentHeight(ins pipeline.Instruction, rowH float64) float64 {
	return ins.PaddingTop + float64(ins.Window.Len())*rowH + ins.PaddingBottom
}
