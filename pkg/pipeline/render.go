package pipeline

import (
	"strconv"

	"gitlab.com/tinyland/lab/vtable/pkg/sorting"
	"gitlab.com/tinyland/lab/vtable/pkg/window"
)

// Header describes one column header.
type Header struct {
	Key        string
	Title      string
	Width      int
	AlignRight bool
	Direction  sorting.Direction
	Disabled   bool
}

// Row is one rendered row. Index is the position in the record collection,
// Position the position in the sorted order.
type Row struct {
	Key      string
	Index    int
	Position int
	Cells    []string
}

// Instruction is everything a presentation layer needs to draw one frame:
// the headers, the rows of the window in sorted order, and the space the
// unrendered rows above and below take up.
type Instruction struct {
	Headers       []Header
	Rows          []Row
	PaddingTop    float64
	PaddingBottom float64

	Total    int
	Window   window.Result
	Viewport window.Viewport
	Sort     sorting.Spec
}

// MissingCell is shown in columns whose key is unknown.
const MissingCell = "—"

// Render builds the instruction for the current state. The returned slices
// are freshly allocated on every call.
func (p *Pipeline[T]) Render() Instruction {
	p.stats.Renders++

	headers := make([]Header, len(p.columns))
	cols := make([]sorting.Column[T], len(p.columns))
	known := make([]bool, len(p.columns))
	for i, key := range p.columns {
		h := Header{Key: key, Title: key, Disabled: p.disabled[key]}
		if c, ok := p.registry.Lookup(key); ok {
			cols[i], known[i] = c, true
			h.Title = c.Header
			h.Width = c.Width
			h.AlignRight = c.AlignRight
			if p.spec.Active() && p.spec.Key == key {
				h.Direction = p.spec.Direction
			}
		}
		headers[i] = h
	}

	// The window is always derived after the order, but clamp anyway so a
	// stale window can never index past a shrunken collection.
	end := min(p.window.End, len(p.order))
	start := min(p.window.Start, end)

	rows := make([]Row, 0, end-start)
	for pos := start; pos < end; pos++ {
		idx := p.order[pos]
		if idx < 0 || idx >= len(p.records) {
			continue
		}
		rec := p.records[idx]
		cells := make([]string, len(cols))
		for i, c := range cols {
			switch {
			case !known[i]:
				cells[i] = MissingCell
			case c.Format != nil:
				cells[i] = c.Format(rec)
			}
		}
		rows = append(rows, Row{
			Key:      p.key(rec, idx),
			Index:    idx,
			Position: pos,
			Cells:    cells,
		})
	}

	return Instruction{
		Headers:       headers,
		Rows:          rows,
		PaddingTop:    p.window.PaddingTop,
		PaddingBottom: p.window.PaddingBottom,
		Total:         len(p.order),
		Window:        p.window,
		Viewport:      p.viewport,
		Sort:          p.spec,
	}
}

func (p *Pipeline[T]) key(rec T, idx int) string {
	if p.rowKey != nil {
		return p.rowKey(rec)
	}
	return strconv.Itoa(idx)
}
