// Package components draws the virtualized table: ANSI-aware text
// primitives, column width resolution, the scrollbar, cell decorators and
// the TableView that turns a pipeline.Instruction into terminal lines.
package components

// Align controls horizontal text alignment within a cell.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)
