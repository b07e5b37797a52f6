package app

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vtable/pkg/components"
	"gitlab.com/tinyland/lab/vtable/pkg/pipeline"
)

// footerHeight is the info line plus the help view.
func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// tableHeight is what is left for the table after the footer.
func (m Model) tableHeight() int {
	return max(m.height-m.footerHeight(), 0)
}

// bodyHeight is the number of lines rows are drawn on.
func (m Model) bodyHeight() int {
	return components.BodyHeight(m.tableHeight())
}

// page scrolls by a screenful, at least one row.
func (m Model) page() float64 {
	return max(float64(m.bodyHeight()), m.opts.RowHeight)
}

// resizeTo sizes the viewport for a table of tableHeight lines.
func resizeTo(tableHeight int) pipeline.Resize {
	return pipeline.Resize{Height: float64(components.BodyHeight(tableHeight))}
}
