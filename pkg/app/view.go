package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/vtable/pkg/components"
	"gitlab.com/tinyland/lab/vtable/pkg/record"
	"gitlab.com/tinyland/lab/vtable/pkg/theme"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	out := m.frame(m.width, m.height, true)
	if m.opts.Zones != nil {
		out = m.opts.Zones.Scan(out)
	}
	return out
}

// Snapshot renders one frame of width by height cells without the help
// line, for non-interactive output. The viewport is resized to fit.
func (m Model) Snapshot(width, height int) string {
	tableH := max(height-1, 0)
	m, _ = m.apply(resizeTo(tableH))
	return m.frame(width, height, false)
}

// frame draws the table above the info line and, optionally, the help.
func (m Model) frame(width, height int, withHelp bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	footer := []string{m.infoLine(width)}
	if withHelp {
		footer = append(footer, m.help.View(m.keys))
	}
	foot := strings.Join(footer, "\n")
	tableH := max(height-lipgloss.Height(foot), 0)

	table := m.view.Render(m.table.Render(), width, tableH)
	if table == "" {
		return foot
	}
	return table + "\n" + foot
}

// infoLine is "N Rows", the sort, the render count and, right-aligned,
// the status message.
func (m Model) infoLine(width int) string {
	st := m.opts.Styles
	stats := m.table.Stats()
	left := fmt.Sprintf("%d Rows • %s • renders %d", m.table.Len(), m.table.Spec(), stats.Renders)
	left = st.Footer.Render(components.Truncate(left, width))

	if m.status == "" {
		return left
	}
	status := st.StatusOK
	if m.statusErr {
		status = st.StatusError
	}
	room := width - components.VisibleLen(left) - 2
	if room <= 0 {
		return left
	}
	msg := status.Render(components.TruncateWithTail(m.status, room, "…"))
	gap := width - components.VisibleLen(left) - components.VisibleLen(msg)
	return left + strings.Repeat(" ", max(gap, 1)) + msg
}

// Decorators colors the status column by value and draws the progress
// column as a gauge.
func Decorators(st theme.Styles) map[string]components.CellDecorator {
	return map[string]components.CellDecorator{
		record.KeyStatus: components.StyledCell(map[string]lipgloss.Style{
			record.StatusRelationship.String(): st.StatusOK,
			record.StatusComplicated.String():  st.StatusWarn,
			record.StatusSingle.String():       st.Accent,
		}, components.AlignLeft),
		record.KeyProgress: components.GaugeCell(components.GaugeStyle{
			Low:           st.StatusError,
			Mid:           st.StatusWarn,
			High:          st.StatusOK,
			WarnThreshold: 0.3,
			OKThreshold:   0.7,
		}),
	}
}

func helpStyles(st theme.Styles) help.Styles {
	return help.Styles{
		Ellipsis:       st.HelpDesc,
		ShortKey:       st.HelpKey,
		ShortDesc:      st.HelpDesc,
		ShortSeparator: st.HelpDesc,
		FullKey:        st.HelpKey,
		FullDesc:       st.HelpDesc,
		FullSeparator:  st.HelpDesc,
	}
}
