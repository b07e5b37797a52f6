package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles the table view draws with, built from a
// Theme for one renderer.
type Styles struct {
	Header         lipgloss.Style
	HeaderSorted   lipgloss.Style
	HeaderDisabled lipgloss.Style
	Rule           lipgloss.Style

	RowEven lipgloss.Style
	RowOdd  lipgloss.Style
	Missing lipgloss.Style

	ScrollTrack lipgloss.Style
	ScrollThumb lipgloss.Style

	StatusOK    lipgloss.Style
	StatusWarn  lipgloss.Style
	StatusError lipgloss.Style
	Accent      lipgloss.Style

	Footer   lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles builds Styles for t. A nil renderer uses lipgloss's default,
// which detects the color profile of stdout.
func NewStyles(t Theme, r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(s lipgloss.Style, c string) lipgloss.Style {
		if c == "" {
			return s
		}
		return s.Foreground(lipgloss.Color(c))
	}
	bg := func(s lipgloss.Style, c string) lipgloss.Style {
		if c == "" {
			return s
		}
		return s.Background(lipgloss.Color(c))
	}

	header := bg(fg(r.NewStyle().Bold(true), t.HeaderFG), t.HeaderBG)
	return Styles{
		Header:         header,
		HeaderSorted:   fg(header, t.SortActive).Underline(true),
		HeaderDisabled: fg(header, t.SortDisabled).Strikethrough(true),
		Rule:           fg(r.NewStyle(), t.Border),

		RowEven: bg(fg(r.NewStyle(), t.Foreground), t.RowEven),
		RowOdd:  bg(fg(r.NewStyle(), t.Foreground), t.RowOdd),
		Missing: fg(r.NewStyle(), t.Dim),

		ScrollTrack: fg(r.NewStyle(), t.ScrollTrack),
		ScrollThumb: fg(r.NewStyle(), t.ScrollThumb),

		StatusOK:    fg(r.NewStyle(), t.StatusOK),
		StatusWarn:  fg(r.NewStyle(), t.StatusWarn),
		StatusError: fg(r.NewStyle(), t.StatusError).Bold(true),
		Accent:      fg(r.NewStyle(), t.Accent),

		Footer:   fg(r.NewStyle(), t.Dim),
		HelpKey:  fg(r.NewStyle(), t.HelpKey),
		HelpDesc: fg(r.NewStyle(), t.HelpDesc),
	}
}
