// Package theme holds the named color palettes used by the table view.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the table.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1a1b26"
	Foreground string
	Dim        string // footer, row numbers, placeholders
	Accent     string // cursor row, focused elements

	// Header
	HeaderFG string
	HeaderBG string
	Border   string // rule under the header

	// Alternating row backgrounds
	RowEven string
	RowOdd  string

	// Sort indicators
	SortActive   string // header of the sorted column
	SortDisabled string // header of a column whose sorting was disabled

	// Scrollbar
	ScrollTrack string
	ScrollThumb string

	// Status colors, used for the status column and the status line
	StatusOK    string
	StatusWarn  string
	StatusError string

	HelpKey  string
	HelpDesc string
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to default if not found.
func Get(name string) Theme {
	t, _ := Lookup(name)
	return t
}

// Lookup is Get with an ok flag reporting whether name was registered.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t, true
	}
	return registry["default"], false
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a theme, such as one loaded with LoadFromTOML, to the
// registry under its lowercase name. A theme with the name of a built-in
// replaces it.
func Register(t Theme) {
	thRegister(t)
}

func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// thField names one color slot of a Theme.
type thField struct {
	name string
	ptr  *string
}

// thColorFields lists every color slot of t in declaration order.
func thColorFields(t *Theme) []thField {
	return []thField{
		{"background", &t.Background},
		{"foreground", &t.Foreground},
		{"dim", &t.Dim},
		{"accent", &t.Accent},
		{"header_fg", &t.HeaderFG},
		{"header_bg", &t.HeaderBG},
		{"border", &t.Border},
		{"row_even", &t.RowEven},
		{"row_odd", &t.RowOdd},
		{"sort_active", &t.SortActive},
		{"sort_disabled", &t.SortDisabled},
		{"scroll_track", &t.ScrollTrack},
		{"scroll_thumb", &t.ScrollThumb},
		{"status_ok", &t.StatusOK},
		{"status_warn", &t.StatusWarn},
		{"status_error", &t.StatusError},
		{"help_key", &t.HelpKey},
		{"help_desc", &t.HelpDesc},
	}
}
