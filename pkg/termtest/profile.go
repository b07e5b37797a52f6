// Package termtest provides terminal emulator profiles, frame snapshots and
// frame validation for render tests. It is used in tests to check that
// terminal detection and table rendering hold up across emulators.
package termtest

import "gitlab.com/tinyland/lab/vtable/pkg/terminal"

// TerminalProfile describes an emulator by the environment it sets and
// what detection should conclude from it.
type TerminalProfile struct {
	Name      string            // Human-readable terminal name
	EnvVars   map[string]string // Environment vars this terminal sets
	Expect    terminal.Terminal // What terminal.Detect should report
	TrueColor bool              // Renders 24-bit color
	MouseSGR  bool              // Reports SGR mouse events
}

// DetectionEnv lists every variable terminal detection reads. Tests clear
// them before applying a profile so the host terminal does not leak in.
var DetectionEnv = []string{
	"TERM_PROGRAM", "TERM", "KITTY_WINDOW_ID", "ITERM_SESSION_ID",
	"WEZTERM_EXECUTABLE", "VTE_VERSION", "INSIDE_EMACS", "TMUX", "STY",
	"LC_TERMINAL",
}

// Profiles returns all known terminal profiles.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		ttGhosttyProfile(),
		ttKittyProfile(),
		ttITerm2Profile(),
		ttWezTermProfile(),
		ttAlacrittyProfile(),
		ttGnomeTerminalProfile(),
		ttVSCodeProfile(),
		ttAppleTerminalProfile(),
		ttTmuxProfile(),
		ttScreenProfile(),
		ttEmacsProfile(),
	}
}

// ProfileByName returns the profile matching the given name, or nil if not found.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}
