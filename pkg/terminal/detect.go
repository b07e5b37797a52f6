// Package terminal answers the questions the table needs about the
// terminal it runs in: how big it is, whether it is interactive at all,
// how many colors it shows and whether it reports SGR mouse events.
//
// Detection only inspects the environment and the file descriptors. It
// never writes query sequences to the terminal.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown Terminal = iota
	TermGhostty
	TermKitty
	TermWezTerm
	TermITerm2
	TermAlacritty
	TermVTE // GNOME Terminal, Tilix and other libvte terminals
	TermVSCode
	TermEmacs
	TermTmux
	TermScreen
	TermGeneric
)

var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermVTE:       "vte",
	TermVSCode:    "vscode",
	TermEmacs:     "emacs",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the terminal renders 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermVTE, TermVSCode:
		return true
	default:
		return false
	}
}

// SupportsMouseSGR reports whether the terminal reports mouse events in
// SGR (1006) encoding, which wheel scrolling and header clicks rely on
// beyond column 223.
func (t Terminal) SupportsMouseSGR() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermVTE, TermVSCode, TermTmux:
		return true
	default:
		return false
	}
}

// envProbe maps one environment signal to a terminal.
type envProbe struct {
	name  string
	match func(v string) bool
	term  Terminal
}

func equalFold(want string) func(string) bool {
	return func(v string) bool { return strings.EqualFold(v, want) }
}

func present(v string) bool { return v != "" }

// probes are checked in order; TERM_PROGRAM first since most emulators set
// it, multiplexers late so the emulator inside them wins.
var probes = []envProbe{
	{"TERM_PROGRAM", equalFold("ghostty"), TermGhostty},
	{"TERM_PROGRAM", equalFold("kitty"), TermKitty},
	{"TERM_PROGRAM", equalFold("wezterm"), TermWezTerm},
	{"TERM_PROGRAM", equalFold("iterm.app"), TermITerm2},
	{"TERM_PROGRAM", equalFold("vscode"), TermVSCode},
	{"TERM_PROGRAM", equalFold("alacritty"), TermAlacritty},
	{"TERM_PROGRAM", equalFold("tmux"), TermTmux},
	{"TERM", equalFold("xterm-ghostty"), TermGhostty},
	{"TERM", equalFold("xterm-kitty"), TermKitty},
	{"TERM", func(v string) bool { return strings.HasPrefix(v, "alacritty") }, TermAlacritty},
	{"KITTY_WINDOW_ID", present, TermKitty},
	{"ITERM_SESSION_ID", present, TermITerm2},
	{"WEZTERM_EXECUTABLE", present, TermWezTerm},
	{"VTE_VERSION", present, TermVTE},
	{"INSIDE_EMACS", present, TermEmacs},
	{"TMUX", present, TermTmux},
	{"STY", present, TermScreen},
	{"LC_TERMINAL", equalFold("iterm2"), TermITerm2},
}

// Detect identifies the terminal emulator from environment variables.
// Unrecognized environments report TermGeneric.
func Detect() Terminal {
	for _, p := range probes {
		if p.match(os.Getenv(p.name)) {
			return p.term
		}
	}
	return TermGeneric
}

// isSSH reports whether the session runs over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_CLIENT") != ""
}
