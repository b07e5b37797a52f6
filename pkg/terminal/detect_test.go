package terminal

import (
	"os"
	"testing"

	"github.com/muesli/termenv"
)

// termEnvVars lists all environment variables inspected during detection.
// Tests clear these before each case to ensure isolation.
var termEnvVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"VTE_VERSION", "LC_TERMINAL", "INSIDE_EMACS", "TMUX", "STY",
	"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT",
	"COLUMNS", "LINES",
}

// clearTermEnv unsets all terminal-related env vars for test isolation.
// t.Setenv registers the restore, Unsetenv makes the variable absent.
func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, v := range termEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// --- Terminal detection ---

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Terminal
	}{
		{"ghostty program", map[string]string{"TERM_PROGRAM": "ghostty"}, TermGhostty},
		{"ghostty term", map[string]string{"TERM": "xterm-ghostty"}, TermGhostty},
		{"kitty window id", map[string]string{"KITTY_WINDOW_ID": "1"}, TermKitty},
		{"iterm case-insensitive", map[string]string{"TERM_PROGRAM": "iTerm.app"}, TermITerm2},
		{"iterm over ssh", map[string]string{"LC_TERMINAL": "iTerm2"}, TermITerm2},
		{"alacritty term prefix", map[string]string{"TERM": "alacritty-direct"}, TermAlacritty},
		{"wezterm executable", map[string]string{"WEZTERM_EXECUTABLE": "/usr/bin/wezterm"}, TermWezTerm},
		{"vte", map[string]string{"VTE_VERSION": "7200"}, TermVTE},
		{"vscode", map[string]string{"TERM_PROGRAM": "vscode"}, TermVSCode},
		{"emacs", map[string]string{"INSIDE_EMACS": "29.1,vterm"}, TermEmacs},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-501/default,1,0"}, TermTmux},
		{"screen", map[string]string{"STY": "1.pts-0.host", "TERM": "screen-256color"}, TermScreen},
		{"emulator inside tmux wins", map[string]string{"TMUX": "x", "KITTY_WINDOW_ID": "1"}, TermKitty},
		{"nothing set", nil, TermGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalString(t *testing.T) {
	if TermVTE.String() != "vte" {
		t.Errorf("TermVTE.String() = %q", TermVTE.String())
	}
	if Terminal(99).String() != "unknown" {
		t.Errorf("out of range String() = %q", Terminal(99).String())
	}
	if Terminal(-1).String() != "unknown" {
		t.Errorf("negative String() = %q", Terminal(-1).String())
	}
}

func TestSupportFlags(t *testing.T) {
	if !TermGhostty.SupportsTrueColor() || TermScreen.SupportsTrueColor() {
		t.Error("unexpected true color support")
	}
	if !TermTmux.SupportsMouseSGR() || TermGeneric.SupportsMouseSGR() {
		t.Error("unexpected SGR mouse support")
	}
}

// --- Size ---

func TestSizeFromEnv(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")
	if got := sizeFromEnv(); got != (Size{Cols: 132, Rows: 43}) {
		t.Errorf("sizeFromEnv() = %+v", got)
	}
}

func TestSizeFromEnvFallback(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "wide")
	t.Setenv("LINES", "-4")
	if got := sizeFromEnv(); got != DefaultSize {
		t.Errorf("sizeFromEnv() = %+v, want %+v", got, DefaultSize)
	}
}

func TestGetSizeFromFdNotATerminal(t *testing.T) {
	clearTermEnv(t)
	f, err := os.CreateTemp(t.TempDir(), "size")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	t.Setenv("COLUMNS", "100")
	if got := GetSizeFromFd(f.Fd()); got.Cols != 100 || got.Rows != DefaultSize.Rows {
		t.Errorf("GetSizeFromFd(file) = %+v", got)
	}
}

// --- Capabilities ---

func TestUpgradeProfile(t *testing.T) {
	tests := []struct {
		in   termenv.Profile
		term Terminal
		want termenv.Profile
	}{
		{termenv.ANSI256, TermGhostty, termenv.TrueColor},
		{termenv.ANSI, TermVTE, termenv.TrueColor},
		{termenv.ANSI256, TermScreen, termenv.ANSI256},
		{termenv.Ascii, TermGhostty, termenv.Ascii},
		{termenv.TrueColor, TermGeneric, termenv.TrueColor},
	}
	for _, tt := range tests {
		if got := upgradeProfile(tt.in, tt.term); got != tt.want {
			t.Errorf("upgradeProfile(%v, %v) = %v, want %v", tt.in.Name(), tt.term, got.Name(), tt.want.Name())
		}
	}
}

func TestDetectCapabilitiesCaches(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM_PROGRAM", "kitty")
	ForceRefresh()

	a := DetectCapabilities()
	b := DetectCapabilities()
	if a != b {
		t.Error("DetectCapabilities did not return the cached value")
	}
	if a.Term != TermKitty || !a.Mouse {
		t.Errorf("unexpected capabilities %+v", a)
	}
}

func TestForceRefreshRedetects(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM_PROGRAM", "kitty")
	first := ForceRefresh()

	clearTermEnv(t)
	t.Setenv("STY", "1.pts-0.host")
	t.Setenv("SSH_TTY", "/dev/pts/0")
	second := ForceRefresh()

	if first.Term == second.Term {
		t.Error("ForceRefresh did not re-detect")
	}
	if !second.Mux || !second.SSH {
		t.Errorf("expected mux and ssh, got %+v", second)
	}
	if second.Mouse {
		t.Error("screen should not enable SGR mouse")
	}
}
