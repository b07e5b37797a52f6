package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is the cached terminal summary for the current session.
type Capabilities struct {
	Term        Terminal
	Size        Size
	Profile     termenv.Profile // color depth lipgloss should render with
	Interactive bool            // stdin and stdout are both terminals
	Mouse       bool            // SGR mouse reporting is worth enabling
	SSH         bool
	Mux         bool // inside tmux or screen
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs detection once and caches the result. Safe
// for concurrent use.
func DetectCapabilities() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects capabilities, replacing the cached value.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce = sync.Once{}
	cached = detect()
	return cached
}

// IsInteractive reports whether both stdin and stdout are terminals,
// counting Cygwin/MSYS pseudo terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func detect() *Capabilities {
	t := Detect()
	return &Capabilities{
		Term:        t,
		Size:        GetSize(),
		Profile:     colorProfile(t),
		Interactive: IsInteractive(),
		Mouse:       t.SupportsMouseSGR(),
		SSH:         isSSH(),
		Mux:         os.Getenv("TMUX") != "" || os.Getenv("STY") != "",
	}
}

// colorProfile starts from termenv's reading of stdout and the environment
// (NO_COLOR, CLICOLOR_FORCE, COLORTERM) and upgrades to true color for
// emulators known to support it that do not advertise COLORTERM.
func colorProfile(t Terminal) termenv.Profile {
	p := termenv.EnvColorProfile()
	return upgradeProfile(p, t)
}

func upgradeProfile(p termenv.Profile, t Terminal) termenv.Profile {
	if p == termenv.Ascii {
		return p
	}
	if t.SupportsTrueColor() && p > termenv.TrueColor {
		return termenv.TrueColor
	}
	return p
}
