package termtest

import "gitlab.com/tinyland/lab/vtable/pkg/terminal"

func ttGhosttyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Ghostty",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "ghostty",
			"TERM":         "xterm-ghostty",
			"COLORTERM":    "truecolor",
		},
		Expect:    terminal.TermGhostty,
		TrueColor: true,
		MouseSGR:  true,
	}
}

func ttKittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Kitty",
		EnvVars: map[string]string{
			"TERM":            "xterm-kitty",
			"COLORTERM":       "truecolor",
			"KITTY_WINDOW_ID": "1",
		},
		Expect:    terminal.TermKitty,
		TrueColor: true,
		MouseSGR:  true,
	}
}

// ttITerm2Profile sets TERM=xterm-256color, so only TERM_PROGRAM and the
// session id identify it.
func ttITerm2Profile() TerminalProfile {
	return TerminalProfile{
		Name: "iTerm2",
		EnvVars: map[string]string{
			"TERM_PROGRAM":     "iTerm.app",
			"TERM":             "xterm-256color",
			"ITERM_SESSION_ID": "w0t0p0:ABCDEF-1234",
		},
		Expect:    terminal.TermITerm2,
		TrueColor: true,
		MouseSGR:  true,
	}
}

func ttWezTermProfile() TerminalProfile {
	return TerminalProfile{
		Name: "WezTerm",
		EnvVars: map[string]string{
			"TERM_PROGRAM":       "WezTerm",
			"TERM":               "xterm-256color",
			"WEZTERM_EXECUTABLE": "/usr/bin/wezterm-gui",
		},
		Expect:    terminal.TermWezTerm,
		TrueColor: true,
		MouseSGR:  true,
	}
}

// ttAlacrittyProfile relies on TERM alone; Alacritty does not set
// TERM_PROGRAM.
func ttAlacrittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Alacritty",
		EnvVars: map[string]string{
			"TERM": "alacritty",
		},
		Expect:    terminal.TermAlacritty,
		TrueColor: true,
		MouseSGR:  true,
	}
}

func ttGnomeTerminalProfile() TerminalProfile {
	return TerminalProfile{
		Name: "GNOME Terminal",
		EnvVars: map[string]string{
			"TERM":        "xterm-256color",
			"VTE_VERSION": "7600",
		},
		Expect:    terminal.TermVTE,
		TrueColor: true,
		MouseSGR:  true,
	}
}

func ttVSCodeProfile() TerminalProfile {
	return TerminalProfile{
		Name: "VS Code",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "vscode",
			"TERM":         "xterm-256color",
		},
		Expect:    terminal.TermVSCode,
		TrueColor: true,
		MouseSGR:  true,
	}
}

// ttAppleTerminalProfile is 256-color and gets no special handling.
func ttAppleTerminalProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Apple Terminal",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "Apple_Terminal",
			"TERM":         "xterm-256color",
		},
		Expect: terminal.TermGeneric,
	}
}

func ttTmuxProfile() TerminalProfile {
	return TerminalProfile{
		Name: "tmux",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "tmux",
			"TERM":         "tmux-256color",
			"TMUX":         "/tmp/tmux-1000/default,1234,0",
		},
		Expect:   terminal.TermTmux,
		MouseSGR: true,
	}
}

func ttScreenProfile() TerminalProfile {
	return TerminalProfile{
		Name: "GNU Screen",
		EnvVars: map[string]string{
			"TERM": "screen",
			"STY":  "1234.pts-0.host",
		},
		Expect: terminal.TermScreen,
	}
}

func ttEmacsProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Emacs vterm",
		EnvVars: map[string]string{
			"TERM":         "xterm-256color",
			"INSIDE_EMACS": "vterm",
		},
		Expect: terminal.TermEmacs,
	}
}
