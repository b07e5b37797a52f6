package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme returns the dark neutral theme with purple accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7c3aed",

		HeaderFG: "#ffffff",
		HeaderBG: "#2d2d2d",
		Border:   "#3e3e3e",

		RowEven: "#1e1e1e",
		RowOdd:  "#252526",

		SortActive:   "#7c3aed",
		SortDisabled: "#e06c75",

		ScrollTrack: "#2d2d2d",
		ScrollThumb: "#7c3aed",

		StatusOK:    "#4ec970",
		StatusWarn:  "#e5c07b",
		StatusError: "#e06c75",

		HelpKey:  "#7c3aed",
		HelpDesc: "#6b6b6b",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		HeaderFG: "#fbf1c7",
		HeaderBG: "#3c3836",
		Border:   "#504945",

		RowEven: "#282828",
		RowOdd:  "#32302f",

		SortActive:   "#fe8019",
		SortDisabled: "#fb4934",

		ScrollTrack: "#3c3836",
		ScrollThumb: "#fe8019",

		StatusOK:    "#b8bb26",
		StatusWarn:  "#fabd2f",
		StatusError: "#fb4934",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// thNordTheme returns the arctic blue Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#d8dee9",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		HeaderFG: "#eceff4",
		HeaderBG: "#3b4252",
		Border:   "#434c5e",

		RowEven: "#2e3440",
		RowOdd:  "#353c4a",

		SortActive:   "#88c0d0",
		SortDisabled: "#bf616a",

		ScrollTrack: "#3b4252",
		ScrollThumb: "#81a1c1",

		StatusOK:    "#a3be8c",
		StatusWarn:  "#ebcb8b",
		StatusError: "#bf616a",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// thDraculaTheme returns the dark purple Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		HeaderFG: "#f8f8f2",
		HeaderBG: "#44475a",
		Border:   "#44475a",

		RowEven: "#282a36",
		RowOdd:  "#2f3241",

		SortActive:   "#ff79c6",
		SortDisabled: "#ff5555",

		ScrollTrack: "#44475a",
		ScrollThumb: "#bd93f9",

		StatusOK:    "#50fa7b",
		StatusWarn:  "#f1fa8c",
		StatusError: "#ff5555",

		HelpKey:  "#bd93f9",
		HelpDesc: "#6272a4",
	}
}

// thTokyoNightTheme returns the Tokyo Night theme.
func thTokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyo-night",
		Background: "#1a1b26",
		Foreground: "#c0caf5",
		Dim:        "#565f89",
		Accent:     "#7aa2f7",

		HeaderFG: "#c0caf5",
		HeaderBG: "#24283b",
		Border:   "#3b4261",

		RowEven: "#1a1b26",
		RowOdd:  "#1f2030",

		SortActive:   "#bb9af7",
		SortDisabled: "#f7768e",

		ScrollTrack: "#24283b",
		ScrollThumb: "#7aa2f7",

		StatusOK:    "#9ece6a",
		StatusWarn:  "#e0af68",
		StatusError: "#f7768e",

		HelpKey:  "#7aa2f7",
		HelpDesc: "#565f89",
	}
}
