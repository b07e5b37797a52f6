package theme

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Adapt snaps every color in t to the nearest color the profile can show.
// TrueColor leaves the theme unchanged. Ascii clears every color so styles
// render as plain text.
func Adapt(t Theme, profile termenv.Profile) Theme {
	if profile == termenv.TrueColor {
		return t
	}
	for _, f := range thColorFields(&t) {
		*f.ptr = thConvert(*f.ptr, profile)
	}
	return t
}

// thConvert maps one hex color through the profile. Both ANSI and ANSI256
// colors stringify back to the hex value of their palette entry. Values
// that are not hex pass through unchanged.
func thConvert(hex string, profile termenv.Profile) string {
	if !thHexColorRegex.MatchString(hex) {
		return hex
	}
	if s, ok := profile.Convert(termenv.RGBColor(hex)).(fmt.Stringer); ok {
		return s.String()
	}
	return hex
}
