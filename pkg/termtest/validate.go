package termtest

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// ValidateFrame checks that frame has exactly height lines and that no
// line is wider than width visible cells. Escape sequences do not count.
func ValidateFrame(frame string, width, height int) error {
	return ttValidate(frame, width, height, false)
}

// ValidateBlock is ValidateFrame with every line exactly width cells wide,
// the shape of a fully padded table.
func ValidateBlock(frame string, width, height int) error {
	return ttValidate(frame, width, height, true)
}

func ttValidate(frame string, width, height int, exact bool) error {
	lines := Snapshot{Content: frame}.Lines()
	var errs []error
	if len(lines) != height {
		errs = append(errs, fmt.Errorf("frame has %d lines, want %d", len(lines), height))
	}
	for i, l := range lines {
		w := ansi.StringWidth(l)
		switch {
		case w > width:
			errs = append(errs, fmt.Errorf("line %d is %d cells wide, max %d", i+1, w, width))
		case exact && w != width:
			errs = append(errs, fmt.Errorf("line %d is %d cells wide, want %d", i+1, w, width))
		}
	}
	return errors.Join(errs...)
}
