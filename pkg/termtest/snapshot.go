package termtest

import (
	"fmt"
	"strings"
)

// Snapshot is one rendered frame and the size it was rendered at.
type Snapshot struct {
	Name          string
	Width, Height int
	Content       string
}

// CaptureSnapshot renders a frame at width x height.
func CaptureSnapshot(name string, render func(w, h int) string, width, height int) Snapshot {
	return Snapshot{Name: name, Width: width, Height: height, Content: render(width, height)}
}

// Lines splits the frame into terminal rows. An empty frame is one empty row.
func (s Snapshot) Lines() []string {
	return strings.Split(s.Content, "\n")
}

// Diff is one row that differs between two frames. Line is 1-based; a row
// missing from either frame reads as "".
type Diff struct {
	Line             int
	Expected, Actual string
}

func (d Diff) String() string {
	return fmt.Sprintf("line %d: want %q, got %q", d.Line, d.Expected, d.Actual)
}

// CompareSnapshots returns the rows where got differs from want, or nil
// when the frames match.
func CompareSnapshots(want, got Snapshot) []Diff {
	wl, gl := want.Lines(), got.Lines()
	var diffs []Diff
	for i := range max(len(wl), len(gl)) {
		w, g := ttRow(wl, i), ttRow(gl, i)
		if w != g {
			diffs = append(diffs, Diff{Line: i + 1, Expected: w, Actual: g})
		}
	}
	return diffs
}

func ttRow(rows []string, i int) string {
	if i < len(rows) {
		return rows[i]
	}
	return ""
}
