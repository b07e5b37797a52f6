// Package sorting orders table rows by a single column. Columns are declared
// in a Registry that maps a key to an accessor-backed comparator, and a Spec
// names the active column and direction.
package sorting

import "fmt"

// Direction is the sort direction of a column.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

// String returns "none", "asc" or "desc".
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	case None:
		return "none"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Spec is the active sort. The zero value means unsorted.
type Spec struct {
	Key       string
	Direction Direction
}

// Active reports whether s orders rows at all.
func (s Spec) Active() bool {
	return s.Key != "" && s.Direction != None
}

// String formats s for status lines and logs.
func (s Spec) String() string {
	if !s.Active() {
		return "unsorted"
	}
	return s.Key + " " + s.Direction.String()
}

// next advances d one step through the toggle cycle. Columns that sort
// descending first cycle none -> desc -> asc -> none.
func next(d Direction, descFirst bool) Direction {
	first, second := Ascending, Descending
	if descFirst {
		first, second = Descending, Ascending
	}
	switch d {
	case None:
		return first
	case first:
		return second
	default:
		return None
	}
}
