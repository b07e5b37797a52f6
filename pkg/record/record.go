// Package record defines the person records shown by vtable and the
// synthetic data source that produces them.
package record

import (
	"fmt"
	"time"
)

// Status is the relationship status of a person. Its ordering is defined by
// Rank, not by the display string.
type Status int

const (
	StatusRelationship Status = iota
	StatusComplicated
	StatusSingle
)

// statusRank is the declared total order used when sorting by status.
var statusRank = map[Status]int{
	StatusRelationship: 0,
	StatusComplicated:  1,
	StatusSingle:       2,
}

var statusNames = map[Status]string{
	StatusRelationship: "relationship",
	StatusComplicated:  "complicated",
	StatusSingle:       "single",
}

// Rank returns the position of s in the status order. Unknown values sort
// after every known status.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return len(statusRank)
}

// String returns the display name of s.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Record is one row of the dataset. Records are never mutated after
// generation; a refresh replaces the whole collection.
type Record struct {
	ID        int
	FirstName string
	LastName  string
	Age       int
	Visits    int
	Progress  int // percent, 0..99
	Status    Status
	CreatedAt time.Time
}
