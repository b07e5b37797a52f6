// Package app is the interactive vtable program: a bubbletea model that
// turns keys, mouse events and refreshed data into pipeline events and
// draws the resulting frame with the table view.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/vtable/pkg/record"
)

// RecordsRefreshedMsg carries a freshly generated collection back into the
// bubbletea update loop.
type RecordsRefreshedMsg struct {
	Records   []record.Record
	Err       error // non-nil if generation failed
	Elapsed   time.Duration
	Timestamp time.Time
}

// StatusExpiredMsg clears the status line if it still shows message Seq.
type StatusExpiredMsg struct {
	Seq int
}
