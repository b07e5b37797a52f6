package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/vtable/pkg/record"
)

// StatusTimeoutCmd returns a Cmd that sends a StatusExpiredMsg for seq
// after d. A non-positive d keeps the status until it is replaced.
func StatusTimeoutCmd(d time.Duration, seq int) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StatusExpiredMsg{Seq: seq}
	})
}

// RefreshCmd returns a Cmd that generates count records from src off the
// update loop and delivers them as a RecordsRefreshedMsg. A panicking
// source is reported through Err.
func RefreshCmd(src record.Source, count int) tea.Cmd {
	return func() (msg tea.Msg) {
		began := time.Now()
		defer func() {
			if r := recover(); r != nil {
				msg = RecordsRefreshedMsg{
					Err:       fmt.Errorf("app: generate records: %v", r),
					Elapsed:   time.Since(began),
					Timestamp: time.Now(),
				}
			}
		}()
		recs := src.Generate(count)
		return RecordsRefreshedMsg{
			Records:   recs,
			Elapsed:   time.Since(began),
			Timestamp: time.Now(),
		}
	}
}
