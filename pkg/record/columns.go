package record

import (
	"strconv"
	"time"

	"gitlab.com/tinyland/lab/vtable/pkg/sorting"
)

// Column keys for the record table.
const (
	KeyID        = "id"
	KeyFirstName = "firstName"
	KeyLastName  = "lastName"
	KeyAge       = "age"
	KeyVisits    = "visits"
	KeyStatus    = "status"
	KeyProgress  = "progress"
	KeyCreatedAt = "createdAt"
)

// CreatedAtLayout is the display layout of the Created At column.
const CreatedAtLayout = "2006-01-02 15:04:05"

// Columns returns the column registry for Record in display order.
func Columns() *sorting.Registry[Record] {
	return sorting.MustRegistry(
		sorting.Ordered(KeyID, "ID", func(r Record) int { return r.ID }).
			WithWidth(7).RightAligned(),
		sorting.Ordered(KeyFirstName, "First Name", func(r Record) string { return r.FirstName }),
		sorting.Ordered(KeyLastName, "Last Name", func(r Record) string { return r.LastName }),
		sorting.Ordered(KeyAge, "Age", func(r Record) int { return r.Age }).
			WithWidth(5).RightAligned(),
		sorting.Ordered(KeyVisits, "Visits", func(r Record) int { return r.Visits }).
			WithWidth(8).RightAligned(),
		sorting.Ranked(KeyStatus, "Status", func(r Record) Status { return r.Status }, Status.Rank).
			WithWidth(14),
		sorting.Ordered(KeyProgress, "Profile Progress", func(r Record) int { return r.Progress }).
			WithWidth(18).RightAligned().
			WithFormat(func(r Record) string { return strconv.Itoa(r.Progress) + "%" }),
		sorting.Chronological(KeyCreatedAt, "Created At", func(r Record) time.Time { return r.CreatedAt }).
			WithWidth(21).
			WithFormat(func(r Record) string { return r.CreatedAt.Local().Format(CreatedAtLayout) }),
	)
}

// RowKey is the stable presentation key of a record.
func RowKey(r Record) string {
	return strconv.Itoa(r.ID)
}
