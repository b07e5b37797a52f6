package sorting

import (
	"cmp"
	"fmt"
	"time"
)

// Column declares how one field of T is compared and displayed.
type Column[T any] struct {
	Key    string
	Header string

	// Width is the preferred cell width; zero lets the renderer share the
	// remaining space.
	Width      int
	AlignRight bool

	// DescFirst makes the first toggle sort descending.
	DescFirst bool

	Compare func(a, b T) int
	Format  func(T) string
}

// NewColumn builds a column from an accessor and a comparator over the
// accessed value. Format defaults to fmt's %v of the accessed value.
func NewColumn[T, V any](key, header string, accessor func(T) V, compare func(a, b V) int) Column[T] {
	return Column[T]{
		Key:     key,
		Header:  header,
		Compare: func(a, b T) int { return compare(accessor(a), accessor(b)) },
		Format:  func(r T) string { return fmt.Sprint(accessor(r)) },
	}
}

// Ordered builds a column over a cmp.Ordered value: numeric order for
// numbers, byte-wise lexicographic order for strings.
func Ordered[T any, V cmp.Ordered](key, header string, accessor func(T) V) Column[T] {
	return NewColumn(key, header, accessor, cmp.Compare[V])
}

// Chronological builds a column ordered by time.
func Chronological[T any](key, header string, accessor func(T) time.Time) Column[T] {
	return NewColumn(key, header, accessor, time.Time.Compare)
}

// Ranked builds a column over an enumerated value ordered by an explicit
// rank function rather than its string form.
func Ranked[T any, V fmt.Stringer](key, header string, accessor func(T) V, rank func(V) int) Column[T] {
	c := NewColumn(key, header, accessor, func(a, b V) int {
		return cmp.Compare(rank(a), rank(b))
	})
	c.Format = func(r T) string { return accessor(r).String() }
	return c
}

// WithWidth returns c with a preferred width.
func (c Column[T]) WithWidth(w int) Column[T] {
	c.Width = w
	return c
}

// WithFormat returns c with a custom cell formatter.
func (c Column[T]) WithFormat(f func(T) string) Column[T] {
	c.Format = f
	return c
}

// RightAligned returns c with right-aligned cells.
func (c Column[T]) RightAligned() Column[T] {
	c.AlignRight = true
	return c
}

// DescendingFirst returns c with the none -> desc -> asc cycle.
func (c Column[T]) DescendingFirst() Column[T] {
	c.DescFirst = true
	return c
}
