package sorting

import "slices"

// Registry is an ordered, immutable set of columns keyed by Column.Key.
type Registry[T any] struct {
	columns []Column[T]
	index   map[string]int
}

// NewRegistry validates cols and returns a registry preserving their order.
// Empty keys, duplicate keys and columns without a comparator are rejected
// with a *ConfigurationError.
func NewRegistry[T any](cols ...Column[T]) (*Registry[T], error) {
	r := &Registry[T]{
		columns: make([]Column[T], 0, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	for _, c := range cols {
		if c.Key == "" {
			return nil, &ConfigurationError{Reason: "empty key"}
		}
		if _, dup := r.index[c.Key]; dup {
			return nil, &ConfigurationError{Key: c.Key, Reason: "duplicate key"}
		}
		if c.Compare == nil {
			return nil, &ConfigurationError{Key: c.Key, Reason: "no comparator"}
		}
		if c.Header == "" {
			c.Header = c.Key
		}
		r.index[c.Key] = len(r.columns)
		r.columns = append(r.columns, c)
	}
	return r, nil
}

// MustRegistry is NewRegistry for static column tables; it panics on error.
func MustRegistry[T any](cols ...Column[T]) *Registry[T] {
	r, err := NewRegistry(cols...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the column for key.
func (r *Registry[T]) Lookup(key string) (Column[T], bool) {
	i, ok := r.index[key]
	if !ok {
		return Column[T]{}, false
	}
	return r.columns[i], true
}

// Columns returns a copy of the columns in declaration order.
func (r *Registry[T]) Columns() []Column[T] {
	return slices.Clone(r.columns)
}

// Keys returns the column keys in declaration order.
func (r *Registry[T]) Keys() []string {
	keys := make([]string, len(r.columns))
	for i, c := range r.columns {
		keys[i] = c.Key
	}
	return keys
}

// Len returns the number of columns.
func (r *Registry[T]) Len() int {
	return len(r.columns)
}

// Toggle returns the spec that results from clicking key while current is
// active. Toggling the active column advances its cycle; toggling any other
// column starts that column's cycle and drops the previous sort.
func (r *Registry[T]) Toggle(current Spec, key string) (Spec, error) {
	c, ok := r.Lookup(key)
	if !ok {
		return current, unknownColumn(key)
	}
	d := None
	if current.Key == key {
		d = current.Direction
	}
	d = next(d, c.DescFirst)
	if d == None {
		return Spec{}, nil
	}
	return Spec{Key: key, Direction: d}, nil
}

// Sort returns the row order for records under spec as a permutation of
// [0, len(records)). An inactive spec yields insertion order. The sort is
// stable in both directions: rows with equal keys keep their original
// relative order. records is not modified.
func (r *Registry[T]) Sort(records []T, spec Spec) ([]int, error) {
	var c Column[T]
	if spec.Key != "" {
		var ok bool
		if c, ok = r.Lookup(spec.Key); !ok {
			return nil, unknownColumn(spec.Key)
		}
	}

	order := Identity(len(records))
	if !spec.Active() {
		return order, nil
	}

	compare := c.Compare
	if spec.Direction == Descending {
		compare = func(a, b T) int { return c.Compare(b, a) }
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return compare(records[i], records[j])
	})
	return order, nil
}

// Identity returns [0, 1, ..., n-1].
func Identity(n int) []int {
	if n < 0 {
		n = 0
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
