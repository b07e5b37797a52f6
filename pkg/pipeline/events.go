package pipeline

// Event is an input to Pipeline.Apply. Events are applied strictly in the
// order they are received.
type Event interface {
	event()
}

// SortToggle advances the sort cycle of the column Key.
type SortToggle struct {
	Key string
}

// Scroll moves the viewport to an absolute offset.
type Scroll struct {
	Offset float64
}

// ScrollBy moves the viewport by Delta; negative scrolls up.
type ScrollBy struct {
	Delta float64
}

// Resize changes the viewport height.
type Resize struct {
	Height float64
}

// Refresh replaces the whole record collection.
type Refresh[T any] struct {
	Records []T
}

// Rerender recomputes derived state without any input change.
type Rerender struct{}

func (SortToggle) event() {}
func (Scroll) event()     {}
func (ScrollBy) event()   {}
func (Resize) event()     {}
func (Refresh[T]) event() {}
func (Rerender) event()   {}
