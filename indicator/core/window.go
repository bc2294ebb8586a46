package core

import "errors"

// Window is a fixed-capacity ring buffer over the last `capacity` observed
// items. Push evicts and returns the chronologically oldest element; until
// the buffer has seen `capacity` genuine items, the evicted element is the
// seed supplied at construction. It works for any element type thanks to Go
// generics.
type Window[T any] struct {
	items  []T
	cursor int
}

// NewWindow creates a Window holding the last `capacity` items, pre-filled
// with `seed` so that the very first Push already returns a well-defined
// value.
func NewWindow[T any](capacity int, seed T) (*Window[T], error) {
	if capacity < 1 {
		return nil, errors.New("window capacity must be at least 1")
	}
	items := make([]T, capacity)
	for i := range items {
		items[i] = seed
	}
	return &Window[T]{items: items}, nil
}

// Push stores `item` as the newest element and returns the evicted oldest
// one (the seed while the window is still warming up).
func (w *Window[T]) Push(item T) T {
	oldest := w.items[w.cursor]
	w.items[w.cursor] = item
	w.cursor++
	if w.cursor == len(w.items) {
		w.cursor = 0
	}
	return oldest
}

// Cap returns the configured capacity.
func (w *Window[T]) Cap() int {
	return len(w.items)
}

// Len returns the number of stored elements. A seeded window is full from
// construction, so Len always equals Cap; the accessor exists so callers can
// treat the window like any bounded container.
func (w *Window[T]) Len() int {
	return len(w.items)
}

// Newest returns the most recently pushed element (the seed before the
// first Push).
func (w *Window[T]) Newest() T {
	idx := w.cursor - 1
	if idx < 0 {
		idx = len(w.items) - 1
	}
	return w.items[idx]
}

// Oldest returns the element the next Push will evict.
func (w *Window[T]) Oldest() T {
	return w.items[w.cursor]
}

// Values returns a copy of the window contents, oldest first.
func (w *Window[T]) Values() []T {
	out := make([]T, 0, len(w.items))
	out = append(out, w.items[w.cursor:]...)
	out = append(out, w.items[:w.cursor]...)
	return out
}
