package domain

import (
	"sync"

	"github.com/google/uuid"
)

// List is an ordered collection that enforces uniqueness of elements by
// entity id and is safe under concurrent read and mutation. Search is
// predicate based; there is deliberately no bulk-insert or positional-set
// surface. Filter and All return materialized snapshots, never live views.
type List[T Identified] struct {
	Entity

	mu    sync.RWMutex
	items []T
}

func NewList[T Identified](actor uuid.UUID) *List[T] {
	return &List[T]{Entity: NewEntity(actor)}
}

// Add appends item unless an element with the same id is already present.
// It reports whether the list changed.
func (l *List[T]) Add(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.items {
		if existing.ID() == item.ID() {
			return false
		}
	}
	l.items = append(l.items, item)
	l.Touch(uuid.Nil)
	return true
}

// Find returns the first element matching pred.
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the position of the first element matching pred, or -1.
func (l *List[T]) FindIndex(pred func(T) bool) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i, item := range l.items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// Filter returns a snapshot of the elements matching pred, in list order.
func (l *List[T]) Filter(pred func(T) bool) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// All returns a snapshot of every element, in list order.
func (l *List[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.items[index], nil
}

// RemoveAt removes and returns the element at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.Touch(uuid.Nil)
	return removed, nil
}

// Remove deletes the element with item's id and reports whether the list
// changed.
func (l *List[T]) Remove(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, existing := range l.items {
		if existing.ID() == item.ID() {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.Touch(uuid.Nil)
			return true
		}
	}
	return false
}

// Contains reports whether an element with the given id is present.
func (l *List[T]) Contains(id uuid.UUID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if item.ID() == id {
			return true
		}
	}
	return false
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.items) == 0 {
		return
	}
	l.items = nil
	l.Touch(uuid.Nil)
}
