// Package dlist implements CircularDList, a fixed-capacity double-ended ring
// that overwrites its oldest element when full.
//
// Nodes are slots of one backing slice addressed by (head+i)%capacity, so
// "next" and "prev" are index arithmetic rather than pointers.
package dlist

import (
	"errors"
	"fmt"
	"iter"
)

// ErrEmpty is returned by operations that need at least one element.
var ErrEmpty = errors.New("the list is empty")

// CircularDList is not safe for concurrent use.
type CircularDList[T any] struct {
	items []T
	head  int
	size  int
}

// New returns an empty list. It panics if capacity < 1.
func New[T any](capacity int) *CircularDList[T] {
	if capacity < 1 {
		panic(fmt.Errorf("capacity must be positive: got %d", capacity))
	}
	return &CircularDList[T]{
		items: make([]T, capacity),
	}
}

func (l *CircularDList[T]) Len() int { return l.size }
func (l *CircularDList[T]) Cap() int { return len(l.items) }

func (l *CircularDList[T]) slot(i int) int {
	return (l.head + i) % len(l.items)
}

// PushBack appends v after the last element. If the list is full the front
// element is evicted and returned with ok == true.
func (l *CircularDList[T]) PushBack(v T) (evicted T, ok bool) {
	if l.size == len(l.items) {
		evicted, ok = l.items[l.head], true
		l.items[l.head] = v
		l.head = l.slot(1)
		return
	}
	l.items[l.slot(l.size)] = v
	l.size++
	return
}

// PushFront prepends v before the first element. If the list is full the
// back element is evicted and returned with ok == true.
func (l *CircularDList[T]) PushFront(v T) (evicted T, ok bool) {
	l.head = l.slot(len(l.items) - 1)
	if l.size == len(l.items) {
		// the new head slot is the old back slot
		evicted, ok = l.items[l.head], true
		l.items[l.head] = v
		return
	}
	l.items[l.head] = v
	l.size++
	return
}

func (l *CircularDList[T]) PopFront() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmpty
	}
	v := l.items[l.head]
	l.items[l.head] = zero
	l.head = l.slot(1)
	l.size--
	return v, nil
}

func (l *CircularDList[T]) PopBack() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmpty
	}
	idx := l.slot(l.size - 1)
	v := l.items[idx]
	l.items[idx] = zero
	l.size--
	return v, nil
}

// Peek returns the element at position index counted from the front,
// taken modulo Len, so -1 is the back and Len() is the front again.
func (l *CircularDList[T]) Peek(index int) (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.items[l.slot(l.wrap(index))], nil
}

func (l *CircularDList[T]) Front() (T, error) { return l.Peek(0) }
func (l *CircularDList[T]) Back() (T, error)  { return l.Peek(-1) }

func (l *CircularDList[T]) wrap(index int) int {
	index %= l.size
	if index < 0 {
		index += l.size
	}
	return index
}

// Forward yields the elements from front to back. Each call of the
// returned sequence restarts from the current front.
func (l *CircularDList[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(l.items[l.slot(i)]) {
				return
			}
		}
	}
}

// Backward yields the elements from back to front.
func (l *CircularDList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.size - 1; i >= 0; i-- {
			if !yield(l.items[l.slot(i)]) {
				return
			}
		}
	}
}

// Slice returns the elements from front to back in a new slice.
func (l *CircularDList[T]) Slice() []T {
	result := make([]T, 0, l.size)
	for v := range l.Forward() {
		result = append(result, v)
	}
	return result
}

// Clear removes all elements; the capacity is kept.
func (l *CircularDList[T]) Clear() {
	clear(l.items)
	l.head = 0
	l.size = 0
}
