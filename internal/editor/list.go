// Package editor implements the administrator list editors for questions
// and videos. Editors own a private copy of their records; nothing is
// visible to the caller until Save.
package editor

import "errors"

var (
	ErrIndexOutOfRange = errors.New("editor: index out of range")
	ErrUnknownField    = errors.New("editor: unknown field")
	ErrUnsupportedType = errors.New("editor: unsupported question type")
)

// List is an ordered, index-addressed sequence of records
type List[T any] struct {
	items []T
	clone func(T) T
}

// NewList copies items into a new list. clone may be nil for value types.
func NewList[T any](items []T, clone func(T) T) *List[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	l := &List[T]{clone: clone, items: make([]T, 0, len(items))}
	for _, it := range items {
		l.items = append(l.items, clone(it))
	}
	return l
}

func (l *List[T]) Len() int { return len(l.items) }

func (l *List[T]) valid(i int) bool { return i >= 0 && i < len(l.items) }

// Get returns a copy of the record at i
func (l *List[T]) Get(i int) (T, bool) {
	if !l.valid(i) {
		var zero T
		return zero, false
	}
	return l.clone(l.items[i]), true
}

// Items returns a copy of every record in order
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	for i, it := range l.items {
		out[i] = l.clone(it)
	}
	return out
}

// Append adds item at the end and returns its index
func (l *List[T]) Append(item T) int {
	l.items = append(l.items, item)
	return len(l.items) - 1
}

// Update mutates the record at i in place
func (l *List[T]) Update(i int, fn func(*T) error) error {
	if !l.valid(i) {
		return ErrIndexOutOfRange
	}
	return fn(&l.items[i])
}

// Remove deletes the record at i, shifting later records down
func (l *List[T]) Remove(i int) error {
	out, err := removeAt(l.items, i)
	if err != nil {
		return err
	}
	l.items = out
	return nil
}

// Move relocates the record at from to position to, keeping the relative
// order of every other record.
func (l *List[T]) Move(from, to int) error {
	return moveItem(l.items, from, to)
}

func removeAt[T any](s []T, i int) ([]T, error) {
	if i < 0 || i >= len(s) {
		return s, ErrIndexOutOfRange
	}
	return append(s[:i:i], s[i+1:]...), nil
}

func moveItem[T any](s []T, from, to int) error {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	item := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = item
	return nil
}
