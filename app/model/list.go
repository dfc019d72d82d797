package model

import (
	"errors"
	"iter"
)

var ErrUnsupportedMutation = errors.New("unsupported mutation: list is read-only")

// List is the read-only sequence exposed by finalized entities. It owns a
// private copy of its items; every mutating method fails with
// ErrUnsupportedMutation and leaves the list unchanged.
type List[T any] struct {
	items []T
}

func NewList[T any](items ...T) List[T] {
	if len(items) == 0 {
		return List[T]{}
	}
	owned := make([]T, len(items))
	copy(owned, items)
	return List[T]{items: owned}
}

func (l List[T]) Len() int {
	return len(l.items)
}

func (l List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// At panics when i is out of range, like slice indexing.
func (l List[T]) At(i int) T {
	return l.items[i]
}

func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Slice returns a copy the caller may modify freely.
func (l List[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l List[T]) Append(items ...T) error {
	return ErrUnsupportedMutation
}

func (l List[T]) Set(i int, item T) error {
	return ErrUnsupportedMutation
}

func (l List[T]) Delete(i int) error {
	return ErrUnsupportedMutation
}

func (l List[T]) Clear() error {
	return ErrUnsupportedMutation
}
