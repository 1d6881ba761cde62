package safelist

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

type traversalState int

const (
	traversalStart traversalState = iota
	traversalRunning
	traversalDone
)

// traversal is a single pass over the list.
// It claims a cursor slot on its first step, and gives it back once it reaches the end of the list or it is stopped.
type traversal[T any] struct {
	list  *List[T]
	slot  int
	state traversalState
}

func (tr *traversal[T]) next() (int, T, bool) {
	var zero T
	switch tr.state {
	case traversalStart:
		tr.slot = tr.list.acquire()
		tr.state = traversalRunning
	case traversalRunning:
		tr.list.cursors.Advance(tr.slot)
	default:
		return -1, zero, false
	}
	index := tr.list.cursors.Position(tr.slot)
	if len(tr.list.items) <= index {
		tr.stop()
		return -1, zero, false
	}
	return index, tr.list.items[index], true
}

func (tr *traversal[T]) stop() {
	if tr.state == traversalRunning {
		tr.list.cursors.Release(tr.slot)
	}
	tr.state = traversalDone
}

// Values iterates through the elements of the list.
// Every call of the returned iterator starts a new pass from the first element.
// Breaking out of the loop ends the pass.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		tr := traversal[T]{list: l}
		defer tr.stop()
		for {
			_, v, ok := tr.next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All iterates through the elements of the list, together with their index at the time they are yielded.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		tr := traversal[T]{list: l}
		defer tr.stop()
		for {
			i, v, ok := tr.next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// ForEach calls fn with every element of the list.
// fn may modify the list.
func (l *List[T]) ForEach(fn func(T)) {
	for v := range l.Values() {
		fn(v)
	}
}

// Reader returns a step-wise iterator over the list.
// The pass begins with the first Next call.
// A Reader that is neither read until the end nor closed keeps its cursor slot occupied.
func (l *List[T]) Reader() *Reader[T] {
	return &Reader[T]{tr: traversal[T]{list: l}}
}

// Reader is an externally driven iteration over a List.
type Reader[T any] struct {
	tr    traversal[T]
	index int
	value T
}

var _ iterkit.PullIter[int] = (*Reader[int])(nil)

// Next moves to the next element, and reports whether there was one.
func (r *Reader[T]) Next() bool {
	i, v, ok := r.tr.next()
	r.index, r.value = i, v
	return ok
}

// Value returns the element of the latest successful Next call.
func (r *Reader[T]) Value() T { return r.value }

// Index returns the index that Value had when it was read.
func (r *Reader[T]) Index() int { return r.index }

func (r *Reader[T]) Err() error { return nil }

// Close ends the iteration and frees its cursor slot.
func (r *Reader[T]) Close() error {
	r.tr.stop()
	var zero T
	r.index, r.value = -1, zero
	return nil
}
