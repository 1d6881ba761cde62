// Package datastruct holds the role interfaces of ordered containers.
// Each interface describes one capability, so consumers can depend on the smallest behaviour they need.
package datastruct

import (
	"iter"
)

type Sizer interface {
	Len() int
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Iterable[T any] interface {
	// Values iterates over the elements.
	// Each call of the returned iterator starts a new pass.
	Values() iter.Seq[T]
}

type Slicer[T any] interface {
	// ToSlice returns the contents as a newly allocated slice of T.
	ToSlice() []T
}

type List[T any] interface {
	Appendable[T]
	Iterable[T]
	Sizer
}

type ReadOnlySequence[T any] interface {
	Iterable[T]
	Sizer
	Lookup(index int) (T, bool)
}

type Sequence[T any] interface {
	List[T]
	Lookup(index int) (T, bool)
	Set(index int, val T) error
	Insert(index int, vs ...T) error
	RemoveAt(index int) error
	RemoveRange(index, count int) error
	Clear()
}

type Searchable[T any] interface {
	Exists(match func(T) bool) bool
	Find(match func(T) bool) (T, bool)
	FindIndex(match func(T) bool) int
	FindLastIndex(match func(T) bool) int
	BinarySearchFunc(target T, cmp func(T, T) int) (int, bool)
}

type Sortable[T any] interface {
	SortFunc(cmp func(a, b T) int)
	Reverse()
}

// Traversable is a container that tracks its in-progress iterations,
// so it can be modified while they run.
type Traversable[T any] interface {
	Iterable[T]
	ForEach(fn func(T))
	Traversals() int
}

// MutableTraversable is a Sequence that can be modified while it is being iterated.
type MutableTraversable[T any] interface {
	Sequence[T]
	Traversable[T]
}
