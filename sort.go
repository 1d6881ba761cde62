package safelist

import (
	"cmp"
	"slices"

	"go.llib.dev/frameless/port/predicate"
)

// Comparer defines an ordering between two values.
// Compare returns a negative number when a < b, zero when they are equal, and a positive number when a > b.
type Comparer[T any] interface {
	Compare(a, b T) int
}

// CompareFunc turns a comparison function into a Comparer.
type CompareFunc[T any] func(a, b T) int

func (fn CompareFunc[T]) Compare(a, b T) int { return fn(a, b) }

// Sorting moves elements without telling in-progress iterations about it.
// An iteration that is active during a sort continues from the same index,
// so it may see some elements twice and others not at all.

// Sort sorts a list of ordered values in ascending order.
func Sort[T cmp.Ordered](l *List[T]) {
	l.onReorder("Sort")
	slices.Sort(l.items)
}

// SortComparable sorts a list whose elements know how to compare themselves.
func SortComparable[T predicate.Comparable[T]](l *List[T]) {
	l.onReorder("SortComparable")
	slices.SortFunc(l.items, func(a, b T) int {
		return a.Compare(b)
	})
}

func (l *List[T]) SortBy(c Comparer[T]) {
	l.onReorder("SortBy")
	slices.SortFunc(l.items, c.Compare)
}

func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	l.onReorder("SortFunc")
	slices.SortFunc(l.items, cmp)
}

// SortRange sorts the count elements starting at index.
func (l *List[T]) SortRange(index, count int, c Comparer[T]) error {
	if err := checkRange(index, count, len(l.items)); err != nil {
		return err
	}
	l.onReorder("SortRange")
	slices.SortFunc(l.items[index:index+count], c.Compare)
	return nil
}

func (l *List[T]) Reverse() {
	l.onReorder("Reverse")
	slices.Reverse(l.items)
}

// ReverseRange reverses the order of the count elements starting at index.
func (l *List[T]) ReverseRange(index, count int) error {
	if err := checkRange(index, count, len(l.items)); err != nil {
		return err
	}
	l.onReorder("ReverseRange")
	slices.Reverse(l.items[index : index+count])
	return nil
}
