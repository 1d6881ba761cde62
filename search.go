package safelist

import (
	"cmp"
	"slices"
)

func (l *List[T]) Exists(match func(T) bool) bool {
	return slices.ContainsFunc(l.items, match)
}

// TrueForAll reports whether every element matches.
// An empty list reports true.
func (l *List[T]) TrueForAll(match func(T) bool) bool {
	for _, v := range l.items {
		if !match(v) {
			return false
		}
	}
	return true
}

// Find returns the first matching element.
func (l *List[T]) Find(match func(T) bool) (T, bool) {
	if i := slices.IndexFunc(l.items, match); 0 <= i {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// FindLast returns the last matching element.
func (l *List[T]) FindLast(match func(T) bool) (T, bool) {
	if i := l.FindLastIndex(match); 0 <= i {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// FindAll returns every matching element in their order.
func (l *List[T]) FindAll(match func(T) bool) []T {
	var out []T
	for _, v := range l.items {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}

// FindIndex returns the index of the first matching element, or -1.
func (l *List[T]) FindIndex(match func(T) bool) int {
	return slices.IndexFunc(l.items, match)
}

// FindIndexIn looks for the first matching element within the count elements starting at start.
func (l *List[T]) FindIndexIn(start, count int, match func(T) bool) (int, error) {
	if err := checkRange(start, count, len(l.items)); err != nil {
		return -1, err
	}
	if i := slices.IndexFunc(l.items[start:start+count], match); 0 <= i {
		return start + i, nil
	}
	return -1, nil
}

// FindLastIndex returns the index of the last matching element, or -1.
func (l *List[T]) FindLastIndex(match func(T) bool) int {
	for i := len(l.items) - 1; 0 <= i; i-- {
		if match(l.items[i]) {
			return i
		}
	}
	return -1
}

// FindLastIndexIn looks backwards for a matching element within the count elements starting at start.
func (l *List[T]) FindLastIndexIn(start, count int, match func(T) bool) (int, error) {
	if err := checkRange(start, count, len(l.items)); err != nil {
		return -1, err
	}
	for i := start + count - 1; start <= i; i-- {
		if match(l.items[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// BinarySearchFunc searches a list that is sorted by cmp.
// It returns the position where target is found, or where it would be inserted,
// and whether it was found.
func (l *List[T]) BinarySearchFunc(target T, cmp func(T, T) int) (int, bool) {
	return slices.BinarySearchFunc(l.items, target, cmp)
}

// BinarySearchBy searches a list that is sorted with the comparer.
func (l *List[T]) BinarySearchBy(target T, c Comparer[T]) (int, bool) {
	return slices.BinarySearchFunc(l.items, target, c.Compare)
}

// BinarySearchIn searches the count elements starting at index, which must be sorted by cmp.
// The returned position is relative to the whole list.
func (l *List[T]) BinarySearchIn(index, count int, target T, cmp func(T, T) int) (int, bool, error) {
	if err := checkRange(index, count, len(l.items)); err != nil {
		return -1, false, err
	}
	i, ok := slices.BinarySearchFunc(l.items[index:index+count], target, cmp)
	return index + i, ok, nil
}

// BinarySearch searches a list of ordered values, sorted in ascending order.
func BinarySearch[T cmp.Ordered](l *List[T], target T) (int, bool) {
	return slices.BinarySearch(l.items, target)
}

func Contains[T comparable](l *List[T], v T) bool {
	return slices.Contains(l.items, v)
}

// IndexOf returns the index of the first occurrence of v, or -1.
func IndexOf[T comparable](l *List[T], v T) int {
	return slices.Index(l.items, v)
}

// IndexOfIn looks for the first occurrence of v within the count elements starting at start.
func IndexOfIn[T comparable](l *List[T], v T, start, count int) (int, error) {
	return l.FindIndexIn(start, count, func(e T) bool { return e == v })
}

// LastIndexOf returns the index of the last occurrence of v, or -1.
func LastIndexOf[T comparable](l *List[T], v T) int {
	return l.FindLastIndex(func(e T) bool { return e == v })
}

// Remove removes the first occurrence of v, and reports whether it was found.
func Remove[T comparable](l *List[T], v T) bool {
	i := slices.Index(l.items, v)
	if i < 0 {
		return false
	}
	return l.RemoveAt(i) == nil
}
