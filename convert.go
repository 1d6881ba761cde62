package safelist

import "iter"

// ToSlice returns a copy of the elements.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Clone returns an independent list with the same elements and configuration.
// The clone has no in-progress iterations.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		items:  l.ToSlice(),
		config: l.config,
	}
}

// Slice returns a copy of the count elements starting at index.
func (l *List[T]) Slice(index, count int) ([]T, error) {
	if err := checkRange(index, count, len(l.items)); err != nil {
		return nil, err
	}
	out := make([]T, count)
	copy(out, l.items[index:index+count])
	return out, nil
}

// CopyTo copies every element into dst, starting at dstIndex.
func (l *List[T]) CopyTo(dst []T, dstIndex int) error {
	return l.CopyRangeTo(0, dst, dstIndex, len(l.items))
}

// CopyRangeTo copies count elements, starting at index, into dst from dstIndex onwards.
// Nothing is copied when dst can't hold every element.
func (l *List[T]) CopyRangeTo(index int, dst []T, dstIndex, count int) error {
	if err := checkRange(index, count, len(l.items)); err != nil {
		return err
	}
	if dstIndex < 0 {
		return ErrIndexOutOfRange.F("destination index %d", dstIndex)
	}
	if len(dst)-dstIndex < count {
		return ErrDestinationTooSmall.F("destination length %d, index %d, count %d", len(dst), dstIndex, count)
	}
	copy(dst[dstIndex:], l.items[index:index+count])
	return nil
}

// Map creates a new list by converting every element of l with fn.
func Map[O, T any](l *List[T], fn func(T) O) *List[O] {
	out := &List[O]{
		items:  make([]O, 0, len(l.items)),
		config: l.config,
	}
	for _, v := range l.items {
		out.items = append(out.items, fn(v))
	}
	return out
}

// ReadOnly returns a view of the list which can't modify it.
func (l *List[T]) ReadOnly() ReadOnly[T] {
	return ReadOnly[T]{list: l}
}

// ReadOnly is a read-only view of a List.
// It reflects the changes made through the List.
type ReadOnly[T any] struct{ list *List[T] }

func (ro ReadOnly[T]) Len() int { return ro.list.Len() }

func (ro ReadOnly[T]) Lookup(index int) (T, bool) { return ro.list.Lookup(index) }

func (ro ReadOnly[T]) Values() iter.Seq[T] { return ro.list.Values() }

func (ro ReadOnly[T]) ToSlice() []T { return ro.list.ToSlice() }
