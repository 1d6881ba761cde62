// Package anylist exposes a safelist.List through an untyped, index based API.
//
// It is meant for callers that can't be generic, such as reflection driven tooling.
// Every value passed in is checked against the element type of the list,
// and a mismatch is reported as ErrTypeMismatch without touching the list.
package anylist

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/reflectkit"

	"go.llib.dev/safelist"
)

const ErrTypeMismatch errorkit.Error = "[anylist] value type doesn't match the element type"

type Collection interface {
	Len() int
	Get(index int) (any, error)
	Set(index int, v any) error
	// Add appends v and returns the index it was placed at.
	Add(v any) (int, error)
	Insert(index int, v any) error
	Contains(v any) (bool, error)
	// IndexOf returns the index of the first element equal to v, or -1.
	IndexOf(v any) (int, error)
	// Remove removes the first element equal to v.
	// Removing a value that is not present is not an error.
	Remove(v any) error
	RemoveAt(index int) error
	Clear()
	CopyTo(dst []any, index int) error
	Values() iter.Seq[any]
	IsFixedSize() bool
	IsReadOnly() bool
}

func New[T any](l *safelist.List[T]) *View[T] {
	return &View[T]{list: l}
}

// View is the Collection of a typed list.
// Changes made through the View and the List are visible on both.
type View[T any] struct{ list *safelist.List[T] }

var _ Collection = (*View[any])(nil)

func (v *View[T]) Len() int { return v.list.Len() }

func (v *View[T]) Get(index int) (any, error) {
	e, err := v.list.Get(index)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (v *View[T]) Set(index int, val any) error {
	e, err := v.cast(val)
	if err != nil {
		return err
	}
	return v.list.Set(index, e)
}

func (v *View[T]) Add(val any) (int, error) {
	e, err := v.cast(val)
	if err != nil {
		return -1, err
	}
	v.list.Append(e)
	return v.list.Len() - 1, nil
}

func (v *View[T]) Insert(index int, val any) error {
	e, err := v.cast(val)
	if err != nil {
		return err
	}
	return v.list.Insert(index, e)
}

func (v *View[T]) Contains(val any) (bool, error) {
	i, err := v.IndexOf(val)
	return 0 <= i, err
}

func (v *View[T]) IndexOf(val any) (int, error) {
	e, err := v.cast(val)
	if err != nil {
		return -1, err
	}
	return v.list.FindIndex(func(x T) bool {
		return reflectkit.Equal(x, e)
	}), nil
}

func (v *View[T]) Remove(val any) error {
	i, err := v.IndexOf(val)
	if err != nil || i < 0 {
		return err
	}
	return v.list.RemoveAt(i)
}

func (v *View[T]) RemoveAt(index int) error { return v.list.RemoveAt(index) }

func (v *View[T]) Clear() { v.list.Clear() }

// CopyTo copies the elements into dst, starting at index.
func (v *View[T]) CopyTo(dst []any, index int) error {
	if index < 0 {
		return safelist.ErrIndexOutOfRange.F("destination index %d", index)
	}
	if len(dst)-index < v.list.Len() {
		return safelist.ErrDestinationTooSmall.F("destination length %d, index %d, count %d",
			len(dst), index, v.list.Len())
	}
	for i, e := range v.list.ToSlice() {
		dst[index+i] = e
	}
	return nil
}

// Values iterates the list the same way List.Values does,
// so the list may be modified during the iteration.
func (v *View[T]) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for e := range v.list.Values() {
			if !yield(e) {
				return
			}
		}
	}
}

func (v *View[T]) IsFixedSize() bool { return false }

func (v *View[T]) IsReadOnly() bool { return false }

func (v *View[T]) cast(val any) (T, error) {
	var (
		zero T
		typ  = reflectkit.TypeOf[T]()
	)
	if val == nil {
		if reflectkit.IsNilable(typ.Kind()) {
			return zero, nil
		}
		return zero, ErrTypeMismatch.F("nil is not a valid %s", typ)
	}
	e, ok := val.(T)
	if !ok {
		return zero, ErrTypeMismatch.F("expected %s, got %T", typ, val)
	}
	return e, nil
}
