// Package safelist provides List, an ordered sequence that can be modified while it is being iterated.
//
// Iterations started with Values, All, ForEach or Reader are tracked by the list.
// Adding and removing elements during these iterations is allowed, and has a well-defined outcome:
//
//   - elements inserted after the current iteration position are visited,
//     as if they were present from the start
//   - elements inserted at or before the current position are skipped
//   - elements removed at or before the current position have no effect on the iteration
//   - elements removed after the current position are not visited
//   - Clear ends every in-progress iteration
//
// Iterations may be nested, and a callback may start new iterations or mutate the list.
// The list is not safe for concurrent use by multiple goroutines.
package safelist

import (
	"context"
	"slices"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/safelist/internal/cursor"
)

// List is a mutation safe ordered sequence.
// The zero value is an empty list ready to use.
type List[T any] struct {
	items   []T
	cursors cursor.Registry
	config  Config
}

// New creates an empty list.
func New[T any](opts ...Option) *List[T] {
	c := option.ToConfig[Config](opts)
	return &List[T]{
		items:  make([]T, 0, max(c.Capacity, 0)),
		config: c,
	}
}

// From creates a list that holds a copy of the given values.
func From[T any](vs []T, opts ...Option) *List[T] {
	l := New[T](opts...)
	l.items = append(l.items, vs...)
	return l
}

func (l *List[T]) Len() int { return len(l.items) }

func (l *List[T]) Cap() int { return cap(l.items) }

// SetCap reallocates the backing store with exactly n capacity.
func (l *List[T]) SetCap(n int) error {
	if n < len(l.items) {
		return ErrCapacityTooSmall.F("capacity %d, length %d", n, len(l.items))
	}
	if n != cap(l.items) {
		l.realloc(n)
	}
	return nil
}

func (l *List[T]) realloc(capacity int) {
	items := make([]T, len(l.items), capacity)
	copy(items, l.items)
	l.items = items
}

// Grow makes sure that at least n more elements can be appended without reallocation.
func (l *List[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	l.items = slices.Grow(l.items, n)
}

// TrimExcess releases the unused capacity, when less than 90% of it is in use.
func (l *List[T]) TrimExcess() {
	if len(l.items) < cap(l.items)*9/10 {
		l.realloc(len(l.items))
	}
}

func (l *List[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(l.items) <= index {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

func (l *List[T]) Get(index int) (T, error) {
	if err := checkIndex(index, len(l.items)); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

// Set replaces the element at index.
// Positions don't shift, so in-progress iterations are not affected.
func (l *List[T]) Set(index int, v T) error {
	if err := checkIndex(index, len(l.items)); err != nil {
		return err
	}
	l.items[index] = v
	return nil
}

// Append adds the values to the end of the list.
// In-progress iterations will reach them, as they are bound by the live length of the list.
func (l *List[T]) Append(vs ...T) {
	l.items = append(l.items, vs...)
}

// Insert places the values at index, shifting the element at index and the ones after it.
// The index may equal Len.
func (l *List[T]) Insert(index int, vs ...T) error {
	if index < 0 || len(l.items) < index {
		return ErrIndexOutOfRange.F("index %d, length %d", index, len(l.items))
	}
	if len(vs) == 0 {
		return nil
	}
	l.items = slices.Insert(l.items, index, vs...)
	l.cursors.Inserted(index, len(vs))
	return nil
}

func (l *List[T]) RemoveAt(index int) error {
	if err := checkIndex(index, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, index, index+1)
	l.cursors.Removed(index)
	return nil
}

// RemoveRange removes count elements starting from index.
func (l *List[T]) RemoveRange(index, count int) error {
	if err := checkRange(index, count, len(l.items)); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	l.items = slices.Delete(l.items, index, index+count)
	l.cursors.RemovedRange(index, count)
	return nil
}

// RemoveFunc removes every element that match reports true for, and returns how many were removed.
// match must not modify the list.
func (l *List[T]) RemoveFunc(match func(T) bool) int {
	var removed []int
	for i, v := range l.items {
		if match(v) {
			removed = append(removed, i)
		}
	}
	if len(removed) == 0 {
		return 0
	}
	var w, r int
	for i, v := range l.items {
		if r < len(removed) && removed[r] == i {
			r++
			continue
		}
		l.items[w] = v
		w++
	}
	clear(l.items[w:])
	l.items = l.items[:w]
	l.cursors.RemovedIndices(removed)
	return len(removed)
}

// Clear removes every element.
// In-progress iterations are rewound as if the first element of the emptied list was already visited,
// so they end at their next step unless the list grows past one element before that.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
	l.cursors.Cleared()
}

// Traversals returns how many iterations are in progress.
func (l *List[T]) Traversals() int { return l.cursors.Active() }

// CursorSlots returns the size of the cursor registry.
// The registry keeps its slots for reuse, so this is the highest number of overlapping iterations seen so far.
func (l *List[T]) CursorSlots() int { return l.cursors.Len() }

func (l *List[T]) acquire() int {
	slot, grown := l.cursors.Acquire()
	if grown {
		l.onRegistryGrowth()
	}
	return slot
}

func (l *List[T]) onRegistryGrowth() {
	logger := l.config.Logger
	if logger == nil {
		return
	}
	var (
		ctx   = context.Background()
		slots = logging.Field("slots", l.cursors.Len())
	)
	if limit := l.config.cursorWarnLimit(); limit < l.cursors.Len() {
		logger.Warn(ctx, "safelist cursor registry is above the warn limit, iterations might be abandoned",
			slots, logging.Field("limit", limit))
		return
	}
	logger.Debug(ctx, "safelist cursor registry grew", slots)
}

func (l *List[T]) onReorder(op string) {
	logger := l.config.Logger
	if logger == nil || l.cursors.Active() == 0 {
		return
	}
	logger.Warn(context.Background(), "safelist reordered during iteration, iteration positions are kept as is",
		logging.Field("operation", op),
		logging.Field("iterations", l.cursors.Active()))
}
