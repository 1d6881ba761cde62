// Package cursor keeps track of the read positions of in-progress traversals,
// and moves them when the underlying sequence changes shape.
//
// A position is the index of the element a traversal consumed most recently.
// While a traversal's consumer runs, the position may briefly be -1,
// when the element at index zero was removed, the next Advance brings it back to 0.
package cursor

import (
	"math"
	"slices"
)

const inactive = math.MinInt

// Registry is a pool of cursor slots.
// Slots are recycled, the pool only grows when every existing slot is in use.
//
// The zero value is an empty registry ready to use.
type Registry struct {
	slots  []int
	active int
}

// Acquire claims the first inactive slot, or grows the registry by one, and sets its position to 0.
// The returned bool reports whether the registry had to grow.
func (r *Registry) Acquire() (slot int, grown bool) {
	for i, p := range r.slots {
		if p == inactive {
			r.slots[i] = 0
			r.active++
			return i, false
		}
	}
	r.slots = append(r.slots, 0)
	r.active++
	return len(r.slots) - 1, true
}

// Release marks the slot inactive, so mutations stop adjusting it and a later Acquire may reuse it.
func (r *Registry) Release(slot int) {
	if !r.IsActive(slot) {
		return
	}
	r.slots[slot] = inactive
	r.active--
}

func (r *Registry) IsActive(slot int) bool {
	return 0 <= slot && slot < len(r.slots) && r.slots[slot] != inactive
}

// Position returns the current position of an active slot.
func (r *Registry) Position(slot int) int {
	return r.slots[slot]
}

// Advance moves an active slot forward by one.
func (r *Registry) Advance(slot int) {
	r.slots[slot]++
}

// Active returns the number of slots that are currently in use.
func (r *Registry) Active() int { return r.active }

// Len returns the size of the registry, including inactive slots.
func (r *Registry) Len() int { return len(r.slots) }

// ForEachActive replaces every active position with the result of fn.
func (r *Registry) ForEachActive(fn func(p int) int) {
	if r.active == 0 {
		return
	}
	for i, p := range r.slots {
		if p == inactive {
			continue
		}
		r.slots[i] = fn(p)
	}
}

// Inserted adjusts positions after n elements were inserted at index.
// An insertion at the consumed position counts as happening before it,
// so the traversal keeps pointing at the element it already yielded.
func (r *Registry) Inserted(index, n int) {
	if n <= 0 {
		return
	}
	r.ForEachActive(func(p int) int {
		if index <= p {
			return p + n
		}
		return p
	})
}

// Removed adjusts positions after the element at index was removed.
// Removing the consumed element steps the cursor back,
// so the element shifting into its place is not skipped.
func (r *Registry) Removed(index int) {
	r.ForEachActive(func(p int) int {
		if index <= p {
			return p - 1
		}
		return p
	})
}

// RemovedRange adjusts positions after count elements were removed starting at index.
// The result equals calling Removed(index) count times.
func (r *Registry) RemovedRange(index, count int) {
	if count <= 0 {
		return
	}
	r.ForEachActive(func(p int) int {
		if p < index {
			return p
		}
		return p - min(count, p-index+1)
	})
}

// RemovedIndices adjusts positions after the elements at the given ascending, original indices were removed.
// The result equals removing them one by one from left to right, calling Removed after each removal.
func (r *Registry) RemovedIndices(indices []int) {
	if len(indices) == 0 {
		return
	}
	r.ForEachActive(func(p int) int {
		removed, _ := slices.BinarySearch(indices, p+1)
		return p - removed
	})
}

// Cleared resets every active position to zero.
// Active slots stay active, the traversals retire themselves on their next completion check.
func (r *Registry) Cleared() {
	r.ForEachActive(func(int) int { return 0 })
}
