package safelist

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrIndexOutOfRange is returned when an index or a count falls outside the current bounds of the list.
	ErrIndexOutOfRange errorkit.Error = "[safelist] index out of range"
	// ErrInvalidRange is returned when an index and count pair does not denote a valid range of the list.
	ErrInvalidRange errorkit.Error = "[safelist] invalid range"
	// ErrCapacityTooSmall is returned when the requested capacity can't hold the current elements.
	ErrCapacityTooSmall errorkit.Error = "[safelist] capacity is smaller than the length"
	// ErrDestinationTooSmall is returned when a copy destination has not enough room for the copied elements.
	ErrDestinationTooSmall errorkit.Error = "[safelist] destination is too small"
)

func checkIndex(index, length int) error {
	if index < 0 || length <= index {
		return ErrIndexOutOfRange.F("index %d, length %d", index, length)
	}
	return nil
}

func checkRange(index, count, length int) error {
	if index < 0 || count < 0 {
		return ErrIndexOutOfRange.F("index %d, count %d", index, count)
	}
	if length-index < count {
		return ErrInvalidRange.F("index %d, count %d, length %d", index, count, length)
	}
	return nil
}
