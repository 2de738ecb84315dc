package indexlist

import "errors"

var (
	// ErrDuplicateElement indicates the element is already in the list.
	ErrDuplicateElement = errors.New("element already in list")

	// ErrElementNotFound indicates the element is not in the list.
	ErrElementNotFound = errors.New("element not found")

	// ErrIndexNotFound indicates no element occupies the position.
	ErrIndexNotFound = errors.New("index not found")

	// ErrInvariantViolation indicates corrupted list state.
	// It is only ever raised by panic.
	ErrInvariantViolation = errors.New("list invariant violated")
)
