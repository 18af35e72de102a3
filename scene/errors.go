package scene

import "errors"

var (
	// ErrOutOfBounds is returned by cell access outside the grid.
	ErrOutOfBounds = errors.New("scene: out of bounds")

	// ErrInvalidArgument is returned when a construction or an operation is
	// refused because of its arguments (non-positive sizes, odd polygon
	// coordinate lists, wrong parameter counts, unusable glyphs).
	ErrInvalidArgument = errors.New("scene: invalid argument")

	// ErrNotFound is returned by id lookups with no match.
	ErrNotFound = errors.New("scene: not found")
)
