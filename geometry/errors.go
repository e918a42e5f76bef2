package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSolution is returned when a line is parallel to a plane and
	// does not lie on it.
	ErrNoSolution = errors.New("geometry: no solution")

	// ErrInfiniteSolutions is returned when a line lies entirely within
	// a plane.
	ErrInfiniteSolutions = errors.New("geometry: infinite solutions")

	// ErrInvalidShape is returned when constructing a vector from a
	// slice whose length is not exactly 3.
	ErrInvalidShape = errors.New("geometry: invalid shape")

	// ErrDegenerateInput is returned when an operation is undefined for
	// its input, such as normalizing a zero vector or solving a plane
	// coordinate whose coefficient is zero.
	ErrDegenerateInput = errors.New("geometry: degenerate input")
)

// ShapeError reports a slice of the wrong length passed to
// VectorFromSlice. It unwraps to ErrInvalidShape.
type ShapeError struct {
	// Len is the length of the offending slice.
	Len int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("geometry: invalid shape: slice has length %d, want 3", e.Len)
}

func (e *ShapeError) Unwrap() error { return ErrInvalidShape }
