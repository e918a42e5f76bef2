// Package geometry provides analytic geometry in three dimensions:
// vectors, parametric lines, and implicit-form planes, with operations
// to construct, query, and intersect them.
//
// All types are immutable value types; operations return new values and
// never mutate their receivers, so every operation is safe to call
// concurrently without synchronization.
package geometry

import (
	"fmt"
	"math"
)

// Vector3 represents a vector in three dimensions, starting at the
// origin. It can represent a position or a direction.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector creates a new Vector3 from its x, y, and z components.
func NewVector(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// VectorFromArray creates a Vector3 from a fixed-size array of three
// components.
func VectorFromArray(arr [3]float64) Vector3 {
	return Vector3{X: arr[0], Y: arr[1], Z: arr[2]}
}

// VectorFromSlice creates a Vector3 from a slice of exactly three
// components. It returns a *ShapeError wrapping ErrInvalidShape when
// the slice has any other length.
func VectorFromSlice(s []float64) (Vector3, error) {
	if len(s) != 3 {
		return Vector3{}, &ShapeError{Len: len(s)}
	}
	return Vector3{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Add returns the sum of two vectors.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the difference between two vectors.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul scales a vector by a scalar.
func (v Vector3) Mul(k float64) Vector3 {
	return Vector3{v.X * k, v.Y * k, v.Z * k}
}

// Neg returns the vector pointing in the opposite direction.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Norm returns the vector's magnitude (Euclidean norm).
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction. It returns
// ErrDegenerateInput for the zero vector, which has no direction.
func (v Vector3) Normalized() (Vector3, error) {
	norm := v.Norm()
	if norm == 0 {
		return Vector3{}, fmt.Errorf("%w: cannot normalize zero vector", ErrDegenerateInput)
	}
	return v.Mul(1 / norm), nil
}

// IsZero reports whether all components are exactly zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Array returns the components as a fixed-size array.
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// String returns a human-readable form "<x, y, z>". It is for
// diagnostics only and is not a parse format.
func (v Vector3) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.X, v.Y, v.Z)
}
