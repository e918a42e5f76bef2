package geometry

import "fmt"

// Line3 represents a line in three dimensions in parametric form, using
// a position vector p and a direction vector d:
//
//	x = A*t + X0
//	y = B*t + Y0
//	z = C*t + Z0
//
// The coefficients are snapshotted from the vectors at construction
// time. Use NewLine or LineFromPoints rather than a struct literal so
// they are populated.
type Line3 struct {
	// Position is the position vector for this line.
	Position Vector3
	// Direction is the direction vector for this line.
	Direction Vector3

	// A, B, C are the direction components in the parametric equations.
	A, B, C float64
	// X0, Y0, Z0 are the constants in the parametric equations.
	X0, Y0, Z0 float64
}

// NewLine creates a Line3 from a position vector and a direction
// vector. The direction is stored as given, not normalized, so the
// parameter t is measured in multiples of its length.
func NewLine(position, direction Vector3) Line3 {
	return Line3{
		Position:  position,
		Direction: direction,
		A:         direction.X,
		B:         direction.Y,
		C:         direction.Z,
		X0:        position.X,
		Y0:        position.Y,
		Z0:        position.Z,
	}
}

// LineFromPoints creates the Line3 going from point p1 to point p2,
// with position p1 and direction p2 - p1.
func LineFromPoints(p1, p2 Vector3) Line3 {
	return NewLine(p1, p2.Sub(p1))
}

// X returns the x-coordinate on this line at parameter t.
func (l Line3) X(t float64) float64 {
	return l.A*t + l.X0
}

// Y returns the y-coordinate on this line at parameter t.
func (l Line3) Y(t float64) float64 {
	return l.B*t + l.Y0
}

// Z returns the z-coordinate on this line at parameter t.
func (l Line3) Z(t float64) float64 {
	return l.C*t + l.Z0
}

// At returns the point on this line at parameter t.
func (l Line3) At(t float64) Vector3 {
	return Vector3{X: l.X(t), Y: l.Y(t), Z: l.Z(t)}
}

// String returns a human-readable form showing the position and
// direction vectors. Diagnostics only.
func (l Line3) String() string {
	return fmt.Sprintf("Line3(position=%s, direction=%s)", l.Position, l.Direction)
}
