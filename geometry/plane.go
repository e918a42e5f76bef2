package geometry

import "fmt"

// Plane3 represents a plane in three dimensions in implicit form, using
// a position vector p and a normal vector n:
//
//	A*x + B*y + C*z = D
//
// The coefficients are snapshotted from the vectors at construction
// time. Use NewPlane or PlaneFromLines rather than a struct literal so
// they are populated.
type Plane3 struct {
	// Position is the position vector for this plane.
	Position Vector3
	// Normal is the normal vector for this plane.
	Normal Vector3

	// A, B, C are the normal components in the implicit equation.
	A, B, C float64
	// D is the constant term, Normal dot Position.
	D float64
}

// NewPlane creates a Plane3 from a position vector and a normal vector.
// The normal is not required to be non-zero here, but the Solve methods
// are undefined for a zero coefficient and report ErrDegenerateInput.
func NewPlane(position, normal Vector3) Plane3 {
	return Plane3{
		Position: position,
		Normal:   normal,
		A:        normal.X,
		B:        normal.Y,
		C:        normal.Z,
		D:        Dot(normal, position),
	}
}

// PlaneFromLines creates the Plane3 containing two lines, using the
// first line's position and the cross product of the two directions as
// the normal. It returns ErrDegenerateInput when the directions are
// parallel, since the cross product is then zero and defines no plane.
func PlaneFromLines(l1, l2 Line3) (Plane3, error) {
	normal := Cross(l1.Direction, l2.Direction)
	if normal.IsZero() {
		return Plane3{}, fmt.Errorf("%w: line directions %s and %s are parallel", ErrDegenerateInput, l1.Direction, l2.Direction)
	}
	return NewPlane(l1.Position, normal), nil
}

// SolveX returns the x-coordinate of the point on the plane with the
// given y and z coordinates, by isolating x in the implicit equation.
// It returns ErrDegenerateInput when the x coefficient is zero.
func (p Plane3) SolveX(y, z float64) (float64, error) {
	if p.A == 0 {
		return 0, fmt.Errorf("%w: plane has zero x coefficient", ErrDegenerateInput)
	}
	return (p.D - p.B*y - p.C*z) / p.A, nil
}

// SolveY returns the y-coordinate of the point on the plane with the
// given x and z coordinates. It returns ErrDegenerateInput when the y
// coefficient is zero.
func (p Plane3) SolveY(x, z float64) (float64, error) {
	if p.B == 0 {
		return 0, fmt.Errorf("%w: plane has zero y coefficient", ErrDegenerateInput)
	}
	return (p.D - p.A*x - p.C*z) / p.B, nil
}

// SolveZ returns the z-coordinate of the point on the plane with the
// given x and y coordinates. It returns ErrDegenerateInput when the z
// coefficient is zero.
func (p Plane3) SolveZ(x, y float64) (float64, error) {
	if p.C == 0 {
		return 0, fmt.Errorf("%w: plane has zero z coefficient", ErrDegenerateInput)
	}
	return (p.D - p.A*x - p.B*y) / p.C, nil
}

// String returns a human-readable form showing the position and normal
// vectors. Diagnostics only.
func (p Plane3) String() string {
	return fmt.Sprintf("Plane3(position=%s, normal=%s)", p.Position, p.Normal)
}
