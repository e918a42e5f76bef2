package geometry

import "math"

// Cross returns the cross product of two vectors, perpendicular to
// both:
//
//	u x v = | i   j   k | = (u.Y*v.Z - u.Z*v.Y) i
//	        |u.X u.Y u.Z|   (u.Z*v.X - u.X*v.Z) j
//	        |v.X v.Y v.Z|   (u.X*v.Y - u.Y*v.X) k
func Cross(u, v Vector3) Vector3 {
	return Vector3{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: u.Z*v.X - u.X*v.Z,
		Z: u.X*v.Y - u.Y*v.X,
	}
}

// Dot returns the dot product of two vectors.
func Dot(u, v Vector3) float64 {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}

// IntersectLinePlane returns the point at which the line intersects the
// plane, found by substituting the line's parametric equations into the
// plane's implicit equation and solving for t:
//
//	D = A(at + x0) + B(bt + y0) + C(ct + z0)
//	D = t(Aa + Bb + Cc) + Ax0 + By0 + Cz0
//
// It returns ErrNoSolution when the line is parallel to the plane and
// disjoint from it, and ErrInfiniteSolutions when the line lies within
// the plane.
//
// Classification compares the coefficients bit-exactly, so
// near-parallel configurations resolve to a unique, possibly enormous,
// intersection point rather than a parallel classification. Use
// IntersectLinePlaneEps to classify within a tolerance instead.
func IntersectLinePlane(line Line3, plane Plane3) (Vector3, error) {
	return IntersectLinePlaneEps(line, plane, 0)
}

// IntersectLinePlaneEps is IntersectLinePlane with a tolerance: values
// whose difference has absolute value below eps are treated as equal
// when classifying the intersection. An eps of zero means bit-exact
// comparison.
func IntersectLinePlaneEps(line Line3, plane Plane3, eps float64) (Vector3, error) {
	tTerm := plane.A*line.A + plane.B*line.B + plane.C*line.C
	constTerm := plane.A*line.X0 + plane.B*line.Y0 + plane.C*line.Z0

	if !equalEps(tTerm, 0, eps) {
		t := (plane.D - constTerm) / tTerm
		return line.At(t), nil
	}
	if !equalEps(plane.D, constTerm, eps) {
		return Vector3{}, ErrNoSolution
	}
	return Vector3{}, ErrInfiniteSolutions
}

func equalEps(a, b, eps float64) bool {
	if eps == 0 {
		return a == b
	}
	return math.Abs(a-b) < eps
}
