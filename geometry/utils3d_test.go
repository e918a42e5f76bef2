package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCross(t *testing.T) {
	assert.Equal(t, NewVector(0, 0, 1), Cross(NewVector(1, 0, 0), NewVector(0, 1, 0)))
	assert.Equal(t, NewVector(-3, 6, -3), Cross(NewVector(1, 2, 3), NewVector(4, 5, 6)))

	// Parallel vectors have a zero cross product.
	assert.True(t, Cross(NewVector(1, 2, 3), NewVector(2, 4, 6)).IsZero())
}

func TestCrossProperties(t *testing.T) {
	vectors := []Vector3{
		NewVector(1, 2, 3),
		NewVector(-4, 0.5, 2),
		NewVector(0, -1, 7),
	}
	for _, u := range vectors {
		for _, v := range vectors {
			// Anticommutativity: u x v == -(v x u).
			assert.Equal(t, Cross(u, v), Cross(v, u).Neg())
			// The cross product is perpendicular to both operands.
			assert.InDelta(t, 0, Dot(u, Cross(u, v)), 1e-12)
			assert.InDelta(t, 0, Dot(v, Cross(u, v)), 1e-12)
		}
	}
}

func TestDot(t *testing.T) {
	assert.Equal(t, 32.0, Dot(NewVector(1, 2, 3), NewVector(4, 5, 6)))
	assert.Equal(t, 0.0, Dot(NewVector(1, 0, 0), NewVector(0, 1, 0)))
	assert.Equal(t, -14.0, Dot(NewVector(1, 2, 3), NewVector(-1, -2, -3)))
}

func TestIntersectLinePlaneUniquePoint(t *testing.T) {
	line := NewLine(Vector3{}, NewVector(0, 0, 1))
	plane := NewPlane(NewVector(0, 0, 5), NewVector(0, 0, 1))

	pt, err := IntersectLinePlane(line, plane)
	require.NoError(t, err)
	assert.Equal(t, NewVector(0, 0, 5), pt)
}

func TestIntersectLinePlaneOblique(t *testing.T) {
	// Line through (1,1,0) along (1,1,1) meets x+y+z=9 at t=7/3.
	line := NewLine(NewVector(1, 1, 0), NewVector(1, 1, 1))
	plane := NewPlane(NewVector(9, 0, 0), NewVector(1, 1, 1))

	pt, err := IntersectLinePlane(line, plane)
	require.NoError(t, err)
	assert.InDelta(t, 9, pt.X+pt.Y+pt.Z, 1e-12)
	assert.InDelta(t, pt.X, pt.Y, 1e-12)
	assert.InDelta(t, pt.X-1, pt.Z, 1e-12)
}

func TestIntersectLinePlaneNoSolution(t *testing.T) {
	line := NewLine(Vector3{}, NewVector(1, 0, 0))
	plane := NewPlane(NewVector(0, 0, 1), NewVector(0, 0, 1))

	_, err := IntersectLinePlane(line, plane)
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestIntersectLinePlaneInfiniteSolutions(t *testing.T) {
	line := NewLine(NewVector(0, 0, 1), NewVector(1, 0, 0))
	plane := NewPlane(NewVector(0, 0, 1), NewVector(0, 0, 1))

	_, err := IntersectLinePlane(line, plane)
	require.ErrorIs(t, err, ErrInfiniteSolutions)
}

func TestIntersectLinePlaneEps(t *testing.T) {
	// A line tilted into the plane's direction by 1e-12: exact
	// classification solves it, tolerant classification calls it
	// parallel.
	line := NewLine(Vector3{}, NewVector(1, 0, 1e-12))
	plane := NewPlane(NewVector(0, 0, 1), NewVector(0, 0, 1))

	pt, err := IntersectLinePlane(line, plane)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pt.Z, 1e-9)

	_, err = IntersectLinePlaneEps(line, plane, 1e-9)
	require.ErrorIs(t, err, ErrNoSolution)

	// A line lying within the plane up to the same tilt.
	inPlane := NewLine(NewVector(0, 0, 1), NewVector(1, 0, 1e-12))
	_, err = IntersectLinePlaneEps(inPlane, plane, 1e-9)
	require.ErrorIs(t, err, ErrInfiniteSolutions)

	// eps of zero is the exact comparison.
	_, err = IntersectLinePlaneEps(NewLine(Vector3{}, NewVector(1, 0, 0)), plane, 0)
	require.ErrorIs(t, err, ErrNoSolution)
}
