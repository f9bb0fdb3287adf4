package shape

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is an infinite plane in constant-normal form: N · p + D = 0 for
// every point p on the plane, with N unit length.
type Plane struct {
	N mgl32.Vec3
	D float32
}

// NewPlane creates a plane from a unit normal and its constant
func NewPlane(n mgl32.Vec3, d float32) Plane {
	if !isUnit(n) {
		panic("shape: plane normal must be unit length")
	}
	return Plane{N: n, D: d}
}

// PlaneFromPoint creates the plane with the given unit normal through a
// support point
func PlaneFromPoint(n, support mgl32.Vec3) Plane {
	if !isUnit(n) {
		panic("shape: plane normal must be unit length")
	}
	return Plane{N: n, D: -n.Dot(support)}
}

// PlaneFromPoints spans the plane through three points; the normal follows
// the counter-clockwise winding of v0, v1, v2.
func PlaneFromPoints(v0, v1, v2 mgl32.Vec3) Plane {
	n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	return Plane{N: n, D: -n.Dot(v0)}
}

// Distance returns the signed distance of a point to the plane; the sign
// follows the normal.
func (p Plane) Distance(pt mgl32.Vec3) float32 {
	return p.N.Dot(pt) + p.D
}

// DOP is a discrete oriented polytope of two parallel planes N · p + D0 = 0
// and N · p + D1 = 0 sharing the normal N, with D0 >= D1: the infinite slab
// between them.
type DOP struct {
	N  mgl32.Vec3
	D0 float32
	D1 float32
}

// NewDOP creates a slab from a unit normal and two plane constants; the
// constants are swapped into D0 >= D1 order if necessary
func NewDOP(n mgl32.Vec3, d0, d1 float32) DOP {
	if !isUnit(n) {
		panic("shape: slab normal must be unit length")
	}
	if d0 < d1 {
		d0, d1 = d1, d0
	}
	return DOP{N: n, D0: d0, D1: d1}
}

// DOPFromPoints creates the slab with the given unit normal through two
// support points
func DOPFromPoints(n, support0, support1 mgl32.Vec3) DOP {
	return NewDOP(n, -n.Dot(support0), -n.Dot(support1))
}
