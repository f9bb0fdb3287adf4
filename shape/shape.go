// Package shape defines the 3D geometric primitive types and their
// closed-form constructions: spheres, boxes (axis-aligned and oriented),
// planes and plane pairs, discs, triangles, tetrahedra, rays, segments,
// capsules, ellipsoids and view frustums.
//
// All primitives are plain values in single precision. Constructors
// validate their preconditions and panic on programmer errors (malformed
// intervals, non-unit axes); numerical degeneracies inside a valid input
// domain are resolved by falling back to a lower-order result instead.
package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// unitEps bounds how far a squared length may stray from 1 before a vector
// no longer counts as normalized.
const unitEps = 1e-4

// sqrt3 scales box half sizes to circumscribed ellipsoid radii.
const sqrt3 = 1.7320508075688772

// isUnit checks a vector for unit length within unitEps.
func isUnit(v mgl32.Vec3) bool {
	return math32.Abs(v.LenSqr()-1) <= unitEps
}

// minElem returns the componentwise minimum of two vectors.
func minElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2])}
}

// maxElem returns the componentwise maximum of two vectors.
func maxElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2])}
}

// absElem returns the componentwise absolute value of a vector.
func absElem(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}
