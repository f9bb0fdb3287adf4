package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a center point and a radius
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// NewSphere creates a sphere; the radius must not be negative
func NewSphere(center mgl32.Vec3, radius float32) Sphere {
	if radius < 0 {
		panic("shape: negative sphere radius")
	}
	return Sphere{Center: center, Radius: radius}
}

// SphereFromBox returns the sphere through all eight corners of a box
func SphereFromBox(b Box) Sphere {
	return Sphere{
		Center: b.Min.Add(b.Max).Mul(0.5),
		Radius: b.Max.Sub(b.Min).Len() * 0.5,
	}
}

// SphereFrom2Points returns the smallest sphere with both points on its
// boundary: centered on the midpoint with half the distance as radius.
func SphereFrom2Points(p0, p1 mgl32.Vec3) Sphere {
	return Sphere{
		Center: p0.Add(p1).Mul(0.5),
		Radius: p1.Sub(p0).Len() * 0.5,
	}
}

// SphereFrom3Points returns the smallest sphere containing three points.
// For an acute triangle this is its circumsphere, computed from the squared
// side lengths. If one squared side reaches the sum of the other two (right,
// obtuse or degenerate triangle, colinear points included) the circumcenter
// leaves the triangle and the diameter sphere over the longest side is
// smaller; it already contains the remaining point.
func SphereFrom3Points(p0, p1, p2 mgl32.Vec3) Sphere {
	c := p0.Sub(p1)
	csq := c.LenSqr()
	a := p1.Sub(p2)
	asq := a.LenSqr()
	b := p2.Sub(p0)
	bsq := b.LenSqr()

	if csq+bsq <= asq {
		return SphereFrom2Points(p1, p2)
	}
	if asq+bsq <= csq {
		return SphereFrom2Points(p1, p0)
	}
	if asq+csq <= bsq {
		return SphereFrom2Points(p2, p0)
	}

	// Barycentric circumcenter weights, each proportional to
	// sidesq * (sum of other sidesq - sidesq); their sum is 2*|a x c|^2.
	area2Sq := 2 * a.Cross(c).LenSqr()
	center := p0.Mul(-c.Dot(b) * asq / area2Sq).
		Add(p1.Mul(-c.Dot(a) * bsq / area2Sq)).
		Add(p2.Mul(-b.Dot(a) * csq / area2Sq))
	return Sphere{
		Center: center,
		Radius: math32.Sqrt(asq * bsq * csq / (2 * area2Sq)),
	}
}

// onSphereEps is the relative slack when testing a point against a squared
// radius. Radius passed through a square root, so a point exactly on the
// boundary can otherwise land an ulp outside after squaring back.
const onSphereEps = 1e-6

// SphereFrom4Points returns the smallest sphere containing four points.
// The four triangle circumspheres are tried in a fixed order first: whenever
// one of them contains its excluded point, that sphere is already minimal.
// Only if every excluded point sticks out do all four points lie on the
// boundary, and the center follows from the tetrahedron circumcenter
// formula. The excluded point is accepted within onSphereEps, so coplanar
// input settles on one of the triangle spheres instead of running into the
// vanishing determinant.
func SphereFrom4Points(p0, p1, p2, p3 mgl32.Vec3) Sphere {
	s := SphereFrom3Points(p1, p2, p3)
	if p0.Sub(s.Center).LenSqr() <= s.Radius*s.Radius*(1+onSphereEps) {
		return s
	}
	s = SphereFrom3Points(p0, p1, p3)
	if p2.Sub(s.Center).LenSqr() <= s.Radius*s.Radius*(1+onSphereEps) {
		return s
	}
	s = SphereFrom3Points(p0, p2, p3)
	if p1.Sub(s.Center).LenSqr() <= s.Radius*s.Radius*(1+onSphereEps) {
		return s
	}
	s = SphereFrom3Points(p0, p1, p2)
	if p3.Sub(s.Center).LenSqr() <= s.Radius*s.Radius*(1+onSphereEps) {
		return s
	}

	a := p1.Sub(p0)
	b := p2.Sub(p0)
	c := p3.Sub(p0)
	// Offset from p0 to the circumcenter; the denominator is the edge-matrix
	// determinant (six times the signed tetrahedron volume).
	o := b.Cross(c).Mul(a.LenSqr()).
		Add(c.Cross(a).Mul(b.LenSqr())).
		Add(a.Cross(b).Mul(c.LenSqr())).
		Mul(0.5 / mgl32.Mat3FromRows(a, b, c).Det())
	return Sphere{Center: p0.Add(o), Radius: o.Len()}
}
