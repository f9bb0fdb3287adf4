package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Disc is a flat circle with an oriented supporting plane
type Disc struct {
	Center mgl32.Vec3
	Normal mgl32.Vec3
	Radius float32
}

// NewDisc creates a disc; the normal must be unit length and the radius
// must not be negative
func NewDisc(center, normal mgl32.Vec3, radius float32) Disc {
	if !isUnit(normal) {
		panic("shape: disc normal must be unit length")
	}
	if radius < 0 {
		panic("shape: negative disc radius")
	}
	return Disc{Center: center, Normal: normal, Radius: radius}
}

// Triangle is a triplet of vertices
type Triangle struct {
	V0, V1, V2 mgl32.Vec3
}

// V returns the i-th vertex
func (t Triangle) V(i int) mgl32.Vec3 {
	switch i {
	case 0:
		return t.V0
	case 1:
		return t.V1
	case 2:
		return t.V2
	}
	panic("shape: triangle vertex index out of range")
}

// Tetrahedron is a quadruplet of vertices
type Tetrahedron struct {
	V0, V1, V2, V3 mgl32.Vec3
}

// V returns the i-th vertex
func (t Tetrahedron) V(i int) mgl32.Vec3 {
	switch i {
	case 0:
		return t.V0
	case 1:
		return t.V1
	case 2:
		return t.V2
	case 3:
		return t.V3
	}
	panic("shape: tetrahedron vertex index out of range")
}

// Ray starts at an origin and extends infinitely along a unit direction
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay creates a ray; the direction must be unit length
func NewRay(origin, direction mgl32.Vec3) Ray {
	if !isUnit(direction) {
		panic("shape: ray direction must be unit length")
	}
	return Ray{Origin: origin, Direction: direction}
}

// Segment is the line between two points
type Segment struct {
	A, B mgl32.Vec3
}

// SegmentFromRay cuts a segment of the given length out of a ray
func SegmentFromRay(r Ray, length float32) Segment {
	return Segment{A: r.Origin, B: r.Origin.Add(r.Direction.Mul(length))}
}

// Length returns the distance between the end points
func (s Segment) Length() float32 {
	return s.B.Sub(s.A).Len()
}

// Distance returns the distance from a point to the closest point on the
// segment. Degenerate segments behave like their single point.
func (s Segment) Distance(p mgl32.Vec3) float32 {
	ab := s.B.Sub(s.A)
	t := p.Sub(s.A).Dot(ab)
	if t <= 0 {
		return p.Sub(s.A).Len()
	}
	lsq := ab.LenSqr()
	if t >= lsq {
		return p.Sub(s.B).Len()
	}
	return p.Sub(s.A.Add(ab.Mul(t / lsq))).Len()
}

// Capsule is a segment inflated by a radius
type Capsule struct {
	Seg    Segment
	Radius float32
}

// NewCapsule creates a capsule between two end points; the radius must not
// be negative
func NewCapsule(a, b mgl32.Vec3, radius float32) Capsule {
	if radius < 0 {
		panic("shape: negative capsule radius")
	}
	return Capsule{Seg: Segment{A: a, B: b}, Radius: radius}
}

// CapsuleFromSegment inflates a segment
func CapsuleFromSegment(s Segment, radius float32) Capsule {
	return NewCapsule(s.A, s.B, radius)
}

// minEllipsoidRadius keeps the implicit-form denominators of degenerate
// (flat) ellipsoids finite.
const minEllipsoidRadius = 1e-30

// Ellipsoid is an axis-aligned ellipsoid; radii of collapsed axes are
// clamped to minEllipsoidRadius.
type Ellipsoid struct {
	Center mgl32.Vec3
	Radii  mgl32.Vec3
}

// NewEllipsoid creates an ellipsoid with clamped radii
func NewEllipsoid(center, radii mgl32.Vec3) Ellipsoid {
	return Ellipsoid{Center: center, Radii: clampRadii(radii)}
}

// EllipsoidFromBox returns the tightest axis-aligned ellipsoid around a
// box: the half sizes scaled by sqrt(3), which puts the corners on the
// boundary.
func EllipsoidFromBox(b Box) Ellipsoid {
	return NewEllipsoid(b.Centroid(), b.Size().Mul(0.5*sqrt3))
}

// OEllipsoid is an ellipsoid with arbitrary orientation; Orientation maps
// world directions into the ellipsoid frame like OBox does.
type OEllipsoid struct {
	Center      mgl32.Vec3
	Radii       mgl32.Vec3
	Orientation mgl32.Quat
}

// NewOEllipsoid creates an oriented ellipsoid with clamped radii
func NewOEllipsoid(center, radii mgl32.Vec3, orientation mgl32.Quat) OEllipsoid {
	return OEllipsoid{Center: center, Radii: clampRadii(radii), Orientation: orientation}
}

// OEllipsoidFromBox wraps a box like EllipsoidFromBox without rotating it
func OEllipsoidFromBox(b Box) OEllipsoid {
	return NewOEllipsoid(b.Centroid(), b.Size().Mul(0.5*sqrt3), mgl32.QuatIdent())
}

// OEllipsoidFromOBox returns the tightest ellipsoid of the same orientation
// around an oriented box
func OEllipsoidFromOBox(o OBox) OEllipsoid {
	return NewOEllipsoid(o.Center, o.Sides.Mul(0.5*sqrt3), o.Orientation)
}

// clampRadii lifts collapsed ellipsoid radii to minEllipsoidRadius.
func clampRadii(r mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Max(r[0], minEllipsoidRadius),
		math32.Max(r[1], minEllipsoidRadius),
		math32.Max(r[2], minEllipsoidRadius),
	}
}
