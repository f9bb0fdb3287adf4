package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum is a pyramid stump: the apex looks along Direction with Up
// spanning the view plane, and the left/right/bottom/top extents are
// measured on the far plane. The near rectangle is the far rectangle scaled
// towards the apex by Near/Far.
type Frustum struct {
	Apex      mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3
	Left      float32
	Right     float32
	Bottom    float32
	Top       float32
	Near      float32
	Far       float32
}

// NewFrustum creates a frustum. Direction and Up must be perpendicular unit
// vectors, the spans must be ordered (Left < Right, Bottom < Top) and the
// depth range must satisfy 0 <= Near < Far.
func NewFrustum(apex, direction, up mgl32.Vec3, left, right, bottom, top, near, far float32) Frustum {
	if !isUnit(direction) || !isUnit(up) {
		panic("shape: frustum direction and up must be unit length")
	}
	if math32.Abs(direction.Dot(up)) > unitEps {
		panic("shape: frustum direction and up must be perpendicular")
	}
	if left >= right || bottom >= top {
		panic("shape: frustum spans must be ordered")
	}
	if near < 0 || near >= far {
		panic("shape: frustum depth range must satisfy 0 <= near < far")
	}
	return Frustum{
		Apex:      apex,
		Direction: direction,
		Up:        up,
		Left:      left,
		Right:     right,
		Bottom:    bottom,
		Top:       top,
		Near:      near,
		Far:       far,
	}
}

// FastFrustum caches the planes and corner vertices of a frustum for
// repeated queries. The value is immutable: derive it with NewFastFrustum
// and replace it wholesale when the source frustum changes, so planes and
// vertices can never disagree.
type FastFrustum struct {
	nf       DOP
	left     Plane
	right    Plane
	bottom   Plane
	top      Plane
	vertices [8]mgl32.Vec3
}

// NewFastFrustum derives the near/far slab, the four inward side planes and
// the eight corners of a frustum.
func NewFastFrustum(f Frustum) FastFrustum {
	near := f.Apex.Add(f.Direction.Mul(f.Near))
	far := f.Apex.Add(f.Direction.Mul(f.Far))
	xAxis := f.Up.Cross(f.Direction)
	bottom := f.Up.Mul(f.Bottom)
	top := f.Up.Mul(f.Top)
	left := xAxis.Mul(f.Left)
	right := xAxis.Mul(f.Right)

	// The near rectangle is the far rectangle scaled towards the apex.
	fton := f.Near / f.Far
	var v [8]mgl32.Vec3
	v[0] = near.Add(left.Add(bottom).Mul(fton))
	v[1] = near.Add(left.Add(top).Mul(fton))
	v[2] = near.Add(right.Add(bottom).Mul(fton))
	v[3] = near.Add(right.Add(top).Mul(fton))
	v[4] = far.Add(left).Add(bottom)
	v[5] = far.Add(left).Add(top)
	v[6] = far.Add(right).Add(bottom)
	v[7] = far.Add(right).Add(top)

	// Each side plane spans the apex and one far-plane edge; two in-plane
	// vectors cross into the inward normal.
	return FastFrustum{
		nf:       DOPFromPoints(f.Direction, near, far),
		left:     PlaneFromPoint(f.Up.Cross(v[4].Sub(f.Apex)).Normalize(), v[4]),
		right:    PlaneFromPoint(v[7].Sub(f.Apex).Cross(f.Up).Normalize(), v[7]),
		bottom:   PlaneFromPoint(v[4].Sub(f.Apex).Cross(xAxis).Normalize(), v[4]),
		top:      PlaneFromPoint(xAxis.Cross(v[7].Sub(f.Apex)).Normalize(), v[7]),
		vertices: v,
	}
}

// NF returns the slab bounded by the near and far planes
func (f FastFrustum) NF() DOP { return f.nf }

// Left returns the inward left plane
func (f FastFrustum) Left() Plane { return f.left }

// Right returns the inward right plane
func (f FastFrustum) Right() Plane { return f.right }

// Bottom returns the inward bottom plane
func (f FastFrustum) Bottom() Plane { return f.bottom }

// Top returns the inward top plane
func (f FastFrustum) Top() Plane { return f.top }

// Vertices returns the eight corners: near left-bottom, left-top,
// right-bottom, right-top, then the far plane in the same order.
func (f FastFrustum) Vertices() [8]mgl32.Vec3 { return f.vertices }
