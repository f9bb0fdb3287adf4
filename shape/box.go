package shape

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned box spanned by its componentwise minimal and
// maximal corners.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBox creates a box; min must not exceed max on any axis
func NewBox(min, max mgl32.Vec3) Box {
	if min[0] > max[0] || min[1] > max[1] || min[2] > max[2] {
		panic("shape: box min exceeds max")
	}
	return Box{Min: min, Max: max}
}

// Size returns the edge lengths of the box
func (b Box) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Merge returns the smallest box containing both boxes
func (b Box) Merge(o Box) Box {
	return Box{Min: minElem(b.Min, o.Min), Max: maxElem(b.Max, o.Max)}
}

// BoxFromSphere returns the tightest axis-aligned box around a sphere
func BoxFromSphere(s Sphere) Box {
	r := mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	return Box{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// BoxFromTriangle returns the tightest axis-aligned box around a triangle
func BoxFromTriangle(t Triangle) Box {
	return Box{
		Min: minElem(minElem(t.V0, t.V1), t.V2),
		Max: maxElem(maxElem(t.V0, t.V1), t.V2),
	}
}

// BoxFromTetrahedron returns the tightest axis-aligned box around a
// tetrahedron
func BoxFromTetrahedron(t Tetrahedron) Box {
	return Box{
		Min: minElem(minElem(t.V0, t.V1), minElem(t.V2, t.V3)),
		Max: maxElem(maxElem(t.V0, t.V1), maxElem(t.V2, t.V3)),
	}
}

// BoxFromEllipsoid returns the tightest axis-aligned box around an
// axis-aligned ellipsoid
func BoxFromEllipsoid(e Ellipsoid) Box {
	return Box{Min: e.Center.Sub(e.Radii), Max: e.Center.Add(e.Radii)}
}

// BoxFromOBox returns the axis-aligned bounds of an oriented box. Diagonally
// opposite corners differ only in sign relative to the center, so tracking
// four rotated half-diagonals and their mirrors covers all eight corners.
func BoxFromOBox(o OBox) Box {
	h := o.Sides.Mul(0.5)
	ext := absElem(o.toWorld(h))
	ext = maxElem(ext, absElem(o.toWorld(mgl32.Vec3{h[0], h[1], -h[2]})))
	ext = maxElem(ext, absElem(o.toWorld(mgl32.Vec3{h[0], -h[1], h[2]})))
	ext = maxElem(ext, absElem(o.toWorld(mgl32.Vec3{h[0], -h[1], -h[2]})))
	return Box{Min: o.Center.Sub(ext), Max: o.Center.Add(ext)}
}

// OBox is a box with arbitrary orientation. Sides holds the full edge
// lengths. Orientation rotates world directions into the box frame: a point
// p lies inside iff every component of Orientation.Rotate(p - Center) is
// within +-Sides/2.
type OBox struct {
	Center      mgl32.Vec3
	Sides       mgl32.Vec3
	Orientation mgl32.Quat
}

// NewOBox creates an oriented box; the extents must not be negative and the
// orientation must be a unit quaternion
func NewOBox(center, sides mgl32.Vec3, orientation mgl32.Quat) OBox {
	if sides[0] < 0 || sides[1] < 0 || sides[2] < 0 {
		panic("shape: negative oriented-box extent")
	}
	return OBox{Center: center, Sides: sides, Orientation: orientation}
}

// OBoxFromBox wraps an axis-aligned box without rotating it
func OBoxFromBox(b Box) OBox {
	return OBox{
		Center:      b.Centroid(),
		Sides:       b.Size(),
		Orientation: mgl32.QuatIdent(),
	}
}

// OBoxAround returns the box of the given orientation that encloses an
// axis-aligned box: the eight corners fitted in the rotated frame. The
// center is shared; only the extents grow.
func OBoxAround(q mgl32.Quat, b Box) OBox {
	h := b.Size().Mul(0.5)
	ext := absElem(q.Rotate(h))
	ext = maxElem(ext, absElem(q.Rotate(mgl32.Vec3{h[0], h[1], -h[2]})))
	ext = maxElem(ext, absElem(q.Rotate(mgl32.Vec3{h[0], -h[1], h[2]})))
	ext = maxElem(ext, absElem(q.Rotate(mgl32.Vec3{h[0], -h[1], -h[2]})))
	return OBox{Center: b.Centroid(), Sides: ext.Mul(2), Orientation: q}
}

// toWorld maps a box-local offset back into a world offset.
func (o OBox) toWorld(local mgl32.Vec3) mgl32.Vec3 {
	return o.Orientation.Conjugate().Rotate(local)
}
