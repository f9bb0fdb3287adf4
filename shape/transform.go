package shape

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Translated returns the box moved by v.
func (b Box) Translated(v mgl32.Vec3) Box {
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Rotated returns the box actively rotated by q about the origin. The
// result keeps the box extents as sides and stores the inverse rotation as
// orientation, which maps world points back into the axis-aligned frame.
func (b Box) Rotated(q mgl32.Quat) OBox {
	return OBox{
		Center:      q.Rotate(b.Centroid()),
		Sides:       b.Size(),
		Orientation: q.Conjugate(),
	}
}

// Transformed returns the box rotated by q about the origin, then moved
// by v.
func (b Box) Transformed(q mgl32.Quat, v mgl32.Vec3) OBox {
	o := b.Rotated(q)
	o.Center = o.Center.Add(v)
	return o
}

// Translated returns the box moved by v.
func (o OBox) Translated(v mgl32.Vec3) OBox {
	return OBox{Center: o.Center.Add(v), Sides: o.Sides, Orientation: o.Orientation}
}

// Rotated returns the box actively rotated by q about the origin. The new
// orientation undoes q before the old world to local mapping.
func (o OBox) Rotated(q mgl32.Quat) OBox {
	return OBox{
		Center:      q.Rotate(o.Center),
		Sides:       o.Sides,
		Orientation: o.Orientation.Mul(q.Conjugate()),
	}
}

// Transformed returns the box rotated by q about the origin, then moved
// by v.
func (o OBox) Transformed(q mgl32.Quat, v mgl32.Vec3) OBox {
	r := o.Rotated(q)
	r.Center = r.Center.Add(v)
	return r
}
