package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// thomsenP is the exponent of Thomsen's ellipsoid surface approximation
// (relative error below 1.061%).
const thomsenP = 1.6075

// Volume returns 4/3 · π · r³.
func (s Sphere) Volume() float32 {
	return 4.0 / 3.0 * math32.Pi * s.Radius * s.Radius * s.Radius
}

func (b Box) Volume() float32 {
	size := b.Size()
	return size[0] * size[1] * size[2]
}

func (o OBox) Volume() float32 {
	return o.Sides[0] * o.Sides[1] * o.Sides[2]
}

// Volume returns a sixth of the parallelepiped spanned by the edges from V0.
func (t Tetrahedron) Volume() float32 {
	return math32.Abs(mgl32.Mat3FromRows(
		t.V1.Sub(t.V0),
		t.V2.Sub(t.V0),
		t.V3.Sub(t.V0),
	).Det()) / 6
}

func (t Triangle) Volume() float32 { return 0 }

func (d Disc) Volume() float32 { return 0 }

func (p Plane) Volume() float32 { return 0 }

// Volume returns +Inf for a proper slab and 0 when both planes coincide.
func (d DOP) Volume() float32 {
	if d.D0 == d.D1 {
		return 0
	}
	return math32.Inf(1)
}

func (e Ellipsoid) Volume() float32 {
	return 4.0 / 3.0 * math32.Pi * e.Radii[0] * e.Radii[1] * e.Radii[2]
}

func (e OEllipsoid) Volume() float32 {
	return 4.0 / 3.0 * math32.Pi * e.Radii[0] * e.Radii[1] * e.Radii[2]
}

func (r Ray) Volume() float32 { return 0 }

func (s Segment) Volume() float32 { return 0 }

// Volume returns the cylinder part plus the sphere from the two end caps.
func (c Capsule) Volume() float32 {
	return math32.Pi * c.Radius * c.Radius * (4.0/3.0*c.Radius + c.Seg.Length())
}

// Volume integrates the rectangular cross sections between the near and far
// plane. The cross section at depth z has area (R−L)(T−B) · z²/F².
func (f Frustum) Volume() float32 {
	farArea := (f.Right - f.Left) * (f.Top - f.Bottom)
	return farArea * (f.Far*f.Far*f.Far - f.Near*f.Near*f.Near) / (3 * f.Far * f.Far)
}

// Surface returns 4 · π · r².
func (s Sphere) Surface() float32 {
	return 4 * math32.Pi * s.Radius * s.Radius
}

func (b Box) Surface() float32 {
	size := b.Size()
	return 2 * (size[0]*size[1] + size[1]*size[2] + size[2]*size[0])
}

func (o OBox) Surface() float32 {
	return 2 * (o.Sides[0]*o.Sides[1] + o.Sides[1]*o.Sides[2] + o.Sides[2]*o.Sides[0])
}

func (t Tetrahedron) Surface() float32 {
	return triangleArea(t.V0, t.V1, t.V2) +
		triangleArea(t.V0, t.V1, t.V3) +
		triangleArea(t.V0, t.V2, t.V3) +
		triangleArea(t.V1, t.V2, t.V3)
}

func (t Triangle) Surface() float32 {
	return triangleArea(t.V0, t.V1, t.V2)
}

func (d Disc) Surface() float32 {
	return math32.Pi * d.Radius * d.Radius
}

func (p Plane) Surface() float32 { return math32.Inf(1) }

func (d DOP) Surface() float32 { return math32.Inf(1) }

// Surface uses Thomsen's approximation 4π·((aᵖbᵖ + aᵖcᵖ + bᵖcᵖ)/3)^(1/p).
func (e Ellipsoid) Surface() float32 {
	ap := math32.Pow(e.Radii[0], thomsenP)
	bp := math32.Pow(e.Radii[1], thomsenP)
	cp := math32.Pow(e.Radii[2], thomsenP)
	return 4 * math32.Pi * math32.Pow((ap*bp+ap*cp+bp*cp)/3, 1/thomsenP)
}

func (e OEllipsoid) Surface() float32 {
	return Ellipsoid{Center: e.Center, Radii: e.Radii}.Surface()
}

func (r Ray) Surface() float32 { return 0 }

func (s Segment) Surface() float32 { return 0 }

func (c Capsule) Surface() float32 {
	return 2 * math32.Pi * c.Radius * (2*c.Radius + c.Seg.Length())
}

// Surface sums the near and far rectangles and the four side trapezoids.
// Each trapezoid has the far edge, the same edge scaled by N/F on the near
// plane, and a slant height mixing the depth range with the edge offset.
func (f Frustum) Surface() float32 {
	w := f.Right - f.Left
	h := f.Top - f.Bottom
	k := f.Near / f.Far
	slant := func(offset float32) float32 {
		d := f.Far - f.Near
		o := offset * (1 - k)
		return math32.Sqrt(d*d + o*o)
	}
	return w*h*(1+k*k) +
		h*(1+k)/2*(slant(f.Left)+slant(f.Right)) +
		w*(1+k)/2*(slant(f.Bottom)+slant(f.Top))
}

func (s Sphere) Centroid() mgl32.Vec3 { return s.Center }

func (b Box) Centroid() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (o OBox) Centroid() mgl32.Vec3 { return o.Center }

func (t Tetrahedron) Centroid() mgl32.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Add(t.V3).Mul(0.25)
}

func (t Triangle) Centroid() mgl32.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Mul(1.0 / 3.0)
}

func (d Disc) Centroid() mgl32.Vec3 { return d.Center }

// Centroid returns the support point, the plane point closest to the origin.
func (p Plane) Centroid() mgl32.Vec3 {
	return p.N.Mul(-p.D)
}

// Centroid returns the support point of the middle plane of the slab.
func (d DOP) Centroid() mgl32.Vec3 {
	return d.N.Mul(-(d.D0 + d.D1) * 0.5)
}

func (e Ellipsoid) Centroid() mgl32.Vec3 { return e.Center }

func (e OEllipsoid) Centroid() mgl32.Vec3 { return e.Center }

func (r Ray) Centroid() mgl32.Vec3 { return r.Origin }

func (s Segment) Centroid() mgl32.Vec3 {
	return s.A.Add(s.B).Mul(0.5)
}

func (c Capsule) Centroid() mgl32.Vec3 {
	return c.Seg.Centroid()
}

// Centroid weights each cross section by its area. The depth along Direction
// is z̄ = 3(F⁴−N⁴)/(4(F³−N³)); the lateral offset is the far-plane midpoint
// scaled by z̄/F.
func (f Frustum) Centroid() mgl32.Vec3 {
	n2 := f.Near * f.Near
	f2 := f.Far * f.Far
	z := 3 * (f2*f2 - n2*n2) / (4 * (f2*f.Far - n2*f.Near))
	xAxis := f.Up.Cross(f.Direction)
	lateral := xAxis.Mul((f.Left + f.Right) / 2).Add(f.Up.Mul((f.Bottom + f.Top) / 2))
	return f.Apex.Add(f.Direction.Mul(z)).Add(lateral.Mul(z / f.Far))
}

// triangleArea returns half the parallelogram area of the spanning edges.
func triangleArea(a, b, c mgl32.Vec3) float32 {
	return b.Sub(a).Cross(c.Sub(a)).Len() * 0.5
}
