package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	ei "github.com/igarfieldi/Epsilon-Intersection"
	"github.com/igarfieldi/Epsilon-Intersection/shape"
)

// SetupCloud creates an elongated, rotated point blob with a few duplicates
// thrown in, the kind of input a mesh importer would hand over.
func SetupCloud() []mgl32.Vec3 {
	rng := rand.New(rand.NewPCG(7, 1811))
	rotation := mgl32.QuatRotate(0.6, mgl32.Vec3{0, 1, 0}.Normalize())

	points := make([]mgl32.Vec3, 0, 220)
	for i := 0; i < 200; i++ {
		local := mgl32.Vec3{
			(rng.Float32() - 0.5) * 8, // long axis
			(rng.Float32() - 0.5) * 2,
			(rng.Float32() - 0.5) * 1,
		}
		points = append(points, rotation.Rotate(local).Add(mgl32.Vec3{0, 0, 6}))
	}
	// Exact duplicates of the first twenty points.
	points = append(points, points[:20]...)
	return points
}

func InspectBounds(points []mgl32.Vec3) {
	fmt.Println("=== Bounding volumes ===")

	sphere := ei.SphereOf(points)
	worst := float32(0)
	for _, p := range points {
		if d := p.Sub(sphere.Center).Len(); d > worst {
			worst = d
		}
	}
	fmt.Printf("Sphere:  center %v radius %.4f\n", sphere.Center, sphere.Radius)
	fmt.Printf("         farthest point distance %.4f\n", worst)
	fmt.Printf("         volume %.3f surface %.3f\n", sphere.Volume(), sphere.Surface())

	box := ei.BoxOf(points)
	fmt.Printf("Box:     min %v max %v\n", box.Min, box.Max)
	fmt.Printf("         volume %.3f centroid %v\n", box.Volume(), box.Centroid())

	// The O(n⁴) oriented fit needs the reduced cloud to stay affordable.
	reduced := ei.ConvexSet(append([]mgl32.Vec3(nil), points...), 1e-4)
	fmt.Printf("ConvexSet: %d of %d points remain extreme\n", len(reduced), len(points))

	obox := ei.OBoxOf(reduced)
	fmt.Printf("OBox:    center %v sides %v\n", obox.Center, obox.Sides)
	fmt.Printf("         volume %.3f (axis aligned %.3f)\n", obox.Volume(), box.Volume())
}

func InspectCulling(points []mgl32.Vec3) {
	fmt.Println("=== Frustum culling ===")

	// The lateral extents apply on the far plane, so this cone spans
	// roughly +-31 degrees horizontally.
	frustum := shape.NewFrustum(
		mgl32.Vec3{0, 0, 0},      // apex
		mgl32.Vec3{0, 0, 1},      // direction
		mgl32.Vec3{0, 1, 0},      // up
		-60, 60, -40, 40, 1, 100, // l, r, b, t, n, f
	)
	fmt.Printf("Frustum: volume %.3f surface %.3f centroid %v\n",
		frustum.Volume(), frustum.Surface(), frustum.Centroid())

	fast := shape.NewFastFrustum(frustum)
	inside := 0
	for _, p := range points {
		if ContainsPoint(fast, p) {
			inside++
		}
	}
	fmt.Printf("Culling: %d of %d points inside\n", inside, len(points))
}

// ContainsPoint tests a point against the near/far slab and the four side
// planes of a precomputed frustum.
func ContainsPoint(f shape.FastFrustum, p mgl32.Vec3) bool {
	nf := f.NF()
	along := nf.N.Dot(p)
	if along+nf.D0 < 0 || along+nf.D1 > 0 {
		return false
	}
	return f.Left().Distance(p) >= 0 && f.Right().Distance(p) >= 0 &&
		f.Bottom().Distance(p) >= 0 && f.Top().Distance(p) >= 0
}

func main() {
	points := SetupCloud()
	fmt.Printf("Cloud of %d points\n\n", len(points))

	InspectBounds(points)
	fmt.Println()
	InspectCulling(points)
}
