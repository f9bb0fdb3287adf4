package ei

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/igarfieldi/Epsilon-Intersection/shape"
)

func vec3Equal(a, b mgl32.Vec3, tolerance float32) bool {
	return math32.Abs(a.X()-b.X()) < tolerance &&
		math32.Abs(a.Y()-b.Y()) < tolerance &&
		math32.Abs(a.Z()-b.Z()) < tolerance
}

func floatEqual(a, b, tolerance float32) bool {
	return math32.Abs(a-b) < tolerance
}

func randomCloud(r *rand.Rand, n int, scale float32) []mgl32.Vec3 {
	points := make([]mgl32.Vec3, n)
	for i := range points {
		points[i] = mgl32.Vec3{
			(2*r.Float32() - 1) * scale,
			(2*r.Float32() - 1) * scale,
			(2*r.Float32() - 1) * scale,
		}
	}
	return points
}

func TestSphereOfSmall(t *testing.T) {
	tests := []struct {
		name           string
		points         []mgl32.Vec3
		expectedCenter mgl32.Vec3
		expectedRadius float32
	}{
		{"single point", []mgl32.Vec3{{1, 2, 3}}, mgl32.Vec3{1, 2, 3}, 0},
		{"two points", []mgl32.Vec3{{0, 0, 0}, {2, 0, 0}}, mgl32.Vec3{1, 0, 0}, 1},
		{"all identical", []mgl32.Vec3{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, mgl32.Vec3{1, 1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SphereOf(tt.points)
			if !vec3Equal(s.Center, tt.expectedCenter, 1e-5) {
				t.Errorf("SphereOf() center = %v, want %v", s.Center, tt.expectedCenter)
			}
			if !floatEqual(s.Radius, tt.expectedRadius, 1e-5) {
				t.Errorf("SphereOf() radius = %v, want %v", s.Radius, tt.expectedRadius)
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("SphereOf() did not panic")
			}
		}()
		SphereOf(nil)
	})
}

func TestSphereOfCube(t *testing.T) {
	points := []mgl32.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	}

	s := SphereOf(points)
	if !vec3Equal(s.Center, mgl32.Vec3{0, 0, 0}, 1e-3) {
		t.Errorf("SphereOf() center = %v, want (0,0,0)", s.Center)
	}
	if !floatEqual(s.Radius, math32.Sqrt(3), 1e-3) {
		t.Errorf("SphereOf() radius = %v, want sqrt(3)", s.Radius)
	}
}

// A long sorted line is adversarial for an incremental solver without
// move-to-front: every prefix sphere is violated by the next point.
func TestSphereOfColinear(t *testing.T) {
	points := make([]mgl32.Vec3, 50)
	for i := range points {
		points[i] = mgl32.Vec3{float32(i), 0, 0}
	}

	s := SphereOf(points)
	if !vec3Equal(s.Center, mgl32.Vec3{24.5, 0, 0}, 1e-3) {
		t.Errorf("SphereOf() center = %v, want (24.5,0,0)", s.Center)
	}
	if !floatEqual(s.Radius, 24.5, 1e-3) {
		t.Errorf("SphereOf() radius = %v, want 24.5", s.Radius)
	}
}

// Coplanar input drives the solver into its four-support case, where the
// tetrahedron circumcenter formula would divide by a vanishing volume.
func TestSphereOfCoplanar(t *testing.T) {
	square := []mgl32.Vec3{{1, 1, 0}, {-1, 1, 0}, {-1, -1, 0}, {1, -1, 0}}
	s := SphereOf(square)
	if math32.IsNaN(s.Radius) {
		t.Fatalf("SphereOf() = %v for a concyclic square", s)
	}
	if !vec3Equal(s.Center, mgl32.Vec3{0, 0, 0}, 1e-3) {
		t.Errorf("SphereOf() center = %v, want (0,0,0)", s.Center)
	}
	if !floatEqual(s.Radius, math32.Sqrt2, 1e-3) {
		t.Errorf("SphereOf() radius = %v, want sqrt(2)", s.Radius)
	}

	r := rand.New(rand.NewPCG(19, 23))
	points := randomCloud(r, 32, 10)
	for i := range points {
		points[i][2] = 0
	}
	s = SphereOf(points)
	if math32.IsNaN(s.Radius) {
		t.Fatalf("SphereOf() = %v for a flat cloud", s)
	}
	for _, p := range points {
		if d := p.Sub(s.Center).Len(); d > s.Radius+1e-3 {
			t.Errorf("point %v at distance %v outside radius %v", p, d, s.Radius)
		}
	}
}

func TestSphereOfContainsAll(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1811))
	for _, n := range []int{2, 3, 4, 5, 8, 32, 256} {
		points := randomCloud(r, n, 10)
		s := SphereOf(points)

		worst := float32(0)
		boundary := 0
		for _, p := range points {
			d := p.Sub(s.Center).Len()
			if d > worst {
				worst = d
			}
			if math32.Abs(d-s.Radius) < 5e-3 {
				boundary++
			}
		}
		if worst > s.Radius+1e-3 {
			t.Errorf("n=%d: point at distance %v outside radius %v", n, worst, s.Radius)
		}
		// The sphere is spanned by its support, so at least two of the
		// points must sit on the boundary.
		if boundary < 2 {
			t.Errorf("n=%d: only %d points on the boundary", n, boundary)
		}
	}
}

// bruteForceRadius returns the radius of the smallest enclosing sphere found
// by trying every support subset of up to four points.
func bruteForceRadius(points []mgl32.Vec3) float32 {
	best := math32.Inf(1)
	consider := func(s shape.Sphere) {
		for _, p := range points {
			if p.Sub(s.Center).Len() > s.Radius+1e-4 {
				return
			}
		}
		if s.Radius < best {
			best = s.Radius
		}
	}

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			consider(shape.SphereFrom2Points(points[i], points[j]))
			for k := j + 1; k < len(points); k++ {
				consider(shape.SphereFrom3Points(points[i], points[j], points[k]))
				for m := k + 1; m < len(points); m++ {
					consider(shape.SphereFrom4Points(points[i], points[j], points[k], points[m]))
				}
			}
		}
	}
	return best
}

func TestSphereOfMinimal(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 9))
	for run := 0; run < 3; run++ {
		points := randomCloud(r, 6, 10)
		s := SphereOf(points)
		expected := bruteForceRadius(points)
		if !floatEqual(s.Radius, expected, 2e-3) {
			t.Errorf("run %d: SphereOf() radius = %v, want %v", run, s.Radius, expected)
		}
	}
}

func BenchmarkSphereOf(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 5))
	points := randomCloud(r, 1024, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SphereOf(points)
	}
}
