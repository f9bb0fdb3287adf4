package ei

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func cloudContains(points []mgl32.Vec3, p mgl32.Vec3, tolerance float32) bool {
	for _, q := range points {
		if vec3Equal(q, p, tolerance) {
			return true
		}
	}
	return false
}

func TestConvexSetDedup(t *testing.T) {
	a, b, c := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}

	reduced := ConvexSet([]mgl32.Vec3{a, b, a, c, b}, 0)
	if len(reduced) != 3 {
		t.Errorf("ConvexSet() kept %d points, want 3", len(reduced))
	}
	for _, p := range []mgl32.Vec3{a, b, c} {
		if !cloudContains(reduced, p, 1e-6) {
			t.Errorf("ConvexSet() dropped corner %v", p)
		}
	}
}

func TestConvexSetThresholdDedup(t *testing.T) {
	points := []mgl32.Vec3{{0, 0, 0}, {0.005, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	reduced := ConvexSet(points, 0.01)
	if len(reduced) != 3 {
		t.Errorf("ConvexSet() kept %d points, want 3", len(reduced))
	}
	if cloudContains(reduced, mgl32.Vec3{0.005, 0, 0}, 1e-6) {
		t.Errorf("ConvexSet() kept a point within the merge threshold")
	}
}

func TestConvexSetTetrahedron(t *testing.T) {
	vertices := []mgl32.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	centroid := mgl32.Vec3{0.5, 0.5, 0.5}

	tests := []struct {
		name   string
		points []mgl32.Vec3
	}{
		{"centroid last", append(append([]mgl32.Vec3(nil), vertices...), centroid)},
		{"centroid first", append([]mgl32.Vec3{centroid}, vertices...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reduced := ConvexSet(tt.points, 1e-4)
			if len(reduced) != 4 {
				t.Errorf("ConvexSet() kept %d points, want 4", len(reduced))
			}
			for _, v := range vertices {
				if !cloudContains(reduced, v, 1e-6) {
					t.Errorf("ConvexSet() dropped vertex %v", v)
				}
			}
			if cloudContains(reduced, centroid, 1e-6) {
				t.Errorf("ConvexSet() kept the interior centroid")
			}
		})
	}
}

// The reducer repairs its candidate plane greedily, so a hull vertex whose
// first three witnesses are coplanar with it is lost. For cube corners in
// binary order that hits exactly the first corner; the interior center goes
// too, and the remaining seven corners survive.
func TestConvexSetCube(t *testing.T) {
	corners := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
	center := mgl32.Vec3{0.5, 0.5, 0.5}
	points := append(append([]mgl32.Vec3(nil), corners...), center)

	reduced := ConvexSet(points, 1e-4)
	if len(reduced) != 7 {
		t.Errorf("ConvexSet() kept %d points, want 7", len(reduced))
	}
	if cloudContains(reduced, center, 1e-6) {
		t.Errorf("ConvexSet() kept the interior center")
	}
	if cloudContains(reduced, corners[0], 1e-6) {
		t.Errorf("ConvexSet() kept the coplanar seeded corner")
	}
	for _, p := range corners[1:] {
		if !cloudContains(reduced, p, 1e-6) {
			t.Errorf("ConvexSet() dropped corner %v", p)
		}
	}
}

func TestConvexSetIdempotent(t *testing.T) {
	corners := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
		{0.5, 0.5, 0.5},
	}

	reduced := ConvexSet(corners, 1e-4)
	again := ConvexSet(append([]mgl32.Vec3(nil), reduced...), 1e-4)
	if len(again) != len(reduced) {
		t.Errorf("second pass kept %d points, want %d", len(again), len(reduced))
	}
	for _, p := range reduced {
		if !cloudContains(again, p, 1e-6) {
			t.Errorf("second pass dropped %v", p)
		}
	}
}

func TestConvexSetColinear(t *testing.T) {
	reduced := ConvexSet([]mgl32.Vec3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, 1e-4)
	if len(reduced) != 2 {
		t.Errorf("ConvexSet() kept %d points, want 2", len(reduced))
	}
	if !cloudContains(reduced, mgl32.Vec3{0, 0, 0}, 1e-6) || !cloudContains(reduced, mgl32.Vec3{2, 2, 2}, 1e-6) {
		t.Errorf("ConvexSet() dropped a segment end point, got %v", reduced)
	}
}

func TestConvexSetEdge(t *testing.T) {
	if reduced := ConvexSet(nil, 0); len(reduced) != 0 {
		t.Errorf("ConvexSet(nil) = %v, want empty", reduced)
	}
	if reduced := ConvexSet([]mgl32.Vec3{{1, 2, 3}}, 0); len(reduced) != 1 {
		t.Errorf("ConvexSet() kept %d points, want 1", len(reduced))
	}
	if reduced := ConvexSet([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}, 0); len(reduced) != 2 {
		t.Errorf("ConvexSet() kept %d points, want 2", len(reduced))
	}

	t.Run("negative threshold", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("ConvexSet() did not panic")
			}
		}()
		ConvexSet([]mgl32.Vec3{{0, 0, 0}}, -1)
	})
}

func BenchmarkConvexSet(b *testing.B) {
	r := rand.New(rand.NewPCG(23, 29))
	points := randomCloud(r, 200, 10)
	scratch := make([]mgl32.Vec3, len(points))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, points)
		ConvexSet(scratch, 1e-4)
	}
}
