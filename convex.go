package ei

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/igarfieldi/Epsilon-Intersection/shape"
)

// ConvexSet removes points that cannot contribute to the convex hull of the
// set and returns the survivors as a shortened prefix of the input slice.
// The slice is reordered in place.
//
// A point survives when a plane through up to three of the other points
// separates it from the rest. The search keeps a working set of three
// candidate extrema and repairs the plane one substitution at a time, so it
// is a fast heuristic rather than a hull computation: the candidate set is
// seeded in buffer order and a hull vertex coplanar with its first three
// witnesses can be dropped. Duplicates within the threshold always collapse
// and points strictly inside a surrounding simplex are always removed.
// Re-running on the output removes nothing further.
//
// For detailed algorithm explanation with pseudocode, see:
// ALGORITHMS.md - "Extreme Point Reduction" section
func ConvexSet(points []mgl32.Vec3, threshold float32) []mgl32.Vec3 {
	if threshold < 0 {
		panic("ei: convex set threshold must not be negative")
	}
	tSq := threshold * threshold
	n := len(points)

	// Remove duplicates first (brute force). The freed slot is refilled
	// from the back and tested again.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[j].Sub(points[i]).LenSqr() <= tSq {
				n--
				points[j] = points[n]
				j--
			}
		}
	}

	// For each point test if there is a separating plane to all other
	// points. If not, discard it.
	for i := 0; i < n; i++ {
		var extrema [3]mgl32.Vec3
		var pl shape.Plane
		var di float32
		ne := 0
		maySeparate := true
		for j := 0; j < n && maySeparate; j++ {
			if j == i {
				continue
			}
			switch ne {
			case 0:
				extrema[0] = points[j]
				ne++
			case 1:
				// With two extrema known, a point on their segment can
				// never be separated from them.
				extrema[1] = points[j]
				ne++
				if (shape.Segment{A: extrema[0], B: extrema[1]}).Distance(points[i]) <= threshold {
					maySeparate = false
				}
			case 2:
				// Same for a point on the plane of three extrema.
				extrema[2] = points[j]
				ne++
				pl = shape.PlaneFromPoints(extrema[0], extrema[1], extrema[2])
				di = pl.Distance(points[i])
				if math32.Abs(di) <= threshold {
					maySeparate = false
				}
			default:
				if pl.Distance(points[j])*di > 0 {
					// j lies on the same side as i. Try to repair the
					// plane by swapping j for one extremum; the swap
					// separates again when i and the replaced extremum
					// end up on opposite sides.
					q := shape.PlaneFromPoints(points[j], extrema[1], extrema[2])
					d := q.Distance(points[i])
					if d*q.Distance(extrema[0]) < 0 {
						extrema[0], pl, di = points[j], q, d
						break
					}
					q = shape.PlaneFromPoints(extrema[0], points[j], extrema[2])
					d = q.Distance(points[i])
					if d*q.Distance(extrema[1]) < 0 {
						extrema[1], pl, di = points[j], q, d
						break
					}
					q = shape.PlaneFromPoints(extrema[0], extrema[1], points[j])
					d = q.Distance(points[i])
					if d*q.Distance(extrema[2]) < 0 {
						extrema[2], pl, di = points[j], q, d
						break
					}
					// i and j stay on the same side of every repaired
					// plane, so i is not separable.
					maySeparate = false
				}
			}
		}
		if !maySeparate {
			n--
			points[i] = points[n]
			i--
		}
	}
	return points[:n]
}
