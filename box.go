package ei

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/igarfieldi/Epsilon-Intersection/shape"
)

// colinearEps rejects frame cross products too short to be trusted.
const colinearEps = 1e-6

// BoxOf returns the axis-aligned bounding box of a point set.
func BoxOf(points []mgl32.Vec3) shape.Box {
	if len(points) == 0 {
		panic("ei: bounding box of an empty point set")
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = minElem(min, p)
		max = maxElem(max, p)
	}
	return shape.Box{Min: min, Max: max}
}

// OBoxWithOrientation returns the tightest box with the given orientation
// around a point set. The points are rotated into the local frame, bounded
// axis aligned there, and the center is mapped back to world space.
func OBoxWithOrientation(orientation mgl32.Quat, points []mgl32.Vec3) shape.OBox {
	if len(points) == 0 {
		panic("ei: oriented box of an empty point set")
	}
	min := orientation.Rotate(points[0])
	max := min
	for _, p := range points[1:] {
		lp := orientation.Rotate(p)
		min = minElem(min, lp)
		max = maxElem(max, lp)
	}
	return shape.OBox{
		Center:      orientation.Conjugate().Rotate(min.Add(max).Mul(0.5)),
		Sides:       max.Sub(min),
		Orientation: orientation,
	}
}

// OBoxOf returns a small oriented bounding box of a point set. Every
// combination of three points proposes a frame (first two span the x axis,
// the third tilts the y axis) and the tightest fit over all frames wins, by
// volume. The exact minimum-volume box can have other orientations, but the
// heuristic comes close at O(n⁴) cost. Reducing the cloud with ConvexSet
// first keeps n small.
//
// For detailed algorithm explanation with pseudocode, see:
// ALGORITHMS.md - "Oriented Box Fitting" section
func OBoxOf(points []mgl32.Vec3) shape.OBox {
	if len(points) == 0 {
		panic("ei: oriented box of an empty point set")
	}
	switch len(points) {
	case 1:
		return shape.OBox{Center: points[0], Orientation: mgl32.QuatIdent()}
	case 2:
		connection := points[1].Sub(points[0])
		length := connection.Len()
		if length == 0 {
			return shape.OBox{Center: points[0], Orientation: mgl32.QuatIdent()}
		}
		return shape.OBox{
			Center:      points[0].Add(connection.Mul(0.5)),
			Sides:       mgl32.Vec3{length, 0, 0},
			Orientation: mgl32.QuatBetweenVectors(connection.Mul(1/length), mgl32.Vec3{1, 0, 0}),
		}
	}

	var best shape.OBox
	bestVolume := math32.Inf(1)
	for i := 0; i < len(points)-2; i++ {
		for j := i + 1; j < len(points)-1; j++ {
			connection := points[i].Sub(points[j])
			if connection.LenSqr() == 0 {
				continue
			}
			xAxis := connection.Normalize()
			for k := j + 1; k < len(points); k++ {
				var frame mgl32.Quat
				yAxis := xAxis.Cross(points[i].Sub(points[k]))
				if yAxis.Len() < colinearEps {
					// Colinear triple, only the x axis is constrained.
					frame = mgl32.QuatBetweenVectors(xAxis, mgl32.Vec3{1, 0, 0})
				} else {
					yAxis = yAxis.Normalize()
					frame = basisOrientation(xAxis, yAxis, xAxis.Cross(yAxis))
				}
				fit := OBoxWithOrientation(frame, points)
				if v := fit.Sides[0] * fit.Sides[1] * fit.Sides[2]; v < bestVolume {
					best, bestVolume = fit, v
				}
			}
		}
	}
	if math32.IsInf(bestVolume, 1) {
		// No triple proposed a frame, so the first two points of every
		// combination coincide. Fit along the first distinct pair, or
		// collapse to a point box.
		for i := 0; i < len(points); i++ {
			for j := i + 1; j < len(points); j++ {
				connection := points[i].Sub(points[j])
				if connection.LenSqr() > 0 {
					frame := mgl32.QuatBetweenVectors(connection.Normalize(), mgl32.Vec3{1, 0, 0})
					return OBoxWithOrientation(frame, points)
				}
			}
		}
		return shape.OBox{Center: points[0], Orientation: mgl32.QuatIdent()}
	}
	return best
}

// basisOrientation converts an orthonormal world to local basis, given as
// rows, into a quaternion.
func basisOrientation(x, y, z mgl32.Vec3) mgl32.Quat {
	return mgl32.Mat4ToQuat(mgl32.Mat3FromRows(x, y, z).Mat4())
}

func minElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2])}
}

func maxElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2])}
}
