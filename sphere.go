// Package ei builds tight bounding volumes around 3D point sets.
//
// The package computes minimal enclosing spheres, axis-aligned and
// minimum-volume oriented boxes, and reduces point clouds to the extreme
// points that determine them. The primitive value types live in the shape
// subpackage; this package adds the constructions that need a search over
// the whole set.
//
// For detailed algorithm explanation with pseudocode, see:
// ALGORITHMS.md - "Minimal Enclosing Sphere" section
//
// References:
//   - Welzl: "Smallest enclosing disks (balls and ellipsoids)" (1991)
//   - O'Rourke: "Computational Geometry in C", 2nd ed., chapter 4 (1998)
package ei

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/igarfieldi/Epsilon-Intersection/shape"
)

// mtfList is a singly linked list over a point slice, stored as an index
// arena. Points are never moved; a relink brings any of them to the front
// in O(1), which is all the move-to-front heuristic needs.
type mtfList struct {
	pts  []mgl32.Vec3
	next []int32
	head int32
}

// newMTFList links the points in a random order. The minimal sphere does
// not depend on the order, but the expected-linear bound of the
// move-to-front solver does.
func newMTFList(points []mgl32.Vec3) *mtfList {
	l := &mtfList{pts: points, next: make([]int32, len(points))}
	perm := rand.Perm(len(points))
	l.head = int32(perm[0])
	for i := 0; i+1 < len(perm); i++ {
		l.next[perm[i]] = int32(perm[i+1])
	}
	l.next[perm[len(perm)-1]] = -1
	return l
}

// SphereOf returns the minimal sphere enclosing all points. Between one and
// four of the input points end up on the boundary and determine the result.
// The expected running time is linear in the number of points.
func SphereOf(points []mgl32.Vec3) shape.Sphere {
	if len(points) == 0 {
		panic("ei: bounding sphere of an empty point set")
	}
	if len(points) == 1 {
		return shape.Sphere{Center: points[0]}
	}
	return solve(newMTFList(points), len(points), 1)
}

// solve computes the minimal sphere of the first n linked points, the
// leading support of which are fixed on the boundary.
func solve(l *mtfList, n, support int) shape.Sphere {
	var mbs shape.Sphere
	switch support {
	case 1:
		mbs = shape.Sphere{Center: l.pts[l.head]}
	case 2:
		it := l.next[l.head]
		mbs = shape.SphereFrom2Points(l.pts[l.head], l.pts[it])
	case 3:
		it := l.next[l.head]
		v1 := l.pts[it]
		it = l.next[it]
		mbs = shape.SphereFrom3Points(l.pts[l.head], v1, l.pts[it])
	case 4:
		// Four boundary points determine the sphere, nothing to scan.
		it := l.next[l.head]
		v1 := l.pts[it]
		it = l.next[it]
		v2 := l.pts[it]
		it = l.next[it]
		return shape.SphereFrom4Points(l.pts[l.head], v1, v2, l.pts[it])
	}

	it := l.head
	last := l.head
	for i := 0; i < support; i++ {
		last = it
		it = l.next[it]
	}
	for i := support; i < n; i++ {
		// The list may be relinked below, so capture the successor first.
		next := l.next[it]
		if l.pts[it].Sub(mbs.Center).LenSqr() > mbs.Radius*mbs.Radius {
			// The point violates the candidate sphere, so it must lie on
			// the boundary of the minimal sphere of the points seen so
			// far. Move it to the front and re-solve that prefix with one
			// more boundary point fixed.
			l.next[last] = l.next[it]
			l.next[it] = l.head
			l.head = it
			mbs = solve(l, i+1, support+1)
			// The rebuild reordered the prefix. Walk from the new head to
			// recover the link in front of the resume position.
			last = l.head
			for l.next[last] != next {
				last = l.next[last]
			}
		} else {
			last = it
		}
		it = next
	}
	return mbs
}
