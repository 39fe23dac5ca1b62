package boolean

import (
	"math"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// pieceClass tags a compoundPiece's relationship to the other
// operand.
type pieceClass uint8

const (
	classOutside pieceClass = iota
	classInside
	classOnSame
	classOnOpposite
)

// atomicPiece is one bounded cycle traced out of a face's imprint
// arrangement, before containment nesting groups atoms into the
// compound (outer-plus-holes) pieces classification actually works on.
type atomicPiece struct {
	pts      []geom.Vec2
	area     float64 // always positive; pts is CCW
	centroid geom.Vec2
}

// buildContainmentForest assigns each atom its direct container: the
// smallest-area atom whose polygon contains the atom's centroid, or -1
// if none does (a root / outermost atom).
func buildContainmentForest(atoms []atomicPiece) []int {
	parent := make([]int, len(atoms))
	for i, p := range atoms {
		best, bestArea := -1, math.Inf(1)
		for j, q := range atoms {
			if i == j || q.area <= p.area {
				continue
			}
			if q.area < bestArea && geom.PointInPolygon(p.centroid, q.pts) {
				best, bestArea = j, q.area
			}
		}
		parent[i] = best
	}
	return parent
}

// representativePoint picks a point inside outer but outside every one
// of holes, for classifying a compound piece against the other
// operand. The polygon's own centroid is tried first; if it falls
// inside a hole (e.g. a square whose centroid coincides with a
// concentric hole's), a probe moved inward from each edge midpoint is
// tried until one lands in the actual material.
func representativePoint(outer []geom.Vec2, holes [][]geom.Vec2) geom.Vec2 {
	c := geom.Centroid2(outer)
	if !pointInAnyHole(c, holes) {
		return c
	}
	n := len(outer)
	for i := 0; i < n; i++ {
		mid := outer[i].Add(outer[(i+1)%n]).Scale(0.5)
		cand := mid.Add(c.Sub(mid).Scale(0.5))
		if geom.PointInPolygon(cand, outer) && !pointInAnyHole(cand, holes) {
			return cand
		}
	}
	return c
}

var rayDir3 = geom.Vec3{X: 0.5773502691896258, Y: 0.5773502691896258, Z: 0.5773502691896258}

// rayCastInsideBody casts a ray from origin along the fixed generic
// direction rayDir3 (chosen to avoid aligning with any axis-aligned
// face normal) against faces, and returns whether the crossing count
// is odd, the practical realization of the signed-crossing
// inside/outside rule.
func rayCastInsideBody(a *topo.Arena, tc *tol.Context, origin geom.Vec3, faces []topo.FaceID) bool {
	count := 0
	for _, f := range faces {
		plane := a.Surface(a.FaceSurface(f)).Plane
		denom := rayDir3.Dot(plane.Normal)
		if math.Abs(denom) <= tc.Angle {
			continue
		}
		t := plane.Origin.Sub(origin).Dot(plane.Normal) / denom
		if t <= tc.Length {
			continue
		}
		hit := origin.Add(rayDir3.Scale(t))
		uv := plane.To2D(hit)
		if insidePolygonWithHoles(uv, faceOuter2D(a, f), faceHoles2D(a, f)) {
			count++
		}
	}
	return count%2 == 1
}

// classifyCompound classifies a test point (in face's own plane,
// offset outward in 3D before any ray cast) against otherFaces: a
// coplanar other face found to contain the point decides
// on_same/on_opposite directly from normal agreement; otherwise a
// ray cast from a point nudged off the plane along its outward normal
// decides inside/outside.
func classifyCompound(a *topo.Arena, tc *tol.Context, facePlane geom.Plane, outwardNormal geom.Vec3, testPt2D geom.Vec2, otherFaces []topo.FaceID) pieceClass {
	pt3D := facePlane.From2D(testPt2D)

	for _, g := range otherFaces {
		gPlane := a.Surface(a.FaceSurface(g)).Plane
		if !coplanarPlanes(facePlane, gPlane, tc) {
			continue
		}
		uv := gPlane.To2D(pt3D)
		if !insidePolygonWithHoles(uv, faceOuter2D(a, g), faceHoles2D(a, g)) {
			continue
		}
		if outwardNormal.Dot(faceOutwardNormal(a, g)) > 0 {
			return classOnSame
		}
		return classOnOpposite
	}

	offsetPt := pt3D.Add(outwardNormal.Scale(tc.Scaled(10)))
	if rayCastInsideBody(a, tc, offsetPt, otherFaces) {
		return classInside
	}
	return classOutside
}
