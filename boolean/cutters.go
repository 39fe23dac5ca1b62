package boolean

import (
	"math"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// coplanarPlanes reports whether p1 and p2 describe the same plane
// (parallel normals and matching origin offset), the condition the
// on_same/on_opposite classification keys off of.
func coplanarPlanes(p1, p2 geom.Plane, tc *tol.Context) bool {
	if p1.Normal.Cross(p2.Normal).Length() > tc.Angle*10 {
		return false
	}
	return math.Abs(p2.DistanceTo(p1.Origin)) <= tc.Scaled(10)
}

// faceOutwardNormal returns face's outward surface normal, honoring
// its Reversed flag the same way the rest of the package does.
func faceOutwardNormal(a *topo.Arena, f topo.FaceID) geom.Vec3 {
	n := a.Surface(a.FaceSurface(f)).Plane.Normal
	if a.FaceReversed(f) {
		return n.Neg()
	}
	return n
}

// faceOuter2D returns face's outer loop, in its own surface plane's
// frame, normalized to CCW-as-seen-from-the-outward-normal.
func faceOuter2D(a *topo.Arena, f topo.FaceID) []geom.Vec2 {
	plane := a.Surface(a.FaceSurface(f)).Plane
	pts := loopPts2D(a, a.FaceOuterLoop(f), plane)
	if a.FaceReversed(f) {
		pts = geom.Reversed2(pts)
	}
	return pts
}

// faceHoles2D returns face's inner (hole) loops in the same frame and
// orientation convention as faceOuter2D.
func faceHoles2D(a *topo.Arena, f topo.FaceID) [][]geom.Vec2 {
	plane := a.Surface(a.FaceSurface(f)).Plane
	var out [][]geom.Vec2
	for _, h := range a.FaceInnerLoops(f) {
		pts := loopPts2D(a, h, plane)
		if a.FaceReversed(f) {
			pts = geom.Reversed2(pts)
		}
		out = append(out, pts)
	}
	return out
}

func pointInAnyHole(p geom.Vec2, holes [][]geom.Vec2) bool {
	for _, h := range holes {
		if geom.PointInPolygon(p, h) {
			return true
		}
	}
	return false
}

// insidePolygonWithHoles reports whether pt lies in outer but not in
// any of holes, combining the even-odd rule across every loop of a
// face with inner loops.
func insidePolygonWithHoles(pt geom.Vec2, outer []geom.Vec2, holes [][]geom.Vec2) bool {
	return geom.PointInPolygon(pt, outer) && !pointInAnyHole(pt, holes)
}

// faceOwnSegments returns segments for every edge of every loop
// (outer and holes) of face, in face's own plane frame.
func faceOwnSegments(a *topo.Arena, f topo.FaceID) []segment2 {
	var segs []segment2
	loops := append([]topo.LoopID{a.FaceOuterLoop(f)}, a.FaceInnerLoops(f)...)
	plane := a.Surface(a.FaceSurface(f)).Plane
	for _, loop := range loops {
		pts := loopPts2D(a, loop, plane)
		n := len(pts)
		for i := 0; i < n; i++ {
			segs = append(segs, segment2{a: pts[i], b: pts[(i+1)%n]})
		}
	}
	return segs
}

// projectFaceSegments returns every loop edge of other, projected into
// targetPlane's frame, as undirected cutter segments.
func projectFaceSegments(a *topo.Arena, other topo.FaceID, targetPlane geom.Plane) []segment2 {
	var segs []segment2
	loops := append([]topo.LoopID{a.FaceOuterLoop(other)}, a.FaceInnerLoops(other)...)
	for _, loop := range loops {
		verts := a.LoopVertices(loop)
		n := len(verts)
		pts := make([]geom.Vec2, n)
		for i, v := range verts {
			pts[i] = targetPlane.To2D(a.VertexPosition(v))
		}
		for i := 0; i < n; i++ {
			segs = append(segs, segment2{a: pts[i], b: pts[(i+1)%n]})
		}
	}
	return segs
}

// interval is a closed [lo,hi] range of the line parameter t used by
// the transverse cutter derivation below.
type interval struct{ lo, hi float64 }

// lineSegParam intersects the infinite line origin+t*dir with the
// segment p0-p1, returning the line parameter t and ok=true when they
// cross within the segment's span.
func lineSegParam(origin, dir, p0, p1 geom.Vec2) (float64, bool) {
	e := p1.Sub(p0)
	det := e.Cross(dir)
	if math.Abs(det) <= 1e-12 {
		return 0, false
	}
	diff := p0.Sub(origin)
	u := dir.Cross(diff) / det
	if u < 0 || u > 1 {
		return 0, false
	}
	t := e.Cross(diff) / det
	return t, true
}

// lineIntervalsInsideFace walks the line origin+t*dir against every
// loop (outer plus holes) of face and returns the sorted, disjoint
// t-intervals where the line is inside face's material, via even-odd
// crossing parity across all loops combined.
func lineIntervalsInsideFace(a *topo.Arena, face topo.FaceID, origin, dir geom.Vec2) []interval {
	outer := faceOuter2D(a, face)
	holes := faceHoles2D(a, face)
	allLoops := append([][]geom.Vec2{outer}, holes...)

	var ts []float64
	for _, loop := range allLoops {
		n := len(loop)
		for i := 0; i < n; i++ {
			if t, ok := lineSegParam(origin, dir, loop[i], loop[(i+1)%n]); ok {
				ts = append(ts, t)
			}
		}
	}
	ts = dedupFloats(ts, 1e-9)

	var out []interval
	for i := 0; i+1 < len(ts); i += 2 {
		out = append(out, interval{lo: ts[i], hi: ts[i+1]})
	}
	return out
}

// intersectIntervals merges two sorted, disjoint interval lists into
// their pairwise overlap, the shared-chord step of the transverse
// cutter derivation below.
func intersectIntervals(a, b []interval) []interval {
	var out []interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := math.Max(a[i].lo, b[j].lo)
		hi := math.Min(a[i].hi, b[j].hi)
		if lo < hi {
			out = append(out, interval{lo: lo, hi: hi})
		}
		if a[i].hi < b[j].hi {
			i++
		} else {
			j++
		}
	}
	return out
}

// transverseCutterSegments computes the chord(s) that other's boundary
// leaves across face when the two lie on distinct, intersecting
// planes: the 3D line shared by both planes is intersected against
// face's own material and other's own material independently (each
// via the even-odd loop walk above, so neither face needs to be
// convex), and only the overlap of the two interval sets survives as a
// cutter chord, expressed in face's local frame.
func transverseCutterSegments(a *topo.Arena, tc *tol.Context, face, other topo.FaceID, facePlane geom.Plane, pt0, dir3 geom.Vec3) []segment2 {
	origin2 := facePlane.To2D(pt0)
	dirTip := facePlane.To2D(pt0.Add(dir3))
	dir2 := dirTip.Sub(origin2)

	otherPlane := a.Surface(a.FaceSurface(other)).Plane
	otherOrigin2 := otherPlane.To2D(pt0)
	otherDirTip := otherPlane.To2D(pt0.Add(dir3))
	otherDir2 := otherDirTip.Sub(otherOrigin2)

	ivFace := lineIntervalsInsideFace(a, face, origin2, dir2)
	ivOther := lineIntervalsInsideFace(a, other, otherOrigin2, otherDir2)
	kept := intersectIntervals(ivFace, ivOther)

	var segs []segment2
	for _, iv := range kept {
		p0 := facePlane.To2D(pt0.Add(dir3.Scale(iv.lo)))
		p1 := facePlane.To2D(pt0.Add(dir3.Scale(iv.hi)))
		if p0.Distance(p1) <= tc.Length {
			continue
		}
		segs = append(segs, segment2{a: p0, b: p1})
	}
	return segs
}

// cutterSegments collects every segment otherFaces contributes to
// face's imprint arrangement: a coplanar other face
// projects its raw boundary directly in as cutter chords, and a
// transverse other face contributes the shared-plane-intersection
// chord clipped to both faces' material.
func cutterSegments(a *topo.Arena, tc *tol.Context, face topo.FaceID, otherFaces []topo.FaceID) []segment2 {
	facePlane := a.Surface(a.FaceSurface(face)).Plane
	var segs []segment2
	for _, g := range otherFaces {
		gPlane := a.Surface(a.FaceSurface(g)).Plane
		if coplanarPlanes(facePlane, gPlane, tc) {
			segs = append(segs, projectFaceSegments(a, g, facePlane)...)
			continue
		}
		pt0, dir, ok := geom.PlaneIntersection(facePlane, gPlane, tc.Angle)
		if !ok {
			continue
		}
		segs = append(segs, transverseCutterSegments(a, tc, face, g, facePlane, pt0, dir)...)
	}
	return segs
}
