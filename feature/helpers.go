package feature

import (
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/profile"
)

// loopSegments is one profile loop reoriented so its vertex points wind
// counter-clockwise as seen from the +normal side of plane (the
// convention this package builds every cap and side face against).
// entityIDs[i] and origIndex[i] describe the profile edge that
// generated the segment from pts[i] to pts[(i+1)%n].
type loopSegments struct {
	pts       []geom.Vec3
	entityIDs []string
	origIndex []int
}

// ccwSegments reorients loop's vertex cycle to wind CCW as seen from
// +plane.Normal, reindexing entity provenance to match. A single-edge
// (circle) loop has no orientation to fix and is returned unchanged.
func ccwSegments(loop profile.Loop, plane geom.Plane) loopSegments {
	n := len(loop.Edges)
	pts := loop.VertexPoints(plane)

	entityIDs := make([]string, n)
	origIndex := make([]int, n)
	for i, e := range loop.Edges {
		entityIDs[i] = e.EntityID
		origIndex[i] = i
	}

	if n < 3 {
		return loopSegments{pts: pts, entityIDs: entityIDs, origIndex: origIndex}
	}

	pts2 := make([]geom.Vec2, n)
	for i, p := range pts {
		pts2[i] = plane.To2D(p)
	}
	if geom.IsCCW(pts2) {
		return loopSegments{pts: pts, entityIDs: entityIDs, origIndex: origIndex}
	}

	revPts := make([]geom.Vec3, n)
	revEntity := make([]string, n)
	revIndex := make([]int, n)
	for i := 0; i < n; i++ {
		revPts[i] = pts[n-1-i]
	}
	for i := 0; i < n; i++ {
		src := ((n-2-i)%n + n) % n
		revEntity[i] = loop.Edges[src].EntityID
		revIndex[i] = src
	}
	return loopSegments{pts: revPts, entityIDs: revEntity, origIndex: revIndex}
}

// capLoopPts returns the loop vertex order to build a cap face whose
// surface normal is outward. seg.pts winds CCW as seen from
// +plane.Normal; when outward lies on the +normal side the forward
// order is already correct, otherwise it must be reversed.
func capLoopPts(seg loopSegments, outwardIsPositiveNormal bool) []geom.Vec3 {
	if outwardIsPositiveNormal {
		out := make([]geom.Vec3, len(seg.pts))
		copy(out, seg.pts)
		return out
	}
	n := len(seg.pts)
	out := make([]geom.Vec3, n)
	for i, p := range seg.pts {
		out[n-1-i] = p
	}
	return out
}
