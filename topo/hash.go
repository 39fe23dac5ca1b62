package topo

import (
	"fmt"
	"sort"

	"github.com/solidcore/kernel/loopid"
	"github.com/solidcore/kernel/tol"
)

// FaceHash returns a deterministic identifier for a face's current
// geometry: the canonical-rotation FNV-1a hash (package loopid) of its
// outer loop's vertex positions, quantized to tc's vertex bucket, with
// the reversed flag mixed in so a face and its flip never collide.
// Two faces bounding the same point set in the same cyclic order hash
// identically regardless of which half-edge happens to be the loop's
// stored start — this is what lets operation history track a face
// across a rebuild that reconstructs the arena from scratch.
func (a *Arena) FaceHash(face FaceID, tc *tol.Context) uint64 {
	verts := a.LoopVertices(a.FaceOuterLoop(face))
	keys := make([]string, len(verts))
	for i, v := range verts {
		p := a.VertexPosition(v)
		keys[i] = fmt.Sprintf("%d:%d:%d", tc.SnapKey(p.X), tc.SnapKey(p.Y), tc.SnapKey(p.Z))
	}
	h := loopid.ComputeHash64(keys)
	if a.FaceReversed(face) {
		h ^= 0x9e3779b97f4a7c15
	}
	return h
}

// EdgeHash returns a deterministic identifier for an edge's current
// geometry: the FNV-1a hash (package loopid) of its two endpoint
// positions' vertex-bucket keys, sorted so traversal direction does
// not affect the result. Like FaceHash, this survives an arena rebuilt
// from scratch as long as the edge's endpoints land in the same
// tolerance buckets.
func (a *Arena) EdgeHash(e EdgeID, tc *tol.Context) uint64 {
	h := a.EdgeHalfEdge(e)
	start := a.VertexPosition(a.StartVertex(h))
	end := a.VertexPosition(a.EndVertex(h))
	keys := []string{
		fmt.Sprintf("%d:%d:%d", tc.SnapKey(start.X), tc.SnapKey(start.Y), tc.SnapKey(start.Z)),
		fmt.Sprintf("%d:%d:%d", tc.SnapKey(end.X), tc.SnapKey(end.Y), tc.SnapKey(end.Z)),
	}
	sort.Strings(keys)
	return loopid.ComputeHash64(keys)
}
