package topo

import "github.com/solidcore/kernel/geom"

// ConnectCycle wires next/prev links around hs in order (hs[i].next =
// hs[i+1], wrapping), then creates and returns the Loop over that
// cycle. hs must already have their origin vertices set via
// AddHalfEdge.
func (a *Arena) ConnectCycle(hs []HalfEdgeID) LoopID {
	n := len(hs)
	for i := 0; i < n; i++ {
		a.LinkNextPrev(hs[i], hs[(i+1)%n])
	}
	return a.AddLoop(hs[0])
}

// NewVertexLoop creates one vertex per position in pts (in order), one
// half-edge per consecutive pair (wrapping, so len(pts) half-edges
// total), links them into a cycle, and creates the Loop. It does not
// create Edge rows or pair twins — callers do that afterward (e.g. via
// MatchTwins, or directly via SetTwins/SetBoundaryEdge) once they know
// which half-edges are shared with a neighboring face.
//
// Returns the new LoopID, the half-edges in the same order as pts
// (half-edge i starts at pts[i]), and the vertices created.
func (a *Arena) NewVertexLoop(pts []geom.Vec3) (LoopID, []HalfEdgeID, []VertexID) {
	verts := make([]VertexID, len(pts))
	hs := make([]HalfEdgeID, len(pts))
	for i, p := range pts {
		verts[i] = a.AddVertex(p)
	}
	for i := range pts {
		hs[i] = a.AddHalfEdge(verts[i])
	}
	loop := a.ConnectCycle(hs)
	return loop, hs, verts
}

// MatchTwins walks every live half-edge without a twin and without an
// Edge row, buckets its (start,end) vertex-position pair by the
// tolerance context's vertex bucket key, and pairs half-edges whose
// bucketed endpoints are reversed of each other: used by the boolean
// evaluator's stitch stage and by
// extrude/revolve to close up a freshly built shell. Returns the
// number of non-manifold edges found (buckets with a half-edge count
// other than exactly 2 among those missing a twin).
func (a *Arena) MatchTwins(bucketKey func(geom.Vec3) int64) int {
	type ukey struct{ lo, hi int64 } // unordered endpoint-bucket pair

	group := make(map[ukey][]HalfEdgeID)
	var pending []HalfEdgeID
	for i := range a.halfEdges {
		h := HalfEdgeID(i)
		row := &a.halfEdges[h]
		if row.deleted || !row.twin.IsNull() || !row.edge.IsNull() {
			continue
		}
		pending = append(pending, h)
		ka := bucketKey(a.VertexPosition(row.vertex))
		kb := bucketKey(a.VertexPosition(a.EndVertex(h)))
		k := ukey{ka, kb}
		if ka > kb {
			k = ukey{kb, ka}
		}
		group[k] = append(group[k], h)
	}

	nonManifold := 0
	seen := make(map[HalfEdgeID]bool)
	for _, h := range pending {
		if seen[h] {
			continue
		}
		row := &a.halfEdges[h]
		ka := bucketKey(a.VertexPosition(row.vertex))
		kb := bucketKey(a.VertexPosition(a.EndVertex(h)))
		k := ukey{ka, kb}
		if ka > kb {
			k = ukey{kb, ka}
		}
		candidates := group[k]
		if len(candidates) != 2 {
			nonManifold++
		}

		var partner HalfEdgeID = NullID
		for _, c := range candidates {
			if c == h || seen[c] {
				continue
			}
			// A true twin traverses the shared edge in the opposite
			// direction: its origin matches h's end vertex bucket.
			cStart := bucketKey(a.VertexPosition(a.halfEdges[c].vertex))
			if cStart == kb {
				partner = c
				break
			}
		}
		if partner.IsNull() {
			a.SetBoundaryEdge(h, NullID)
			seen[h] = true
			continue
		}
		a.SetTwins(h, partner, NullID)
		seen[h] = true
		seen[partner] = true
	}
	return nonManifold
}
