package topo

import "github.com/solidcore/kernel/geom"

// AddHalfEdge creates a half-edge whose origin is v. Its edge, loop,
// next, prev, and twin all start as NullID; ConnectCycle and
// SetTwins/SetBoundaryEdge wire them afterward.
func (a *Arena) AddHalfEdge(v VertexID) HalfEdgeID {
	a.halfEdges = append(a.halfEdges, halfEdgeRow{
		vertex: v, twin: NullID, next: NullID, prev: NullID,
		edge: NullID, loop: NullID,
	})
	a.liveHalfEdges++
	return HalfEdgeID(len(a.halfEdges) - 1)
}

// SetTwins pairs h0 and h1 as twins of each other's edge, creating a
// new Edge row referencing curve (NullID if none) and wiring both
// half-edges' Edge field to it. Returns the new EdgeID.
func (a *Arena) SetTwins(h0, h1 HalfEdgeID, curve CurveID) EdgeID {
	a.edges = append(a.edges, edgeRow{halfEdge: h0, curve: curve})
	e := EdgeID(len(a.edges) - 1)
	a.liveEdges++
	a.halfEdges[h0].twin = h1
	a.halfEdges[h0].edge = e
	if !h1.IsNull() {
		a.halfEdges[h1].twin = h0
		a.halfEdges[h1].edge = e
	}
	return e
}

// SetBoundaryEdge wires h as a boundary half-edge (no twin), creating
// its Edge row.
func (a *Arena) SetBoundaryEdge(h HalfEdgeID, curve CurveID) EdgeID {
	return a.SetTwins(h, NullID, curve)
}

// LinkNextPrev sets a.next(h) = n and a.prev(n) = h, the two halves of
// a single cycle link.
func (a *Arena) LinkNextPrev(h, n HalfEdgeID) {
	a.halfEdges[h].next = n
	a.halfEdges[n].prev = h
}

// Twin returns the twin half-edge of h, or NullID if h is a boundary
// half-edge.
func (a *Arena) Twin(h HalfEdgeID) HalfEdgeID { return a.halfEdges[h].twin }

// Next returns the next half-edge in h's loop cycle.
func (a *Arena) Next(h HalfEdgeID) HalfEdgeID { return a.halfEdges[h].next }

// Prev returns the previous half-edge in h's loop cycle.
func (a *Arena) Prev(h HalfEdgeID) HalfEdgeID { return a.halfEdges[h].prev }

// Edge returns the edge h belongs to.
func (a *Arena) Edge(h HalfEdgeID) EdgeID { return a.halfEdges[h].edge }

// HalfEdgeLoop returns the loop h belongs to.
func (a *Arena) HalfEdgeLoop(h HalfEdgeID) LoopID { return a.halfEdges[h].loop }

// StartVertex returns the origin vertex of half-edge h.
func (a *Arena) StartVertex(h HalfEdgeID) VertexID { return a.halfEdges[h].vertex }

// EndVertex returns the terminal vertex of half-edge h: the origin of
// next(h), the vertex-continuity invariant (endVertex(prev(h)) ==
// startVertex(h), applied at h itself).
func (a *Arena) EndVertex(h HalfEdgeID) VertexID {
	n := a.halfEdges[h].next
	if n.IsNull() {
		return NullID // only valid transiently, before the loop is closed
	}
	return a.halfEdges[n].vertex
}

// Direction returns the unit vector from h's start vertex to its end
// vertex.
func (a *Arena) Direction(h HalfEdgeID) geom.Vec3 {
	start := a.VertexPosition(a.StartVertex(h))
	end := a.VertexPosition(a.EndVertex(h))
	return end.Sub(start).Normalized()
}

// EdgeHalfEdge returns the canonical half-edge stored for e.
func (a *Arena) EdgeHalfEdge(e EdgeID) HalfEdgeID { return a.edges[e].halfEdge }

// EdgeCurve returns the curve referenced by e (NullID if none).
func (a *Arena) EdgeCurve(e EdgeID) CurveID { return a.edges[e].curve }

// EdgeOtherHalf returns the half-edge on the opposite side of e from
// h (h's twin), for the half-edge h that belongs to e.
func (a *Arena) EdgeOtherHalf(e EdgeID, h HalfEdgeID) HalfEdgeID {
	canon := a.edges[e].halfEdge
	if canon == h {
		return a.halfEdges[h].twin
	}
	return canon
}

// EdgeCount returns the number of live edges.
func (a *Arena) EdgeCount() int { return a.liveEdges }

// HalfEdgeCount returns the number of live half-edges.
func (a *Arena) HalfEdgeCount() int { return a.liveHalfEdges }

// ---- loops ----

// AddLoop creates an empty loop whose cycle starts at start (which
// must already have its next/prev links set up by the caller via
// LinkNextPrev) and stamps every half-edge on the cycle with the new
// LoopID.
func (a *Arena) AddLoop(start HalfEdgeID) LoopID {
	a.loops = append(a.loops, loopRow{start: start, face: NullID})
	id := LoopID(len(a.loops) - 1)
	a.liveLoops++
	h := start
	for {
		a.halfEdges[h].loop = id
		h = a.halfEdges[h].next
		if h == start || h.IsNull() {
			break
		}
	}
	return id
}

// LoopStart returns one half-edge on loop's cycle.
func (a *Arena) LoopStart(loop LoopID) HalfEdgeID { return a.loops[loop].start }

// LoopFace returns the face loop belongs to.
func (a *Arena) LoopFace(loop LoopID) FaceID { return a.loops[loop].face }

// LoopHalfEdges returns every half-edge on loop's cycle, in cycle
// order starting from LoopStart.
func (a *Arena) LoopHalfEdges(loop LoopID) []HalfEdgeID {
	start := a.loops[loop].start
	if start.IsNull() {
		return nil
	}
	out := []HalfEdgeID{start}
	h := a.halfEdges[start].next
	for h != start && !h.IsNull() && len(out) <= len(a.halfEdges) {
		out = append(out, h)
		h = a.halfEdges[h].next
	}
	return out
}

// LoopVertices returns the ordered cycle of origin vertices for loop.
func (a *Arena) LoopVertices(loop LoopID) []VertexID {
	hs := a.LoopHalfEdges(loop)
	out := make([]VertexID, len(hs))
	for i, h := range hs {
		out[i] = a.StartVertex(h)
	}
	return out
}

// LoopCount returns the number of live loops.
func (a *Arena) LoopCount() int { return a.liveLoops }
