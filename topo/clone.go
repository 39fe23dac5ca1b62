package topo

// Clone returns a deep copy of a: every table is copied so that
// mutating the clone (e.g. a speculative boolean attempt) never
// affects the original.
func (a *Arena) Clone() *Arena {
	b := &Arena{
		vertices:  append([]vertexRow(nil), a.vertices...),
		halfEdges: append([]halfEdgeRow(nil), a.halfEdges...),
		edges:     append([]edgeRow(nil), a.edges...),
		loops:     append([]loopRow(nil), a.loops...),
		surfaces:  append([]surfaceRow(nil), a.surfaces...),
		curves:    append([]curveRow(nil), a.curves...),

		liveVertices:  a.liveVertices,
		liveHalfEdges: a.liveHalfEdges,
		liveEdges:     a.liveEdges,
		liveLoops:     a.liveLoops,
		liveFaces:     a.liveFaces,
		liveShells:    a.liveShells,
		liveBodies:    a.liveBodies,
	}
	b.faces = make([]faceRow, len(a.faces))
	for i, f := range a.faces {
		b.faces[i] = f
		b.faces[i].inner = append([]LoopID(nil), f.inner...)
	}
	b.shells = make([]shellRow, len(a.shells))
	for i, s := range a.shells {
		b.shells[i] = s
		b.shells[i].faces = append([]FaceID(nil), s.faces...)
	}
	b.bodies = make([]bodyRow, len(a.bodies))
	for i, bd := range a.bodies {
		b.bodies[i] = bd
		b.bodies[i].shells = append([]ShellID(nil), bd.shells...)
	}
	return b
}
