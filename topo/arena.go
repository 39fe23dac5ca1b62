package topo

import "github.com/solidcore/kernel/geom"

type vertexRow struct {
	pos     geom.Vec3
	deleted bool
}

type halfEdgeRow struct {
	vertex  VertexID // origin vertex of this half-edge use
	twin    HalfEdgeID
	next    HalfEdgeID
	prev    HalfEdgeID
	edge    EdgeID
	loop    LoopID
	deleted bool
}

type edgeRow struct {
	halfEdge HalfEdgeID // one canonical half-edge of the pair
	curve    CurveID
	deleted  bool
}

type loopRow struct {
	start   HalfEdgeID // one half-edge on the loop cycle
	face    FaceID
	deleted bool
}

type faceRow struct {
	outer    LoopID
	inner    []LoopID
	surface  SurfaceID
	shell    ShellID
	reversed bool
	deleted  bool
}

type shellRow struct {
	faces   []FaceID
	body    BodyID
	closed  bool
	deleted bool
}

type bodyRow struct {
	shells  []ShellID
	deleted bool
}

type surfaceRow struct {
	surface geom.Surface
	deleted bool
}

type curveRow struct {
	curve   geom.Curve
	deleted bool
}

// Arena is the parallel-array BREP topology store. All
// seven entity tables (plus geometry tables for surfaces and curves)
// live in one Arena; it is the sole owner of every handle it hands
// out. A zero-value Arena is not usable; construct with New.
type Arena struct {
	vertices  []vertexRow
	halfEdges []halfEdgeRow
	edges     []edgeRow
	loops     []loopRow
	faces     []faceRow
	shells    []shellRow
	bodies    []bodyRow
	surfaces  []surfaceRow
	curves    []curveRow

	liveVertices, liveHalfEdges, liveEdges       int
	liveLoops, liveFaces, liveShells, liveBodies int
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Reset discards all entities, returning the Arena to its initial
// empty state. Used by the rebuild engine between rebuilds instead of
// allocating a fresh Arena.
func (a *Arena) Reset() {
	a.vertices = a.vertices[:0]
	a.halfEdges = a.halfEdges[:0]
	a.edges = a.edges[:0]
	a.loops = a.loops[:0]
	a.faces = a.faces[:0]
	a.shells = a.shells[:0]
	a.bodies = a.bodies[:0]
	a.surfaces = a.surfaces[:0]
	a.curves = a.curves[:0]
	a.liveVertices, a.liveHalfEdges, a.liveEdges = 0, 0, 0
	a.liveLoops, a.liveFaces, a.liveShells, a.liveBodies = 0, 0, 0, 0
}

// ---- vertex ----

// AddVertex creates a new vertex at pos and returns its handle.
func (a *Arena) AddVertex(pos geom.Vec3) VertexID {
	a.vertices = append(a.vertices, vertexRow{pos: pos})
	a.liveVertices++
	return VertexID(len(a.vertices) - 1)
}

// VertexPosition returns the position of v.
func (a *Arena) VertexPosition(v VertexID) geom.Vec3 {
	return a.vertices[v].pos
}

// SetVertexPosition overwrites the position of v.
func (a *Arena) SetVertexPosition(v VertexID, pos geom.Vec3) {
	a.vertices[v].pos = pos
}

// DeleteVertex logically removes v. Indices are never reused or
// shifted; a.vertices[v] remains allocated but flagged.
func (a *Arena) DeleteVertex(v VertexID) {
	if !a.vertices[v].deleted {
		a.vertices[v].deleted = true
		a.liveVertices--
	}
}

// VertexLive reports whether v is a live (non-deleted) handle.
func (a *Arena) VertexLive(v VertexID) bool {
	return int(v) >= 0 && int(v) < len(a.vertices) && !a.vertices[v].deleted
}

// VertexCount returns the number of live vertices.
func (a *Arena) VertexCount() int { return a.liveVertices }

// Vertices returns the handles of every live vertex, in handle order.
func (a *Arena) Vertices() []VertexID {
	out := make([]VertexID, 0, a.liveVertices)
	for i, row := range a.vertices {
		if !row.deleted {
			out = append(out, VertexID(i))
		}
	}
	return out
}

// ---- surface / curve geometry ----

// AddSurface stores a surface descriptor and returns its handle.
func (a *Arena) AddSurface(s geom.Surface) SurfaceID {
	a.surfaces = append(a.surfaces, surfaceRow{surface: s})
	return SurfaceID(len(a.surfaces) - 1)
}

// Surface returns the surface descriptor for id.
func (a *Arena) Surface(id SurfaceID) geom.Surface {
	return a.surfaces[id].surface
}

// AddCurve stores a curve descriptor and returns its handle.
func (a *Arena) AddCurve(c geom.Curve) CurveID {
	a.curves = append(a.curves, curveRow{curve: c})
	return CurveID(len(a.curves) - 1)
}

// Curve returns the curve descriptor for id. id may be NullID only if
// the caller first checks CurveID.IsNull(); Curve itself does not
// guard against it, mirroring the arena's cheap-setter philosophy.
func (a *Arena) Curve(id CurveID) geom.Curve {
	return a.curves[id].curve
}
