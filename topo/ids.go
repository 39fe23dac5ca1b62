package topo

// NullID is the sentinel denoting "no handle" for every ID type in
// this package.
const NullID = -1

// VertexID indexes the vertex table.
type VertexID int32

// EdgeID indexes the edge table.
type EdgeID int32

// HalfEdgeID indexes the half-edge table.
type HalfEdgeID int32

// LoopID indexes the loop table.
type LoopID int32

// FaceID indexes the face table.
type FaceID int32

// ShellID indexes the shell table.
type ShellID int32

// BodyID indexes the body table.
type BodyID int32

// SurfaceID indexes the surface geometry table.
type SurfaceID int32

// CurveID indexes the curve geometry table.
type CurveID int32

// IsNull reports whether id is the sentinel NullID.
func (id VertexID) IsNull() bool { return id == NullID }

// IsNull reports whether id is the sentinel NullID.
func (id EdgeID) IsNull() bool { return id == NullID }

// IsNull reports whether id is the sentinel NullID.
func (id HalfEdgeID) IsNull() bool { return id == NullID }

// IsNull reports whether id is the sentinel NullID.
func (id LoopID) IsNull() bool { return id == NullID }

// IsNull reports whether id is the sentinel NullID.
func (id FaceID) IsNull() bool { return id == NullID }

// IsNull reports whether id is the sentinel NullID.
func (id ShellID) IsNull() bool { return id == NullID }

// IsNull reports whether id is the sentinel NullID.
func (id BodyID) IsNull() bool { return id == NullID }

// IsNull reports whether id is the sentinel NullID.
func (id SurfaceID) IsNull() bool { return id == NullID }

// IsNull reports whether id is the sentinel NullID.
func (id CurveID) IsNull() bool { return id == NullID }
