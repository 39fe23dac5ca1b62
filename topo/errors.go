package topo

import "errors"

// Sentinel errors naming a handle outside the arena's live set.
// Structural consistency is a validate-package concern. The Arena's
// own accessors index their tables directly and do not return these.
var (
	// ErrVertexNotFound indicates a VertexID outside the live table.
	ErrVertexNotFound = errors.New("topo: vertex not found")

	// ErrEdgeNotFound indicates an EdgeID outside the live table.
	ErrEdgeNotFound = errors.New("topo: edge not found")

	// ErrHalfEdgeNotFound indicates a HalfEdgeID outside the live table.
	ErrHalfEdgeNotFound = errors.New("topo: half-edge not found")

	// ErrLoopNotFound indicates a LoopID outside the live table.
	ErrLoopNotFound = errors.New("topo: loop not found")

	// ErrFaceNotFound indicates a FaceID outside the live table.
	ErrFaceNotFound = errors.New("topo: face not found")

	// ErrShellNotFound indicates a ShellID outside the live table.
	ErrShellNotFound = errors.New("topo: shell not found")

	// ErrBodyNotFound indicates a BodyID outside the live table.
	ErrBodyNotFound = errors.New("topo: body not found")

	// ErrSurfaceNotFound indicates a SurfaceID outside the live table.
	ErrSurfaceNotFound = errors.New("topo: surface not found")
)
