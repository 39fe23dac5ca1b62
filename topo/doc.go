// Package topo implements the half-edge BREP topology arena: an
// arena-style store with stable integer handles (VertexID, EdgeID,
// HalfEdgeID, LoopID, FaceID, ShellID, BodyID), each a dense index
// into parallel ("column") arrays covering the
// full half-edge topology: vertices, edges, half-edges, loops, faces,
// shells, and bodies, with referenced surface/curve geometry.
//
// Deletion is logical — a live/deleted flag bit per row — so handles
// never shift and indices already cached by a caller (e.g. operation
// history, tessellation's Mesh.TriangleFace) remain valid for the lifetime of
// the Arena. NullID is the sentinel for "no handle" everywhere a
// reference is optional (a boundary half-edge's Twin, a face with no
// inner loops, …).
//
// Setters in this package construct only valid configurations; they do
// not themselves re-validate global invariants (half-edge pairing,
// loop cycle closure, vertex continuity, containment, manifoldness).
// Structural validation is the separate concern of package validate —
// validators detect inconsistencies after the fact rather than the
// setters rejecting them, keeping the arena's primitives cheap.
package topo
