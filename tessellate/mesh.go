package tessellate

import (
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/topo"
)

// Mesh is the triangulated rendering of a single body.
type Mesh struct {
	// Positions holds every triangle-corner position. Faces are not
	// welded across the mesh: two adjacent faces each contribute their
	// own copies of a shared vertex so every triangle can carry a flat
	// per-face normal.
	Positions []geom.Vec3
	Normals   []geom.Vec3

	// Indices is the triangle list, three entries (into Positions) per
	// triangle. TriangleFace names the source face for Indices[3*i:3*i+3].
	Indices      []int32
	TriangleFace []topo.FaceID

	// FaceHashes carries FaceHash for every tessellated (and every
	// skipped) face, keyed by FaceID, for provenance lookups that do
	// not care whether the face rendered.
	FaceHashes map[topo.FaceID]uint64

	// Edges holds one entry per distinct body edge, its two endpoints
	// in an arbitrary but stable order; EdgeIDs and EdgeHashes are
	// aligned 1:1 with Edges by index.
	Edges      [][2]geom.Vec3
	EdgeIDs    []topo.EdgeID
	EdgeHashes map[topo.EdgeID]uint64

	// SkippedFaces lists faces that could not be ear-clipped: a
	// non-planar surface, or a planar outline that failed to
	// triangulate.
	SkippedFaces []topo.FaceID
}
