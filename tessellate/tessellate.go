package tessellate

import (
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// Tessellate triangulates every planar face of body into mesh
// triangles, and hashes every face and edge of body for provenance
// correlation. It never fails: a face that cannot be triangulated (a
// non-planar surface, or a degenerate polygon) is recorded in
// Mesh.SkippedFaces instead of aborting the whole mesh.
func Tessellate(a *topo.Arena, tc *tol.Context, body topo.BodyID) Mesh {
	mesh := Mesh{
		FaceHashes: make(map[topo.FaceID]uint64),
		EdgeHashes: make(map[topo.EdgeID]uint64),
	}

	for _, face := range a.AllFacesOfBody(body) {
		mesh.FaceHashes[face] = a.FaceHash(face, tc)
		if !tessellateFace(a, face, &mesh) {
			mesh.SkippedFaces = append(mesh.SkippedFaces, face)
		}
	}

	for _, edge := range a.AllEdgesOfBody(body) {
		h := a.EdgeHalfEdge(edge)
		start := a.VertexPosition(a.StartVertex(h))
		end := a.VertexPosition(a.EndVertex(h))
		mesh.Edges = append(mesh.Edges, [2]geom.Vec3{start, end})
		mesh.EdgeIDs = append(mesh.EdgeIDs, edge)
		mesh.EdgeHashes[edge] = a.EdgeHash(edge, tc)
	}

	return mesh
}

// tessellateFace ear-clips face's outer loop (minus its inner loops,
// bridged in) and appends the resulting triangles to mesh. It reports
// false without mutating mesh if face's surface is not planar or its
// projected outline fails to triangulate.
func tessellateFace(a *topo.Arena, face topo.FaceID, mesh *Mesh) bool {
	surf := a.Surface(a.FaceSurface(face))
	if !surf.IsPlanar() {
		return false
	}
	plane := surf.Plane

	outerPts2D := loopPoints2D(a, a.FaceOuterLoop(face), plane)
	if len(outerPts2D) < 3 {
		return false
	}
	if !geom.IsCCW(outerPts2D) {
		outerPts2D = geom.Reversed2(outerPts2D)
	}

	var holes2D [][]geom.Vec2
	for _, inner := range a.FaceInnerLoops(face) {
		pts2D := loopPoints2D(a, inner, plane)
		if len(pts2D) >= 3 {
			holes2D = append(holes2D, pts2D)
		}
	}

	merged2D := outerPts2D
	if len(holes2D) > 0 {
		merged2D = geom.BridgeHoles(outerPts2D, holes2D)
	}

	tris, ok := geom.EarClip(merged2D)
	if !ok || len(tris) == 0 {
		return false
	}

	normal := plane.Normal
	if a.FaceReversed(face) {
		normal = normal.Neg()
	}

	base := int32(len(mesh.Positions))
	for _, uv := range merged2D {
		mesh.Positions = append(mesh.Positions, plane.From2D(uv))
		mesh.Normals = append(mesh.Normals, normal)
	}
	for _, t := range tris {
		mesh.Indices = append(mesh.Indices, base+int32(t[0]), base+int32(t[1]), base+int32(t[2]))
		mesh.TriangleFace = append(mesh.TriangleFace, face)
	}
	return true
}

// loopPoints2D returns loop's vertex positions projected into plane's
// local frame.
func loopPoints2D(a *topo.Arena, loop topo.LoopID, plane geom.Plane) []geom.Vec2 {
	verts := a.LoopVertices(loop)
	pts2D := make([]geom.Vec2, len(verts))
	for i, v := range verts {
		pts2D[i] = plane.To2D(a.VertexPosition(v))
	}
	return pts2D
}
