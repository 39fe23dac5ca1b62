package refindex

import (
	"fmt"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/stref"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// Build computes body's reference index. hist is the body's current
// operation history (nil is treated as empty);
// ownerFeatureID is the feature id the body map currently associates
// with body, used as the fallback originFeatureId for any face or
// edge hist cannot attribute to a more specific feature.
func Build(a *topo.Arena, tc *tol.Context, body topo.BodyID, hist *history.Record, ownerFeatureID string) (Index, error) {
	if hist == nil {
		hist = history.New()
	}
	sideByHash := sideFaceIndexByHash(hist)

	var idx Index
	faces := a.AllFacesOfBody(body)
	for i, face := range faces {
		rec := faceRecord(a, tc, face, i, hist, sideByHash, ownerFeatureID)
		enc, err := stref.Encode(rec)
		if err != nil {
			return Index{}, fmt.Errorf("refindex: face %d: %w", i, err)
		}
		idx.FaceIDs = append(idx.FaceIDs, face)
		idx.FaceRefs = append(idx.FaceRefs, enc)
	}

	edgeKind := "edge"
	if hist.FeatureKind != "" {
		edgeKind = hist.FeatureKind + ".edge"
	}
	edges := a.AllEdgesOfBody(body)
	for i, edge := range edges {
		rec := edgeRecord(a, edge, i, ownerFeatureID, edgeKind, hist.ProfileLoopID)
		enc, err := stref.Encode(rec)
		if err != nil {
			return Index{}, fmt.Errorf("refindex: edge %d: %w", i, err)
		}
		idx.EdgeIDs = append(idx.EdgeIDs, edge)
		idx.EdgeRefs = append(idx.EdgeRefs, enc)
	}

	return idx, nil
}

// sideFaceIndexByHash inverts hist.SideFaceMappings so a face hash
// that only shows up there (no FaceHashToOrigin entry, e.g. after a
// boolean failed to carry provenance forward) can still recover its
// profileEdgeIndex.
func sideFaceIndexByHash(hist *history.Record) map[uint64]int {
	out := make(map[uint64]int, len(hist.SideFaceMappings))
	for _, m := range hist.SideFaceMappings {
		out[m.GeneratedFaceHash] = m.ProfileEdgeIndex
	}
	return out
}

func isSideKind(ft history.FaceType) bool {
	return ft == history.FaceExtrudeSide || ft == history.FaceRevolveSide
}

// faceRecord resolves face's localSelector, in
// priority order: a direct FaceHashToOrigin hit, then a bare cap-hash
// match, then a side-mapping match, then a normal-direction heuristic,
// then face.unknown.
func faceRecord(a *topo.Arena, tc *tol.Context, face topo.FaceID, faceIndex int, hist *history.Record, sideByHash map[uint64]int, ownerFeatureID string) stref.Record {
	hash := a.FaceHash(face, tc)
	fp := faceFingerprint(a, face)

	if origin, ok := hist.Lookup(hash); ok {
		data := map[string]interface{}{}
		if isSideKind(origin.FaceType) {
			switch {
			case origin.EntityID != "":
				data["segmentId"] = origin.EntityID
			case sideByHash != nil:
				if pei, ok := sideByHash[hash]; ok {
					data["profileEdgeIndex"] = pei
				} else {
					data["faceIndex"] = faceIndex
				}
			default:
				data["faceIndex"] = faceIndex
			}
		}
		return stref.Record{
			ExpectedType:    stref.ExpectedFace,
			OriginFeatureID: origin.SourceFeatureID,
			LocalSelector:   stref.LocalSelector{Kind: origin.FaceType.String(), Data: data},
			Fingerprint:     fp,
		}
	}

	if hist.TopCapHash != nil && *hist.TopCapHash == hash {
		return stref.Record{
			ExpectedType:    stref.ExpectedFace,
			OriginFeatureID: ownerFeatureID,
			LocalSelector:   stref.LocalSelector{Kind: "extrude.topCap", Data: map[string]interface{}{}},
			Fingerprint:     fp,
		}
	}
	if hist.BottomCapHash != nil && *hist.BottomCapHash == hash {
		return stref.Record{
			ExpectedType:    stref.ExpectedFace,
			OriginFeatureID: ownerFeatureID,
			LocalSelector:   stref.LocalSelector{Kind: "extrude.bottomCap", Data: map[string]interface{}{}},
			Fingerprint:     fp,
		}
	}

	if pei, ok := sideByHash[hash]; ok {
		entityID := hist.ProfileEdgeToEntityID[pei]
		data := map[string]interface{}{}
		if entityID != "" {
			data["segmentId"] = entityID
		} else {
			data["profileEdgeIndex"] = pei
		}
		return stref.Record{
			ExpectedType:    stref.ExpectedFace,
			OriginFeatureID: ownerFeatureID,
			LocalSelector:   stref.LocalSelector{Kind: "extrude.side", Data: data},
			Fingerprint:     fp,
		}
	}

	if fp.Normal != nil {
		nz := fp.Normal.Z
		switch {
		case nz > 0.9:
			return stref.Record{ExpectedType: stref.ExpectedFace, OriginFeatureID: ownerFeatureID, LocalSelector: stref.LocalSelector{Kind: "extrude.topCap", Data: map[string]interface{}{"faceIndex": faceIndex}}, Fingerprint: fp}
		case nz < -0.9:
			return stref.Record{ExpectedType: stref.ExpectedFace, OriginFeatureID: ownerFeatureID, LocalSelector: stref.LocalSelector{Kind: "extrude.bottomCap", Data: map[string]interface{}{"faceIndex": faceIndex}}, Fingerprint: fp}
		default:
			return stref.Record{ExpectedType: stref.ExpectedFace, OriginFeatureID: ownerFeatureID, LocalSelector: stref.LocalSelector{Kind: "extrude.side", Data: map[string]interface{}{"faceIndex": faceIndex}}, Fingerprint: fp}
		}
	}

	return stref.Record{
		ExpectedType:    stref.ExpectedFace,
		OriginFeatureID: ownerFeatureID,
		LocalSelector:   stref.LocalSelector{Kind: "face.unknown", Data: map[string]interface{}{"faceIndex": faceIndex}},
		Fingerprint:     fp,
	}
}

// faceFingerprint computes an area-weighted centroid, absolute area,
// and outward normal for face's outer loop, projected into its own
// surface plane and mapped back to 3D. Faces whose surface is not
// planar (the cylinder/cone/torus seam faces feature
// produces) fall back to a vertex average and a zero size/normal
// rather than failing the whole index.
func faceFingerprint(a *topo.Arena, face topo.FaceID) stref.Fingerprint {
	surf := a.Surface(a.FaceSurface(face))
	verts := a.LoopVertices(a.FaceOuterLoop(face))
	if !surf.IsPlanar() {
		var sum geom.Vec3
		for _, v := range verts {
			sum = sum.Add(a.VertexPosition(v))
		}
		n := float64(len(verts))
		if n == 0 {
			return stref.Fingerprint{}
		}
		return stref.Fingerprint{Centroid: sum.Scale(1 / n), Size: 0}
	}

	plane := surf.Plane
	pts2D := make([]geom.Vec2, len(verts))
	for i, v := range verts {
		pts2D[i] = plane.To2D(a.VertexPosition(v))
	}
	centroidUV := geom.Centroid2(pts2D)
	area := geom.PolygonArea(pts2D)
	normal := plane.Normal
	if a.FaceReversed(face) {
		normal = normal.Neg()
	}
	centroid := plane.From2D(centroidUV)
	return stref.Fingerprint{Centroid: centroid, Size: area, Normal: &normal}
}

// edgeRecord builds edge's persistent reference using the simpler
// edge scheme: an "extrude.edge"/"revolve.edge" kind (a bare "edge"
// when the generating feature is unknown) carrying the edge's
// position as edgeIndex plus the profile's loop identifier when one
// is known. edgeIndex is not merge-stable across booleans — a known
// limitation this record preserves rather than inventing a stronger
// scheme unsupported by the rest of the kernel.
func edgeRecord(a *topo.Arena, edge topo.EdgeID, edgeIndex int, ownerFeatureID, kind, loopID string) stref.Record {
	h := a.EdgeHalfEdge(edge)
	start := a.VertexPosition(a.StartVertex(h))
	end := a.VertexPosition(a.EndVertex(h))
	data := map[string]interface{}{"edgeIndex": edgeIndex}
	if loopID != "" {
		data["loopId"] = loopID
	}
	return stref.Record{
		ExpectedType:    stref.ExpectedEdge,
		OriginFeatureID: ownerFeatureID,
		LocalSelector:   stref.LocalSelector{Kind: kind, Data: data},
		Fingerprint: stref.Fingerprint{
			Centroid: start.Lerp(end, 0.5),
			Size:     start.Distance(end),
		},
	}
}
