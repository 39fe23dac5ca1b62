package feature

import (
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// Extrude builds a body by translating prof along its plane's normal.
// One bottom cap and one top cap are produced per loop, plus one side
// face per profile edge (or, for a single-curve circle loop, one
// seam-bounded cylindrical side face). The faces of every loop go into
// the body's single shell, one shell however many loops the profile
// has; true nested holes (an outer loop with an
// inner loop cut from it) are not modeled here — combine separately
// extruded bodies with the boolean evaluator's subtract operation
// instead.
func Extrude(a *topo.Arena, tc *tol.Context, prof profile.Profile, params ExtrudeParams) (Result, error) {
	if len(prof.Loops) == 0 {
		return Result{}, ErrOpenProfile
	}

	sign := 1.0
	if params.DirectionSign < 0 {
		sign = -1
	}

	dist := params.resolvedDistance()
	if tc.IsZero(dist) {
		return Result{}, ErrZeroDistance
	}
	if dist < 0 {
		sign = -sign
	}
	dist = absFloat(dist)

	normal := prof.Plane.Normal
	sweepVec := normal.Scale(sign * dist)
	bottomNormal := normal.Scale(-sign)
	topNormal := normal.Scale(sign)
	bottomPlane := geom.NewPlane(prof.Plane.Origin, bottomNormal, prof.Plane.XDir)
	topPlane := geom.NewPlane(prof.Plane.Origin.Add(sweepVec), topNormal, prof.Plane.XDir)

	body := a.AddBody()
	shell := a.AddShell()
	a.AddShellToBody(body, shell)
	hist := history.New()
	hist.FeatureKind = "extrude"
	if len(prof.Loops) == 1 {
		hist.ProfileLoopID = prof.Loops[0].ID
	}

	bottomSurf := a.AddSurface(geom.NewPlaneSurface(bottomPlane))
	topSurf := a.AddSurface(geom.NewPlaneSurface(topPlane))

	for _, loop := range prof.Loops {
		seg := ccwSegments(loop, prof.Plane)
		n := len(seg.pts)

		// lifted[i] is seg.pts[i] translated to the top plane; the cap
		// point slices are orientation-adjusted copies and must not be
		// indexed against seg.pts.
		lifted := make([]geom.Vec3, n)
		for i, p := range seg.pts {
			lifted[i] = p.Add(sweepVec)
		}
		bottomPts := capLoopPts(seg, sign < 0)
		topPts := capLoopPts(seg, sign > 0)
		for i := range topPts {
			topPts[i] = topPts[i].Add(sweepVec)
		}

		bottomLoop, _, _ := a.NewVertexLoop(bottomPts)
		bottomFace := a.AddFace(bottomLoop, bottomSurf)
		a.AddFaceToShell(shell, bottomFace)
		hist.SetCap(history.FaceBottomCap, a.FaceHash(bottomFace, tc), params.SourceFeatureID)

		topLoop, _, _ := a.NewVertexLoop(topPts)
		topFace := a.AddFace(topLoop, topSurf)
		a.AddFaceToShell(shell, topFace)
		hist.SetCap(history.FaceTopCap, a.FaceHash(topFace, tc), params.SourceFeatureID)

		if n == 1 {
			buildCylinderSide(a, tc, hist, shell, seg.pts[0], seg.pts[0].Add(sweepVec), seg.entityIDs[0], seg.origIndex[0], params.SourceFeatureID)
			continue
		}

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			// Walk the boundary so the quad's winding puts its normal
			// outward: forward for a sweep along +normal, backward for
			// a sweep against it.
			sidePts := []geom.Vec3{seg.pts[i], seg.pts[j], lifted[j], lifted[i]}
			if sign < 0 {
				sidePts = []geom.Vec3{seg.pts[j], seg.pts[i], lifted[i], lifted[j]}
			}
			sideSurf := a.AddSurface(sideQuadSurface(sidePts))
			sideLoop, _, _ := a.NewVertexLoop(sidePts)
			sideFace := a.AddFace(sideLoop, sideSurf)
			a.AddFaceToShell(shell, sideFace)
			hist.AddSide(seg.origIndex[i], a.FaceHash(sideFace, tc), seg.entityIDs[i], params.SourceFeatureID, history.FaceExtrudeSide)
		}
	}

	a.MatchTwins(tc.SnapKey3)
	a.SetShellClosed(shell, true)

	return Result{Body: body, Shell: shell, History: hist}, nil
}

// sideQuadSurface fits a planar surface through a (bottom-i,
// bottom-i+1, top-i+1, top-i) quad. Exact for line profile edges; an
// approximation (the chordal plane) for arc edges, where the true side
// surface is a cylinder — this kernel's Surface union does not carry
// cylinder parameters, so curved side faces are flattened to their
// chord. Any body built from such a profile will still fail the
// boolean evaluator's planarity gate if it is combined with another
// body, which is the documented boundary of this kernel's scope.
func sideQuadSurface(pts []geom.Vec3) geom.Surface {
	u := pts[1].Sub(pts[0])
	v := pts[3].Sub(pts[0])
	n := u.Cross(v)
	if n.Length() == 0 {
		n = pts[2].Sub(pts[0]).Cross(v)
	}
	return geom.NewPlaneSurface(geom.NewPlane(pts[0], n, u))
}

// buildCylinderSide builds the two-vertex seam representation of a
// circle loop's lateral face: a single face whose boundary loop walks
// up the seam and back down it. The surface is tagged Cylinder with no
// populated parameters (see sideQuadSurface's doc comment).
func buildCylinderSide(a *topo.Arena, tc *tol.Context, hist *history.Record, shell topo.ShellID, bottomPt, topPt geom.Vec3, entityID string, origIndex int, sourceFeatureID string) {
	bv := a.AddVertex(bottomPt)
	tv := a.AddVertex(topPt)
	up := a.AddHalfEdge(bv)
	down := a.AddHalfEdge(tv)
	loop := a.ConnectCycle([]topo.HalfEdgeID{up, down})
	surf := a.AddSurface(geom.Surface{Kind: geom.SurfaceKindCylinder})
	face := a.AddFace(loop, surf)
	a.AddFaceToShell(shell, face)
	hist.AddSide(origIndex, a.FaceHash(face, tc), entityID, sourceFeatureID, history.FaceExtrudeSide)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
