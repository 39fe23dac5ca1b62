package feature

import (
	"math"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/sketch"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// Revolve builds a body by sweeping prof about the line named by
// params.AxisEntityID. data and solved are the sketch the profile was
// extracted from, consulted to locate the axis entity's solved
// endpoints. An axis edge that is part of a profile loop contributes
// no lateral surface; it closes the solid against the axis instead.
//
// SweepAngle's sign follows the right-hand rule about the direction
// from the axis entity's Start point to its End point. A full turn
// (>= 2*pi) produces a closed solid with no end caps; anything less
// produces a start cap (the profile's own plane) and an end cap (the
// profile plane rotated by SweepAngle).
func Revolve(a *topo.Arena, tc *tol.Context, prof profile.Profile, data sketch.Data, solved sketch.Result, params RevolveParams) (Result, error) {
	if len(prof.Loops) == 0 {
		return Result{}, ErrOpenProfile
	}

	axisOrigin, axisDir, err := resolveAxis(data, solved, params.AxisEntityID, prof.Plane)
	if err != nil {
		return Result{}, err
	}

	if tc.IsZeroAngle(params.SweepAngle) {
		return Result{}, ErrZeroSweep
	}
	fullTurn := math.Abs(params.SweepAngle) >= 2*math.Pi-tc.Angle

	body := a.AddBody()
	shell := a.AddShell()
	a.AddShellToBody(body, shell)
	hist := history.New()
	hist.FeatureKind = "revolve"
	if len(prof.Loops) == 1 {
		hist.ProfileLoopID = prof.Loops[0].ID
	}

	var startSurf, endSurf topo.SurfaceID
	if !fullTurn {
		startPlane := prof.Plane.Reversed()
		endOrigin := geom.RotateAboutAxis(prof.Plane.Origin, axisOrigin, axisDir, params.SweepAngle)
		endNormal := geom.RotateAboutAxis(prof.Plane.Origin.Add(prof.Plane.Normal), axisOrigin, axisDir, params.SweepAngle).Sub(endOrigin)
		endXDir := geom.RotateAboutAxis(prof.Plane.Origin.Add(prof.Plane.XDir), axisOrigin, axisDir, params.SweepAngle).Sub(endOrigin)
		endPlane := geom.NewPlane(endOrigin, endNormal, endXDir)
		startSurf = a.AddSurface(geom.NewPlaneSurface(startPlane))
		endSurf = a.AddSurface(geom.NewPlaneSurface(endPlane))
	}

	for _, loop := range prof.Loops {
		seg := ccwSegments(loop, prof.Plane)
		n := len(seg.pts)

		endPts := make([]geom.Vec3, n)
		for i, p := range seg.pts {
			endPts[i] = geom.RotateAboutAxis(p, axisOrigin, axisDir, params.SweepAngle)
		}

		if !fullTurn {
			startCapPts := capLoopPts(seg, false)
			startLoop, _, _ := a.NewVertexLoop(startCapPts)
			startFace := a.AddFace(startLoop, startSurf)
			a.AddFaceToShell(shell, startFace)
			hist.SetCap(history.FaceRevolveStartCap, a.FaceHash(startFace, tc), params.SourceFeatureID)

			endSegForCap := loopSegments{pts: endPts, entityIDs: seg.entityIDs, origIndex: seg.origIndex}
			endCapPts := capLoopPts(endSegForCap, true)
			endLoop, _, _ := a.NewVertexLoop(endCapPts)
			endFace := a.AddFace(endLoop, endSurf)
			a.AddFaceToShell(shell, endFace)
			hist.SetCap(history.FaceRevolveEndCap, a.FaceHash(endFace, tc), params.SourceFeatureID)
		}

		if n == 1 {
			buildRevolvedSide(a, tc, hist, shell, seg.pts[0], endPts[0], seg.entityIDs[0], seg.origIndex[0], params.SourceFeatureID, axisOrigin, axisDir, params.SweepAngle, fullTurn)
			continue
		}

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if seg.entityIDs[i] == params.AxisEntityID {
				continue // axis edges contribute no lateral surface
			}
			sidePts := []geom.Vec3{seg.pts[i], seg.pts[j], endPts[j], endPts[i]}
			sideSurf := a.AddSurface(geom.Surface{Kind: geom.SurfaceKindCone})
			sideLoop, _, _ := a.NewVertexLoop(sidePts)
			sideFace := a.AddFace(sideLoop, sideSurf)
			a.AddFaceToShell(shell, sideFace)
			hist.AddSide(seg.origIndex[i], a.FaceHash(sideFace, tc), seg.entityIDs[i], params.SourceFeatureID, history.FaceRevolveSide)
		}
	}

	a.MatchTwins(tc.SnapKey3)
	a.SetShellClosed(shell, true)

	return Result{Body: body, Shell: shell, History: hist}, nil
}

func buildRevolvedSide(a *topo.Arena, tc *tol.Context, hist *history.Record, shell topo.ShellID, startPt, endPt geom.Vec3, entityID string, origIndex int, sourceFeatureID string, axisOrigin, axisDir geom.Vec3, sweep float64, fullTurn bool) {
	sv := a.AddVertex(startPt)
	ev := a.AddVertex(endPt)
	up := a.AddHalfEdge(sv)
	down := a.AddHalfEdge(ev)
	loop := a.ConnectCycle([]topo.HalfEdgeID{up, down})
	kind := geom.SurfaceKindCone
	if fullTurn {
		kind = geom.SurfaceKindTorus
	}
	surf := a.AddSurface(geom.Surface{Kind: kind})
	face := a.AddFace(loop, surf)
	a.AddFaceToShell(shell, face)
	hist.AddSide(origIndex, a.FaceHash(face, tc), entityID, sourceFeatureID, history.FaceRevolveSide)
}

func resolveAxis(data sketch.Data, solved sketch.Result, axisEntityID string, plane geom.Plane) (origin, dir geom.Vec3, err error) {
	ent, ok := data.EntitiesByID[axisEntityID]
	if !ok {
		return geom.Vec3{}, geom.Vec3{}, ErrAxisMissing
	}
	if ent.Kind != sketch.EntityLine {
		return geom.Vec3{}, geom.Vec3{}, ErrAxisNotALine
	}
	startUV, ok := solved.SolvedPoints[ent.Start]
	if !ok {
		return geom.Vec3{}, geom.Vec3{}, ErrAxisMissing
	}
	endUV, ok := solved.SolvedPoints[ent.End]
	if !ok {
		return geom.Vec3{}, geom.Vec3{}, ErrAxisMissing
	}
	start3 := plane.From2D(startUV)
	end3 := plane.From2D(endUV)
	return start3, end3.Sub(start3).Normalized(), nil
}
