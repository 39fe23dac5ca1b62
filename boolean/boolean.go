package boolean

import (
	"fmt"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// Overlaps reports whether bodyA's and bodyB's bounding boxes
// intersect, the same disjoint-bodies shortcut Run uses internally.
// The rebuild engine calls this to decide which bodies a cut feature's
// subtract should even be attempted against.
func Overlaps(a *topo.Arena, bodyA, bodyB topo.BodyID) bool {
	return bodyBounds(a, bodyA).Overlaps(bodyBounds(a, bodyB))
}

// Run evaluates op between bodyA and bodyB, both already present in a,
// building a new body in the same arena and merging histA/histB into a
// fresh history.Record via history.Merge (base-before-tool precedence,
// bodyA is always base).
//
// The general path imprints every face of each operand against the other operand's full face set — a planar
// subdivision of arbitrary, possibly non-convex polygons, not a
// convex half-space clip — then classifies, selects, dedups, clamps,
// and regularizes the surviving pieces before stitching them into the
// output shell.
func Run(a *topo.Arena, tc *tol.Context, op Operation, bodyA, bodyB topo.BodyID, histA, histB *history.Record) (Result, error) {
	// Degenerate shortcut: A op A never needs a clip. Every
	// face of one operand coincides exactly with a face of the other,
	// so union/intersect reduce to a plain copy of A and subtract
	// always empties the result.
	if bodyA == bodyB {
		switch op {
		case Subtract:
			return Result{}, ErrEmptyResult
		default: // Union, Intersect
			return copyBody(a, tc, bodyA, histA, "")
		}
	}

	facesA := a.AllFacesOfBody(bodyA)
	facesB := a.AllFacesOfBody(bodyB)
	if !allPlanar(a, facesA) || !allPlanar(a, facesB) {
		return Result{}, ErrNonPlanarInput
	}

	boundsA := bodyBounds(a, bodyA)
	boundsB := bodyBounds(a, bodyB)
	if !boundsA.Overlaps(boundsB) {
		return runDisjoint(a, tc, op, bodyA, bodyB, histA, histB)
	}

	var pieces []compoundPiece
	for _, f := range facesA {
		pieces = append(pieces, imprintFace(a, tc, f, true, facesB)...)
	}
	for _, f := range facesB {
		pieces = append(pieces, imprintFace(a, tc, f, false, facesA)...)
	}

	kept := selectByOperation(op, pieces)
	kept = planeLevelDedup(op, kept, tc)
	kept = geometryKeyDedup(kept, tc)

	// Bounds clamping: Subtract's cavity wall is clamped to
	// the target body's own extent, Intersect's kept pieces to the
	// overlap region, cleaning up the float noise an imprint can leave
	// at a shared boundary. Union needs no clamp: every kept piece
	// already lies on one operand's own, unclipped boundary.
	switch op {
	case Subtract:
		for i := range kept {
			kept[i] = clampPieceToBounds(kept[i], boundsA, tc)
		}
	case Intersect:
		bounds := intersectAABB3(boundsA, boundsB)
		for i := range kept {
			kept[i] = clampPieceToBounds(kept[i], bounds, tc)
		}
	}
	kept = regularize(kept, tc)

	if len(kept) == 0 {
		return Result{}, ErrEmptyResult
	}

	out := a.AddBody()
	shell := a.AddShell()
	a.AddShellToBody(out, shell)
	hist := history.New()

	var provA, provB []history.Provenance
	var warnings []string
	for _, p := range kept {
		newHash := commitPiece(a, tc, shell, p)
		prov := history.Provenance{OutputHash: newHash, SourceHash: p.origHash}
		if p.fromA {
			provA = append(provA, prov)
		} else {
			provB = append(provB, prov)
		}
	}

	nonManifold := a.MatchTwins(tc.SnapKey3)
	if nonManifold > 0 {
		warnings = append(warnings, fmt.Sprintf("%d non-manifold edge bucket(s) after stitching", nonManifold))
		a.SetShellClosed(shell, false)
	} else {
		a.SetShellClosed(shell, true)
	}

	history.Merge(hist, histA, histB, provA, provB)

	return Result{Body: out, Shell: shell, History: hist, Warnings: warnings}, nil
}

func allPlanar(a *topo.Arena, faces []topo.FaceID) bool {
	for _, f := range faces {
		if !a.Surface(a.FaceSurface(f)).IsPlanar() {
			return false
		}
	}
	return true
}

// runDisjoint handles the case where bodyA and bodyB's bounding boxes
// do not overlap: no face of either can intersect the other, so every
// operation's result follows directly from the operation's definition
// without any per-face imprint.
func runDisjoint(a *topo.Arena, tc *tol.Context, op Operation, bodyA, bodyB topo.BodyID, histA, histB *history.Record) (Result, error) {
	switch op {
	case Intersect:
		return Result{}, ErrEmptyResult
	case Subtract:
		return copyBody(a, tc, bodyA, histA, "disjoint subtract: operand B does not touch operand A")
	default: // Union
		return copyBodyPair(a, tc, bodyA, bodyB, histA, histB)
	}
}

// copyBody duplicates body's faces (outer loop and every hole) into a
// new body unchanged, folding forward src's history entries as-is
// (every output hash equals its source hash, since the geometry is
// untouched).
func copyBody(a *topo.Arena, tc *tol.Context, body topo.BodyID, src *history.Record, warning string) (Result, error) {
	out := a.AddBody()
	shell := a.AddShell()
	a.AddShellToBody(out, shell)
	hist := history.New()
	var prov []history.Provenance
	for _, f := range a.AllFacesOfBody(body) {
		origHash := a.FaceHash(f, tc)
		newHash := copyFaceVerbatim(a, tc, shell, f)
		prov = append(prov, history.Provenance{OutputHash: newHash, SourceHash: origHash})
	}
	a.MatchTwins(tc.SnapKey3)
	a.SetShellClosed(shell, true)
	history.Merge(hist, src, history.New(), prov, nil)
	var warnings []string
	if warning != "" {
		warnings = append(warnings, warning)
	}
	return Result{Body: out, Shell: shell, History: hist, Warnings: warnings}, nil
}

// copyBodyPair builds a disjoint-union result: two independent shells
// in one new body, one copied from each operand.
func copyBodyPair(a *topo.Arena, tc *tol.Context, bodyA, bodyB topo.BodyID, histA, histB *history.Record) (Result, error) {
	out := a.AddBody()
	hist := history.New()
	var provA, provB []history.Provenance
	var lastShell topo.ShellID

	for _, pair := range []struct {
		body  topo.BodyID
		fromA bool
		prov  *[]history.Provenance
	}{{bodyA, true, &provA}, {bodyB, false, &provB}} {
		shell := a.AddShell()
		a.AddShellToBody(out, shell)
		for _, f := range a.AllFacesOfBody(pair.body) {
			origHash := a.FaceHash(f, tc)
			newHash := copyFaceVerbatim(a, tc, shell, f)
			*pair.prov = append(*pair.prov, history.Provenance{OutputHash: newHash, SourceHash: origHash})
		}
		a.SetShellClosed(shell, true)
		lastShell = shell
	}
	a.MatchTwins(tc.SnapKey3)
	history.Merge(hist, histA, histB, provA, provB)
	return Result{Body: out, Shell: lastShell, History: hist, Warnings: []string{"disjoint union: two independent shells"}}, nil
}

// copyFaceVerbatim rebuilds face (its surface, outer loop, and every
// inner loop) as a new face attached to shell, preserving its Reversed
// flag, and returns the new face's FaceHash.
func copyFaceVerbatim(a *topo.Arena, tc *tol.Context, shell topo.ShellID, face topo.FaceID) uint64 {
	plane := a.Surface(a.FaceSurface(face)).Plane
	surfID := a.AddSurface(geom.NewPlaneSurface(plane))

	outerLoop, _, _ := a.NewVertexLoop(loopPts3D(a, a.FaceOuterLoop(face)))
	newFace := a.AddFace(outerLoop, surfID)
	if a.FaceReversed(face) {
		a.SetFaceReversed(newFace, true)
	}
	a.AddFaceToShell(shell, newFace)

	for _, hole := range a.FaceInnerLoops(face) {
		innerLoop, _, _ := a.NewVertexLoop(loopPts3D(a, hole))
		a.AddInnerLoop(newFace, innerLoop)
	}

	return a.FaceHash(newFace, tc)
}

func loopPts3D(a *topo.Arena, loop topo.LoopID) []geom.Vec3 {
	verts := a.LoopVertices(loop)
	pts := make([]geom.Vec3, len(verts))
	for i, v := range verts {
		pts[i] = a.VertexPosition(v)
	}
	return pts
}

func loopPts2D(a *topo.Arena, loop topo.LoopID, plane geom.Plane) []geom.Vec2 {
	verts := a.LoopVertices(loop)
	pts := make([]geom.Vec2, len(verts))
	for i, v := range verts {
		pts[i] = plane.To2D(a.VertexPosition(v))
	}
	return pts
}
