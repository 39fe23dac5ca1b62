package validate

import (
	"fmt"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// Validate runs every structural and geometric check this package
// knows against body, returning a single Report. It never stops at
// the first failing check; a body with ten problems yields ten
// issues.
func Validate(a *topo.Arena, tc *tol.Context, body topo.BodyID, opts ...Option) Report {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	var r Report
	faces := a.AllFacesOfBody(body)
	for _, f := range faces {
		checkReferences(a, f, &r)
		checkLoopCycle(a, f, a.FaceOuterLoop(f), &r)
		for _, inner := range a.FaceInnerLoops(f) {
			checkLoopCycle(a, f, inner, &r)
		}
		checkTwinPairing(a, tc, f, &r)
		checkSelfIntersectingLoop(a, f, &r)
		checkSliverFace(a, f, cfg, &r)
		checkWinding(a, f, &r)
	}

	for _, e := range a.AllEdgesOfBody(body) {
		checkDegenerateEdge(a, tc, e, &r)
		checkBoundaryEdge(a, e, &r)
	}

	for _, shell := range a.BodyShells(body) {
		checkShellClosed(a, shell, &r)
	}
	checkContainment(a, body, &r)

	return r
}

// checkReferences verifies face's stored handles: a face must
// reference an outer loop and a surface, and every half-edge on every
// one of its loops must reference a live origin vertex.
func checkReferences(a *topo.Arena, face topo.FaceID, r *Report) {
	if a.FaceOuterLoop(face).IsNull() {
		r.Issues = append(r.Issues, Issue{
			Code: CodeInvalidReference, Severity: SeverityError, FaceID: face,
			Message: "face has no outer loop",
		})
		return
	}
	if a.FaceSurface(face).IsNull() {
		r.Issues = append(r.Issues, Issue{
			Code: CodeInvalidReference, Severity: SeverityError, FaceID: face,
			Message: "face has no surface reference",
		})
	}
	loops := append([]topo.LoopID{a.FaceOuterLoop(face)}, a.FaceInnerLoops(face)...)
	for _, loop := range loops {
		for _, h := range a.LoopHalfEdges(loop) {
			v := a.StartVertex(h)
			if v.IsNull() || !a.VertexLive(v) {
				r.Issues = append(r.Issues, Issue{
					Code: CodeInvalidReference, Severity: SeverityError, FaceID: face,
					Message: fmt.Sprintf("half-edge %d references a null or deleted vertex", h),
				})
				return
			}
		}
	}
}

// checkLoopCycle walks loop's half-edges via Next and confirms the
// chain has exactly as many links as LoopHalfEdges reports and returns
// to LoopStart, catching a corrupted or partially-linked loop.
func checkLoopCycle(a *topo.Arena, face topo.FaceID, loop topo.LoopID, r *Report) {
	hes := a.LoopHalfEdges(loop)
	if len(hes) == 0 {
		r.Issues = append(r.Issues, Issue{
			Code: CodeLoopCycleBroken, Severity: SeverityError, FaceID: face,
			Message: "loop has no half-edges",
		})
		return
	}
	start := a.LoopStart(loop)
	cur := start
	for i := 0; i < len(hes); i++ {
		cur = a.Next(cur)
	}
	if cur != start {
		r.Issues = append(r.Issues, Issue{
			Code: CodeLoopCycleBroken, Severity: SeverityError, FaceID: face,
			Message: fmt.Sprintf("loop of %d half-edges does not close back to its start", len(hes)),
		})
	}
}

// checkSelfIntersectingLoop reports a face whose outer loop visits the
// same vertex position more than once (a pinched or figure-eight
// outline that ear-clipping and the boolean evaluator cannot handle
// correctly).
func checkSelfIntersectingLoop(a *topo.Arena, face topo.FaceID, r *Report) {
	verts := a.LoopVertices(a.FaceOuterLoop(face))
	seen := make(map[geom.Vec3]bool, len(verts))
	for _, v := range verts {
		p := a.VertexPosition(v)
		if seen[p] {
			r.Issues = append(r.Issues, Issue{
				Code: CodeSelfIntersectingLoop, Severity: SeverityWarning, FaceID: face,
				Message: "outer loop visits the same vertex position more than once",
			})
			return
		}
		seen[p] = true
	}
}

// checkSliverFace flags a planar face whose projected area falls below
// cfg.sliverAreaEpsilon — a near-degenerate sliver that downstream
// tessellation or boolean evaluation is likely to mishandle.
func checkSliverFace(a *topo.Arena, face topo.FaceID, cfg config, r *Report) {
	surf := a.Surface(a.FaceSurface(face))
	if !surf.IsPlanar() {
		return
	}
	verts := a.LoopVertices(a.FaceOuterLoop(face))
	if len(verts) < 3 {
		return
	}
	pts2D := make([]geom.Vec2, len(verts))
	for i, v := range verts {
		pts2D[i] = surf.Plane.To2D(a.VertexPosition(v))
	}
	area := geom.PolygonArea(pts2D)
	if area < cfg.sliverAreaEpsilon {
		r.Issues = append(r.Issues, Issue{
			Code: CodeSliverFace, Severity: SeverityWarning, FaceID: face,
			Message: fmt.Sprintf("face area %.3g is below sliver threshold %.3g", area, cfg.sliverAreaEpsilon),
		})
	}
}

// checkWinding compares a planar face's projected signed area against
// its stored FaceReversed flag: a face not reversed should project CCW
// as seen from its surface plane's outward normal, and vice versa.
// Mismatch means the face's loop was built or flipped inconsistently
// with its Reversed bit.
func checkWinding(a *topo.Arena, face topo.FaceID, r *Report) {
	surf := a.Surface(a.FaceSurface(face))
	if !surf.IsPlanar() {
		return
	}
	verts := a.LoopVertices(a.FaceOuterLoop(face))
	if len(verts) < 3 {
		return
	}
	pts2D := make([]geom.Vec2, len(verts))
	for i, v := range verts {
		pts2D[i] = surf.Plane.To2D(a.VertexPosition(v))
	}
	ccw := geom.IsCCW(pts2D)
	if ccw == a.FaceReversed(face) {
		r.Issues = append(r.Issues, Issue{
			Code: CodeInconsistentWinding, Severity: SeverityWarning, FaceID: face,
			Message: "face winding does not match its Reversed flag",
		})
	}
}

// checkDegenerateEdge flags an edge whose two endpoints coincide
// within tc's length tolerance.
func checkDegenerateEdge(a *topo.Arena, tc *tol.Context, e topo.EdgeID, r *Report) {
	h := a.EdgeHalfEdge(e)
	start := a.VertexPosition(a.StartVertex(h))
	end := a.VertexPosition(a.EndVertex(h))
	if tc.IsZero(start.Distance(end)) {
		r.Issues = append(r.Issues, Issue{
			Code: CodeDegenerateEdge, Severity: SeverityError, EdgeID: e,
			Message: "edge endpoints coincide within tolerance",
		})
	}
}

// checkTwinPairing verifies the pairing invariants for every twinned
// half-edge on face's loops: twin(twin(h)) == h, both halves share one
// Edge row, and the twin traverses the shared edge in the opposite
// direction. Endpoint agreement is by position (each face owns its own
// vertex rows, so the two halves never share VertexIDs), compared at
// the vertex bucket tolerance the twins were paired under.
func checkTwinPairing(a *topo.Arena, tc *tol.Context, face topo.FaceID, r *Report) {
	posTol := tc.VertexBucketTolerance() * 2
	loops := append([]topo.LoopID{a.FaceOuterLoop(face)}, a.FaceInnerLoops(face)...)
	for _, loop := range loops {
		for _, h := range a.LoopHalfEdges(loop) {
			tw := a.Twin(h)
			if tw.IsNull() || tw < h {
				continue // boundary, or already checked from the twin's side
			}
			if a.Twin(tw) != h {
				r.Issues = append(r.Issues, Issue{
					Code: CodeTwinMismatch, Severity: SeverityError, FaceID: face, EdgeID: a.Edge(h),
					Message: "twin(twin(h)) does not return to h",
				})
				continue
			}
			if a.Edge(tw) != a.Edge(h) {
				r.Issues = append(r.Issues, Issue{
					Code: CodeTwinMismatch, Severity: SeverityError, FaceID: face, EdgeID: a.Edge(h),
					Message: "twin half-edges reference different edges",
				})
				continue
			}
			hStart := a.VertexPosition(a.StartVertex(h))
			hEnd := a.VertexPosition(a.EndVertex(h))
			twStart := a.VertexPosition(a.StartVertex(tw))
			twEnd := a.VertexPosition(a.EndVertex(tw))
			if hStart.Distance(twEnd) > posTol || hEnd.Distance(twStart) > posTol {
				r.Issues = append(r.Issues, Issue{
					Code: CodeTwinMismatch, Severity: SeverityError, FaceID: face, EdgeID: a.Edge(h),
					Message: "twin half-edge does not traverse the shared edge in the opposite direction",
				})
			}
		}
	}
}

// checkBoundaryEdge flags an edge with no twin half-edge. On an open
// shell a boundary edge is expected and reported as info; on a shell
// marked closed it means the shell is not actually watertight and is
// an error.
func checkBoundaryEdge(a *topo.Arena, e topo.EdgeID, r *Report) {
	h := a.EdgeHalfEdge(e)
	if !a.Twin(h).IsNull() {
		return
	}
	severity := SeverityInfo
	message := "edge has no twin half-edge (open shell boundary)"
	if loop := a.HalfEdgeLoop(h); !loop.IsNull() {
		shell := a.FaceShell(a.LoopFace(loop))
		if !shell.IsNull() && a.ShellClosed(shell) {
			severity = SeverityError
			message = "edge has no twin half-edge on a shell marked closed"
		}
	}
	r.Issues = append(r.Issues, Issue{
		Code: CodeBoundaryEdge, Severity: severity, EdgeID: e,
		Message: message,
	})
}

// checkContainment verifies the back-pointer agreement of the
// containment chain: every loop of every face points back at that
// face, every face of every shell points back at that shell, and
// every shell of body points back at body.
func checkContainment(a *topo.Arena, body topo.BodyID, r *Report) {
	for _, shell := range a.BodyShells(body) {
		if a.ShellBody(shell) != body {
			r.Issues = append(r.Issues, Issue{
				Code: CodeContainmentMismatch, Severity: SeverityError, ShellID: shell,
				Message: "shell does not point back at its owning body",
			})
		}
		for _, f := range a.ShellFaces(shell) {
			if a.FaceShell(f) != shell {
				r.Issues = append(r.Issues, Issue{
					Code: CodeContainmentMismatch, Severity: SeverityError, ShellID: shell, FaceID: f,
					Message: "face does not point back at its owning shell",
				})
			}
			loops := append([]topo.LoopID{a.FaceOuterLoop(f)}, a.FaceInnerLoops(f)...)
			for _, loop := range loops {
				if a.LoopFace(loop) != f {
					r.Issues = append(r.Issues, Issue{
						Code: CodeContainmentMismatch, Severity: SeverityError, FaceID: f,
						Message: "loop does not point back at its owning face",
					})
				}
			}
		}
	}
}

// checkShellClosed cross-checks a shell's stored Closed flag against
// whether every one of its faces' half-edges actually has a twin.
func checkShellClosed(a *topo.Arena, shell topo.ShellID, r *Report) {
	if !a.ShellClosed(shell) {
		return
	}
	for _, f := range a.ShellFaces(shell) {
		loops := append([]topo.LoopID{a.FaceOuterLoop(f)}, a.FaceInnerLoops(f)...)
		for _, loop := range loops {
			for _, h := range a.LoopHalfEdges(loop) {
				if a.Twin(h).IsNull() {
					r.Issues = append(r.Issues, Issue{
						Code: CodeShellNotClosed, Severity: SeverityError, ShellID: shell, FaceID: f,
						Message: "shell is marked closed but has a boundary half-edge",
					})
					return
				}
			}
		}
	}
}
