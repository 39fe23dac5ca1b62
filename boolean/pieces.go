package boolean

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
)

// compoundPiece is one atom of a face's imprint together with the
// direct-child atoms nested inside it as holes, carrying
// its own independent classification against the other operand. Every
// atom at every containment depth becomes its own compoundPiece — an
// operation can need either an outer-with-hole compound (an annulus
// surviving a subtract) or one of its nested children alone (the inner
// island surviving an intersect), so depth alone never decides which
// is kept.
type compoundPiece struct {
	outer    []geom.Vec2
	holes    [][]geom.Vec2
	area     float64
	plane    geom.Plane
	fromA    bool
	origHash uint64
	class    pieceClass
	reversed bool
}

// imprintFace builds face's full planar-subdivision arrangement
// against otherFaces, traces its atomic pieces, nests them into a
// containment forest, and classifies every resulting compound piece
// against the other operand.
func imprintFace(a *topo.Arena, tc *tol.Context, face topo.FaceID, fromA bool, otherFaces []topo.FaceID) []compoundPiece {
	own := faceOwnSegments(a, face)
	cutters := cutterSegments(a, tc, face, otherFaces)
	bucket := tc.VertexBucketTolerance()
	arranged := splitSegments(append(own, cutters...), tc.Length)
	raw := traceArrangementFaces(arranged, bucket)
	if len(raw) == 0 {
		return nil
	}

	outerAABB := geom.BoundsOf2(faceOuter2D(a, face)).Pad(tc.Scaled(10))
	areaEps := tc.AreaEpsilon()

	var atoms []atomicPiece
	for _, poly := range raw {
		poly = dedupConsecutive(poly, bucket)
		if len(poly) < 3 {
			continue
		}
		signed := geom.SignedArea2(poly)
		if signed <= areaEps*2 {
			continue // keep only CCW, non-degenerate bounded cycles
		}
		if !outerAABB.Contains(geom.BoundsOf2(poly), 0) {
			continue // contamination guard: a traced cycle cannot legitimately exceed the source face's own extent
		}
		atoms = append(atoms, atomicPiece{pts: poly, area: signed / 2, centroid: geom.Centroid2(poly)})
	}
	if len(atoms) == 0 {
		return nil
	}

	parent := buildContainmentForest(atoms)
	children := make([][]int, len(atoms))
	for i, p := range parent {
		if p >= 0 {
			children[p] = append(children[p], i)
		}
	}

	facePlane := a.Surface(a.FaceSurface(face)).Plane
	outward := faceOutwardNormal(a, face)
	origHash := a.FaceHash(face, tc)

	var out []compoundPiece
	for i, at := range atoms {
		var holes [][]geom.Vec2
		area := at.area
		for _, c := range children[i] {
			holes = append(holes, atoms[c].pts)
			area -= atoms[c].area
		}
		if area <= areaEps {
			continue
		}
		test := representativePoint(at.pts, holes)
		class := classifyCompound(a, tc, facePlane, outward, test, otherFaces)
		out = append(out, compoundPiece{
			outer: at.pts, holes: holes, area: area,
			plane: facePlane, fromA: fromA, origHash: origHash, class: class,
		})
	}
	return out
}

// selectByOperation keeps the compoundPiece entries that belong to
// op's result boundary: Union keeps each operand's
// outside-the-other and on_same pieces (a coincident pair of
// outward-agreeing faces survives as one skin); Intersect keeps each
// operand's inside-the-other and on_same pieces; Subtract keeps A's
// outside-B (and on_opposite) pieces — holes retained on cap-like
// faces but cleared on side faces — plus B's inside-A pieces, the
// latter reversed and stripped of their own holes (a subtract cavity
// wall is solid where the tool body had material, never re-perforated
// by the tool's own interior holes).
func selectByOperation(op Operation, pieces []compoundPiece) []compoundPiece {
	var kept []compoundPiece
	for _, p := range pieces {
		switch op {
		case Union:
			if p.class == classOutside || p.class == classOnSame {
				kept = append(kept, p)
			}
		case Intersect:
			if p.class == classInside || p.class == classOnSame {
				kept = append(kept, p)
			}
		case Subtract:
			switch {
			case p.fromA && (p.class == classOutside || p.class == classOnOpposite):
				// on_same means the tool's material covers this skin
				// from inside, so the piece is removed with it;
				// on_opposite means the tool only touched from
				// outside and the skin survives. Holes survive only
				// on cap-like target faces (normal dominant along Z);
				// a side face's holes are cleared.
				if math.Abs(p.plane.Normal.Z) <= 0.9 {
					p.holes = nil
				}
				kept = append(kept, p)
			case !p.fromA && p.class == classInside:
				p.reversed = true
				p.holes = nil
				kept = append(kept, p)
			}
		}
	}
	return kept
}

// planeKey canonicalizes a plane (accounting for p.reversed's effect on
// the true outward normal) into a sign- and tolerance-bucketed string,
// so two pieces that lie on the exact same plane collide on the same
// key regardless of which operand or winding produced them.
func planeKey(plane geom.Plane, reversed bool, tc *tol.Context) string {
	n := plane.Normal
	if reversed {
		n = n.Neg()
	}
	if n.X < 0 || (n.X == 0 && n.Y < 0) || (n.X == 0 && n.Y == 0 && n.Z < 0) {
		n = n.Neg()
	}
	dist := plane.Origin.Dot(n)
	return fmt.Sprintf("%d:%d:%d:%d", tc.SnapKey(n.X), tc.SnapKey(n.Y), tc.SnapKey(n.Z), tc.SnapKey(dist))
}

// planeLevelDedup runs the second selection pass, plane by plane:
// for Subtract, any tool (B) piece kept on a plane means the cut wall
// for that plane has already been accounted for, so every A piece on
// that plane is dropped and only the first B piece on it is kept; for
// Intersect, at most one piece survives per plane, preferring an A
// piece over a B piece.
func planeLevelDedup(op Operation, kept []compoundPiece, tc *tol.Context) []compoundPiece {
	keyOf := func(p compoundPiece) string { return planeKey(p.plane, p.reversed, tc) }

	switch op {
	case Subtract:
		toolPlanes := map[string]bool{}
		for _, p := range kept {
			if !p.fromA {
				toolPlanes[keyOf(p)] = true
			}
		}
		firstTool := map[string]bool{}
		var out []compoundPiece
		for _, p := range kept {
			k := keyOf(p)
			if p.fromA {
				if toolPlanes[k] {
					continue
				}
				out = append(out, p)
				continue
			}
			if firstTool[k] {
				continue
			}
			firstTool[k] = true
			out = append(out, p)
		}
		return out
	case Intersect:
		seen := map[string]bool{}
		ordered := make([]compoundPiece, 0, len(kept))
		for _, p := range kept {
			if p.fromA {
				ordered = append(ordered, p)
			}
		}
		for _, p := range kept {
			if !p.fromA {
				ordered = append(ordered, p)
			}
		}
		var out []compoundPiece
		for _, p := range ordered {
			k := keyOf(p)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, p)
		}
		return out
	default:
		return kept
	}
}

// geometryKeyDedup removes exact duplicates across operand sources: a
// coincident pair of outward-agreeing pieces (one kept from each body
// as on_same) collapses to a single skin. The key is the oriented
// outward normal plus the sorted, tolerance-snapped outer vertex set,
// so only true duplicates collide; A-sourced pieces precede B-sourced
// ones in the selection order, so the base operand's copy is the one
// kept.
func geometryKeyDedup(kept []compoundPiece, tc *tol.Context) []compoundPiece {
	seen := map[string]bool{}
	var out []compoundPiece
	for _, p := range kept {
		n := p.plane.Normal
		if p.reversed {
			n = n.Neg()
		}
		keys := make([]string, len(p.outer))
		for i, pt := range p.outer {
			p3 := p.plane.From2D(pt)
			keys[i] = fmt.Sprintf("%d:%d:%d", tc.SnapKey(p3.X), tc.SnapKey(p3.Y), tc.SnapKey(p3.Z))
		}
		sort.Strings(keys)
		k := fmt.Sprintf("%d:%d:%d|%s", tc.SnapKey(n.X), tc.SnapKey(n.Y), tc.SnapKey(n.Z), strings.Join(keys, ","))
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

func clampF(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// intersectAABB3 returns the componentwise overlap of b and o.
func intersectAABB3(b, o geom.AABB3) geom.AABB3 {
	return geom.AABB3{
		Min: geom.Vec3{X: maxF(b.Min.X, o.Min.X), Y: maxF(b.Min.Y, o.Min.Y), Z: maxF(b.Min.Z, o.Min.Z)},
		Max: geom.Vec3{X: minF(b.Max.X, o.Max.X), Y: minF(b.Max.Y, o.Max.Y), Z: minF(b.Max.Z, o.Max.Z)},
	}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// clampPieceToBounds clamps every vertex of p (outer and every hole)
// component-wise into the exact bounds, with no tolerance padding: a
// cleanup pass against the float noise an imprint can accumulate at a
// shared boundary, not a general polygon-box clip.
func clampPieceToBounds(p compoundPiece, bounds geom.AABB3, tc *tol.Context) compoundPiece {
	lo, hi := bounds.Min, bounds.Max
	clampLoop := func(pts []geom.Vec2) []geom.Vec2 {
		out := make([]geom.Vec2, len(pts))
		for i, pt := range pts {
			p3 := p.plane.From2D(pt)
			c3 := geom.Vec3{
				X: clampF(p3.X, lo.X, hi.X),
				Y: clampF(p3.Y, lo.Y, hi.Y),
				Z: clampF(p3.Z, lo.Z, hi.Z),
			}
			out[i] = p.plane.To2D(c3)
		}
		return dedupConsecutive(out, tc.Length)
	}
	p.outer = clampLoop(p.outer)
	for i := range p.holes {
		p.holes[i] = clampLoop(p.holes[i])
	}
	return p
}

// regularize drops pieces whose net area (outer minus holes, computed
// here and stored into p.area) falls at or below tc's area tolerance:
// slivers left behind by clamping or by a near-tangential cut.
func regularize(pieces []compoundPiece, tc *tol.Context) []compoundPiece {
	areaEps := tc.AreaEpsilon()
	out := pieces[:0:0]
	for _, p := range pieces {
		if len(p.outer) < 3 {
			continue
		}
		area := geom.PolygonArea(p.outer)
		for _, h := range p.holes {
			if len(h) >= 3 {
				area -= geom.PolygonArea(h)
			}
		}
		if area <= areaEps {
			continue
		}
		p.area = area
		out = append(out, p)
	}
	return out
}

// commitPiece rebuilds p as a 3D face (a new surface, an outer vertex
// loop, and one inner vertex loop per hole via topo.AddInnerLoop) in
// a's arena, and returns the new face's FaceHash for provenance
// bookkeeping. A reversed piece (a subtract cavity wall sourced from
// the tool body) gets its winding flipped by reversing the stored
// point order against the unflipped plane frame and recording the
// surface under the correspondingly flipped plane, so the face's
// Reversed flag can stay false while its true outward normal comes out
// opposite the tool's own.
func commitPiece(a *topo.Arena, tc *tol.Context, shell topo.ShellID, p compoundPiece) uint64 {
	plane := p.plane
	outerPts := p.outer
	if p.reversed {
		outerPts = geom.Reversed2(outerPts)
		plane = plane.Reversed()
	}

	pts3D := make([]geom.Vec3, len(outerPts))
	for i, pt := range outerPts {
		pts3D[i] = p.plane.From2D(pt)
	}
	surfID := a.AddSurface(geom.NewPlaneSurface(plane))
	outerLoop, _, _ := a.NewVertexLoop(pts3D)
	face := a.AddFace(outerLoop, surfID)
	a.AddFaceToShell(shell, face)

	for _, hole := range p.holes {
		holePts := make([]geom.Vec3, len(hole))
		for i, pt := range hole {
			holePts[i] = p.plane.From2D(pt)
		}
		innerLoop, _, _ := a.NewVertexLoop(holePts)
		a.AddInnerLoop(face, innerLoop)
	}

	return a.FaceHash(face, tc)
}
