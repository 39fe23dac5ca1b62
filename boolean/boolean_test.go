package boolean_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidcore/kernel/boolean"
	"github.com/solidcore/kernel/feature"
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/sketch"
	"github.com/solidcore/kernel/tessellate"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
	"github.com/solidcore/kernel/validate"
)

const volumeTol = 1e-3

// squareSketchData is the same 10x10 square used across the kernel's
// feature-building tests.
func squareSketchData() (sketch.Data, map[string]geom.Vec2) {
	data := sketch.Data{
		PointsByID: map[string]sketch.Point{
			"p1": {ID: "p1", X: -5, Y: -5},
			"p2": {ID: "p2", X: 5, Y: -5},
			"p3": {ID: "p3", X: 5, Y: 5},
			"p4": {ID: "p4", X: -5, Y: 5},
		},
		EntitiesByID: map[string]sketch.Entity{
			"l1": {ID: "l1", Kind: sketch.EntityLine, Start: "p1", End: "p2"},
			"l2": {ID: "l2", Kind: sketch.EntityLine, Start: "p2", End: "p3"},
			"l3": {ID: "l3", Kind: sketch.EntityLine, Start: "p3", End: "p4"},
			"l4": {ID: "l4", Kind: sketch.EntityLine, Start: "p4", End: "p1"},
		},
	}
	solved := map[string]geom.Vec2{
		"p1": {X: -5, Y: -5}, "p2": {X: 5, Y: -5}, "p3": {X: 5, Y: 5}, "p4": {X: -5, Y: 5},
	}
	return data, solved
}

// squareSketchDataHalf returns a square sketch centered on the origin
// with the given half-width, used to build a narrow through-cutter.
func squareSketchDataHalf(half float64) (sketch.Data, map[string]geom.Vec2) {
	data := sketch.Data{
		PointsByID: map[string]sketch.Point{
			"p1": {ID: "p1", X: -half, Y: -half},
			"p2": {ID: "p2", X: half, Y: -half},
			"p3": {ID: "p3", X: half, Y: half},
			"p4": {ID: "p4", X: -half, Y: half},
		},
		EntitiesByID: map[string]sketch.Entity{
			"l1": {ID: "l1", Kind: sketch.EntityLine, Start: "p1", End: "p2"},
			"l2": {ID: "l2", Kind: sketch.EntityLine, Start: "p2", End: "p3"},
			"l3": {ID: "l3", Kind: sketch.EntityLine, Start: "p3", End: "p4"},
			"l4": {ID: "l4", Kind: sketch.EntityLine, Start: "p4", End: "p1"},
		},
	}
	solved := map[string]geom.Vec2{
		"p1": {X: -half, Y: -half}, "p2": {X: half, Y: -half}, "p3": {X: half, Y: half}, "p4": {X: -half, Y: half},
	}
	return data, solved
}

// buildBox extrudes the standard square, on the xy plane offset along Z
// by originZ, into a box of the given distance, and returns both the
// resulting body and its operation history.
func buildBox(t *testing.T, a *topo.Arena, tc *tol.Context, originZ, distance float64, sourceID string) (topo.BodyID, *history.Record) {
	t.Helper()
	data, solved := squareSketchData()
	plane := geom.StandardPlane("xy").Offset(originZ)
	prof, err := profile.Build(data, solved, plane, true)
	require.NoError(t, err)

	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent: feature.ExtentBlind, Distance: distance, DirectionSign: 1, SourceFeatureID: sourceID,
	})
	require.NoError(t, err)
	return res.Body, res.History
}

// buildThroughPost extrudes a narrow square, centered on the origin,
// on the xy plane offset along Z by originZ, tall enough to pass all
// the way through a buildBox body spanning the same Z range.
func buildThroughPost(t *testing.T, a *topo.Arena, tc *tol.Context, half, originZ, distance float64, sourceID string) (topo.BodyID, *history.Record) {
	t.Helper()
	data, solved := squareSketchDataHalf(half)
	plane := geom.StandardPlane("xy").Offset(originZ)
	prof, err := profile.Build(data, solved, plane, true)
	require.NoError(t, err)

	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent: feature.ExtentBlind, Distance: distance, DirectionSign: 1, SourceFeatureID: sourceID,
	})
	require.NoError(t, err)
	return res.Body, res.History
}

// buildTiltedBox extrudes the standard square on a plane tilted about
// the global Y axis by angle radians, producing a body whose faces are
// still all planar but not aligned with any of bodyA's own face planes
// (a genuine oblique cutter, not a coplanar or axis-aligned one).
func buildTiltedBox(t *testing.T, a *topo.Arena, tc *tol.Context, origin geom.Vec3, angle, distance float64, sourceID string) (topo.BodyID, *history.Record) {
	t.Helper()
	data, solved := squareSketchData()
	normal := geom.RotateAboutAxis(geom.Vec3{Z: 1}, geom.Vec3{}, geom.Vec3{Y: 1}, angle)
	xDir := geom.RotateAboutAxis(geom.Vec3{X: 1}, geom.Vec3{}, geom.Vec3{Y: 1}, angle)
	plane := geom.NewPlane(origin, normal, xDir)
	prof, err := profile.Build(data, solved, plane, true)
	require.NoError(t, err)

	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent: feature.ExtentBlind, Distance: distance, DirectionSign: 1, SourceFeatureID: sourceID,
	})
	require.NoError(t, err)
	return res.Body, res.History
}

// solidVolume integrates the divergence theorem over body's tessellated
// triangles (sum of v0 . (v1 x v2) / 6 per triangle) to get its
// enclosed volume, independent of how the boolean pipeline built the
// body's faces.
func solidVolume(a *topo.Arena, tc *tol.Context, body topo.BodyID) float64 {
	mesh := tessellate.Tessellate(a, tc, body)
	var vol float64
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		v0 := mesh.Positions[mesh.Indices[i]]
		v1 := mesh.Positions[mesh.Indices[i+1]]
		v2 := mesh.Positions[mesh.Indices[i+2]]
		vol += v0.Dot(v1.Cross(v2))
	}
	return vol / 6
}

// capsWithOneHole counts faces of body whose surface normal is axis-Z
// (a top or bottom cap of an extruded box) and that carry exactly one
// inner loop.
func capsWithOneHole(a *topo.Arena, body topo.BodyID) int {
	n := 0
	for _, f := range a.AllFacesOfBody(body) {
		surf := a.Surface(a.FaceSurface(f))
		if !surf.IsPlanar() {
			continue
		}
		if math.Abs(math.Abs(surf.Plane.Normal.Z)-1) > 1e-6 {
			continue
		}
		if len(a.FaceInnerLoops(f)) == 1 {
			n++
		}
	}
	return n
}

func TestRunUnionOfOverlappingBoxesProducesExpectedVolume(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, histA := buildBox(t, a, tc, 0, 10, "A")
	bodyB, histB := buildBox(t, a, tc, 5, 10, "B")

	res, err := boolean.Run(a, tc, boolean.Union, bodyA, bodyB, histA, histB)
	require.NoError(t, err)
	assert.NotEmpty(t, a.AllFacesOfBody(res.Body))
	assert.InDelta(t, 1500.0, solidVolume(a, tc, res.Body), volumeTol)

	report := validate.Validate(a, tc, res.Body)
	assert.Zero(t, report.CountBySeverity(validate.SeverityError), "%v", report.Issues)
}

func TestRunSubtractOfOverlappingBoxesRemovesVolume(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, histA := buildBox(t, a, tc, 0, 10, "A")
	bodyB, histB := buildBox(t, a, tc, 5, 10, "B")

	res, err := boolean.Run(a, tc, boolean.Subtract, bodyA, bodyB, histA, histB)
	require.NoError(t, err)
	assert.NotEmpty(t, a.AllFacesOfBody(res.Body))
	assert.InDelta(t, 500.0, solidVolume(a, tc, res.Body), volumeTol)

	report := validate.Validate(a, tc, res.Body)
	assert.Zero(t, report.CountBySeverity(validate.SeverityError), "%v", report.Issues)
}

func TestRunIntersectOfOverlappingBoxesProducesExpectedVolume(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, histA := buildBox(t, a, tc, 0, 10, "A")
	bodyB, histB := buildBox(t, a, tc, 5, 10, "B")

	res, err := boolean.Run(a, tc, boolean.Intersect, bodyA, bodyB, histA, histB)
	require.NoError(t, err)
	assert.NotEmpty(t, a.AllFacesOfBody(res.Body))
	assert.InDelta(t, 500.0, solidVolume(a, tc, res.Body), volumeTol)

	report := validate.Validate(a, tc, res.Body)
	assert.Zero(t, report.CountBySeverity(validate.SeverityError), "%v", report.Issues)
}

func TestRunIntersectOfDisjointBoxesIsEmptyResult(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, histA := buildBox(t, a, tc, 0, 10, "A")
	bodyB, histB := buildBox(t, a, tc, 1000, 10, "B")

	_, err := boolean.Run(a, tc, boolean.Intersect, bodyA, bodyB, histA, histB)
	assert.ErrorIs(t, err, boolean.ErrEmptyResult)
}

func TestRunUnionOfDisjointBoxesKeepsBothShells(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, histA := buildBox(t, a, tc, 0, 10, "A")
	bodyB, histB := buildBox(t, a, tc, 1000, 10, "B")

	res, err := boolean.Run(a, tc, boolean.Union, bodyA, bodyB, histA, histB)
	require.NoError(t, err)
	assert.Len(t, a.AllFacesOfBody(res.Body), 12)
	assert.InDelta(t, 2000.0, solidVolume(a, tc, res.Body), volumeTol)
}

func TestOverlapsReportsDisjointBoxesAsNonOverlapping(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, _ := buildBox(t, a, tc, 0, 10, "A")
	bodyB, _ := buildBox(t, a, tc, 1000, 10, "B")

	assert.False(t, boolean.Overlaps(a, bodyA, bodyB))
}

func TestOverlapsReportsTouchingBoxesAsOverlapping(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, _ := buildBox(t, a, tc, 0, 10, "A")
	bodyB, _ := buildBox(t, a, tc, 5, 10, "B")

	assert.True(t, boolean.Overlaps(a, bodyA, bodyB))
}

// TestRunSubtractThroughHoleProducesCappedHoleAndTunnelWalls exercises
// the cube-cut-cube through-hole scenario: a narrow post passes clean
// through a box, so subtracting it leaves the box's top and bottom
// caps each with one inner loop (the mouth of the hole) and four new
// tunnel-wall faces reversed from the post's own sides.
func TestRunSubtractThroughHoleProducesCappedHoleAndTunnelWalls(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, histA := buildBox(t, a, tc, 0, 10, "A")
	bodyB, histB := buildThroughPost(t, a, tc, 1, -1, 12, "B")

	res, err := boolean.Run(a, tc, boolean.Subtract, bodyA, bodyB, histA, histB)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0-40.0, solidVolume(a, tc, res.Body), volumeTol)
	assert.Equal(t, 2, capsWithOneHole(a, res.Body))

	report := validate.Validate(a, tc, res.Body)
	assert.Zero(t, report.CountBySeverity(validate.SeverityError), "%v", report.Issues)
}

// TestRunSubtractTiltedBoxProducesValidManifold exercises a transverse
// cut whose cutter plane is not aligned with any of the target's own
// face planes: the shared line between a tilted face and an axis-
// aligned face must still be derived correctly and stitched into a
// closed, error-free manifold with strictly less volume than the
// original.
func TestRunSubtractTiltedBoxProducesValidManifold(t *testing.T) {
	a := topo.New()
	tc := tol.New()
	bodyA, histA := buildBox(t, a, tc, 0, 10, "A")
	bodyB, histB := buildTiltedBox(t, a, tc, geom.Vec3{Z: -10}, 20*math.Pi/180, 30, "B")

	res, err := boolean.Run(a, tc, boolean.Subtract, bodyA, bodyB, histA, histB)
	require.NoError(t, err)

	vol := solidVolume(a, tc, res.Body)
	assert.Greater(t, vol, 0.0)
	assert.Less(t, vol, 1000.0-volumeTol)

	report := validate.Validate(a, tc, res.Body)
	assert.Zero(t, report.CountBySeverity(validate.SeverityError), "%v", report.Issues)
}
