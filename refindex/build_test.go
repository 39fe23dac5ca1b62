package refindex_test

import (
	"testing"

	"github.com/solidcore/kernel/feature"
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/loopid"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/refindex"
	"github.com/solidcore/kernel/sketch"
	"github.com/solidcore/kernel/stref"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareSketch() (sketch.Data, map[string]geom.Vec2) {
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

func buildBox(t *testing.T) (*topo.Arena, *tol.Context, feature.Result) {
	t.Helper()
	data, solved := squareSketch()
	plane := geom.StandardPlane("xy")
	prof, err := profile.Build(data, solved, plane, true)
	require.NoError(t, err)

	a := topo.New()
	tc := tol.New()
	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent: feature.ExtentBlind, Distance: 10, DirectionSign: 1, SourceFeatureID: "E1",
	})
	require.NoError(t, err)
	return a, tc, res
}

func TestBuildBoxIndexCounts(t *testing.T) {
	a, tc, res := buildBox(t)
	idx, err := refindex.Build(a, tc, res.Body, res.History, "E1")
	require.NoError(t, err)

	assert.Len(t, idx.FaceIDs, 6)
	assert.Len(t, idx.FaceRefs, 6)
	assert.Len(t, idx.EdgeIDs, 12)
	assert.Len(t, idx.EdgeRefs, 12)

	for _, s := range idx.FaceRefs {
		rec, err := stref.Decode(s)
		require.NoError(t, err)
		assert.Equal(t, "E1", rec.OriginFeatureID)
		assert.Equal(t, stref.ExpectedFace, rec.ExpectedType)
	}
}

func TestBuildBoxTopCapResolvesBySelector(t *testing.T) {
	a, tc, res := buildBox(t)
	idx, err := refindex.Build(a, tc, res.Body, res.History, "E1")
	require.NoError(t, err)

	var sawTop, sawBottom, sawSide int
	var sideEntityIDs []string
	for _, s := range idx.FaceRefs {
		rec, err := stref.Decode(s)
		require.NoError(t, err)
		switch rec.LocalSelector.Kind {
		case "extrude.topCap":
			sawTop++
			assert.NotNil(t, rec.Fingerprint.Normal)
			assert.InDelta(t, 1.0, rec.Fingerprint.Normal.Z, 1e-9)
		case "extrude.bottomCap":
			sawBottom++
		case "extrude.side":
			sawSide++
			if seg, ok := rec.LocalSelector.Data["segmentId"].(string); ok {
				sideEntityIDs = append(sideEntityIDs, seg)
			}
		}
	}
	assert.Equal(t, 1, sawTop)
	assert.Equal(t, 1, sawBottom)
	assert.Equal(t, 4, sawSide)
	assert.ElementsMatch(t, []string{"l1", "l2", "l3", "l4"}, sideEntityIDs)
}

func TestBuildEdgeRefsDecodeAsEdges(t *testing.T) {
	a, tc, res := buildBox(t)
	idx, err := refindex.Build(a, tc, res.Body, res.History, "E1")
	require.NoError(t, err)

	wantLoopID := loopid.Compute([]string{"l1", "l2", "l3", "l4"})
	for i, s := range idx.EdgeRefs {
		rec, err := stref.Decode(s)
		require.NoError(t, err)
		assert.Equal(t, stref.ExpectedEdge, rec.ExpectedType)
		assert.Equal(t, "extrude.edge", rec.LocalSelector.Kind)
		assert.EqualValues(t, i, rec.LocalSelector.Data["edgeIndex"])
		assert.Equal(t, wantLoopID, rec.LocalSelector.Data["loopId"])
	}
}
