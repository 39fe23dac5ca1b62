package resolve_test

import (
	"testing"

	"github.com/solidcore/kernel/feature"
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/refindex"
	"github.com/solidcore/kernel/resolve"
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

func buildBoxSnapshot(t *testing.T) refindex.Snapshot {
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

	idx, err := refindex.Build(a, tc, res.Body, res.History, "E1")
	require.NoError(t, err)
	return refindex.Snapshot{"E1": idx}
}

func TestResolveFindsExactMatch(t *testing.T) {
	snap := buildBoxSnapshot(t)
	target := snap["E1"].FaceRefs[0]

	result := resolve.Resolve(stref.Single(target), snap)
	assert.Equal(t, resolve.StatusFound, result.Status)
	assert.Equal(t, "E1", result.BodyKey)
	assert.Equal(t, 0, result.Index)
}

func TestResolveNotFoundWrongOriginFeature(t *testing.T) {
	snap := buildBoxSnapshot(t)
	rec, err := stref.Decode(snap["E1"].FaceRefs[0])
	require.NoError(t, err)
	rec.OriginFeatureID = "does-not-exist"
	s, err := stref.Encode(rec)
	require.NoError(t, err)

	result := resolve.Resolve(stref.Single(s), snap)
	assert.Equal(t, resolve.StatusNotFound, result.Status)
}

func TestResolveLoopUnknownSentinelForcesAmbiguous(t *testing.T) {
	snap := buildBoxSnapshot(t)
	rec, err := stref.Decode(snap["E1"].FaceRefs[0])
	require.NoError(t, err)
	rec.LocalSelector.Data["loopId"] = "loop:unknown"
	s, err := stref.Encode(rec)
	require.NoError(t, err)

	result := resolve.Resolve(stref.Single(s), snap)
	assert.Equal(t, resolve.StatusAmbiguous, result.Status)
	assert.NotEmpty(t, result.Candidates)
}

func TestResolveMalformedCandidateSkipped(t *testing.T) {
	snap := buildBoxSnapshot(t)
	target := snap["E1"].FaceRefs[0]
	set := stref.NewReferenceSet([]string{"not-a-stref", target}, 1)

	result := resolve.Resolve(set, snap)
	assert.Equal(t, resolve.StatusFound, result.Status)
}

func TestResolveManyResolvesIndependently(t *testing.T) {
	snap := buildBoxSnapshot(t)
	sets := []stref.ReferenceSet{
		stref.Single(snap["E1"].FaceRefs[0]),
		stref.Single(snap["E1"].FaceRefs[1]),
	}
	results := resolve.ResolveMany(sets, snap)
	require.Len(t, results, 2)
	assert.Equal(t, resolve.StatusFound, results[0].Status)
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, resolve.StatusFound, results[1].Status)
	assert.Equal(t, 1, results[1].Index)
}
