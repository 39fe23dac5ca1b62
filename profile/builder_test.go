package profile_test

import (
	"testing"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareSketch builds a 10x10 axis-centered square sketch.
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
		"p1": {X: -5, Y: -5},
		"p2": {X: 5, Y: -5},
		"p3": {X: 5, Y: 5},
		"p4": {X: -5, Y: 5},
	}
	return data, solved
}

func TestBuildClosedSquareProfile(t *testing.T) {
	data, solved := squareSketch()
	plane := geom.StandardPlane("xy")

	prof, err := profile.Build(data, solved, plane, true)
	require.NoError(t, err)
	require.Len(t, prof.Loops, 1)

	loop := prof.Loops[0]
	assert.Len(t, loop.Edges, 4)
	assert.NotEqual(t, "loop:unknown", loop.ID)

	pts := loop.VertexPoints(plane)
	require.Len(t, pts, 4)
	assert.InDelta(t, -5, pts[0].X, 1e-9)
	assert.InDelta(t, -5, pts[0].Y, 1e-9)
}

func TestBuildOpenProfileFails(t *testing.T) {
	data, solved := squareSketch()
	delete(data.EntitiesByID, "l4")
	plane := geom.StandardPlane("xy")

	_, err := profile.Build(data, solved, plane, true)
	assert.ErrorIs(t, err, profile.ErrOpenProfile)
}

func TestBuildCircleIsSelfClosedLoop(t *testing.T) {
	data := sketch.Data{
		PointsByID: map[string]sketch.Point{"c": {ID: "c"}},
		EntitiesByID: map[string]sketch.Entity{
			"circ1": {ID: "circ1", Kind: sketch.EntityCircle, Center: "c", Radius: 3},
		},
	}
	solved := map[string]geom.Vec2{"c": {X: 0, Y: 0}}
	plane := geom.StandardPlane("xy")

	prof, err := profile.Build(data, solved, plane, true)
	require.NoError(t, err)
	require.Len(t, prof.Loops, 1)
	assert.Len(t, prof.Loops[0].Edges, 1)
}
