package validate_test

import (
	"testing"

	"github.com/solidcore/kernel/feature"
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/profile"
	"github.com/solidcore/kernel/sketch"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
	"github.com/solidcore/kernel/validate"
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

func buildBox(t *testing.T) (*topo.Arena, *tol.Context, topo.BodyID) {
	t.Helper()
	data, solved := squareSketch()
	plane := geom.StandardPlane("xy")
	prof, err := profile.Build(data, solved, plane, true)
	require.NoError(t, err)

	a := topo.New()
	tc := tol.New()
	res, err := feature.Extrude(a, tc, prof, feature.ExtrudeParams{
		Extent: feature.ExtentBlind, Distance: 10, DirectionSign: 1, SourceFeatureID: "e1",
	})
	require.NoError(t, err)
	return a, tc, res.Body
}

func TestValidateCleanBoxHasNoErrors(t *testing.T) {
	a, tc, body := buildBox(t)
	report := validate.Validate(a, tc, body)
	assert.False(t, report.HasErrors())
	assert.Equal(t, 0, report.CountBySeverity(validate.SeverityError))
}

func TestValidateReportStringRendersTable(t *testing.T) {
	a, tc, body := buildBox(t)
	report := validate.Validate(a, tc, body)
	s := report.String()
	assert.Contains(t, s, "Validation Report")
}

func TestValidateSliverAreaEpsilonOption(t *testing.T) {
	a, tc, body := buildBox(t)
	// A huge sliver epsilon should flag every face of the 100-unit-area box faces.
	report := validate.Validate(a, tc, body, validate.WithSliverAreaEpsilon(1e9))
	assert.Greater(t, report.CountBySeverity(validate.SeverityWarning), 0)
}
