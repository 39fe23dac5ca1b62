package history_test

import (
	"testing"

	"github.com/solidcore/kernel/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCapAndAddSide(t *testing.T) {
	r := history.New()
	r.SetCap(history.FaceTopCap, 111, "E1")
	r.SetCap(history.FaceBottomCap, 222, "E1")
	r.AddSide(0, 333, "l1", "E1", history.FaceExtrudeSide)

	o, ok := r.Lookup(111)
	require.True(t, ok)
	assert.Equal(t, "E1", o.SourceFeatureID)
	assert.Equal(t, history.FaceTopCap, o.FaceType)

	o2, ok := r.Lookup(333)
	require.True(t, ok)
	assert.Equal(t, "l1", o2.EntityID)
	assert.Equal(t, history.FaceExtrudeSide, o2.FaceType)
}

func TestMergeBaseTakesPrecedence(t *testing.T) {
	base := history.New()
	base.SetCap(history.FaceTopCap, 1, "E1")
	tool := history.New()
	tool.SetCap(history.FaceTopCap, 2, "E2")

	output := history.New()
	baseProv := []history.Provenance{{OutputHash: 100, SourceHash: 1}}
	toolProv := []history.Provenance{{OutputHash: 100, SourceHash: 2}}

	history.Merge(output, base, tool, baseProv, toolProv)

	o, ok := output.Lookup(100)
	require.True(t, ok)
	assert.Equal(t, "E1", o.SourceFeatureID) // base wins even though tool also mapped to 100
}

func TestMergeSkipsDeleted(t *testing.T) {
	base := history.New()
	base.SetCap(history.FaceTopCap, 1, "E1")
	output := history.New()
	history.Merge(output, base, history.New(), []history.Provenance{{OutputHash: 9, SourceHash: 1, Deleted: true}}, nil)
	_, ok := output.Lookup(9)
	assert.False(t, ok)
}
