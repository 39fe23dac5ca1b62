package loopid_test

import (
	"testing"

	"github.com/solidcore/kernel/loopid"
	"github.com/stretchr/testify/assert"
)

func TestComputeRotationInvariant(t *testing.T) {
	a := loopid.Compute([]string{"l1", "l2", "l3", "l4"})
	b := loopid.Compute([]string{"l3", "l4", "l1", "l2"})
	c := loopid.Compute([]string{"l4", "l1", "l2", "l3"})
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestComputeDiffersForDifferentCycles(t *testing.T) {
	a := loopid.Compute([]string{"l1", "l2", "l3"})
	b := loopid.Compute([]string{"l1", "l2", "l4"})
	assert.NotEqual(t, a, b)
}

func TestComputeEmptyIsUnknown(t *testing.T) {
	assert.Equal(t, loopid.Unknown, loopid.Compute(nil))
}
