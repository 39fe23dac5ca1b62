package tol_test

import (
	"testing"

	"github.com/solidcore/kernel/tol"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	c := tol.New()
	assert.Equal(t, tol.DefaultLength, c.Length)
	assert.Equal(t, tol.DefaultAngle, c.Angle)
	assert.Equal(t, tol.DefaultArea, c.Area)
}

func TestNewWithOptions(t *testing.T) {
	c := tol.New(tol.WithLength(1e-3), tol.WithAngle(1e-2), tol.WithArea(1e-4))
	assert.Equal(t, 1e-3, c.Length)
	assert.Equal(t, 1e-2, c.Angle)
	assert.Equal(t, 1e-4, c.Area)
}

func TestIsZero(t *testing.T) {
	c := tol.New(tol.WithLength(1e-6))
	assert.True(t, c.IsZero(0))
	assert.True(t, c.IsZero(5e-7))
	assert.False(t, c.IsZero(1e-3))
}

func TestSnap(t *testing.T) {
	c := tol.New()
	assert.Equal(t, 1.0, c.Snap(1.04, 1.0))
	assert.Equal(t, 2.0, c.Snap(1.6, 1.0))
	assert.Equal(t, 1.04, c.Snap(1.04, 0))
}

func TestScaled(t *testing.T) {
	c := tol.New(tol.WithLength(1e-6))
	assert.InDelta(t, 1e-5, c.Scaled(10), 1e-12)
	assert.InDelta(t, 1e-3, c.Scaled(1e3), 1e-12)
}

func TestVertexBucketTolerance(t *testing.T) {
	c := tol.New(tol.WithLength(1e-6))
	assert.Equal(t, 1e-3, c.VertexBucketTolerance())

	c2 := tol.New(tol.WithLength(1e-12))
	assert.Equal(t, 1e-6, c2.VertexBucketTolerance())
}

func TestSnapKeyGroupsNearbyCoordinates(t *testing.T) {
	c := tol.New()
	a := c.SnapKey(1.0000001)
	b := c.SnapKey(1.0000002)
	assert.Equal(t, a, b)
}
