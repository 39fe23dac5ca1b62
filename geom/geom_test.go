package geom_test

import (
	"testing"

	"github.com/solidcore/kernel/geom"
	"github.com/stretchr/testify/assert"
)

func TestPlaneRoundTrip(t *testing.T) {
	p := geom.NewPlane(geom.Vec3{X: 1, Y: 2, Z: 3}, geom.Vec3{Z: 1}, geom.Vec3{X: 1})
	pt := geom.Vec3{X: 4, Y: 5, Z: 3}
	uv := p.To2D(pt)
	back := p.From2D(uv)
	assert.InDelta(t, pt.X, back.X, 1e-9)
	assert.InDelta(t, pt.Y, back.Y, 1e-9)
	assert.InDelta(t, pt.Z, back.Z, 1e-9)
}

func TestStandardPlanesOrthonormal(t *testing.T) {
	for _, role := range []string{"xy", "xz", "yz"} {
		p := geom.StandardPlane(role)
		assert.InDelta(t, 1, p.Normal.Length(), 1e-9)
		assert.InDelta(t, 1, p.XDir.Length(), 1e-9)
		assert.InDelta(t, 1, p.YDir.Length(), 1e-9)
		assert.InDelta(t, 0, p.Normal.Dot(p.XDir), 1e-9)
		assert.InDelta(t, 0, p.Normal.Dot(p.YDir), 1e-9)
	}
}

func TestSquareAreaAndCentroid(t *testing.T) {
	square := []geom.Vec2{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}
	assert.InDelta(t, 100, geom.PolygonArea(square), 1e-9)
	assert.True(t, geom.IsCCW(square))
	c := geom.Centroid2(square)
	assert.InDelta(t, 0, c.X, 1e-9)
	assert.InDelta(t, 0, c.Y, 1e-9)
}

func TestPointInPolygon(t *testing.T) {
	square := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.True(t, geom.PointInPolygon(geom.Vec2{X: 5, Y: 5}, square))
	assert.False(t, geom.PointInPolygon(geom.Vec2{X: 50, Y: 50}, square))
}

func TestSegmentIntersect(t *testing.T) {
	pt, ok := geom.SegmentIntersect(
		geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 10, Y: 10},
		geom.Vec2{X: 0, Y: 10}, geom.Vec2{X: 10, Y: 0},
		1e-9,
	)
	assert.True(t, ok)
	assert.InDelta(t, 5, pt.X, 1e-9)
	assert.InDelta(t, 5, pt.Y, 1e-9)

	_, ok = geom.SegmentIntersect(
		geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 1, Y: 0},
		geom.Vec2{X: 0, Y: 1}, geom.Vec2{X: 1, Y: 1},
		1e-9,
	)
	assert.False(t, ok)
}

func TestAABB3Overlap(t *testing.T) {
	a := geom.AABB3{Min: geom.Vec3{}, Max: geom.Vec3{X: 1, Y: 1, Z: 1}}
	b := geom.AABB3{Min: geom.Vec3{X: 2, Y: 2, Z: 2}, Max: geom.Vec3{X: 3, Y: 3, Z: 3}}
	assert.False(t, a.Overlaps(b))
	assert.True(t, a.Pad(1.5).Overlaps(b))
}
