package topo_test

import (
	"testing"

	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/tol"
	"github.com/solidcore/kernel/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSquareFace(t *testing.T, a *topo.Arena) topo.FaceID {
	t.Helper()
	pts := []geom.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	loop, hs, _ := a.NewVertexLoop(pts)
	require.Len(t, hs, 4)
	surf := a.AddSurface(geom.NewPlaneSurface(geom.StandardPlane("xy")))
	face := a.AddFace(loop, surf)
	shell := a.AddShell()
	a.AddFaceToShell(shell, face)
	body := a.AddBody()
	a.AddShellToBody(body, shell)
	return face
}

func TestNewVertexLoopCycleCloses(t *testing.T) {
	a := topo.New()
	face := buildSquareFace(t, a)
	loop := a.FaceOuterLoop(face)
	hs := a.LoopHalfEdges(loop)
	assert.Len(t, hs, 4)

	// prev(next(h)) == h for every half-edge in the loop.
	for _, h := range hs {
		n := a.Next(h)
		assert.Equal(t, h, a.Prev(n))
	}
}

func TestVertexContinuity(t *testing.T) {
	a := topo.New()
	face := buildSquareFace(t, a)
	loop := a.FaceOuterLoop(face)
	for _, h := range a.LoopHalfEdges(loop) {
		n := a.Next(h)
		assert.Equal(t, a.EndVertex(h), a.StartVertex(n))
	}
}

func TestMatchTwinsPairsSharedEdge(t *testing.T) {
	a := topo.New()
	c := tol.New()

	// Two unit squares sharing the edge x=1.
	sq1 := []geom.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	sq2 := []geom.Vec3{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	_, _, _ = a.NewVertexLoop(sq1)
	_, _, _ = a.NewVertexLoop(sq2)

	nonManifold := a.MatchTwins(func(v geom.Vec3) int64 {
		return int64(c.SnapKey(v.X))<<32 ^ int64(c.SnapKey(v.Y))
	})
	// The shared x=1 edge pairs cleanly; the six outer edges of the two
	// open squares stay unpaired and are each reported as non-manifold.
	assert.Equal(t, 6, nonManifold)

	twinned := 0
	for i := 0; i < a.HalfEdgeCount(); i++ {
		h := topo.HalfEdgeID(i)
		if !a.Twin(h).IsNull() {
			twinned++
		}
	}
	assert.Equal(t, 2, twinned) // the two half-edges along the shared x=1 edge
}

func TestDeleteBodyCascades(t *testing.T) {
	a := topo.New()
	face := buildSquareFace(t, a)
	shell := a.FaceShell(face)
	body := a.ShellBody(shell)

	assert.Equal(t, 1, a.BodyCount())
	a.DeleteBody(body)
	assert.Equal(t, 0, a.BodyCount())
	assert.Equal(t, 0, a.ShellCount())
	assert.Equal(t, 0, a.FaceCount())
}

func TestCloneIsIndependent(t *testing.T) {
	a := topo.New()
	buildSquareFace(t, a)
	b := a.Clone()
	b.DeleteBody(b.Bodies()[0])
	assert.Equal(t, 1, a.BodyCount())
	assert.Equal(t, 0, b.BodyCount())
}
