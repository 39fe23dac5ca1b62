package boolean

import (
	"github.com/solidcore/kernel/geom"
	"github.com/solidcore/kernel/topo"
)

// bodyBounds returns the AABB3 enclosing every vertex reachable from
// body's faces (outer loop and every hole), used by Run's disjoint-
// bodies shortcut and by the bounds-clamping step.
func bodyBounds(a *topo.Arena, body topo.BodyID) geom.AABB3 {
	var pts []geom.Vec3
	for _, f := range a.AllFacesOfBody(body) {
		loops := append([]topo.LoopID{a.FaceOuterLoop(f)}, a.FaceInnerLoops(f)...)
		for _, loop := range loops {
			for _, v := range a.LoopVertices(loop) {
				pts = append(pts, a.VertexPosition(v))
			}
		}
	}
	return geom.BoundsOf3(pts)
}
