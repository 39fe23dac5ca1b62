package boolean

import (
	"math"
	"sort"

	"github.com/solidcore/kernel/geom"
)

// segment2 is one edge contributed to a single face's imprint
// arrangement: either part of the face's own boundary or
// an intersection chord the other operand's boundary leaves across it.
type segment2 struct {
	a, b geom.Vec2
}

func lerp2(p0, p1 geom.Vec2, t float64) geom.Vec2 {
	return geom.Vec2{X: p0.X + t*(p1.X-p0.X), Y: p0.Y + t*(p1.Y-p0.Y)}
}

// paramAlong returns the t such that p0+t*(p1-p0) is approximately pt,
// solved against whichever axis p0->p1 moves along the most, to avoid
// dividing by a near-zero component.
func paramAlong(p0, p1, pt geom.Vec2) float64 {
	d := p1.Sub(p0)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X == 0 {
			return 0
		}
		return (pt.X - p0.X) / d.X
	}
	if d.Y == 0 {
		return 0
	}
	return (pt.Y - p0.Y) / d.Y
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func dedupFloats(vals []float64, eps float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v-out[len(out)-1] <= eps {
			continue
		}
		out = append(out, v)
	}
	return out
}

// splitSegments breaks every segment in segs at every pairwise
// intersection with another segment, returning the finer
// segment set the arrangement is actually built from. A cutter chord
// that only grazes a boundary segment's interior still yields two
// shorter collinear-ish segments sharing the new vertex, which is what
// lets the face tracer below treat it as an ordinary graph vertex.
func splitSegments(segs []segment2, lenTol float64) []segment2 {
	params := make([][]float64, len(segs))
	for i := range segs {
		params[i] = []float64{0, 1}
	}
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			pt, ok := geom.SegmentIntersect(segs[i].a, segs[i].b, segs[j].a, segs[j].b, lenTol)
			if !ok {
				continue
			}
			params[i] = append(params[i], clamp01(paramAlong(segs[i].a, segs[i].b, pt)))
			params[j] = append(params[j], clamp01(paramAlong(segs[j].a, segs[j].b, pt)))
		}
	}

	var out []segment2
	for i, s := range segs {
		ts := dedupFloats(params[i], 1e-9)
		for k := 0; k+1 < len(ts); k++ {
			p0 := lerp2(s.a, s.b, ts[k])
			p1 := lerp2(s.a, s.b, ts[k+1])
			if p0.Distance(p1) <= lenTol {
				continue
			}
			out = append(out, segment2{a: p0, b: p1})
		}
	}
	return out
}

// vertexKey buckets a 2D point to an integer grid cell at the given
// resolution, for near-coincident-endpoint deduplication.
func vertexKey(p geom.Vec2, bucket float64) [2]int64 {
	return [2]int64{
		int64(math.Round(p.X / bucket)),
		int64(math.Round(p.Y / bucket)),
	}
}

// traceArrangementFaces builds a planar straight-line graph from segs
// (bucketing endpoints at bucket resolution so near-coincident points
// collapse to one vertex) and traces its bounded polygonal faces.
//
// Every distinct segment becomes a pair of opposing directed
// half-edges. Each vertex's outgoing half-edges are sorted by angle,
// and walking "the reverse of the half-edge just arrived on, then one
// step clockwise" from every directed half-edge traces exactly one
// cycle per face of the subdivision. The bounded faces of a connected
// planar subdivision come out as these cycles in CCW order; the single
// unbounded face comes out CW, so filtering to positive-area cycles
// keeps exactly the bounded regions. A cutter chord that dangles into a
// face's interior without reaching another boundary (a spur), or one
// that touches nothing at all, traces as a zero-area degenerate cycle
// and is dropped the same way — it cannot topologically separate any
// region, so that is the correct outcome, not a special case.
func traceArrangementFaces(segs []segment2, bucket float64) [][]geom.Vec2 {
	if bucket <= 0 {
		bucket = 1e-6
	}

	var verts []geom.Vec2
	vIndex := map[[2]int64]int{}
	vid := func(p geom.Vec2) int {
		k := vertexKey(p, bucket)
		if id, ok := vIndex[k]; ok {
			return id
		}
		id := len(verts)
		verts = append(verts, p)
		vIndex[k] = id
		return id
	}

	type dedge struct{ from, to int }
	edgeIndex := map[dedge]int{}
	var edges []dedge
	addEdge := func(u, v int) {
		if u == v {
			return
		}
		key := dedge{u, v}
		if _, ok := edgeIndex[key]; ok {
			return
		}
		edgeIndex[key] = len(edges)
		edges = append(edges, key)
	}
	for _, s := range segs {
		u, v := vid(s.a), vid(s.b)
		addEdge(u, v)
		addEdge(v, u)
	}
	if len(edges) == 0 {
		return nil
	}

	outgoing := make(map[int][]int, len(verts))
	for i, e := range edges {
		outgoing[e.from] = append(outgoing[e.from], i)
	}
	angleOf := func(v, edgeIdx int) float64 {
		to := verts[edges[edgeIdx].to]
		return math.Atan2(to.Y-verts[v].Y, to.X-verts[v].X)
	}
	for v, list := range outgoing {
		sort.Slice(list, func(i, j int) bool { return angleOf(v, list[i]) < angleOf(v, list[j]) })
		outgoing[v] = list
	}

	var faces [][]geom.Vec2
	visited := make([]bool, len(edges))
	for start := range edges {
		if visited[start] {
			continue
		}
		var poly []geom.Vec2
		cur := start
		for {
			visited[cur] = true
			e := edges[cur]
			poly = append(poly, verts[e.from])
			list := outgoing[e.to]
			rev := edgeIndex[dedge{e.to, e.from}]
			pos := positionOf(list, rev)
			cur = list[(pos-1+len(list))%len(list)]
			if cur == start {
				break
			}
		}
		faces = append(faces, poly)
	}
	return faces
}

func positionOf(list []int, v int) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return 0
}

// dedupConsecutive collapses consecutive (including wraparound) points
// within tol of each other, cleaning up the slivers a traced cycle can
// pick up from near-coincident split points.
func dedupConsecutive(poly []geom.Vec2, tol float64) []geom.Vec2 {
	if len(poly) == 0 {
		return poly
	}
	out := []geom.Vec2{poly[0]}
	for _, p := range poly[1:] {
		if p.Distance(out[len(out)-1]) > tol {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0].Distance(out[len(out)-1]) <= tol {
		out = out[:len(out)-1]
	}
	return out
}
