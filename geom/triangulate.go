package geom

// PointInTriangle reports whether p lies inside (or on the boundary
// of) the triangle a-b-c, via same-sign barycentric cross products.
func PointInTriangle(p, a, b, c Vec2) bool {
	d1 := (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
	d2 := (p.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(p.Y-c.Y)
	d3 := (p.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(p.Y-a.Y)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// EarClip triangulates a simple CCW polygon (no holes; use
// BridgeHoles first for polygons with holes) by the ear-clipping
// method, returning triangles as index triples into pts. It returns
// ok=false if pts has fewer than 3 points or clipping stalls (a
// self-intersecting or degenerate input, which a closed profile loop
// should never produce).
func EarClip(pts []Vec2) ([][3]int, bool) {
	n := len(pts)
	if n < 3 {
		return nil, false
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if !IsCCW(pts) {
		pts = Reversed2(pts)
		for i := range idx {
			idx[i] = n - 1 - i
		}
	}
	return earClipIndices(pts, idx)
}

// earClipIndices clips ears from the remaining index list remap,
// whose entries index into the original (caller-facing) point array;
// pts is the CCW-ordered working copy used for geometric tests.
func earClipIndices(pts []Vec2, remap []int) ([][3]int, bool) {
	n := len(pts)
	working := make([]int, n)
	for i := range working {
		working[i] = i
	}
	var tris [][3]int
	guard := 0
	maxGuard := n * n * 2
	for len(working) > 3 {
		guard++
		if guard > maxGuard {
			return nil, false
		}
		clipped := false
		m := len(working)
		for i := 0; i < m; i++ {
			ia := working[(i-1+m)%m]
			ib := working[i]
			ic := working[(i+1)%m]
			a, b, c := pts[ia], pts[ib], pts[ic]
			if SignedArea2([]Vec2{a, b, c}) <= 0 {
				continue
			}
			isEar := true
			for _, j := range working {
				if j == ia || j == ib || j == ic {
					continue
				}
				if PointInTriangle(pts[j], a, b, c) {
					isEar = false
					break
				}
			}
			if !isEar {
				continue
			}
			tris = append(tris, [3]int{remap[ia], remap[ib], remap[ic]})
			working = append(working[:i], working[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, false
		}
	}
	tris = append(tris, [3]int{remap[working[0]], remap[working[1]], remap[working[2]]})
	return tris, true
}

// BridgeHoles flattens a CCW outer loop plus zero or more CW inner
// (hole) loops into a single simple polygon suitable for EarClip, by
// connecting each hole to the outer boundary (or a previously bridged
// hole) via a zero-width bridge edge from the hole's rightmost vertex
// to the nearest visible outer vertex. It returns the merged point
// list; the caller should EarClip the result directly (bridge edges
// are traversed twice and produce degenerate zero-area ears that
// EarClip silently skips).
func BridgeHoles(outer []Vec2, holes [][]Vec2) []Vec2 {
	merged := append([]Vec2(nil), outer...)
	for _, hole := range holes {
		h := hole
		if IsCCW(h) {
			h = Reversed2(h)
		}
		bridgeIdx := rightmostIndex(h)
		outerIdx := nearestVisible(merged, h[bridgeIdx])
		merged = spliceHole(merged, outerIdx, h, bridgeIdx)
	}
	return merged
}

func rightmostIndex(pts []Vec2) int {
	best := 0
	for i, p := range pts {
		if p.X > pts[best].X {
			best = i
		}
	}
	return best
}

func nearestVisible(outer []Vec2, p Vec2) int {
	best := 0
	bestDist := p.Distance(outer[0])
	for i, q := range outer {
		d := p.Distance(q)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// spliceHole inserts hole (rotated so bridgeIdx is first) into outer
// right after outerIdx, with bridge vertices duplicated on both ends
// so the result traces outer, a bridge to the hole, the hole's full
// loop, and a bridge back.
func spliceHole(outer []Vec2, outerIdx int, hole []Vec2, bridgeIdx int) []Vec2 {
	n := len(hole)
	rotated := make([]Vec2, n)
	for i := 0; i < n; i++ {
		rotated[i] = hole[(bridgeIdx+i)%n]
	}
	insert := make([]Vec2, 0, n+2)
	insert = append(insert, outer[outerIdx])
	insert = append(insert, rotated...)
	insert = append(insert, rotated[0])
	out := make([]Vec2, 0, len(outer)+len(insert))
	out = append(out, outer[:outerIdx+1]...)
	out = append(out, insert...)
	out = append(out, outer[outerIdx+1:]...)
	return out
}
