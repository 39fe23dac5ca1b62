package geom

import "math"

// SignedArea2 returns twice the signed area of the polygon described by
// pts (shoelace formula, not divided by 2 so callers needing the raw
// accumulator can skip a multiply). Positive for CCW, negative for CW.
func SignedArea2(pts []Vec2) float64 {
	if len(pts) < 3 {
		return 0
	}
	sum := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum
}

// PolygonArea returns the absolute area of the polygon described by pts.
func PolygonArea(pts []Vec2) float64 {
	return math.Abs(SignedArea2(pts)) / 2
}

// IsCCW reports whether pts winds counter-clockwise.
func IsCCW(pts []Vec2) bool {
	return SignedArea2(pts) > 0
}

// Reversed2 returns a copy of pts in reverse order.
func Reversed2(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// Centroid2 returns the area-weighted centroid of the polygon pts. For
// a degenerate (near-zero-area) polygon it falls back to the vertex
// average.
func Centroid2(pts []Vec2) Vec2 {
	area2 := SignedArea2(pts)
	if math.Abs(area2) < 1e-15 {
		var sx, sy float64
		for _, p := range pts {
			sx += p.X
			sy += p.Y
		}
		n := float64(len(pts))
		if n == 0 {
			return Vec2{}
		}
		return Vec2{X: sx / n, Y: sy / n}
	}
	var cx, cy float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		cx += (pts[i].X + pts[j].X) * cross
		cy += (pts[i].Y + pts[j].Y) * cross
	}
	factor := 1 / (3 * area2)
	return Vec2{X: cx * factor, Y: cy * factor}
}

// PointInPolygon reports whether pt lies strictly inside pts using the
// standard even-odd ray-casting test. Points on the boundary may
// return either value; callers needing boundary-exact classification
// should test distance-to-edge separately.
func PointInPolygon(pt Vec2, pts []Vec2) bool {
	inside := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xIntersect := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// SegmentIntersect computes the intersection of segments (a0,a1) and
// (b0,b1) in the plane. ok is false for parallel (including
// collinear) segments or when the intersection falls outside either
// segment, each segment's 0..1 parameter allowing tol of slack.
func SegmentIntersect(a0, a1, b0, b1 Vec2, tol float64) (pt Vec2, ok bool) {
	r := a1.Sub(a0)
	s := b1.Sub(b0)
	denom := r.Cross(s)
	if math.Abs(denom) <= tol {
		return Vec2{}, false
	}
	qp := b0.Sub(a0)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < -tol || t > 1+tol || u < -tol || u > 1+tol {
		return Vec2{}, false
	}
	return a0.Add(r.Scale(t)), true
}

// AABB2 is an axis-aligned bounding box in 2D.
type AABB2 struct {
	Min, Max Vec2
}

// BoundsOf2 returns the AABB2 enclosing pts.
func BoundsOf2(pts []Vec2) AABB2 {
	if len(pts) == 0 {
		return AABB2{}
	}
	b := AABB2{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}

// Pad returns b expanded by d on every side.
func (b AABB2) Pad(d float64) AABB2 {
	return AABB2{
		Min: Vec2{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Vec2{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Overlaps reports whether b and o intersect.
func (b AABB2) Overlaps(o AABB2) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Contains reports whether o lies entirely within b, padded by tol.
func (b AABB2) Contains(o AABB2, tol float64) bool {
	return o.Min.X >= b.Min.X-tol && o.Max.X <= b.Max.X+tol &&
		o.Min.Y >= b.Min.Y-tol && o.Max.Y <= b.Max.Y+tol
}

// AABB3 is an axis-aligned bounding box in 3D.
type AABB3 struct {
	Min, Max Vec3
}

// BoundsOf3 returns the AABB3 enclosing pts.
func BoundsOf3(pts []Vec3) AABB3 {
	if len(pts) == 0 {
		return AABB3{}
	}
	b := AABB3{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Z < b.Min.Z {
			b.Min.Z = p.Z
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
		if p.Z > b.Max.Z {
			b.Max.Z = p.Z
		}
	}
	return b
}

// Pad returns b expanded by d on every side.
func (b AABB3) Pad(d float64) AABB3 {
	return AABB3{
		Min: Vec3{X: b.Min.X - d, Y: b.Min.Y - d, Z: b.Min.Z - d},
		Max: Vec3{X: b.Max.X + d, Y: b.Max.Y + d, Z: b.Max.Z + d},
	}
}

// Overlaps reports whether b and o intersect.
func (b AABB3) Overlaps(o AABB3) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Union returns the smallest AABB3 containing both b and o.
func (b AABB3) Union(o AABB3) AABB3 {
	return AABB3{
		Min: Vec3{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y), Z: math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y), Z: math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Volume returns the box volume (0 for a degenerate box).
func (b AABB3) Volume() float64 {
	d := b.Max.Sub(b.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return d.X * d.Y * d.Z
}
