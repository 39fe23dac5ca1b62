package geom

import "math"

// CurveKind tags the variant of a Curve descriptor. The set is closed:
// line, arc, and circle, the planar subset this kernel implements;
// there is no spline kind.
type CurveKind uint8

const (
	CurveKindLine CurveKind = iota
	CurveKindArc
	CurveKindCircle
)

func (k CurveKind) String() string {
	switch k {
	case CurveKindLine:
		return "line"
	case CurveKindArc:
		return "arc"
	case CurveKindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Curve is a tagged-union curve descriptor referenced by BREP edges.
// Only the fields relevant to Kind are meaningful.
type Curve struct {
	Kind CurveKind

	// Line fields.
	Start, End Vec3

	// Arc/circle fields, in the owning plane's coordinate frame.
	Center   Vec3
	Radius   float64
	StartAng float64 // arc only, radians, measured from plane.XDir
	EndAng   float64 // arc only, radians
	CCW      bool
}

// NewLineCurve builds a line curve between two endpoints.
func NewLineCurve(start, end Vec3) Curve {
	return Curve{Kind: CurveKindLine, Start: start, End: end}
}

// NewArcCurve builds an arc curve.
func NewArcCurve(center Vec3, radius, startAng, endAng float64, ccw bool) Curve {
	return Curve{Kind: CurveKindArc, Center: center, Radius: radius, StartAng: startAng, EndAng: endAng, CCW: ccw}
}

// NewCircleCurve builds a full circle curve.
func NewCircleCurve(center Vec3, radius float64) Curve {
	return Curve{Kind: CurveKindCircle, Center: center, Radius: radius, CCW: true}
}

// Length returns the curve's arc length. It returns 0 for any kind it
// does not recognize rather than panicking.
func (c Curve) Length() float64 {
	switch c.Kind {
	case CurveKindLine:
		return c.End.Sub(c.Start).Length()
	case CurveKindArc:
		sweep := c.EndAng - c.StartAng
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
		return c.Radius * sweep
	case CurveKindCircle:
		return 2 * math.Pi * c.Radius
	default:
		return 0
	}
}

// PointAt returns the 3D point at angle (radians, measured from
// plane.XDir) along an arc or circle curve embedded in plane. It
// panics-free returns Center for any other Kind.
func (c Curve) PointAt(plane Plane, angle float64) Vec3 {
	if c.Kind != CurveKindArc && c.Kind != CurveKindCircle {
		return c.Center
	}
	uv := Vec2{X: c.Radius * math.Cos(angle), Y: c.Radius * math.Sin(angle)}
	centerUV := plane.To2D(c.Center)
	return plane.From2D(Vec2{X: centerUV.X + uv.X, Y: centerUV.Y + uv.Y})
}

// StartPoint returns the curve's starting 3D point: Start for a line,
// PointAt(plane, StartAng) for an arc, PointAt(plane, 0) for a circle
// (a circle's nominal start, used as its single polygon vertex when
// building a degenerate one-edge loop).
func (c Curve) StartPoint(plane Plane) Vec3 {
	switch c.Kind {
	case CurveKindLine:
		return c.Start
	case CurveKindArc:
		return c.PointAt(plane, c.StartAng)
	case CurveKindCircle:
		return c.PointAt(plane, 0)
	default:
		return c.Start
	}
}

// EndPoint returns the curve's ending 3D point, analogous to
// StartPoint.
func (c Curve) EndPoint(plane Plane) Vec3 {
	switch c.Kind {
	case CurveKindLine:
		return c.End
	case CurveKindArc:
		return c.PointAt(plane, c.EndAng)
	case CurveKindCircle:
		return c.PointAt(plane, 0)
	default:
		return c.End
	}
}
