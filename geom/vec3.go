package geom

import "math"

// Vec3 is a 3D vector or point, depending on context.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product v . w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns v scaled to unit length. The zero vector is
// returned unchanged (callers must guard degenerate input themselves;
// this keeps the helper total rather than panicking).
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates between v and w at parameter t in [0,1].
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Add(w.Sub(v).Scale(t))
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Distance returns the Euclidean distance between v and w.
func (v Vec3) Distance(w Vec3) float64 { return v.Sub(w).Length() }

// RotateAboutAxis rotates point p by angle radians (right-hand rule)
// about the line through axisOrigin with unit direction axisDir, via
// Rodrigues' rotation formula.
func RotateAboutAxis(p, axisOrigin, axisDir Vec3, angle float64) Vec3 {
	v := p.Sub(axisOrigin)
	cosT, sinT := math.Cos(angle), math.Sin(angle)
	rotated := v.Scale(cosT).
		Add(axisDir.Cross(v).Scale(sinT)).
		Add(axisDir.Scale(axisDir.Dot(v) * (1 - cosT)))
	return axisOrigin.Add(rotated)
}

// Vec2 is a 2D point or vector, used for in-plane coordinates during
// profile extraction and the planar boolean evaluator.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product v . w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the 2D "cross product" (scalar z-component) of v and w.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns the Euclidean distance between v and w.
func (v Vec2) Distance(w Vec2) float64 { return v.Sub(w).Length() }
