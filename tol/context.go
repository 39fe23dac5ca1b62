package tol

import (
	"math"

	"github.com/solidcore/kernel/geom"
)

// Default tolerances a *Context starts from. Components that take a
// *Context read them (or a documented scaled multiple) from it; the
// fixed literals that sit outside the Context are listed in the
// package doc.
const (
	DefaultLength = 1e-6
	DefaultAngle  = 1e-7
	DefaultArea   = 1e-9
)

// Context carries the tolerances every geometric predicate in the
// kernel is routed through.
//
//   - Length is the baseline linear tolerance (model units).
//   - Angle is the baseline angular tolerance (radians).
//   - Area is the baseline area tolerance (model units squared).
type Context struct {
	Length float64
	Angle  float64
	Area   float64
}

// Option configures a Context before construction.
type Option func(*Context)

// WithLength overrides the baseline length tolerance.
func WithLength(length float64) Option {
	return func(c *Context) { c.Length = length }
}

// WithAngle overrides the baseline angular tolerance.
func WithAngle(angle float64) Option {
	return func(c *Context) { c.Angle = angle }
}

// WithArea overrides the baseline area tolerance.
func WithArea(area float64) Option {
	return func(c *Context) { c.Area = area }
}

// New builds a Context with defaults DefaultLength/DefaultAngle/DefaultArea,
// then applies opts in order.
func New(opts ...Option) *Context {
	c := &Context{
		Length: DefaultLength,
		Angle:  DefaultAngle,
		Area:   DefaultArea,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsZero reports whether x is within the baseline length tolerance of
// zero. Predicates must never compare floats with ==; this is the
// canonical replacement.
func (c *Context) IsZero(x float64) bool {
	return math.Abs(x) <= c.Length
}

// IsZeroAngle reports whether a is within the baseline angular
// tolerance of zero.
func (c *Context) IsZeroAngle(a float64) bool {
	return math.Abs(a) <= c.Angle
}

// IsZeroArea reports whether a is within the baseline area tolerance
// of zero.
func (c *Context) IsZeroArea(a float64) bool {
	return math.Abs(a) <= c.Area
}

// Equal reports whether a and b are equal within the baseline length
// tolerance.
func (c *Context) Equal(a, b float64) bool {
	return c.IsZero(a - b)
}

// Snap rounds x to the nearest multiple of the given step; a step of
// zero returns x unchanged.
func (c *Context) Snap(x, step float64) float64 {
	if step == 0 {
		return x
	}
	return math.Round(x/step) * step
}

// Scaled returns the baseline length tolerance multiplied by factor.
// Every component that needs a padding/bucket tolerance derived from
// the baseline (10·tol, 1000·tol, tol²) calls this instead of
// recomputing the multiplication inline, so every scaled tolerance in
// the codebase is traceable to one definition.
func (c *Context) Scaled(factor float64) float64 {
	return c.Length * factor
}

// AreaEpsilon returns tol.Area, exposed as a method for symmetry with
// Scaled so call sites never need to reach into the struct fields
// directly inside predicate code.
func (c *Context) AreaEpsilon() float64 {
	return c.Area
}

// VertexBucketTolerance is the tolerance used to deduplicate
// near-coincident vertices during DCEL imprint:
// max(10^3·tol.length, 1e-6).
func (c *Context) VertexBucketTolerance() float64 {
	return math.Max(c.Scaled(1e3), 1e-6)
}

// SnapKey quantizes a coordinate to an integer bucket at the vertex
// bucket tolerance, for use as a map key when deduplicating
// near-coincident points. Two coordinates within the bucket tolerance
// of each other are not guaranteed to share a key at bucket
// boundaries; callers that need boundary-safe dedup should also probe
// neighboring buckets.
func (c *Context) SnapKey(x float64) int64 {
	bucket := c.VertexBucketTolerance()
	return int64(math.Round(x / bucket))
}

// SnapKey3 combines the per-axis bucket keys of a 3D point into a
// single int64, for use as a vertex-identity map key during stitching.
// Collisions are possible for pathologically large coordinates; every
// caller in this module works in bounded model space where that risk
// is negligible.
func (c *Context) SnapKey3(v geom.Vec3) int64 {
	kx := c.SnapKey(v.X)
	ky := c.SnapKey(v.Y)
	kz := c.SnapKey(v.Z)
	return (kx << 42) ^ (ky << 21) ^ kz
}
