// Package tol provides the process-wide numeric context shared by every
// geometric component of the kernel: length, angle, and area tolerances,
// and the snapping/zero-check helpers every tolerance-aware predicate
// routes through.
//
// Predicates that take a *Context read tol.Length/Angle/Area (or a
// documented scaled multiple of one of them) from the *Context passed
// down from the caller, so constructing one with different defaults
// and re-running changes all of them at once. A few fixed literals do
// not follow the Context: VertexBucketTolerance's 1e-6 floor, the
// 1e-9, 1e-12 and 1e-6 cutoffs in package boolean's arrangement and
// cutter code, resolve's 1e-12 denominator guard, geom.Centroid2's
// 1e-15 degenerate-area cutoff, and validate's default sliver
// threshold of 1e-9.
package tol
