// Package geom provides the planar-subset surface and curve
// descriptors, plus the 3-vector arithmetic every other package builds
// on: Vec3, Plane, and the tagged-union Curve/Surface types.
//
// Surfaces and curves are represented as tagged sum types (a Kind enum
// plus per-variant fields) rather than an interface hierarchy: the
// variant set is closed and small, and every pipeline stage dispatches
// on Kind rather than through a Surface interface with one
// implementation per kind.
package geom
