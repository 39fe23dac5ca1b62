// Package profile implements the profile builder:
// given solved sketch data and a target datum plane, it builds an
// adjacency graph over shared sketch-point identifiers, traces cycles
// (bounded depth, to stay total on pathological input), treats any
// circle entity as a self-closed loop, and assigns each resulting loop
// a stable identifier via package loopid.
//
// Construction entities are
// carried through as profile edges flagged IsConstruction rather than
// filtered out here — feature.Revolve is the caller that skips them
// when emitting side faces; the profile builder's job is topological
// extraction, not feature-specific filtering.
package profile
