// Package tessellate converts a BREP body (package topo) into a
// triangle mesh for display and measurement: one fan of
// triangles per planar face via ear-clipping with hole bridging
// (package geom), plus per-face and per-edge content hashes so a
// renderer or diffing tool can correlate mesh triangles back to the
// operation-history identifiers package history and package refindex
// track. A circle-loop side face (the two-vertex seam representation
// package feature builds for a cylindrical or conical lateral
// surface, tagged Surface.Kind Cylinder/Cone with no populated
// parameters) has no flat outer loop to ear-clip and is reported via
// Mesh.SkippedFaces rather than silently dropped.
package tessellate
