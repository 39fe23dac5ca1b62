// Package validate runs structural and geometric consistency checks
// over a BREP body: loop-cycle closure, half-edge twin
// pairing and boundary detection, degenerate edges, sliver faces, and
// self-intersecting loops. Unlike package topo's setters — which,
// per that package's doc comment, construct only valid configurations
// without re-validating global invariants — this package is the
// dedicated place invariants are checked after the fact, producing a
// Report of Issues rather than failing fast on the first one, so a
// caller (or a human looking at Report.String()'s rendered table) sees
// everything wrong with a body in one pass.
package validate
