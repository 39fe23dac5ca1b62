// Package boolean evaluates the three solid boolean operations
// (union, subtract, intersect) between two bodies in the same
// topo.Arena.
//
// The evaluator is a boundary evaluation, not a convex clipper: each
// face of one operand is imprinted against every face of the other —
// its own boundary plus whatever chords the other operand's coplanar
// or transverse faces leave across it (arrangement.go, cutters.go) —
// and the arrangement is traced into its atomic bounded pieces
// (arrangement.go's traceArrangementFaces). Pieces are nested into a
// containment forest so an outer piece can carry its directly-nested
// children as hole loops (classify.go, pieces.go), each resulting
// compound piece is classified against the other operand as
// outside/inside/on_same/on_opposite by a coplanar check backed by a
// ray cast (classify.go), and the operation's selection rule, a
// plane-level dedup pass, a cross-body exact-duplicate dedup, bounds
// clamping, and a final area-based regularize pick the surviving set
// (pieces.go). None of this assumes
// either operand is convex, and a kept piece with holes is committed
// with its hole loops attached via topo.AddInnerLoop rather than
// flattened away.
package boolean
