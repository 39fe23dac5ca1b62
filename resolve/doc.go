// Package resolve implements the reference resolver: given a
// persistent reference (a single stref string or a
// stref.ReferenceSet) and a fresh refindex.Snapshot, decide whether
// the reference still names exactly one face/edge (Found), names more
// than one equally-plausible candidate (Ambiguous), or matches nothing
// at all (NotFound).
package resolve
