// Package stref implements persistent references: a
// canonical-JSON record naming a face/edge/vertex by its generating
// feature, a typed local selector, and a geometric fingerprint, wire
// encoded as "stref:v1:<base64url(canonical-json)>". Package refindex
// builds these strings; package resolve consumes them.
package stref

import "github.com/solidcore/kernel/geom"

// Version is the only wire version this package emits or accepts.
const Version = 1

// ExpectedType names the topology kind a reference points at.
type ExpectedType string

const (
	ExpectedFace   ExpectedType = "face"
	ExpectedEdge   ExpectedType = "edge"
	ExpectedVertex ExpectedType = "vertex"
)

// LocalSelector is the reference's feature-local description: a kind
// tag (e.g. "extrude.topCap", "revolve.side", "face.unknown") plus a
// small bag of selector-specific data (profileEdgeIndex, segmentId,
// edgeIndex, loopId, faceIndex — whichever the kind uses).
type LocalSelector struct {
	Kind string
	Data map[string]interface{}
}

// Fingerprint is the geometric signature used to disambiguate among
// candidates sharing a kind: an area- or
// length-weighted centroid, a size (area or length), and — for faces
// only — an outward normal.
type Fingerprint struct {
	Centroid geom.Vec3
	Size     float64
	Normal   *geom.Vec3
}

// Record is the decoded content of a persistent reference.
type Record struct {
	ExpectedType    ExpectedType
	OriginFeatureID string
	LocalSelector   LocalSelector
	Fingerprint     Fingerprint
}

// MinCandidates and MaxCandidates bound a ReferenceSet's candidate
// list. NewReferenceSet enforces
// the upper bound; callers are expected to supply at least
// MinCandidates when they have a real disambiguation need, but an
// under-filled set is not itself an error — it just resolves with
// fewer fallback candidates.
const (
	MinCandidates = 3
	MaxCandidates = 5
)

// ReferenceSet carries multiple stref candidates for the same logical
// reference, with an optional preferred one tried first.
type ReferenceSet struct {
	Candidates []string
	Preferred  int // index into Candidates; < 0 means "none"
}

// NewReferenceSet builds a ReferenceSet from candidates, preferring
// preferredIndex (ignored if out of range), and truncating to
// MaxCandidates.
func NewReferenceSet(candidates []string, preferredIndex int) ReferenceSet {
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	if preferredIndex < 0 || preferredIndex >= len(candidates) {
		preferredIndex = -1
	}
	return ReferenceSet{Candidates: candidates, Preferred: preferredIndex}
}

// Single wraps one stref string as a one-candidate ReferenceSet, for
// callers that only ever have a single reference and want to share
// the Resolve call site with set-based callers.
func Single(s string) ReferenceSet {
	return ReferenceSet{Candidates: []string{s}, Preferred: 0}
}
