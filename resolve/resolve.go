package resolve

import (
	"math"
	"reflect"
	"sort"

	"github.com/solidcore/kernel/loopid"
	"github.com/solidcore/kernel/refindex"
	"github.com/solidcore/kernel/stref"
)

// maxAmbiguousCandidates bounds the candidate list returned for an
// Ambiguous result.
const maxAmbiguousCandidates = 5

// Resolve decides whether set still names exactly one face/edge in
// snap. Every candidate string in set is decoded and
// scored against every body's matching list in snap; the algorithm
// never rejects a ReferenceSet just because one candidate string is
// malformed, only when all of them are.
func Resolve(set stref.ReferenceSet, snap refindex.Snapshot) Result {
	refRecords, sentinel := decodeOrdered(set)
	if len(refRecords) == 0 {
		return Result{Status: StatusNotFound, Reason: "no candidate in the reference set could be decoded"}
	}

	var hits []Candidate
	for _, ref := range refRecords {
		hits = append(hits, scanSnapshot(ref, snap)...)
	}
	if len(hits) == 0 {
		return Result{Status: StatusNotFound, Reason: "no candidate matched an entry with the same originFeatureId and selector kind"}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score < hits[j].Score })

	if sentinel {
		return ambiguousResult(hits)
	}
	if len(hits) == 1 || hits[0].Score < 0.5*hits[1].Score {
		best := hits[0]
		return Result{Status: StatusFound, BodyKey: best.BodyKey, Index: best.Index}
	}
	return ambiguousResult(hits)
}

// ResolveMany resolves each of sets independently against the same
// snapshot.
func ResolveMany(sets []stref.ReferenceSet, snap refindex.Snapshot) []Result {
	out := make([]Result, len(sets))
	for i, set := range sets {
		out[i] = Resolve(set, snap)
	}
	return out
}

// decodeOrdered decodes every candidate in set, preferred first,
// skipping malformed entries, and reports whether any decoded record's selector data
// carries the loop:unknown sentinel.
func decodeOrdered(set stref.ReferenceSet) (records []stref.Record, sentinel bool) {
	n := len(set.Candidates)
	order := make([]string, 0, n)
	if set.Preferred >= 0 && set.Preferred < n {
		order = append(order, set.Candidates[set.Preferred])
	}
	for i, c := range set.Candidates {
		if i == set.Preferred {
			continue
		}
		order = append(order, c)
	}

	for _, s := range order {
		rec, err := stref.Decode(s)
		if err != nil {
			continue
		}
		records = append(records, rec)
		if carriesUnknownLoop(rec) {
			sentinel = true
		}
	}
	return records, sentinel
}

func carriesUnknownLoop(rec stref.Record) bool {
	for _, v := range rec.LocalSelector.Data {
		if s, ok := v.(string); ok && s == loopid.Unknown {
			return true
		}
	}
	return false
}

// scanSnapshot scores ref against every entry of snap whose kind
// matches ref.ExpectedType.
func scanSnapshot(ref stref.Record, snap refindex.Snapshot) []Candidate {
	var hits []Candidate
	for bodyKey, idx := range snap {
		var refs []string
		switch ref.ExpectedType {
		case stref.ExpectedFace:
			refs = idx.FaceRefs
		case stref.ExpectedEdge:
			refs = idx.EdgeRefs
		default:
			continue // vertex references are not modeled by refindex.Index
		}
		for i, s := range refs {
			cand, err := stref.Decode(s)
			if err != nil {
				continue
			}
			if cand.OriginFeatureID != ref.OriginFeatureID || cand.LocalSelector.Kind != ref.LocalSelector.Kind {
				continue
			}
			hits = append(hits, Candidate{BodyKey: bodyKey, Kind: ref.ExpectedType, Index: i, Score: score(ref, cand)})
		}
	}
	return hits
}

// score implements the resolver's ranking formula: 10 per differing
// selector-data key present on both sides, plus centroid distance,
// plus 5x relative size difference, plus (for faces) 10x(1-normal
// dot) when both sides carry a normal.
func score(ref, cand stref.Record) float64 {
	mismatches := 0
	for k, v := range ref.LocalSelector.Data {
		if cv, ok := cand.LocalSelector.Data[k]; ok && !reflect.DeepEqual(v, cv) {
			mismatches++
		}
	}
	s := 10 * float64(mismatches)
	s += ref.Fingerprint.Centroid.Distance(cand.Fingerprint.Centroid)
	s += 5 * relSizeDiff(ref.Fingerprint.Size, cand.Fingerprint.Size)
	if ref.ExpectedType == stref.ExpectedFace && ref.Fingerprint.Normal != nil && cand.Fingerprint.Normal != nil {
		s += 10 * (1 - ref.Fingerprint.Normal.Dot(*cand.Fingerprint.Normal))
	}
	return s
}

func relSizeDiff(a, b float64) float64 {
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom < 1e-12 {
		return 0
	}
	return math.Abs(a-b) / denom
}

func ambiguousResult(hits []Candidate) Result {
	if len(hits) > maxAmbiguousCandidates {
		hits = hits[:maxAmbiguousCandidates]
	}
	return Result{Status: StatusAmbiguous, Candidates: hits}
}
