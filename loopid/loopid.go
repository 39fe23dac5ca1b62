package loopid

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Unknown is the sentinel loop identifier used when a loop's entity
// cycle could not be determined. A sentinel always
// forces ambiguous resolution in package resolve.
const Unknown = "loop:unknown"

// Compute derives the stable loop identifier for the ordered cyclic
// list of entity identifiers ids. The rotation that starts at the
// lexicographically smallest identifier is canonical, so two callers
// presented with the same cycle starting at different offsets (or
// walked in a different but equivalent rotation) produce the same
// identifier. Compute does not itself handle direction reversal —
// callers that may walk a cycle backward should canonicalize
// direction before calling (e.g. always walk CCW).
//
// An empty ids returns Unknown.
func Compute(ids []string) string {
	if len(ids) == 0 {
		return Unknown
	}
	rotated := canonicalRotation(ids)
	joined := strings.Join(rotated, "\x1f")
	h := fnv.New64a()
	_, _ = h.Write([]byte(joined))
	return "loop:" + strconv.FormatUint(h.Sum64(), 36)
}

// ComputeHash64 is Compute without the "loop:" base36 string
// formatting: the raw FNV-1a sum over the same canonical rotation, for
// callers that need a numeric map key (face topology hashes) rather
// than a persistent display identifier.
func ComputeHash64(ids []string) uint64 {
	if len(ids) == 0 {
		return 0
	}
	rotated := canonicalRotation(ids)
	joined := strings.Join(rotated, "\x1f")
	h := fnv.New64a()
	_, _ = h.Write([]byte(joined))
	return h.Sum64()
}

// canonicalRotation returns ids rotated so its lexicographically
// smallest element comes first. Ties (a repeated minimum) break in
// favor of the earliest occurrence, which keeps the function
// deterministic for degenerate inputs without requiring entity
// identifiers to be unique within the cycle (they always are in
// practice, but Compute stays total either way).
func canonicalRotation(ids []string) []string {
	minIdx := 0
	for i, id := range ids {
		if id < ids[minIdx] {
			minIdx = i
		}
	}
	n := len(ids)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ids[(minIdx+i)%n]
	}
	return out
}
