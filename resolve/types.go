package resolve

import "github.com/solidcore/kernel/stref"

// Status is the outcome of a Resolve call.
type Status uint8

const (
	StatusFound Status = iota
	StatusAmbiguous
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusAmbiguous:
		return "ambiguous"
	default:
		return "not_found"
	}
}

// Candidate is one scored hit against the live reference index: a
// lower Score is a better match.
type Candidate struct {
	BodyKey string
	Kind    stref.ExpectedType
	Index   int
	Score   float64
}

// Result is Resolve's output. For StatusFound, BodyKey/Index name the
// single resolved position. For StatusAmbiguous, Candidates holds up
// to 5 scored hits. For StatusNotFound, Reason explains why nothing
// matched.
type Result struct {
	Status     Status
	BodyKey    string
	Index      int
	Candidates []Candidate
	Reason     string
}
