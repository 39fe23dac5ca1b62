package validate

import "github.com/solidcore/kernel/topo"

// Severity classifies how serious an Issue is.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Code tags the check an Issue came from. The set is closed; callers
// that need to branch on a specific check should switch on Code rather
// than parse Message.
type Code string

const (
	CodeInvalidReference     Code = "INVALID_REFERENCE"
	CodeLoopCycleBroken      Code = "LOOP_CYCLE_BROKEN"
	CodeTwinMismatch         Code = "TWIN_MISMATCH"
	CodeBoundaryEdge         Code = "BOUNDARY_EDGE"
	CodeShellNotClosed       Code = "SHELL_NOT_CLOSED"
	CodeDegenerateEdge       Code = "DEGENERATE_EDGE"
	CodeSliverFace           Code = "SLIVER_FACE"
	CodeSelfIntersectingLoop Code = "SELF_INTERSECTING_LOOP"
	CodeInconsistentWinding  Code = "INCONSISTENT_WINDING"
	CodeContainmentMismatch  Code = "CONTAINMENT_MISMATCH"
)

// Issue is one finding from a Validate pass. FaceID/EdgeID are
// topo.NullID when the finding is not specific to a single face or
// edge (e.g. CodeShellNotClosed names a shell, not a face or edge).
type Issue struct {
	Code     Code
	Severity Severity
	Message  string
	FaceID   topo.FaceID
	EdgeID   topo.EdgeID
	ShellID  topo.ShellID
}

// Report collects every Issue found by a single Validate call.
type Report struct {
	Issues []Issue
}

// HasErrors reports whether any Issue in the report is SeverityError.
func (r Report) HasErrors() bool {
	for _, iss := range r.Issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountBySeverity returns how many issues carry the given severity.
func (r Report) CountBySeverity(s Severity) int {
	n := 0
	for _, iss := range r.Issues {
		if iss.Severity == s {
			n++
		}
	}
	return n
}
