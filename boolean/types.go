package boolean

import (
	"errors"

	"github.com/solidcore/kernel/history"
	"github.com/solidcore/kernel/topo"
)

// Operation selects which boolean is evaluated by Run.
type Operation uint8

const (
	Union Operation = iota
	Subtract
	Intersect
)

func (op Operation) String() string {
	switch op {
	case Union:
		return "union"
	case Subtract:
		return "subtract"
	case Intersect:
		return "intersect"
	default:
		return "unknown"
	}
}

var (
	// ErrNonPlanarInput is returned when either operand has a face
	// whose surface is not planar (a cylindrical/conical lateral face):
	// the evaluator has no representation for a curved boundary.
	ErrNonPlanarInput = errors.New("boolean: operand has a non-planar face")

	// ErrEmptyResult is returned when the operation's selection rule
	// keeps no faces at all (e.g. Intersect of two disjoint bodies).
	ErrEmptyResult = errors.New("boolean: result has no faces")
)

// Result is the output of a successful Run.
type Result struct {
	Body     topo.BodyID
	Shell    topo.ShellID
	History  *history.Record
	Warnings []string
}
