package sketch

import "github.com/solidcore/kernel/geom"

// EntityKind tags the variant of a sketch Entity.
type EntityKind uint8

const (
	EntityLine EntityKind = iota
	EntityArc
	EntityCircle
)

// ConstraintKind enumerates the supported constraint types.
type ConstraintKind uint8

const (
	ConstraintCoincident ConstraintKind = iota
	ConstraintHorizontal
	ConstraintVertical
	ConstraintFixed
	ConstraintDistance
	ConstraintAngle
	ConstraintParallel
	ConstraintPerpendicular
	ConstraintEqualLength
	ConstraintTangent
	ConstraintSymmetric
	ConstraintPointOnLine
	ConstraintPointOnArc
)

// Point is a sketch point, keyed by a stable string identifier that
// persists across solves and rebuilds.
type Point struct {
	ID   string
	X, Y float64
}

// Entity is a line, arc, or circle referencing point identifiers.
// Line: Start/End. Arc: Center/Start/End. Circle: Center + Radius.
type Entity struct {
	ID             string
	Kind           EntityKind
	Start, End     string // point IDs; unused for Circle
	Center         string // point ID; unused for Line
	Radius         float64
	CCW            bool
	IsConstruction bool
}

// Constraint references entities and points by identifier.
type Constraint struct {
	ID       string
	Kind     ConstraintKind
	Entities []string
	Points   []string
	Value    float64
}

// Data is the unsolved sketch input: three mappings keyed by stable
// string identifiers.
type Data struct {
	PointsByID      map[string]Point
	EntitiesByID    map[string]Entity
	ConstraintsByID map[string]Constraint
}

// Status is the outcome of a solve attempt.
type Status string

const (
	StatusSuccess          Status = "success"
	StatusNotConverged     Status = "not_converged"
	StatusUnderConstrained Status = "under_constrained"
	StatusOverConstrained  Status = "over_constrained"
)

// DOFReport summarizes the degrees-of-freedom analysis of a solve.
type DOFReport struct {
	TotalDOF           int
	ConstrainedDOF     int
	RemainingDOF       int
	IsFullyConstrained bool
	IsOverConstrained  bool
}

// Result is the solver's output: solved point positions plus the DOF
// report.
type Result struct {
	Status       Status
	SolvedPoints map[string]geom.Vec2
	DOF          DOFReport
}

// Solver is the constraint-solver contract the rebuild engine depends
// on. Implementations are external to this module; the rebuild engine
// caches Solve's result per sketch identifier.
type Solver interface {
	Solve(data Data) (Result, error)
}
