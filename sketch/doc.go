// Package sketch defines the 2D constraint-sketch data model and the
// solver contract consumed as a black box by the rebuild engine:
// input (points, entities, constraints); output status, solved points,
// and a degrees-of-freedom report. This package owns only the
// contract — types, the Solver interface, and sentinel status values —
// never an actual constraint solver implementation; constraint solving
// belongs to an external collaborator.
//
// Because Solver is consumed purely as an interface seam, the
// sketchmock subpackage carries a generated-style gomock.Mock
// implementation so the rebuild engine's own tests (package rebuild)
// never need a real solver: the one black-box dependency that lives
// inside this module's own call graph.
package sketch
