// Package sketchmock holds a gomock-generated mock of sketch.Solver.
//
// Generate with:
//
//	mockgen -source=../types.go -destination=solver_mock.go -package=sketchmock Solver
//
// The file below is checked in: sketch.Solver is an external
// collaborator boundary (the constraint solver lives outside this
// module), and gomock is this kernel's wired mocking library for
// exactly that kind of seam.
package sketchmock
