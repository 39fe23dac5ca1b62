package rebuild

import (
	"github.com/solidcore/kernel/boolean"
	"github.com/solidcore/kernel/feature"
	"github.com/solidcore/kernel/profile"
)

// Error codes carried on the rebuild wire shape.
const (
	CodeBuildError      = "BUILD_ERROR"
	CodeOpenProfile     = "OPEN_PROFILE"
	CodeAxisMissing     = "AXIS_MISSING"
	CodeAxisNotALine    = "AXIS_NOT_A_LINE"
	CodeZeroSweep       = "ZERO_SWEEP"
	CodeSketchNotFound  = "SKETCH_NOT_FOUND"
	CodeNonPlanarInput  = "NON_PLANAR_INPUT"
	CodeEmptyResult     = "EMPTY_RESULT"
	CodeCutFailed       = "CUT_FAILED"
	CodeBooleanFailed   = "BOOLEAN_FAILED"
	CodeCancelled       = "CANCELLED"
)

// featureErrorCode maps a package feature or package profile sentinel
// error to its wire code; anything unrecognized falls back to the
// generic BUILD_ERROR wrapper.
func featureErrorCode(err error) string {
	switch err {
	case feature.ErrOpenProfile, profile.ErrOpenProfile:
		return CodeOpenProfile
	case feature.ErrAxisMissing:
		return CodeAxisMissing
	case feature.ErrAxisNotALine:
		return CodeAxisNotALine
	case feature.ErrZeroSweep:
		return CodeZeroSweep
	default:
		return CodeBuildError
	}
}

// booleanErrorCode maps a boolean.Run sentinel error to its wire
// code.
func booleanErrorCode(err error) string {
	switch err {
	case boolean.ErrNonPlanarInput:
		return CodeNonPlanarInput
	case boolean.ErrEmptyResult:
		return CodeEmptyResult
	default:
		return CodeBooleanFailed
	}
}
