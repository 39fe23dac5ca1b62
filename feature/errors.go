package feature

import "errors"

var (
	// ErrOpenProfile is returned when the profile handed to Extrude or
	// Revolve has no loops.
	ErrOpenProfile = errors.New("feature: OPEN_PROFILE")

	// ErrZeroDistance is returned when an extrude's resolved distance
	// is within tolerance of zero.
	ErrZeroDistance = errors.New("feature: ZERO_DISTANCE")

	// ErrAxisMissing is returned when a revolve's AxisEntityID does not
	// name an entity in the sketch.
	ErrAxisMissing = errors.New("feature: AXIS_MISSING")

	// ErrAxisNotALine is returned when a revolve's axis entity exists
	// but is not a line.
	ErrAxisNotALine = errors.New("feature: AXIS_NOT_A_LINE")

	// ErrZeroSweep is returned when a revolve's sweep angle is within
	// tolerance of zero.
	ErrZeroSweep = errors.New("feature: ZERO_SWEEP")
)
