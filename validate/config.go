package validate

// config holds the tunable thresholds a Validate pass uses. Defaults
// are set by defaultConfig; callers override individual fields with
// Option functions, the same functional-options shape package tol
// uses for its own Context construction.
type config struct {
	sliverAreaEpsilon float64
}

func defaultConfig() config {
	return config{sliverAreaEpsilon: 1e-9}
}

// Option configures a Validate call.
type Option func(*config)

// WithSliverAreaEpsilon sets the minimum face area (in the body's
// length units squared) below which checkSliverFace reports a
// warning. The default is 1e-9.
func WithSliverAreaEpsilon(eps float64) Option {
	return func(c *config) { c.sliverAreaEpsilon = eps }
}
