package simconfig

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidEpsilon indicates a non-positive numerical tolerance.
	ErrInvalidEpsilon = errors.New("simconfig: epsilon must be > 0")

	// ErrInvalidHorizon indicates a non-positive time horizon.
	ErrInvalidHorizon = errors.New("simconfig: time horizon must be > 0")

	// ErrInvalidWorkerCount indicates a non-positive worker count.
	ErrInvalidWorkerCount = errors.New("simconfig: worker count must be > 0")

	// ErrConfigNotFound indicates the requested config file does not exist.
	ErrConfigNotFound = errors.New("simconfig: config file not found")
)
