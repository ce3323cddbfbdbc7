package driver

import "errors"

var (
	// ErrBasinClosed is returned by a single macro-step when the occupied
	// node's community has no live edge leaving it (N_c == 0, spec §7):
	// non-fatal, it marks just that trajectory as stuck.
	ErrBasinClosed = errors.New("driver: basin has no absorbing boundary")
	// ErrEmptySourceSet is returned by New when Config.SourceSet is empty,
	// and (wrapped) by Run when the start weights over SourceSet sum to
	// zero or less, leaving NEED_START with no node to choose ε from.
	ErrEmptySourceSet = errors.New("driver: source macrostate is empty")
	// ErrInitialConditionLength is returned when a supplied
	// InitialCondition does not have one weight per SourceSet entry.
	ErrInitialConditionLength = errors.New("driver: initial condition length does not match source set")
)
