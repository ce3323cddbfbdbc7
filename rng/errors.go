package rng

import "errors"

// ErrInvalidParameters is returned when a distribution is asked to draw
// with parameters outside its support (e.g. a binomial with p outside
// [0,1], or a gamma with non-positive shape or rate). This is the
// InvalidDistributionParameters error kind from the engine's error
// taxonomy: it is always a bug in the caller, never recovered locally.
var ErrInvalidParameters = errors.New("rng: invalid distribution parameters")
