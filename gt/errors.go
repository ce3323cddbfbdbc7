package gt

import "errors"

var (
	// ErrLabelMismatch is returned when interior's length does not match
	// the subnetwork's node count.
	ErrLabelMismatch = errors.New("gt: interior label count does not match network size")
	// ErrPrecisionLoss is returned when an elimination's factor underflows
	// (spec §4.3: factor < 1e-15), signalling that the node's self-loop
	// mass is so close to 1 that renormalization can no longer be trusted
	// in floating point.
	ErrPrecisionLoss = errors.New("gt: elimination factor underflowed, node is numerically absorbing")
)
