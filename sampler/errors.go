package sampler

import "errors"

var (
	// ErrPrecisionLoss is returned when a node's elimination factor
	// underflows, or when the cumulative distribution built for a step
	// exceeds the spec's 1+1e-8 tolerance — both signal the kPS algebra
	// is no longer numerically trustworthy on this input.
	ErrPrecisionLoss = errors.New("sampler: numerical precision loss")
	// ErrNoLiveTargets is returned when the current node has no live
	// outgoing edge to a non-eliminated node, leaving the walk with
	// nowhere to go — an adjacency-corruption condition, since a
	// non-boundary node with no escape means the subnetwork was built or
	// transformed incorrectly.
	ErrNoLiveTargets = errors.New("sampler: node has no live non-eliminated outgoing edge")
)
