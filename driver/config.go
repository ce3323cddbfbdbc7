package driver

import (
	"github.com/rs/zerolog"

	"github.com/kps-sim/kps/gt"
)

// Config holds the engine constructor inputs named in spec §6.
type Config struct {
	// TargetPaths is the number of completed A<-B paths to collect before
	// the engine terminates.
	TargetPaths int
	// MaxIterations caps the number of state-machine iterations across the
	// whole run. Choosing a start node, each macro-step attempt (completed
	// or abandoned to a closed basin) and recording a completed path each
	// count as one iteration.
	MaxIterations int
	// Nelim caps the number of interior nodes eliminated per macro-step.
	Nelim int
	// Tau is the time unit / lag; accepted and stored, never consulted by
	// the core (spec §6: reserved for an outer binning layer).
	Tau float64
	// NumBins is accepted and stored, never consulted by the core, same
	// reason as Tau.
	NumBins int
	// PostKPSSteps is accepted and stored, never consulted by the core
	// (spec §6: "number of post-kPS kMC steps, ignored by the core").
	PostKPSSteps int
	// AdaptiveBinning is accepted and stored, never consulted by the core.
	AdaptiveBinning bool
	// SourceSet is macrostate B: the node ids ε may be drawn from at
	// NEED_START.
	SourceSet []int
	// TargetSet is macrostate A: reaching any of these node ids as α ends
	// a trajectory in REACHED_A.
	TargetSet []int
	// InitialCondition, if non-nil, gives an explicit probability weight
	// per SourceSet entry (same length, any positive scale — Run
	// normalizes it) used to draw ε instead of the exp(LogPi) default.
	InitialCondition []float64
	// Seed is the deterministic RNG seed; 0 maps to rng's fixed default
	// rather than a time-based seed (see rng.New).
	Seed int64
	// Debug enables per-macro-step diagnostic logging.
	Debug bool
}

// Option configures optional Engine behavior beyond Config, the way
// dfs.Option configures dfs.DFSOptions.
type Option func(*Engine)

// WithLogger installs a custom zerolog.Logger for diagnostic output,
// overriding Config.Debug's default logger selection.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.log = logger }
}

// WithEliminationOrder selects the graph-transformation elimination order
// gt.Transform uses each macro-step; the default is gt.ByIndex.
func WithEliminationOrder(order gt.Order) Option {
	return func(e *Engine) { e.order = order }
}
