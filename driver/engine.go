package driver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"

	"github.com/kps-sim/kps/basin"
	"github.com/kps-sim/kps/gt"
	"github.com/kps-sim/kps/ktn"
	"github.com/kps-sim/kps/reverse"
	"github.com/kps-sim/kps/rng"
	"github.com/kps-sim/kps/sampler"
	"github.com/kps-sim/kps/subnet"
)

// Engine runs one trajectory stream over one *ktn.Network (spec §4.6, §5).
type Engine struct {
	net    *ktn.Network
	cfg    Config
	gen    *rng.Generator
	log    zerolog.Logger
	order  gt.Order
	target map[int]bool
}

// New constructs an Engine over net per cfg, applying any opts. net is only
// read: each macro-step's graph transformation runs on a subnetwork copy
// built by subnet.Build, so net's nodes and edges are never written.
func New(net *ktn.Network, cfg Config, opts ...Option) (*Engine, error) {
	if len(cfg.SourceSet) == 0 {
		return nil, ErrEmptySourceSet
	}
	if cfg.InitialCondition != nil && len(cfg.InitialCondition) != len(cfg.SourceSet) {
		return nil, ErrInitialConditionLength
	}

	target := make(map[int]bool, len(cfg.TargetSet))
	for _, n := range cfg.TargetSet {
		target[n] = true
	}

	logger := zerolog.Nop()
	if cfg.Debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	e := &Engine{
		net:    net,
		cfg:    cfg,
		gen:    rng.New(cfg.Seed),
		log:    logger,
		order:  gt.ByIndex,
		target: target,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Run drives macro-steps until TargetPaths completed A<-B paths have been
// recorded into sink or MaxIterations is exhausted, checking ctx between
// macro-steps (spec §5's one cancellation point).
func (e *Engine) Run(ctx context.Context, sink PathSink) error {
	st := needStart
	walker := Walker{}
	completed := 0

	for iter := 0; st != terminated; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if iter >= e.cfg.MaxIterations {
			e.log.Debug().Int("iteration", iter).Msg("max iterations reached")
			return nil
		}

		switch st {
		case needStart:
			eps, err := e.chooseStart()
			if err != nil {
				return fmt.Errorf("driver: choosing start node: %w", err)
			}
			walker = Walker{Epsilon: eps}
			st = inBasin

		case inBasin:
			alpha, tesc, sFlow, err := e.macroStep(walker.Epsilon)
			if errors.Is(err, ErrBasinClosed) {
				e.log.Debug().Int("epsilon", walker.Epsilon).Msg("basin closed, abandoning trajectory")
				st = needStart
				continue
			}
			if err != nil {
				return fmt.Errorf("driver: macro-step %d: %w", iter, err)
			}

			walker.T += tesc
			walker.K++
			walker.S += sFlow
			walker.Alpha = alpha
			walker.Epsilon = alpha

			e.log.Debug().Int("iteration", iter).Int("alpha", alpha).Float64("t", walker.T).Msg("macro-step completed")

			if e.target[alpha] {
				st = reachedA
				continue
			}

		case reachedA:
			sink.Record(PathResult{T: walker.T, K: walker.K, S: walker.S})
			completed++
			e.log.Info().Int("completed", completed).Float64("t", walker.T).Int("k", walker.K).Msg("path completed")
			if completed >= e.cfg.TargetPaths {
				st = terminated
				continue
			}
			walker = Walker{}
			st = needStart
		}
	}

	return nil
}

// chooseStart realizes ε from Config.SourceSet (NEED_START -> IN_BASIN,
// spec §4.6): InitialCondition weights if supplied, else probability
// proportional to exp(LogPi_i), summed in log-space to avoid underflow,
// realized via inverse-CDF on a uniform draw.
func (e *Engine) chooseStart() (int, error) {
	weights := make([]float64, len(e.cfg.SourceSet))

	if e.cfg.InitialCondition != nil {
		copy(weights, e.cfg.InitialCondition)
	} else {
		maxLogPi := math.Inf(-1)
		for _, n := range e.cfg.SourceSet {
			if lp := e.net.Nodes[n].LogPi; lp > maxLogPi {
				maxLogPi = lp
			}
		}
		for i, n := range e.cfg.SourceSet {
			weights[i] = math.Exp(e.net.Nodes[n].LogPi - maxLogPi)
		}
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, ErrEmptySourceSet
	}

	u := e.gen.Uniform() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if u <= cum {
			return e.cfg.SourceSet[i], nil
		}
	}

	return e.cfg.SourceSet[len(e.cfg.SourceSet)-1], nil
}

// macroStep runs one full IN_BASIN -> IN_BASIN transition (spec §4.6):
// classify, build, transform, sample, undo. Returns the sampled absorbing
// node α (in the outer network's id space), the reconstructed escape time,
// and the entropy-flow increment.
func (e *Engine) macroStep(eps int) (alpha int, tesc float64, sFlow float64, err error) {
	labels, counts, err := basin.Classify(e.net, eps)
	if err != nil {
		return 0, 0, 0, err
	}
	if counts.Closed() {
		return 0, 0, 0, ErrBasinClosed
	}

	res, err := subnet.Build(e.net, labels)
	if err != nil {
		return 0, 0, 0, err
	}
	e.log.Debug().Int("epsilon", eps).Int("community", e.net.Nodes[eps].Community).
		Int("basin_nodes", res.Stats.NB).Int("boundary_nodes", res.Stats.Nc).
		Int("subnetwork_edges", res.Stats.Ne).Msg("basin set up")

	// Graph transformation is itself deterministic given an elimination
	// order, so only the categorical sampler and reverse randomization
	// need their own substreams this macro-step.
	stepGen := e.gen.Derive(uint64(eps))
	samplerGen := stepGen.Derive(1)
	undoGen := stepGen.Derive(2)

	log, eliminatedOrder, err := gt.Transform(res.Work, res.Interior, e.cfg.Nelim, e.order)
	if err != nil {
		return 0, 0, 0, err
	}

	startPos, ok := res.NodeMap[eps]
	if !ok {
		return 0, 0, 0, &ktn.AdjacencyError{Op: "driver.macroStep", NodeID: eps, EdgeID: -1, Detail: "epsilon not present in its own subnetwork"}
	}

	alphaPos, path, err := sampler.SampleAbsorbing(res.Work, res.Frozen, res.Interior, startPos, samplerGen)
	if err != nil {
		return 0, 0, 0, err
	}

	hidden, err := reverse.Undo(log, eliminatedOrder, path, func(pos int) float64 {
		return e.net.Nodes[res.OrigID[pos]].EscapeRate
	}, undoGen)
	if err != nil {
		return 0, 0, 0, err
	}

	tesc = hidden.ElapsedTime
	for _, pos := range path[:len(path)-1] {
		rate := e.net.Nodes[res.OrigID[pos]].EscapeRate
		if rate <= 0 {
			return 0, 0, 0, reverse.ErrMissingEscapeRate
		}
		wait, gErr := samplerGen.Gamma(1, rate)
		if gErr != nil {
			return 0, 0, 0, gErr
		}
		tesc += wait
	}

	alpha = res.OrigID[alphaPos]
	sFlow = e.net.Nodes[eps].LogPi - e.net.Nodes[alpha].LogPi

	// res.Work is a per-macro-step subnetwork built by subnet.Build as an
	// independent copy (not a view onto e.net), so graph transformation's
	// Flag/Eliminated writes land there and are discarded with it — e.net
	// itself is never mutated by a pass and needs no reset between steps.
	return alpha, tesc, sFlow, nil
}
