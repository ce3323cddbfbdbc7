package reverse

import (
	"github.com/kps-sim/kps/gt"
	"github.com/kps-sim/kps/rng"
)

// Undo reconstructs the hidden dwell time contributed by the eliminated
// nodes a realized walk folded through. path is the ordered sequence of
// subnetwork node ids the categorical sampler actually visited, start to
// absorbing boundary inclusive — sampler.SampleAbsorbing's start node
// itself may already be eliminated (e.g. when nelim covers the whole
// basin, spec scenario 2), in which case path[0] is an eliminated id too;
// onPath below treats any path member, eliminated or not, as "reachable"
// from the realized trajectory. eliminatedOrder and log are gt.Transform's
// outputs for this macro-step. escapeRate returns a subnetwork node's
// continuous-time escape rate (k_i).
//
// Undo processes eliminatedOrder in reverse: the last node eliminated had
// the most other eliminations already folded into its self-loop, so
// peeling its layer off first is what lets an earlier, more deeply nested
// elimination be recognized as reachable once its only surviving neighbor
// turns out to be a node this pass has already pulled onto the path.
func Undo(log *gt.Log, eliminatedOrder []int, path []int, escapeRate func(int) float64, gen *rng.Generator) (Result, error) {
	onPath := make(map[int]bool, len(path))
	for _, n := range path {
		onPath[n] = true
	}

	result := Result{VisitCounts: make(map[int]int)}

	for i := len(eliminatedOrder) - 1; i >= 0; i-- {
		n := eliminatedOrder[i]

		entries := log.ForNode(n)
		touches := false
		for _, e := range entries {
			if onPath[e.To] {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}

		l, ok := log.LFor(n)
		if !ok {
			continue
		}

		// A node with no accumulated self-loop (factor == 1, e.g. the
		// first elimination of a node that never had one) departs on its
		// first visit with certainty: NegBinomial(1, 1) is a degenerate
		// point mass at 0 that gonum's Gamma-Poisson mixture cannot draw
		// (it would need an infinite rate), so skip straight to it.
		extra := 0
		if l.Factor < 1 {
			var err error
			extra, err = gen.NegBinomial(1, l.Factor)
			if err != nil {
				return Result{}, err
			}
		}
		visits := extra + 1

		rate := escapeRate(n)
		if rate <= 0 {
			return Result{}, ErrMissingEscapeRate
		}

		wait, err := gen.Gamma(float64(visits), rate)
		if err != nil {
			return Result{}, err
		}

		result.ElapsedTime += wait
		result.VisitCounts[n] = visits

		// n is now itself reachable: any eliminated node whose only live
		// neighbor at elimination time was n (not originally on path)
		// must be considered in earlier (lower-index) iterations of this
		// loop.
		onPath[n] = true
	}

	return result, nil
}
