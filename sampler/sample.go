package sampler

import (
	"github.com/kps-sim/kps/ktn"
	"github.com/kps-sim/kps/rng"
)

// factorUnderflow mirrors gt.Transform's threshold: below this, a surviving
// node's on-the-fly self-loop correction can no longer be trusted.
const factorUnderflow = 1e-15

// cumulativeTolerance is the spec's allowed overshoot (spec §4.5: "must lie
// within [0, 1+1e-8]") before a built cumulative distribution is treated as
// a fatal numerical error rather than floating-point noise.
const cumulativeTolerance = 1e-8

// SampleAbsorbing walks work starting at start until it reaches a node
// whose community differs from start's, returning that node (α) and the
// full sequence of subnetwork node ids visited, start through α inclusive.
// A start that is not interior (a boundary node) is returned as α at once,
// with path [start]. interior reports, per subnetwork position, which nodes were eligible for
// graph-transformation elimination (the same slice subnet.Build produced).
// frozen is the pre-GT clone of work (subnet.Result.Frozen): a node that
// survived elimination is read from frozen, not work, per spec §4.5 and
// §9's "the categorical sampler explicitly needs the pre-GT weights
// preserved, so the copy is mandatory, not an optimization".
func SampleAbsorbing(work, frozen *ktn.Network, interior []bool, start int, gen *rng.Generator) (int, []int, error) {
	if start < 0 || start >= work.NumNodes() {
		return 0, nil, ktn.ErrNodeNotFound
	}
	if !interior[start] {
		return start, []int{start}, nil
	}

	epsilonCommunity := work.Nodes[start].Community
	current := start
	path := []int{current}

	for {
		if work.Nodes[current].Community != epsilonCommunity {
			return current, path, nil
		}

		targets, weights, err := outgoingDistribution(work, frozen, interior, current)
		if err != nil {
			return 0, nil, err
		}
		if len(targets) == 0 {
			return 0, nil, ErrNoLiveTargets
		}

		next, err := choose(targets, weights, gen.Uniform())
		if err != nil {
			return 0, nil, err
		}

		current = next
		path = append(path, current)
	}
}

// outgoingDistribution builds the escape distribution for node, per spec
// §4.5's two basin-id interpretations.
func outgoingDistribution(work, frozen *ktn.Network, interior []bool, node int) ([]int, []float64, error) {
	var targets []int
	var weights []float64

	if work.Nodes[node].Eliminated {
		outs, err := work.OutEdges(node)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range outs {
			targets = append(targets, work.Edges[e].To)
			weights = append(weights, work.Edges[e].Weight)
		}

		return targets, weights, nil
	}

	if interior[node] {
		outs, err := frozen.OutEdges(node)
		if err != nil {
			return nil, nil, err
		}

		selfLoop := frozen.Nodes[node].SelfLoop
		factor := 1 - selfLoop
		if factor < factorUnderflow {
			return nil, nil, ErrPrecisionLoss
		}
		for _, e := range outs {
			j := frozen.Edges[e].To
			if work.Nodes[j].Eliminated {
				continue
			}
			tij := frozen.Edges[e].Weight
			targets = append(targets, j)
			weights = append(weights, tij+tij*selfLoop/factor)
		}

		return targets, weights, nil
	}

	return nil, nil, &ktn.AdjacencyError{
		Op: "sampler.outgoingDistribution", NodeID: node, EdgeID: -1,
		Detail: "boundary node reached without a differing community label",
	}
}

// choose realizes u against the cumulative distribution of weights over
// targets, returning the selected target. Complexity: O(len(targets)).
func choose(targets []int, weights []float64, u float64) (int, error) {
	var cum float64
	chosen := -1
	for i, w := range weights {
		cum += w
		if chosen == -1 && u <= cum {
			chosen = targets[i]
		}
	}
	if cum > 1+cumulativeTolerance {
		return 0, ErrPrecisionLoss
	}
	if chosen == -1 {
		chosen = targets[len(targets)-1]
	}

	return chosen, nil
}
