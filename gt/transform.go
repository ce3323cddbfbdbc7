package gt

import "github.com/kps-sim/kps/ktn"

// selfLoopDominant is the threshold above which a node's self-loop is
// treated as numerically dominant: rather than trust 1-T_nn (catastrophic
// cancellation when T_nn is very close to 1), the factor is recomputed as
// the sum of live outgoing weights, which is algebraically identical but
// far more stable (spec §4.3 step 1).
const selfLoopDominant = 0.999

// factorUnderflow is the minimum tolerated elimination factor; below this,
// Transform reports ErrPrecisionLoss rather than divide into a regime where
// floating point can no longer be trusted.
const factorUnderflow = 1e-15

// Transform eliminates up to nelim nodes flagged true in interior from work,
// in place, renormalizing every surviving node's transition weights so the
// reduced chain's first-passage distribution to any non-eliminated node is
// unchanged (spec §4.3). interior must have one entry per work node; a
// false entry marks an absorbing boundary node GT never eliminates (its
// SelfLoop and incoming edge weights are still updated by folding).
//
// Returns the elimination log (for reverse randomization) and the
// eliminated nodes in the order they were processed. Transform does not
// reset work's Eliminated flags itself; the driver builds a fresh
// subnetwork for every macro-step and discards it afterwards.
func Transform(work *ktn.Network, interior []bool, nelim int, order Order) (*Log, []int, error) {
	if len(interior) != work.NumNodes() {
		return nil, nil, ErrLabelMismatch
	}

	var candidates []int
	for i, isInterior := range interior {
		if isInterior && !work.Nodes[i].Eliminated {
			candidates = append(candidates, i)
		}
	}

	if order == ByOutDegree {
		candidates = orderByOutDegree(candidates, func(n int) int { return work.Nodes[n].OutDegree })
	}

	target := len(candidates)
	if nelim < target {
		target = nelim
	}

	log := &Log{}
	eliminatedOrder := make([]int, 0, target)

	for idx := 0; idx < target; idx++ {
		n := candidates[idx]
		liveOuts, err := eliminateOne(work, n, log)
		if err != nil {
			return nil, nil, err
		}

		// Retire only the surviving neighbor's edge back to n: a live
		// j->n edge would let j's row sum keep counting mass that now
		// flows through the folded edges step 2/3 just wrote into the
		// neighbor-pair edges instead. n's own n->j edge stays live —
		// the categorical sampler's eliminated-node branch (spec §4.5
		// basin-id 1) still needs to read T_nj directly off n.
		for _, e := range liveOuts {
			work.Edges[work.Edges[e].Rev].Dead = true
		}

		work.Nodes[n].Eliminated = true
		eliminatedOrder = append(eliminatedOrder, n)
	}

	if len(eliminatedOrder) != target {
		return nil, nil, &ktn.AdjacencyError{
			Op:     "gt.Transform",
			EdgeID: -1,
			NodeID: -1,
			Detail: "elimination counter mismatch: produced fewer eliminations than targeted",
		}
	}

	return log, eliminatedOrder, nil
}

// eliminateOne folds node n's self-loop and outgoing mass onto its live
// neighbors, per spec §4.3 steps 1-3, appending the iteration's L/U records
// to log. It returns n's live outgoing edges at the time of elimination, so
// the caller can retire their reverses (the neighbors' edges back into n)
// once folding is done.
func eliminateOne(work *ktn.Network, n int, log *Log) ([]int, error) {
	outs, err := work.OutEdges(n)
	if err != nil {
		return nil, err
	}

	var liveOuts []int
	for _, e := range outs {
		if !work.Nodes[work.Edges[e].To].Eliminated {
			liveOuts = append(liveOuts, e)
		}
	}

	selfLoop := work.Nodes[n].SelfLoop
	factor := 1 - selfLoop
	if selfLoop > selfLoopDominant {
		var sum float64
		for _, e := range liveOuts {
			sum += work.Edges[e].Weight
		}
		factor = sum
	}
	if factor < factorUnderflow {
		return nil, ErrPrecisionLoss
	}

	log.L = append(log.L, LEntry{Node: n, SelfLoop: selfLoop, Factor: factor})

	// Snapshot n's original outgoing weights before folding: step 3 needs
	// the pre-fold T_nj values, not the values step 2 is about to write
	// into the same edges.
	origWeight := make(map[int]float64, len(liveOuts))
	edgeOfNeighbor := make(map[int]int, len(liveOuts))
	neighbors := make([]int, 0, len(liveOuts))
	for _, e := range liveOuts {
		origWeight[e] = work.Edges[e].Weight
		j := work.Edges[e].To
		neighbors = append(neighbors, j)
		edgeOfNeighbor[j] = e
	}

	// Step 2: fold n's self-loop onto every surviving neighbor j, and onto
	// j's own self-loop via the reverse edge T_jn.
	for _, e := range liveOuts {
		j := work.Edges[e].To
		tnj := origWeight[e]
		rev := work.Edges[e].Rev
		tjn := work.Edges[rev].Weight

		work.Nodes[j].SelfLoop += tnj * tjn / factor
		work.Edges[e].Weight = tnj + tnj*selfLoop/factor

		log.U = append(log.U, UEntry{Node: n, To: j, DirectT: tnj})
	}

	// Step 3: for every unordered pair of distinct surviving neighbors
	// {i, j}, add the probability of an i -> n -> j (and j -> n -> i) hop
	// renormalized by factor, either augmenting an existing i<->j edge pair
	// or creating a fresh one.
	for a := 0; a < len(neighbors); a++ {
		i := neighbors[a]
		tni := origWeight[edgeOfNeighbor[i]]
		tin := work.Edges[work.Edges[edgeOfNeighbor[i]].Rev].Weight

		for b := a + 1; b < len(neighbors); b++ {
			j := neighbors[b]
			tnj := origWeight[edgeOfNeighbor[j]]
			tjn := work.Edges[work.Edges[edgeOfNeighbor[j]].Rev].Weight

			deltaIJ := tin * tnj / factor
			deltaJI := tjn * tni / factor

			if existingIJ, ok := work.FindEdge(i, j); ok {
				existingJI, ok2 := work.FindEdge(j, i)
				if !ok2 {
					return nil, &ktn.AdjacencyError{
						Op: "gt.eliminateOne", NodeID: i, EdgeID: existingIJ,
						Detail: "edge exists without a reverse counterpart",
					}
				}
				work.Edges[existingIJ].Weight += deltaIJ
				work.Edges[existingJI].Weight += deltaJI
			} else if _, _, err := work.AddEdgePair(i, j, deltaIJ, deltaJI); err != nil {
				return nil, err
			}
		}
	}

	return liveOuts, nil
}
