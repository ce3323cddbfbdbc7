package ktn

import "math"

// AddNode appends a new node with the given community label and log
// stationary probability, returning its index (stable for the Network's
// lifetime). Complexity: O(1) amortized.
func (n *Network) AddNode(community int, logPi float64) int {
	n.Nodes = append(n.Nodes, Node{
		Community: community,
		LogPi:     logPi,
		HeadFrom:  NoEdge,
		HeadTo:    NoEdge,
	})

	return len(n.Nodes) - 1
}

// SetEscapeRate sets node's EscapeRate (k_i), the total outgoing rate in
// the original continuous-time chain. Called by the (out-of-scope) network
// builder when the source data carries rates rather than bare
// probabilities; left at zero has no effect on GT, classification, or
// categorical sampling, only on the waiting-time draws of the driver and
// reverse randomization.
func (n *Network) SetEscapeRate(node int, rate float64) error {
	if node < 0 || node >= len(n.Nodes) {
		return ErrNodeNotFound
	}
	n.Nodes[node].EscapeRate = rate

	return nil
}

// AddEdgePair creates a directed edge from->to with weight w and its
// reverse to->from with weight wRev, cross-links them as each other's
// Rev, appends both to the edge arena, and splices each onto the head of
// its from-node's outgoing list and to-node's incoming list. Returns the
// (forward, reverse) edge indices.
//
// This is the only way new edges enter a Network: AddEdgePair is what both
// the initial network construction (by the out-of-scope caller) and graph
// transformation's neighbor-pair step (§4.3 step 3) use, so the "every edge
// has a reverse" invariant cannot be violated by construction.
//
// Complexity: O(1) amortized.
func (n *Network) AddEdgePair(from, to int, w, wRev float64) (fwd, rev int, err error) {
	if from < 0 || from >= len(n.Nodes) || to < 0 || to >= len(n.Nodes) {
		return NoEdge, NoEdge, ErrNodeNotFound
	}
	if from == to {
		return NoEdge, NoEdge, ErrSelfLoopEdge
	}
	if math.IsNaN(w) || math.IsNaN(wRev) || math.IsInf(w, 0) || math.IsInf(wRev, 0) || w < 0 || wRev < 0 {
		return NoEdge, NoEdge, ErrInvalidWeight
	}

	fwd = len(n.Edges)
	rev = fwd + 1

	n.Edges = append(n.Edges,
		Edge{From: from, To: to, Weight: w, Pos: fwd, Rev: rev, NextFrom: NoEdge, NextTo: NoEdge},
		Edge{From: to, To: from, Weight: wRev, Pos: rev, Rev: fwd, NextFrom: NoEdge, NextTo: NoEdge},
	)

	n.spliceOut(from, fwd)
	n.spliceIn(to, fwd)
	n.spliceOut(to, rev)
	n.spliceIn(from, rev)

	n.Nodes[from].OutDegree++
	n.Nodes[to].OutDegree++

	return fwd, rev, nil
}

// spliceOut prepends edge eid onto node's outgoing adjacency list. O(1).
func (n *Network) spliceOut(node, eid int) {
	n.Edges[eid].NextFrom = n.Nodes[node].HeadFrom
	n.Nodes[node].HeadFrom = eid
}

// spliceIn prepends edge eid onto node's incoming adjacency list. O(1).
func (n *Network) spliceIn(node, eid int) {
	n.Edges[eid].NextTo = n.Nodes[node].HeadTo
	n.Nodes[node].HeadTo = eid
}

// OutEdges returns the indices of node's live outgoing edges, in
// most-recently-added-first order (the order the intrusive list threads
// them). Complexity: O(deg).
func (n *Network) OutEdges(node int) ([]int, error) {
	if node < 0 || node >= len(n.Nodes) {
		return nil, ErrNodeNotFound
	}

	var out []int
	for e := n.Nodes[node].HeadFrom; e != NoEdge; e = n.Edges[e].NextFrom {
		if !n.Edges[e].Dead {
			out = append(out, e)
		}
	}

	return out, nil
}

// InEdges returns the indices of node's live incoming edges.
// Complexity: O(deg).
func (n *Network) InEdges(node int) ([]int, error) {
	if node < 0 || node >= len(n.Nodes) {
		return nil, ErrNodeNotFound
	}

	var in []int
	for e := n.Nodes[node].HeadTo; e != NoEdge; e = n.Edges[e].NextTo {
		if !n.Edges[e].Dead {
			in = append(in, e)
		}
	}

	return in, nil
}

// FindEdge returns the index of a live edge from->to, or (NoEdge, false)
// if none exists. Complexity: O(deg(from)).
func (n *Network) FindEdge(from, to int) (int, bool) {
	if from < 0 || from >= len(n.Nodes) {
		return NoEdge, false
	}
	for e := n.Nodes[from].HeadFrom; e != NoEdge; e = n.Edges[e].NextFrom {
		if !n.Edges[e].Dead && n.Edges[e].To == to {
			return e, true
		}
	}

	return NoEdge, false
}

// RowSum returns the sum of node's live outgoing edge weights plus its
// SelfLoop weight — the quantity the row-stochasticity invariant (spec §3)
// requires to equal 1 within tolerance for every non-eliminated node.
// Complexity: O(deg).
func (n *Network) RowSum(node int) (float64, error) {
	outs, err := n.OutEdges(node)
	if err != nil {
		return 0, err
	}

	sum := n.Nodes[node].SelfLoop
	for _, e := range outs {
		sum += n.Edges[e].Weight
	}

	return sum, nil
}

// ResetTransient clears Flag on every node, the per-pass scratch field;
// none of this module's packages set Flag themselves. Eliminated is
// intentionally left untouched here —
// callers operating on a fresh per-step subnetwork simply discard it
// instead, while callers re-running GT in place reset both explicitly via
// ResetAll.
func (n *Network) ResetTransient() {
	for i := range n.Nodes {
		n.Nodes[i].Flag = false
	}
}

// ResetAll clears both Flag and Eliminated on every node, and SelfLoop back
// to zero. It does not restore edge weights, remove edges added by graph
// transformation, or clear Dead flags, so a transformed Network is not
// returned to its pre-GT state.
func (n *Network) ResetAll() {
	for i := range n.Nodes {
		n.Nodes[i].Flag = false
		n.Nodes[i].Eliminated = false
		n.Nodes[i].SelfLoop = 0
	}
}
