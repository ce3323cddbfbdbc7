package gt

// LEntry is the graph transformer's per-iteration record of the node being
// eliminated: the "L" auxiliary structure of spec §4.4, read back by
// reverse randomization to know, for a given eliminated node, what fraction
// of probability mass its self-loop accounted for at the moment of
// elimination.
type LEntry struct {
	// Node is the subnetwork position eliminated in this iteration.
	Node int
	// SelfLoop is T_nn at the moment of elimination. The >0.999
	// dominant-self-loop recompute changes Factor, not this value.
	SelfLoop float64
	// Factor is 1-SelfLoop (or the recomputed live-outgoing-weight sum in
	// the dominant-self-loop branch), the divisor every folded weight in
	// this iteration was renormalized by.
	Factor float64
}

// UEntry is one outgoing edge folded during a node's elimination: the "U"
// auxiliary structure of spec §4.4. Node is the eliminated node, To is the
// live neighbor the edge led to, and DirectT is that edge's weight as it
// stood immediately before folding — the T_nj reverse randomization treats
// as the (unnormalized) probability of having exited directly to To on any
// single visit to Node.
type UEntry struct {
	Node    int
	To      int
	DirectT float64
}

// Log is everything graph transformation recorded while eliminating a
// subnetwork's interior nodes, in elimination order. It has no relation to
// the live, mutated ktn.Network — it is pure history, consulted only by
// reverse randomization after a macro-step's absorbing boundary node has
// already been sampled (spec §4.4: "never consulted except during reverse
// randomization").
type Log struct {
	L []LEntry
	U []UEntry
}

// ForNode returns the U entries recorded for a given eliminated node, in
// the order its outgoing edges were folded.
func (l *Log) ForNode(node int) []UEntry {
	var out []UEntry
	for _, u := range l.U {
		if u.Node == node {
			out = append(out, u)
		}
	}

	return out
}

// LFor returns the L entry recorded for a given eliminated node and whether
// one exists.
func (l *Log) LFor(node int) (LEntry, bool) {
	for _, e := range l.L {
		if e.Node == node {
			return e, true
		}
	}

	return LEntry{}, false
}

// Order selects which eligible interior node gt.Transform eliminates next.
type Order int

const (
	// ByIndex eliminates in ascending subnetwork-index order: the
	// spec-mandated default, deterministic given a fixed subnetwork
	// construction (spec §9 open question on elimination order).
	ByIndex Order = iota
	// ByOutDegree eliminates highest-out-degree nodes first, an opt-in
	// heuristic that tends to shrink the live neighbor set faster and
	// reduce the number of step-3 neighbor-pair edges created per
	// iteration on dense subnetworks.
	ByOutDegree
)
