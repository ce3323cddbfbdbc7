package ktn

// Clone returns a deep copy of n: independent Nodes/Edges slices, no shared
// backing arrays. Design note §9 ("self-mutation of shared nodes") requires
// this for the per-macro-step frozen copy (ktn_kps_orig) the categorical
// sampler reads pre-transformation weights from — aliasing it with the
// network graph transformation mutates would let GT's in-place writes leak
// into the sampler's view of the pre-GT chain.
//
// Complexity: O(NumNodes + NumEdges).
func (n *Network) Clone() *Network {
	out := &Network{
		Nodes: make([]Node, len(n.Nodes)),
		Edges: make([]Edge, len(n.Edges)),
	}
	copy(out.Nodes, n.Nodes)
	copy(out.Edges, n.Edges)

	return out
}
