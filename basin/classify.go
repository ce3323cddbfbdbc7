package basin

import "github.com/kps-sim/kps/ktn"

// Classify labels every node of net relative to epsilon's community and
// returns the per-node labels (indexed by original node index, length
// net.NumNodes()) alongside the aggregate Counts.
//
// Rules (spec §4.1): every node sharing epsilon's community is Interior.
// Every node outside the community that is the target of at least one live
// edge from an Interior node is Boundary. Everything else is Outside. Ties
// never arise because each node is visited exactly once for its own label
// and at most once per incoming edge for a Boundary promotion.
//
// Complexity: O(NumNodes + sum of out-degree of interior nodes), i.e.
// O(V+E) in the worst case where the whole network is one community.
func Classify(net *ktn.Network, epsilon int) ([]Label, Counts, error) {
	if epsilon < 0 || epsilon >= net.NumNodes() {
		return nil, Counts{}, ktn.ErrNodeNotFound
	}

	community := net.Nodes[epsilon].Community
	labels := make([]Label, net.NumNodes())
	var counts Counts

	for i := range net.Nodes {
		if net.Nodes[i].Community == community {
			labels[i] = Interior
			counts.NB++
		}
	}

	for i := range net.Nodes {
		if labels[i] != Interior {
			continue
		}
		outs, err := net.OutEdges(i)
		if err != nil {
			return nil, Counts{}, err
		}
		for _, e := range outs {
			to := net.Edges[e].To
			counts.Ne++
			if labels[to] == Outside {
				labels[to] = Boundary
				counts.Nc++
			}
		}
	}

	return labels, counts, nil
}
