package subnet

import (
	"github.com/kps-sim/kps/basin"
	"github.com/kps-sim/kps/ktn"
)

// pairKey identifies an unordered pair of original node indices, used to
// ensure each undirected edge-pair of the source network is copied into
// the subnetwork exactly once even though both its forward and reverse
// edge may independently satisfy "from-node is interior".
type pairKey struct{ lo, hi int }

func makeKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Build extracts the subnetwork named by labels (spec §4.2): every
// Interior and Boundary node, re-indexed 0..N_B+N_c-1 and carrying its
// community, LogPi, SelfLoop and EscapeRate, and every live edge
// whose from-node is Interior, together with that edge's reverse so
// reverse-edge pairing is preserved inside the subnetwork.
//
// Complexity: O(NumNodes + Ne).
func Build(net *ktn.Network, labels []basin.Label) (Result, error) {
	if len(labels) != net.NumNodes() {
		return Result{}, ErrEmptyLabels
	}

	work := ktn.NewNetwork()
	nodemap := make(map[int]int, len(labels))
	var origID []int
	var interior []bool

	for i, l := range labels {
		if l == basin.Interior || l == basin.Boundary {
			idx := work.AddNode(net.Nodes[i].Community, net.Nodes[i].LogPi)
			work.Nodes[idx].SelfLoop = net.Nodes[i].SelfLoop
			if err := work.SetEscapeRate(idx, net.Nodes[i].EscapeRate); err != nil {
				return Result{}, err
			}
			nodemap[i] = idx
			origID = append(origID, i)
			interior = append(interior, l == basin.Interior)
		}
	}

	var stats Stats
	for _, l := range labels {
		if l == basin.Interior {
			stats.NB++
		} else if l == basin.Boundary {
			stats.Nc++
		}
	}

	done := make(map[pairKey]bool)
	for i, l := range labels {
		if l != basin.Interior {
			continue
		}
		outs, err := net.OutEdges(i)
		if err != nil {
			return Result{}, err
		}
		for _, e := range outs {
			j := net.Edges[e].To
			stats.Ne++

			key := makeKey(i, j)
			if done[key] {
				continue
			}
			done[key] = true

			revIdx := net.Edges[e].Rev
			if _, _, err := work.AddEdgePair(nodemap[i], nodemap[j], net.Edges[e].Weight, net.Edges[revIdx].Weight); err != nil {
				return Result{}, err
			}
		}
	}

	return Result{
		Work:     work,
		Frozen:   work.Clone(),
		NodeMap:  nodemap,
		OrigID:   origID,
		Interior: interior,
		Stats:    stats,
	}, nil
}
