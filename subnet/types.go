package subnet

import "github.com/kps-sim/kps/ktn"

// Stats mirrors basin.Counts but is named independently here because the
// builder computes it itself. NB + Nc is the subnetwork's node count. Ne is
// the number of live edges leaving interior nodes in the source network;
// the subnetwork's edge arena also holds the reverse of every
// interior-to-boundary edge, so Work.NumEdges() is Ne plus the number of
// those boundary-crossing edges.
type Stats struct {
	NB int
	Nc int
	Ne int
}

// NumNodes is the subnetwork node count the builder's postcondition
// guarantees: NB + Nc.
func (s Stats) NumNodes() int { return s.NB + s.Nc }

// Result is everything Build produces for one macro-step.
type Result struct {
	// Work is the subnetwork graph transformation will mutate in place.
	Work *ktn.Network
	// Frozen is a deep, independent copy of Work's pre-transformation
	// state, read by the categorical sampler.
	Frozen *ktn.Network
	// NodeMap maps original-network node index -> subnetwork position.
	// It is a bijection over exactly the labeled (Interior, Boundary) set.
	NodeMap map[int]int
	// OrigID is the inverse of NodeMap: OrigID[subnetworkPos] == original
	// node index. Used to translate a sampled absorbing node back to the
	// caller's id space.
	OrigID []int
	// Interior reports, per subnetwork position, whether that node is
	// eligible for graph-transformation elimination (true: was Interior)
	// or is an absorbing boundary node that GT must never eliminate
	// (false: was Boundary).
	Interior []bool
	Stats    Stats
}
