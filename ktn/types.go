package ktn

// NoEdge is the sentinel adjacency-list terminator, analogous to a nil
// pointer in the intrusive-pointer source this design replaces indices for.
const NoEdge = -1

// Node is a single state of the Markov chain. Community is the partition
// label assigned by the (out-of-scope) community-detection collaborator.
// LogPi is the log of the node's stationary probability, kept in log-space
// so initial-condition sampling over a macrostate can sum in log-space
// without underflow. SelfLoop is T_nn: AddNode sets it to zero, the caller
// sets it for a node whose chain has self-transition mass, and graph
// transformation adds to it as it eliminates neighbors.
//
// Flag is transient scratch space that must be false at pass boundaries;
// ResetTransient restores that invariant. Graph transformation does not
// use it (it marks progress through Eliminated).
type Node struct {
	Community int
	LogPi     float64
	OutDegree int
	SelfLoop  float64

	// EscapeRate is k_i, the total outgoing rate of this node in the
	// original continuous-time chain (sum of outgoing transition rates
	// before normalization to the embedded-chain probabilities T_ij).
	// The discrete T_ij weights alone cannot recover k_i once normalized
	// (they always sum to 1 regardless of the physical rate), so the
	// caller that builds a Network from {rate, probability} edge input
	// (spec's external interface) supplies it directly via
	// Network.SetEscapeRate. It is consulted only by the Gamma
	// waiting-time draws of the driver and reverse randomization, never by
	// the classifier, GT or categorical sampler, all of which work purely
	// on the embedded discrete-time chain (the builder only copies it).
	EscapeRate float64

	Eliminated bool
	Flag       bool
	HeadFrom   int
	HeadTo     int
}

// Edge is a directed transition with weight Weight (T_ij). Rev names the
// index of its paired reverse edge; edges are created only in pairs, so Rev
// is never NoEdge. Dead marks an edge as logically removed without
// shrinking the arena (no consumer should traverse a Dead edge via
// NextFrom/NextTo without skipping it). This package never sets Dead
// itself; graph transformation (package gt) sets it on each surviving
// neighbor's edge into the node being eliminated and leaves that edge's
// reverse live, so a live edge can have a Dead reverse.
type Edge struct {
	From     int
	To       int
	Weight   float64
	Dead     bool
	Pos      int
	NextFrom int
	NextTo   int
	Rev      int
}

// Network is the append-only arena of Nodes and Edges described in ktn's
// package doc. The zero value is not usable; construct with NewNetwork.
type Network struct {
	Nodes []Node
	Edges []Edge
}

// NewNetwork returns an empty Network ready for AddNode/AddEdgePair calls.
func NewNetwork() *Network {
	return &Network{}
}

// NumNodes returns the number of nodes currently in the arena, including
// eliminated ones.
func (n *Network) NumNodes() int { return len(n.Nodes) }

// NumEdges returns the number of edge slots currently in the arena,
// including the dead and eliminated-incident ones.
func (n *Network) NumEdges() int { return len(n.Edges) }

// Stats is a read-only diagnostic snapshot of a Network's size, mirroring
// the lightweight "counts alongside the structure" idiom used elsewhere in
// this codebase.
type Stats struct {
	NumNodes      int
	NumEdges      int
	NumEliminated int
}

// Stats computes a snapshot in O(NumNodes) time (a single pass to count
// eliminated nodes; node/edge totals are O(1) slice lengths).
func (n *Network) Stats() Stats {
	var s Stats
	s.NumNodes = len(n.Nodes)
	s.NumEdges = len(n.Edges)
	for i := range n.Nodes {
		if n.Nodes[i].Eliminated {
			s.NumEliminated++
		}
	}

	return s
}
