// Package sampler implements the absorbing-node categorical sampler: a
// random walk over a graph-transformed subnetwork that starts at the
// occupied node ε and runs until it lands on a node outside ε's community,
// which becomes α (spec §4.5).
//
// Two kinds of live node are visited along the way. A node graph
// transformation eliminated already has its outgoing edges renormalized to
// sum to exactly 1 (its self-loop was divided out during its own
// elimination, package gt) and is read straight off the transformed
// network. A node that survived elimination (because the macro-step's
// nelim budget ran out) is instead read off the pre-GT frozen copy, with
// the same renormalization applied on the fly: T_ij becomes
// T_ij + T_ij·T_ii/factor, with factor=1-T_ii taken from that untransformed
// row. subnet.Build hands every macro-step both copies for exactly this
// reason.
package sampler
