// Package gt implements graph transformation: the in-place elimination of a
// subnetwork's interior nodes by Markov-chain node renormalization, the
// algebraic core that lets kPS marginalize an entire trapping basin into a
// single macro-step.
//
// Transform eliminates up to nelim interior nodes, by default in ascending
// subnetwork-index order for bit-reproducibility (spec §4.3, §9 — the
// source's out-degree max-heap is kept as an explicit opt-in Order instead
// of being thrown away, see Order/ByOutDegree). Every elimination folds one
// node's self-loop mass onto its live neighbors and records what it did
// into a Log (the "L" and "U" auxiliary structures of the spec) so reverse
// randomization (package reverse) can later reconstruct a pre-transformation
// escape-time sample without re-deriving the GT algebra from scratch.
package gt
