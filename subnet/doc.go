// Package subnet extracts a self-contained copy of one basin — its interior
// nodes plus absorbing boundary — from a full transition network, re-indexed
// to a dense 0..N_B+N_c-1 range so graph transformation can operate on a
// small arena instead of walking the full network.
//
// Build produces two sibling copies per macro-step: Work, which graph
// transformation will mutate in place, and Frozen, a deep copy of the
// pre-transformation state the categorical sampler needs to read
// untransformed weights from for any interior node that survives the
// elimination cap. Design note §9 ("self-mutation of shared nodes") is why
// these are fully independent copies rather than two views over one
// network: GT writes Eliminated, SelfLoop and edge weights in place, and those writes
// must never be visible through Frozen.
package subnet
