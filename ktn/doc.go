// Package ktn provides the in-memory transition-network representation used
// by the kinetic path sampling (kPS) engine: nodes carrying community labels
// and stationary log-probabilities, directed edges carrying transition
// weights, and an intrusive per-node adjacency structure that supports O(1)
// amortized edge append during graph transformation.
//
// Unlike a general-purpose graph library, ktn.Network is not safe for
// concurrent use and does not hold a lock: the kPS core is single-threaded
// per macro-step (see the engine's concurrency model), and a pass over one
// basin mutates node flags that must not be observed half-updated by another
// goroutine. Callers that want independent concurrent trajectories replicate
// the engine with disjoint Network clones instead of sharing one.
//
// Nodes and edges live in flat arenas ([]Node, []Edge); a node or edge's
// position in its arena is its stable id for the lifetime of the Network.
// Per-node adjacency is intrusive: Node.HeadFrom/HeadTo name the first edge
// of a singly linked list threaded through Edge.NextFrom/NextTo, terminated
// by -1. Appending an edge is O(1): it is pushed to the end of the Edges
// arena and spliced onto the head of the relevant adjacency lists. Existing
// edges are never moved, so edge indices captured before an append stay
// valid after it — the property graph transformation depends on to grow new
// edges mid-pass without invalidating the node it is currently iterating.
package ktn
