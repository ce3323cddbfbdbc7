// Package kps is a kinetic path sampling (kPS) engine for accelerated
// stochastic simulation of continuous-time Markov chains on sparse
// directed graphs, in regimes where the chain exhibits metastability —
// long residence inside strongly-connected "trapping basins" punctuated by
// rare inter-basin transitions. Rather than simulate every intra-basin
// flicker, kPS samples one statistically exact escape event per visited
// basin in a single macro-step, using graph transformation to algebraically
// marginalize the basin's interior states.
//
// Subpackages, leaves first:
//
//	rng/     — deterministic RNG primitives (uniform, exponential, gamma,
//	           binomial, negative-binomial), with independent derived
//	           substreams per macro-step component
//	ktn/     — the transition-network model: nodes, paired directed edges,
//	           intrusive adjacency, self-loop accumulation
//	basin/   — classifies nodes {outside, eliminated, interior, boundary}
//	           relative to the walker's current community
//	subnet/  — extracts a basin's self-contained subnetwork plus a frozen
//	           pre-transformation copy
//	gt/      — the graph transformer: in-place node-elimination algebra
//	           with an L/U log of what each elimination folded away
//	reverse/ — reverse randomization: reconstructs a sampled escape time
//	           from the L/U log and the realized exit path
//	sampler/ — the absorbing-node categorical sampler: a weighted random
//	           walk across the community boundary
//	driver/  — the outer trajectory state machine, repeating macro-steps
//	           until a target number of A←B paths have been recorded
//
// Data flow per macro-step: basin.Classify -> subnet.Build -> gt.Transform
// -> sampler.SampleAbsorbing -> reverse.Undo -> driver.Engine updates the
// walker and selects the next basin. See the package Example for a runnable
// end-to-end scenario.
package kps
