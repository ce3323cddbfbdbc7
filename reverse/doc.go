// Package reverse implements reverse randomization: reconstructing a
// statistically exact dwell-time contribution for the interior nodes graph
// transformation eliminated, given only the sequence of surviving
// (non-eliminated) nodes a categorical walk actually visited.
//
// Graph transformation (package gt) never forgets information outright —
// every eliminated node's self-loop and folded edges are an exact,
// invertible renormalization — but it does discard the explicit count of
// how many times the walk would have bounced inside an eliminated node
// before leaving it, and how long each such hidden visit took. Undo draws
// that information back out of the elimination log after the fact, using
// the same algebra the fold was built from run in reverse: a node's
// self-loop q and escape factor f=1-q describe a geometric number of
// hidden returns, so the number of extra visits is NegBinomial(r=1, p=f)
// (the discrete geometric distribution written as a negative binomial),
// and each visit's waiting time is drawn from the node's continuous-time
// escape rate via a Gamma sum (spec §4.4).
package reverse
