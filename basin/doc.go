// Package basin classifies every node of a transition network relative to
// the community currently occupied by the walker, producing the basin-id
// labeling the subnetwork builder and categorical sampler consume.
//
// Classification is total and never fails internally: every node ends up
// interior, absorbing-boundary, or outside. A basin with no boundary node
// (N_c == 0, a "closed" basin) is a legal outcome that the caller — the
// trajectory driver — must detect and handle, not an error raised here.
package basin
