// Package driver implements the trajectory driver: the outer state machine
// that repeats kPS macro-steps (classify, build, transform, sample, undo)
// until the walker reaches the terminal macrostate A, accumulating total
// elapsed time, step count, and entropy flow for each completed A<-B path
// (spec §4.6).
//
// Engine owns no concurrency of its own — one Engine drives one trajectory
// stream over one *ktn.Network, and independent trajectories are obtained
// by constructing independent Engines with independent seeds over
// independent (ktn.Network.Clone'd) networks, never by sharing one Engine.
package driver
