package driver

// Walker is the state carried between macro-steps of one trajectory: {t:
// accumulated physical time; k: step count; s: entropy flow; ε: current
// occupied node; α: last sampled absorbing node} (spec §3).
type Walker struct {
	T       float64
	K       int
	S       float64
	Epsilon int
	Alpha   int
}

// PathResult is the per-path output emitted once the walker reaches the
// terminal macrostate A (spec §6): total walker time, total step count,
// entropy flow.
type PathResult struct {
	T float64
	K int
	S float64
}

// PathSink receives one PathResult per completed A<-B path. Run calls
// Record synchronously, once per path, in completion order.
type PathSink interface {
	Record(PathResult)
}

// CollectingSink is the default PathSink: it accumulates every completed
// path in order, the supplemented behavior spec.md §6's "per completed
// path" output implies a stream of results rather than only the last one.
type CollectingSink struct {
	Paths []PathResult
}

// Record appends result to Paths.
func (c *CollectingSink) Record(result PathResult) {
	c.Paths = append(c.Paths, result)
}

// state is the trajectory driver's internal state machine position (spec
// §4.6): {NEED_START, IN_BASIN, REACHED_A, TERMINATED}.
type state int

const (
	needStart state = iota
	inBasin
	reachedA
	terminated
)
