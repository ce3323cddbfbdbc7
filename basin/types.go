package basin

// Label is the basin-id of a node relative to the walker's current
// community, matching spec's {0,1,2,3} encoding exactly so L/U logs and
// diagnostics can print the raw integer without a lookup table.
type Label int

const (
	// Outside marks a node that is neither interior to the occupied
	// community nor a boundary target of one of its live edges.
	Outside Label = 0
	// Eliminated marks a node that was interior and has since been
	// removed by graph transformation. Classify never emits this value
	// (nothing is eliminated yet at classification time), and gt does not
	// write labels either: it records elimination on the subnetwork's
	// ktn.Node.Eliminated field instead.
	Eliminated Label = 1
	// Interior marks a node sharing the walker's current community.
	Interior Label = 2
	// Boundary marks a node outside the community that is the target of
	// at least one live edge from an interior node — an exit candidate.
	Boundary Label = 3
)

// Counts tallies the three quantities every downstream component needs:
// N_B (interior nodes), N_c (boundary nodes), N_e (subnetwork edge count,
// i.e. the number of live edges whose source is interior, including the
// boundary-crossing ones).
type Counts struct {
	NB int
	Nc int
	Ne int
}

// Closed reports whether this basin has no exit: N_c == 0. The driver
// treats a closed basin as the BasinClosed error kind and terminates the
// trajectory rather than the whole engine.
func (c Counts) Closed() bool { return c.Nc == 0 }
