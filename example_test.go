package kps_test

import (
	"context"
	"fmt"
	"log"

	"github.com/kps-sim/kps/driver"
	"github.com/kps-sim/kps/ktn"
)

// Example runs one kPS trajectory over a fully connected triangle basin with a single
// absorbing exit, the smallest network where graph transformation folds away
// every interior node before the categorical sampler ever runs. With only
// one live edge crossing the community boundary, which node the walker lands
// on is deterministic even though its arrival time is randomized.
func Example() {
	net := ktn.NewNetwork()
	n1 := net.AddNode(1, 0)
	n2 := net.AddNode(1, 0)
	n3 := net.AddNode(1, 0)
	n4 := net.AddNode(2, 0)

	must := func(_, _ int, err error) {
		if err != nil {
			log.Fatal(err)
		}
	}
	must(net.AddEdgePair(n1, n2, 1.0/3, 1.0/3))
	must(net.AddEdgePair(n1, n3, 1.0/3, 1.0/3))
	must(net.AddEdgePair(n2, n3, 1.0/3, 1.0/3))
	must(net.AddEdgePair(n3, n4, 1.0/3, 1.0))
	net.Nodes[n1].SelfLoop = 1.0 / 3
	net.Nodes[n2].SelfLoop = 1.0 / 3
	net.Nodes[n3].SelfLoop = 0

	for _, n := range []int{n1, n2, n3, n4} {
		if err := net.SetEscapeRate(n, 1.0); err != nil {
			log.Fatal(err)
		}
	}

	cfg := driver.Config{
		TargetPaths:   1,
		MaxIterations: 10,
		Nelim:         3,
		SourceSet:     []int{n1, n2, n3},
		TargetSet:     []int{n4},
		Seed:          7,
	}
	engine, err := driver.New(net, cfg)
	if err != nil {
		log.Fatal(err)
	}

	sink := &driver.CollectingSink{}
	if err := engine.Run(context.Background(), sink); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("paths recorded: %d, macro-steps in first path: %d\n", len(sink.Paths), sink.Paths[0].K)

	// Output:
	// paths recorded: 1, macro-steps in first path: 1
}
