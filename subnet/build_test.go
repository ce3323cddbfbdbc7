package subnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kps-sim/kps/basin"
	"github.com/kps-sim/kps/ktn"
	"github.com/kps-sim/kps/subnet"
)

func triangleWithExit(t *testing.T) *ktn.Network {
	t.Helper()
	n := ktn.NewNetwork()
	n1 := n.AddNode(1, 0)
	n2 := n.AddNode(1, 0)
	n3 := n.AddNode(1, 0)
	n4 := n.AddNode(2, 0)

	_, _, err := n.AddEdgePair(n1, n2, 0.5, 0.5)
	require.NoError(t, err)
	_, _, err = n.AddEdgePair(n2, n3, 0.5, 0.5)
	require.NoError(t, err)
	_, _, err = n.AddEdgePair(n1, n3, 0.5, 0.5)
	require.NoError(t, err)
	_, _, err = n.AddEdgePair(n3, n4, 0.5, 0.5)
	require.NoError(t, err)

	return n
}

func TestBuild_TotalsMatchClassifier(t *testing.T) {
	n := triangleWithExit(t)
	labels, counts, err := basin.Classify(n, 0)
	require.NoError(t, err)

	res, err := subnet.Build(n, labels)
	require.NoError(t, err)

	assert.Equal(t, counts.NB, res.Stats.NB)
	assert.Equal(t, counts.Nc, res.Stats.Nc)
	assert.Equal(t, counts.Ne, res.Stats.Ne)
	assert.Equal(t, counts.NB+counts.Nc, res.Work.NumNodes())
	assert.Len(t, res.OrigID, res.Work.NumNodes())
	assert.Len(t, res.Interior, res.Work.NumNodes())

	var interiorCount int
	for _, isInterior := range res.Interior {
		if isInterior {
			interiorCount++
		}
	}
	assert.Equal(t, counts.NB, interiorCount)
}

func TestBuild_NodeMapIsBijective(t *testing.T) {
	n := triangleWithExit(t)
	labels, _, err := basin.Classify(n, 0)
	require.NoError(t, err)

	res, err := subnet.Build(n, labels)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for orig, pos := range res.NodeMap {
		assert.False(t, seen[pos], "subnetwork position reused")
		seen[pos] = true
		assert.Equal(t, orig, res.OrigID[pos])
	}
	assert.Len(t, seen, res.Work.NumNodes())
}

func TestBuild_FrozenIsIndependentOfWork(t *testing.T) {
	n := triangleWithExit(t)
	labels, _, err := basin.Classify(n, 0)
	require.NoError(t, err)

	res, err := subnet.Build(n, labels)
	require.NoError(t, err)

	res.Work.Nodes[0].Eliminated = true
	res.Work.Nodes[0].SelfLoop = 0.77
	assert.False(t, res.Frozen.Nodes[0].Eliminated)
	assert.NotEqual(t, res.Work.Nodes[0].SelfLoop, res.Frozen.Nodes[0].SelfLoop)
}

func TestBuild_RejectsMismatchedLabels(t *testing.T) {
	n := triangleWithExit(t)
	_, err := subnet.Build(n, []basin.Label{basin.Interior})
	assert.ErrorIs(t, err, subnet.ErrEmptyLabels)
}
