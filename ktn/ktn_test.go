package ktn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kps-sim/kps/ktn"
)

func twoNodeChain(t *testing.T) *ktn.Network {
	t.Helper()
	n := ktn.NewNetwork()
	a := n.AddNode(1, 0)
	b := n.AddNode(2, 0)
	_, _, err := n.AddEdgePair(a, b, 0.6, 0.4)
	require.NoError(t, err)
	n.Nodes[a].SelfLoop = 0.4
	n.Nodes[b].SelfLoop = 0.6

	return n
}

func TestAddEdgePair_ReverseSymmetry(t *testing.T) {
	n := twoNodeChain(t)
	fwd, ok := n.FindEdge(0, 1)
	require.True(t, ok)
	rev := n.Edges[fwd].Rev
	assert.Equal(t, fwd, n.Edges[rev].Rev, "rev.rev must equal the original edge")
	assert.Equal(t, n.Edges[fwd].To, n.Edges[rev].From)
	assert.Equal(t, n.Edges[fwd].From, n.Edges[rev].To)
}

func TestRowStochasticity(t *testing.T) {
	n := twoNodeChain(t)
	for i := range n.Nodes {
		sum, err := n.RowSum(i)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sum, 1e-8)
	}
}

func TestAddEdgePair_RejectsSelfLoop(t *testing.T) {
	n := ktn.NewNetwork()
	a := n.AddNode(0, 0)
	_, _, err := n.AddEdgePair(a, a, 0.5, 0.5)
	assert.ErrorIs(t, err, ktn.ErrSelfLoopEdge)
}

func TestAddEdgePair_RejectsUnknownNode(t *testing.T) {
	n := ktn.NewNetwork()
	a := n.AddNode(0, 0)
	_, _, err := n.AddEdgePair(a, 99, 0.5, 0.5)
	assert.ErrorIs(t, err, ktn.ErrNodeNotFound)
}

func TestClone_IsIndependent(t *testing.T) {
	n := twoNodeChain(t)
	clone := n.Clone()
	clone.Nodes[0].SelfLoop = 0.99
	clone.Edges[0].Weight = 0.01
	assert.NotEqual(t, n.Nodes[0].SelfLoop, clone.Nodes[0].SelfLoop)
	assert.NotEqual(t, n.Edges[0].Weight, clone.Edges[0].Weight)
}

func TestToDense_MatchesRowSum(t *testing.T) {
	n := twoNodeChain(t)
	d, err := n.ToDense()
	require.NoError(t, err)
	for i := 0; i < d.Rows(); i++ {
		var sum float64
		for j := 0; j < d.Cols(); j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-8)
	}
}

func TestResetTransient(t *testing.T) {
	n := twoNodeChain(t)
	n.Nodes[0].Flag = true
	n.Nodes[0].Eliminated = true
	n.ResetTransient()
	assert.False(t, n.Nodes[0].Flag)
	assert.True(t, n.Nodes[0].Eliminated, "ResetTransient must not touch Eliminated")

	n.ResetAll()
	assert.False(t, n.Nodes[0].Eliminated)
	assert.Equal(t, 0.0, n.Nodes[0].SelfLoop)
}
