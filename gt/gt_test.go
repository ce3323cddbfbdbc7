package gt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kps-sim/kps/gt"
	"github.com/kps-sim/kps/ktn"
)

const epsilon = 1e-9

// pathOfThree builds a <-> n <-> b with n carrying a self-loop, all weights
// chosen so every node's row sums to 1.
func pathOfThree(t *testing.T) (net *ktn.Network, a, n, b int) {
	t.Helper()
	net = ktn.NewNetwork()
	a = net.AddNode(0, 0)
	n = net.AddNode(0, 0)
	b = net.AddNode(0, 0)

	_, _, err := net.AddEdgePair(a, n, 1.0, 0.3)
	require.NoError(t, err)
	_, _, err = net.AddEdgePair(n, b, 0.5, 1.0)
	require.NoError(t, err)
	net.Nodes[n].SelfLoop = 0.2

	return net, a, n, b
}

func TestTransform_FoldsMiddleNodePreservingRowStochasticity(t *testing.T) {
	net, a, n, b := pathOfThree(t)
	interior := []bool{false, true, false}
	interior[n] = true

	log, order, err := gt.Transform(net, interior, 1, gt.ByIndex)
	require.NoError(t, err)
	assert.Equal(t, []int{n}, order)
	require.Len(t, log.L, 1)
	assert.InDelta(t, 0.2, log.L[0].SelfLoop, epsilon)
	assert.InDelta(t, 0.8, log.L[0].Factor, epsilon)

	rowA, err := net.RowSum(a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rowA, epsilon)

	rowB, err := net.RowSum(b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rowB, epsilon)

	ab, ok := net.FindEdge(a, b)
	require.True(t, ok)
	assert.InDelta(t, 0.625, net.Edges[ab].Weight, epsilon)

	ba, ok := net.FindEdge(b, a)
	require.True(t, ok)
	assert.InDelta(t, 0.375, net.Edges[ba].Weight, epsilon)

	assert.True(t, net.Nodes[n].Eliminated)
}

func TestTransform_RetiresEdgesIncidentToEliminatedNode(t *testing.T) {
	net, a, n, _ := pathOfThree(t)
	interior := make([]bool, 3)
	interior[n] = true

	_, _, err := gt.Transform(net, interior, 1, gt.ByIndex)
	require.NoError(t, err)

	outs, err := net.OutEdges(a)
	require.NoError(t, err)
	for _, e := range outs {
		assert.NotEqual(t, n, net.Edges[e].To, "edge into eliminated node should no longer be live")
	}
}

func TestTransform_RespectsNelimCap(t *testing.T) {
	net := ktn.NewNetwork()
	n0 := net.AddNode(0, 0)
	n1 := net.AddNode(0, 0)
	n2 := net.AddNode(0, 0)
	_, _, err := net.AddEdgePair(n0, n1, 0.5, 0.5)
	require.NoError(t, err)
	_, _, err = net.AddEdgePair(n1, n2, 0.5, 0.5)
	require.NoError(t, err)
	net.Nodes[n0].SelfLoop = 0.5
	net.Nodes[n1].SelfLoop = 0.5
	net.Nodes[n2].SelfLoop = 0.5

	interior := []bool{true, true, true}
	_, order, err := gt.Transform(net, interior, 1, gt.ByIndex)
	require.NoError(t, err)
	assert.Len(t, order, 1)
	assert.Equal(t, n0, order[0])
}

func TestTransform_RejectsLabelMismatch(t *testing.T) {
	net, _, _, _ := pathOfThree(t)
	_, _, err := gt.Transform(net, []bool{true, true}, 1, gt.ByIndex)
	assert.ErrorIs(t, err, gt.ErrLabelMismatch)
}

func TestTransform_ReportsPrecisionLoss(t *testing.T) {
	net, _, n, _ := pathOfThree(t)
	net.Nodes[n].SelfLoop = 1 - 1e-16
	// Keep n's row stochastic: its outgoing edges share the remaining 1e-16.
	outs, err := net.OutEdges(n)
	require.NoError(t, err)
	for _, e := range outs {
		net.Edges[e].Weight = 1e-16 / float64(len(outs))
	}

	interior := make([]bool, 3)
	interior[n] = true
	_, _, err = gt.Transform(net, interior, 1, gt.ByIndex)
	assert.ErrorIs(t, err, gt.ErrPrecisionLoss)
}

func TestTransform_ByOutDegreeIsAPermutationOfByIndex(t *testing.T) {
	net, a, n, _ := pathOfThree(t)
	interior := make([]bool, 3)
	interior[a] = true
	interior[n] = true
	net.Nodes[a].SelfLoop = 0

	byIndex := net.Clone()
	_, orderIdx, err := gt.Transform(byIndex, interior, 2, gt.ByIndex)
	require.NoError(t, err)

	byDeg := net.Clone()
	_, orderDeg, err := gt.Transform(byDeg, interior, 2, gt.ByOutDegree)
	require.NoError(t, err)

	assert.ElementsMatch(t, orderIdx, orderDeg)
}

func TestLog_ForNodeAndLFor(t *testing.T) {
	net, _, n, _ := pathOfThree(t)
	interior := make([]bool, 3)
	interior[n] = true

	log, _, err := gt.Transform(net, interior, 1, gt.ByIndex)
	require.NoError(t, err)

	entries := log.ForNode(n)
	assert.Len(t, entries, 2)

	l, ok := log.LFor(n)
	require.True(t, ok)
	assert.False(t, math.IsNaN(l.Factor))
}
