package ktn

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates a non-positive matrix dimension was requested.
var ErrInvalidDimensions = errors.New("ktn: dense matrix dimensions must be > 0")

// ErrIndexOutOfBounds indicates an out-of-range (row, col) access on a Dense matrix.
var ErrIndexOutOfBounds = errors.New("ktn: dense matrix index out of bounds")

// Dense is a row-major transition-matrix snapshot of a Network, used only
// for diagnostics and tests (the row-stochasticity test sums Dense rows
// rather than walking the intrusive adjacency directly). It is adapted from a general-purpose flat-slice
// matrix type into this narrower, Network-shaped role: one row/column per
// node, Weight off-diagonal, SelfLoop on the diagonal.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c zero matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v into (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// ToDense renders n's current transition probabilities as a dense |V|×|V|
// row-stochastic matrix: Dense[i][i] = Nodes[i].SelfLoop, Dense[i][j] =
// weight of the live edge i->j if one exists, else 0. Eliminated nodes are
// included as they stand: graph transformation renormalizes their outgoing
// weights to sum to 1 but leaves their SelfLoop in place, so an eliminated
// node's row sums to 1 + SelfLoop.
//
// Complexity: O(NumNodes^2 + NumEdges) — dominated by the zeroed backing
// allocation; intended for small per-basin subnetworks in tests, not hot
// paths.
func (n *Network) ToDense() (*Dense, error) {
	sz := len(n.Nodes)
	if sz == 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense(sz, sz)
	if err != nil {
		return nil, err
	}
	for i := range n.Nodes {
		if err := d.Set(i, i, n.Nodes[i].SelfLoop); err != nil {
			return nil, err
		}
		outs, err := n.OutEdges(i)
		if err != nil {
			return nil, err
		}
		for _, e := range outs {
			to := n.Edges[e].To
			cur, err := d.At(i, to)
			if err != nil {
				return nil, err
			}
			if err := d.Set(i, to, cur+n.Edges[e].Weight); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
