package abstract_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hedra/abstract"
)

// TestIncidenceMatrix_SquareLayers verifies all three layer matrices of the
// square entry by entry, the all-ones row and column included.
func TestIncidenceMatrix_SquareLayers(t *testing.T) {
	sq := square(t)

	below, err := sq.IncidenceMatrix(-1)
	require.NoError(t, err)
	require.True(t, mat.Equal(mat.NewDense(1, 4, []float64{1, 1, 1, 1}), below))

	mid, err := sq.IncidenceMatrix(0)
	require.NoError(t, err)
	require.True(t, mat.Equal(mat.NewDense(4, 4, []float64{
		1, 0, 0, 1,
		1, 1, 0, 0,
		0, 1, 1, 0,
		0, 0, 1, 1,
	}), mid))

	above, err := sq.IncidenceMatrix(1)
	require.NoError(t, err)
	require.True(t, mat.Equal(mat.NewDense(4, 1, []float64{1, 1, 1, 1}), above))
}

// TestIncidenceMatrix_ChainProductCountsFlags multiplies the layer matrices
// in rank order and compares the 1×1 result against FlagCount, the
// hemicube quotient included.
func TestIncidenceMatrix_ChainProductCountsFlags(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)

	for _, p := range []*abstract.Polytope{square(t), cube, hemicube(t)} {
		prod := mat.NewDense(1, 1, []float64{1})
		for r := -1; r < p.Rank(); r++ {
			step, err := p.IncidenceMatrix(r)
			require.NoError(t, err)

			next := new(mat.Dense)
			next.Mul(prod, step)
			prod = next
		}
		require.Equal(t, float64(p.FlagCount()), prod.At(0, 0))
	}
}

// TestIncidenceMatrix_RankGuards verifies the valid rank window −1 through
// Rank()−1 and the empty window of the nullitope.
func TestIncidenceMatrix_RankGuards(t *testing.T) {
	sq := square(t)

	_, err := sq.IncidenceMatrix(-2)
	require.ErrorIs(t, err, abstract.ErrRankRange)
	_, err = sq.IncidenceMatrix(2)
	require.ErrorIs(t, err, abstract.ErrRankRange)

	_, err = abstract.Nullitope().IncidenceMatrix(-1)
	require.ErrorIs(t, err, abstract.ErrRankRange)
}

// TestAdjacencyMatrix_SquareRing verifies the circulant skeleton of the
// square: each vertex sees exactly its two ring neighbours.
func TestAdjacencyMatrix_SquareRing(t *testing.T) {
	adj, err := square(t).AdjacencyMatrix()
	require.NoError(t, err)

	require.True(t, mat.Equal(mat.NewDense(4, 4, []float64{
		0, 1, 0, 1,
		1, 0, 1, 0,
		0, 1, 0, 1,
		1, 0, 1, 0,
	}), adj))
}

// TestAdjacencyMatrix_CubeDegrees verifies the cube skeleton: symmetric,
// hollow diagonal, every vertex of degree 3, 24 incidences in total.
func TestAdjacencyMatrix_CubeDegrees(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)

	adj, err := cube.AdjacencyMatrix()
	require.NoError(t, err)

	rows, cols := adj.Dims()
	require.Equal(t, 8, rows)
	require.Equal(t, 8, cols)
	require.True(t, mat.Equal(adj, adj.T()))
	require.Equal(t, 24.0, mat.Sum(adj))
	for i := 0; i < rows; i++ {
		require.Zero(t, adj.At(i, i))
		require.Equal(t, 3.0, floats.Sum(adj.RawRowView(i)))
	}
}

// TestAdjacencyMatrix_LowRanks verifies the dyad pair, the lonely point and
// the nullitope guard.
func TestAdjacencyMatrix_LowRanks(t *testing.T) {
	adj, err := abstract.Dyad().AdjacencyMatrix()
	require.NoError(t, err)
	require.True(t, mat.Equal(mat.NewDense(2, 2, []float64{0, 1, 1, 0}), adj))

	adj, err = abstract.Point().AdjacencyMatrix()
	require.NoError(t, err)
	require.True(t, mat.Equal(mat.NewDense(1, 1, []float64{0}), adj))

	_, err = abstract.Nullitope().AdjacencyMatrix()
	require.ErrorIs(t, err, abstract.ErrNullitope)
}
