package abstract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedra/abstract"
)

// TestVertexIndices_DownwardClosure verifies vertex sets under elements of
// every rank of a square.
func TestVertexIndices_DownwardClosure(t *testing.T) {
	sq := square(t)

	verts, err := sq.VertexIndices(2, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, verts)

	verts, err = sq.VertexIndices(1, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, verts)

	verts, err = sq.VertexIndices(0, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3}, verts)
}

// TestVertexIndices_RangeGuards verifies ErrRankRange on both arguments.
func TestVertexIndices_RangeGuards(t *testing.T) {
	sq := square(t)

	_, err := sq.VertexIndices(-1, 0)
	require.ErrorIs(t, err, abstract.ErrRankRange)

	_, err = sq.VertexIndices(1, 4)
	require.ErrorIs(t, err, abstract.ErrRankRange)
}

// TestSection_WholeIntervalIsACopy verifies that the min-to-max section
// reproduces the polytope exactly.
func TestSection_WholeIntervalIsACopy(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)

	whole, err := cube.Section(-1, 0, cube.Rank(), 0)
	require.NoError(t, err)
	require.True(t, whole.Equal(cube))
}

// TestSection_SameElementIsNullitope verifies the zero-height interval.
func TestSection_SameElementIsNullitope(t *testing.T) {
	sq := square(t)

	point, err := sq.Section(1, 2, 1, 2)
	require.NoError(t, err)
	require.Equal(t, -1, point.Rank())
}

// TestSection_VertexFigureOfCube verifies the vertex-to-max interval of a
// cube: a triangle, one rank per surrounding layer.
func TestSection_VertexFigureOfCube(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)

	verf, err := cube.Section(0, 0, 3, 0)
	require.NoError(t, err)

	require.Equal(t, []int{1, 3, 3, 1}, counts(verf))
	require.NoError(t, verf.Validate())
}

// TestSection_NotIncident verifies ErrNotIncident for disjoint elements and
// for inverted rank order.
func TestSection_NotIncident(t *testing.T) {
	sq := square(t)

	// Vertex 2 does not lie on edge 0 (vertices 0 and 1).
	_, err := sq.Section(0, 2, 1, 0)
	require.ErrorIs(t, err, abstract.ErrNotIncident)

	_, err = sq.Section(1, 0, 0, 0)
	require.ErrorIs(t, err, abstract.ErrNotIncident)
}

// TestElementPolytope_FacetOfCube verifies facet extraction: every facet of
// a cube is a square.
func TestElementPolytope_FacetOfCube(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)

	for idx := 0; idx < cube.ElementCount(2); idx++ {
		facet, err := cube.FacetPolytope(idx)
		require.NoError(t, err)

		require.Equal(t, []int{1, 4, 4, 1}, counts(facet))
		require.NoError(t, facet.Validate())
	}

	// The two extraction paths agree.
	direct, err := cube.ElementPolytope(2, 0)
	require.NoError(t, err)
	facet, err := cube.FacetPolytope(0)
	require.NoError(t, err)
	require.True(t, direct.Equal(facet))
}

// TestElementPolytope_RangeGuard verifies ErrRankRange past the top rank.
func TestElementPolytope_RangeGuard(t *testing.T) {
	sq := square(t)

	_, err := sq.ElementPolytope(3, 0)
	require.ErrorIs(t, err, abstract.ErrRankRange)
}
