package abstract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedra/abstract"
)

// TestDitope_DuplicatesTopLayer verifies the dihedron counts over a square
// and that the source polytope is untouched.
func TestDitope_DuplicatesTopLayer(t *testing.T) {
	sq := square(t)

	di, err := sq.Ditope()
	require.NoError(t, err)

	require.Equal(t, []int{1, 4, 4, 2, 1}, counts(di))
	require.NoError(t, di.Validate())
	require.Equal(t, []int{1, 4, 4, 1}, counts(sq))
}

// TestHosotope_DuplicatesBottomLayer verifies the hosohedron counts over a
// square: two vertices shared by every former vertex, now an edge.
func TestHosotope_DuplicatesBottomLayer(t *testing.T) {
	sq := square(t)

	hoso, err := sq.Hosotope()
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 4, 4, 1}, counts(hoso))
	require.NoError(t, hoso.Validate())

	// Every former vertex became an edge on the same vertex pair.
	for _, e := range *hoso.At(1) {
		require.Equal(t, []int{0, 1}, e.Subs)
	}
}

// TestHosotope_IsDualDitopeDual verifies that conjugating Ditope by Dual
// yields Hosotope exactly, element order included.
func TestHosotope_IsDualDitopeDual(t *testing.T) {
	tri, err := abstract.Polygon(3)
	require.NoError(t, err)

	for _, p := range []*abstract.Polytope{abstract.Point(), tri, square(t)} {
		want, err := p.Hosotope()
		require.NoError(t, err)

		via := p.Dual()
		require.NoError(t, via.DitopeInPlace())
		via.Dualize()

		require.True(t, want.Equal(via), "rank %d", p.Rank())
	}
}

// TestDitope_RejectsNullitope verifies the guard on both operations.
func TestDitope_RejectsNullitope(t *testing.T) {
	_, err := abstract.Nullitope().Ditope()
	require.ErrorIs(t, err, abstract.ErrNullitope)

	_, err = abstract.Nullitope().Hosotope()
	require.ErrorIs(t, err, abstract.ErrNullitope)
}

// TestDitope_OfPoint verifies the smallest cases: the ditope of a point is
// a dyad, and so is its hosotope.
func TestDitope_OfPoint(t *testing.T) {
	di, err := abstract.Point().Ditope()
	require.NoError(t, err)
	require.True(t, di.Equal(abstract.Dyad()))

	hoso, err := abstract.Point().Hosotope()
	require.NoError(t, err)
	require.True(t, hoso.Equal(abstract.Dyad()))
}
