package abstract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedra/abstract"
)

// TestAntiprism_Counts verifies [1, 2n, 4n, 2n+2, 1] across ring sizes.
func TestAntiprism_Counts(t *testing.T) {
	for n := 2; n <= 6; n++ {
		anti, err := abstract.Antiprism(n)
		require.NoError(t, err)

		require.Equal(t, []int{1, 2 * n, 4 * n, 2*n + 2, 1}, counts(anti))
		require.NoError(t, anti.Validate(), "n=%d", n)
	}
}

// TestAntiprism_DigonalCase verifies that n = 2 keeps the doubled ring
// edges: the digonal antiprism is not the tetrahedron lattice.
func TestAntiprism_DigonalCase(t *testing.T) {
	anti, err := abstract.Antiprism(2)
	require.NoError(t, err)

	require.Equal(t, []int{1, 4, 8, 6, 1}, counts(anti))

	simp, err := abstract.Simplex(3)
	require.NoError(t, err)
	require.False(t, anti.Equal(simp))
}

// TestAntiprism_TooFewVertices verifies the n < 2 guard.
func TestAntiprism_TooFewVertices(t *testing.T) {
	_, err := abstract.Antiprism(1)
	require.ErrorIs(t, err, abstract.ErrTooFewVertices)
}

// TestAntiprismOf_PolygonBase verifies that a polygonal base routes to the
// plain constructor.
func TestAntiprismOf_PolygonBase(t *testing.T) {
	anti, err := abstract.AntiprismOf(square(t))
	require.NoError(t, err)

	want, err := abstract.Antiprism(4)
	require.NoError(t, err)
	require.True(t, anti.Equal(want))
}

// TestAntiprismOf_RejectsNonPolygons verifies the unsupported-base guards:
// wrong rank, and a rank 2 base that splits into two cycles.
func TestAntiprismOf_RejectsNonPolygons(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)
	_, err = abstract.AntiprismOf(cube)
	require.ErrorIs(t, err, abstract.ErrUnsupported)

	digon, err := abstract.Polygon(2)
	require.NoError(t, err)
	two, err := abstract.Compound(digon, digon)
	require.NoError(t, err)
	_, err = abstract.AntiprismOf(two)
	require.ErrorIs(t, err, abstract.ErrUnsupported)
}
