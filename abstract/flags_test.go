package abstract_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedra/abstract"
)

// hemicube returns the rank 3 quotient of the cube by its central symmetry:
// 4 vertices, 6 edges (one per vertex pair), 3 square faces. Connected and
// dyadic, yet not orientable. The canonical counterexample for flag tests.
func hemicube(t *testing.T) *abstract.Polytope {
	t.Helper()

	edges := abstract.ElementList{
		{Subs: []int{0, 1}}, {Subs: []int{0, 2}}, {Subs: []int{0, 3}},
		{Subs: []int{1, 2}}, {Subs: []int{1, 3}}, {Subs: []int{2, 3}},
	}
	faces := abstract.ElementList{
		{Subs: []int{0, 3, 5, 2}},
		{Subs: []int{0, 4, 5, 1}},
		{Subs: []int{1, 3, 4, 2}},
	}
	p := abstract.FromLists(
		abstract.MinList(), abstract.VertexList(4), edges, faces, abstract.MaxList(3))
	require.NoError(t, p.Validate())
	require.True(t, p.IsConnected())

	return p
}

// TestFlagCount_MatchesEnumeration verifies the chain-count DP against the
// explicit enumeration across known shapes.
func TestFlagCount_MatchesEnumeration(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)
	simp, err := abstract.Simplex(3)
	require.NoError(t, err)

	cases := []struct {
		p    *abstract.Polytope
		want int
	}{
		{abstract.Nullitope(), 1},
		{abstract.Point(), 1},
		{abstract.Dyad(), 2},
		{square(t), 8},
		{cube, 48},
		{simp, 24},
		{hemicube(t), 24},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.p.FlagCount(), "rank %d", tc.p.Rank())
		require.Len(t, tc.p.Flags(), tc.want)
	}
}

// TestFlags_AreMaximalChains verifies that every enumerated flag really is a
// chain: each element contains the one below it.
func TestFlags_AreMaximalChains(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)

	for _, f := range cube.Flags() {
		require.Equal(t, 0, f.At(-1))
		require.Equal(t, 0, f.At(3))

		for r := 1; r <= 3; r++ {
			el := (*cube.At(r))[f.At(r)]
			require.True(t, slices.Contains(el.Subs, f.At(r-1)),
				"rank %d element %d misses %d", r, f.At(r), f.At(r-1))
		}
	}
}

// TestIsOrientable_SpheresAndQuotients verifies orientability across the
// stock shapes and its failure on the hemicube.
func TestIsOrientable_SpheresAndQuotients(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)
	anti, err := abstract.Antiprism(3)
	require.NoError(t, err)

	require.True(t, square(t).IsOrientable())
	require.True(t, cube.IsOrientable())
	require.True(t, anti.IsOrientable())

	require.False(t, hemicube(t).IsOrientable())
}

// TestOrientedFlags_SignsBalance verifies the 2-coloring output on a cube:
// one sign per flag, half of each.
func TestOrientedFlags_SignsBalance(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)

	flags, signs, err := cube.OrientedFlags()
	require.NoError(t, err)
	require.Len(t, flags, 48)
	require.Len(t, signs, 48)

	sum := 0
	for _, s := range signs {
		require.Contains(t, []int{-1, 1}, s)
		sum += s
	}
	require.Equal(t, 0, sum)
}

// TestOrientedFlags_ErrorCases verifies both refusals: a compound has no
// single flag component, the hemicube has no consistent coloring.
func TestOrientedFlags_ErrorCases(t *testing.T) {
	two, err := abstract.Compound(square(t), square(t))
	require.NoError(t, err)
	_, _, err = two.OrientedFlags()
	require.ErrorIs(t, err, abstract.ErrDisconnectedFlags)

	_, _, err = hemicube(t).OrientedFlags()
	require.ErrorIs(t, err, abstract.ErrNotOrientable)
}

// TestOrientedFlags_LowRanks verifies the trivial outputs below rank 1.
func TestOrientedFlags_LowRanks(t *testing.T) {
	flags, signs, err := abstract.Point().OrientedFlags()
	require.NoError(t, err)
	require.Len(t, flags, 1)
	require.Equal(t, []int{1}, signs)
}
