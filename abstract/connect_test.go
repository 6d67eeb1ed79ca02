package abstract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedra/abstract"
)

// TestIsConnected_Generators verifies connectivity across the stock shapes.
func TestIsConnected_Generators(t *testing.T) {
	cube, err := abstract.Hypercube(3)
	require.NoError(t, err)
	anti, err := abstract.Antiprism(5)
	require.NoError(t, err)

	for _, p := range []*abstract.Polytope{square(t), cube, anti} {
		require.True(t, p.IsConnected())
		require.True(t, p.IsStronglyConnected())
	}
}

// TestIsConnected_LowRanksAreTrivial verifies the rank ≤ 1 convention.
func TestIsConnected_LowRanksAreTrivial(t *testing.T) {
	for _, p := range []*abstract.Polytope{
		abstract.Nullitope(), abstract.Point(), abstract.Dyad(),
	} {
		require.True(t, p.IsConnected())
		require.True(t, p.IsStronglyConnected())
	}
}

// TestIsConnected_CompoundSplits verifies that a compound fails plain and
// strong connectivity alike.
func TestIsConnected_CompoundSplits(t *testing.T) {
	two, err := abstract.Compound(square(t), square(t))
	require.NoError(t, err)

	require.False(t, two.IsConnected())
	require.False(t, two.IsStronglyConnected())
}

// TestIsStronglyConnected_SeesInnerCompounds verifies the difference between
// the two notions: a pyramid over a compound is connected through its apex
// yet one facet section still splits.
func TestIsStronglyConnected_SeesInnerCompounds(t *testing.T) {
	two, err := abstract.Compound(square(t), square(t))
	require.NoError(t, err)
	pyr := two.Pyramid()

	require.True(t, pyr.IsConnected())
	require.False(t, pyr.IsStronglyConnected())
}
