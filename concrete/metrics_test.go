package concrete_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedra/abstract"
	"github.com/katalvlaran/hedra/concrete"
	"github.com/katalvlaran/hedra/geom"
)

// TestGravicenter_MeanOfVertices verifies the mean on a shifted square and
// the nullitope refusal.
func TestGravicenter_MeanOfVertices(t *testing.T) {
	p := square(t)
	p.Shift(geom.NewPoint(-1, -2)) // gravicenter moves to (1, 2)

	g, ok := p.Gravicenter()
	require.True(t, ok)
	require.True(t, g.Equal(geom.NewPoint(1, 2), 1e-9))

	_, ok = concrete.Nullitope().Gravicenter()
	require.False(t, ok)
}

// TestCircumsphere_CubeDiagonal verifies the fitted sphere of the cube:
// center at the origin, radius half the space diagonal.
func TestCircumsphere_CubeDiagonal(t *testing.T) {
	s, err := cube(t).Circumsphere()
	require.NoError(t, err)

	require.True(t, s.Center.Equal(geom.Zero(3), 1e-9))
	require.InDelta(t, math.Sqrt(3)/2, s.Radius, 1e-9)
	for _, v := range cube(t).Vertices {
		require.True(t, s.Contains(v, 1e-9))
	}
}

// TestCircumsphere_OffCenterInput verifies that the fit follows the
// vertices, not the origin.
func TestCircumsphere_OffCenterInput(t *testing.T) {
	p := square(t)
	p.Shift(geom.NewPoint(-3, 4)) // center moves to (3, −4)

	s, err := p.Circumsphere()
	require.NoError(t, err)
	require.True(t, s.Center.Equal(geom.NewPoint(3, -4), 1e-9))
	require.InDelta(t, 1/math.Sqrt2, s.Radius, 1e-9)
}

// TestCircumsphere_NoFit verifies ErrNoCircumsphere on collinear vertices
// with pairwise different spacing.
func TestCircumsphere_NoFit(t *testing.T) {
	abs, err := abstract.Polygon(3)
	require.NoError(t, err)
	p, err := concrete.New([]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 0),
		geom.NewPoint(3, 0),
	}, abs)
	require.NoError(t, err)

	_, err = p.Circumsphere()
	require.ErrorIs(t, err, concrete.ErrNoCircumsphere)

	_, err = concrete.Nullitope().Circumsphere()
	require.ErrorIs(t, err, concrete.ErrNoVertices)
}

// TestEdgeLengths_PerEdge verifies lengths in element order and the nil
// return below rank 1.
func TestEdgeLengths_PerEdge(t *testing.T) {
	lens := cube(t).EdgeLengths()
	require.Len(t, lens, 12)
	for _, l := range lens {
		require.InDelta(t, 1, l, 1e-9)
	}

	require.Nil(t, concrete.Point().EdgeLengths())
	require.Nil(t, concrete.Nullitope().EdgeLengths())
}

// TestIsEquilateral_MixedLengths verifies the negative case on a stretched
// box and the vacuous case without edges.
func TestIsEquilateral_MixedLengths(t *testing.T) {
	box := cube(t)
	for _, v := range box.Vertices {
		v[2] *= 3 // edges along z now measure 3
	}

	require.False(t, box.IsEquilateral())
	require.False(t, box.IsEquilateralWithLen(1))
	require.True(t, concrete.Point().IsEquilateral())
}

// TestMidradius_EdgeMidpoints verifies the midsphere radius of the cube and
// the square, and the no-edge refusal.
func TestMidradius_EdgeMidpoints(t *testing.T) {
	mid, err := cube(t).Midradius()
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2/2, mid, 1e-9)

	mid, err = square(t).Midradius()
	require.NoError(t, err)
	require.InDelta(t, 0.5, mid, 1e-9)

	_, err = concrete.Point().Midradius()
	require.ErrorIs(t, err, concrete.ErrNoEdges)
}
