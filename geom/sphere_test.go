// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedra/geom"
)

// TestUnitSphere_Contains verifies membership on and off the unit sphere.
func TestUnitSphere_Contains(t *testing.T) {
	s := geom.UnitSphere(3)
	require.Equal(t, 3, s.Dim())
	require.InDelta(t, 1, s.Radius, 1e-12)

	require.True(t, s.Contains(geom.NewPoint(1, 0, 0), geom.DefaultTol))
	d := 1 / math.Sqrt(3)
	require.True(t, s.Contains(geom.NewPoint(d, d, d), geom.DefaultTol))

	require.False(t, s.Contains(geom.Zero(3), geom.DefaultTol))
	require.False(t, s.Contains(geom.NewPoint(1.01, 0, 0), geom.DefaultTol))
	require.True(t, s.Contains(geom.NewPoint(1.01, 0, 0), 0.1), "loose tolerance")
}

// TestHypersphere_OffCenter verifies membership against a shifted center.
func TestHypersphere_OffCenter(t *testing.T) {
	s := geom.Hypersphere{Center: geom.NewPoint(1, 1), Radius: 2}

	require.True(t, s.Contains(geom.NewPoint(3, 1), geom.DefaultTol))
	require.True(t, s.Contains(geom.NewPoint(1, -1), geom.DefaultTol))
	require.False(t, s.Contains(geom.NewPoint(1, 1), geom.DefaultTol))
}
