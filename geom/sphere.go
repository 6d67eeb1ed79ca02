// SPDX-License-Identifier: MIT

// Package geom: hyperspheres.
package geom

import "gonum.org/v1/gonum/floats/scalar"

// Hypersphere is the set of points at a fixed distance from a center:
// circumspheres, reciprocation spheres, and the unit spheres between them.
type Hypersphere struct {
	Center Point
	Radius float64
}

// UnitSphere returns the unit hypersphere at the origin of dim-dimensional
// space.
func UnitSphere(dim int) Hypersphere {
	return Hypersphere{Center: Zero(dim), Radius: 1}
}

// Dim returns the dimension of the ambient space.
func (h Hypersphere) Dim() int { return h.Center.Dim() }

// Contains reports whether p lies on the sphere within tol.
func (h Hypersphere) Contains(p Point, tol float64) bool {
	return scalar.EqualWithinAbs(h.Center.Dist(p), h.Radius, tol)
}
