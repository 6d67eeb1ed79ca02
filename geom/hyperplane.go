// SPDX-License-Identifier: MIT

// Package geom: hyperplanes.
package geom

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Hyperplane is the locus Normal·x = Offset with a unit Normal. Cross
// sections slice against it; SignedDist classifies which side a point falls
// on.
type Hyperplane struct {
	Normal Vector
	Offset float64
}

// NewHyperplane builds the hyperplane through normal·x = offset, normalizing
// the normal. ErrZeroNormal when the normal's length is within DefaultTol of
// zero.
func NewHyperplane(normal Vector, offset float64) (Hyperplane, error) {
	n := floats.Norm(normal, 2)
	if n <= DefaultTol {
		return Hyperplane{}, fmt.Errorf("NewHyperplane: %w", ErrZeroNormal)
	}

	return Hyperplane{Normal: normal.Scaled(1 / n), Offset: offset / n}, nil
}

// Dim returns the dimension of the ambient space.
func (h Hyperplane) Dim() int { return h.Normal.Dim() }

// SignedDist returns the signed distance from p to the plane: positive on
// the side the normal points into.
func (h Hyperplane) SignedDist(p Point) float64 {
	return floats.Dot(h.Normal, p) - h.Offset
}
