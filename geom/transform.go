// SPDX-License-Identifier: MIT

// Package geom: linear transforms on gonum dense matrices.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is the transform type: gonum's dense matrix.
type Matrix = mat.Dense

// Identity returns the dim×dim identity transform. Like all gonum dense
// matrices, dim must be at least 1.
func Identity(dim int) *Matrix {
	m := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// Rotation returns the dim×dim rotation by angle in the plane of the first
// two axes, identity elsewhere. For dim < 2 it degenerates to the identity.
func Rotation(angle float64, dim int) *Matrix {
	m := Identity(dim)
	if dim < 2 {
		return m
	}
	sin, cos := math.Sincos(angle)
	m.Set(0, 0, cos)
	m.Set(0, 1, -sin)
	m.Set(1, 0, sin)
	m.Set(1, 1, cos)

	return m
}

// Rotations returns num rotations in the plane of the first two axes, at
// multiples 0, angle, 2·angle, ... of the base angle. Compounds of rotated
// copies are the main consumer.
func Rotations(angle float64, num, dim int) []*Matrix {
	out := make([]*Matrix, num)
	for i := range out {
		out[i] = Rotation(angle*float64(i), dim)
	}

	return out
}

// CentralInversion returns the identity and the point reflection through the
// origin, the transform pair that doubles a polytope into a centrally
// symmetric compound.
func CentralInversion(dim int) []*Matrix {
	inv := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		inv.Set(i, i, -1)
	}

	return []*Matrix{Identity(dim), inv}
}

// MulVec applies m to p, returning a new Point. ErrDimensionMismatch when
// the widths disagree.
func MulVec(m *Matrix, p Point) (Point, error) {
	rows, cols := m.Dims()
	if cols != p.Dim() {
		return nil, fmt.Errorf("MulVec: %d columns against dimension %d: %w",
			cols, p.Dim(), ErrDimensionMismatch)
	}

	out := mat.NewVecDense(rows, nil)
	out.MulVec(m, mat.NewVecDense(p.Dim(), p))

	return Point(out.RawVector().Data), nil
}

// Det returns the determinant of the square matrix spanned by the given
// points as columns; the points' dimension must equal their count. The
// volume integrator feeds flag simplices through this.
func Det(columns []Point) (float64, error) {
	n := len(columns)
	if n == 0 {
		return 1, nil
	}
	m := mat.NewDense(n, n, nil)
	for j, c := range columns {
		if c.Dim() != n {
			return 0, fmt.Errorf("Det: point dimension %d in a %d-column matrix: %w",
				c.Dim(), n, ErrDimensionMismatch)
		}
		for i, v := range c {
			m.Set(i, j, v)
		}
	}

	return mat.Det(m), nil
}
