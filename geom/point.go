// SPDX-License-Identifier: MIT

// Package geom: euclidean points and vectors.
// Arithmetic delegates to gonum/floats kernels; comparisons go through
// gonum/floats/scalar so that every tolerance check shares one code path.
package geom

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTol is the numeric tolerance shared by all geometric predicates in
// hedra: subspace rank growth, circumsphere consistency, reciprocation
// guards, equilateral checks and cross-section side classification.
// Constructors with a *Tol suffix accept an explicit override.
const DefaultTol = 1e-9

// Point is a coordinate vector in euclidean space of dimension len(p).
// The zero-length Point is the (unique) point of 0-dimensional space.
type Point []float64

// Vector is a Point used with direction intent.
type Vector = Point

// NewPoint builds a Point from explicit coordinates.
func NewPoint(coords ...float64) Point {
	p := make(Point, len(coords))
	copy(p, coords)

	return p
}

// Zero returns the origin of dim-dimensional space.
func Zero(dim int) Point { return make(Point, dim) }

// Dim returns the dimension of the ambient space.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)

	return q
}

// Add returns p + q as a new Point.
func (p Point) Add(q Point) Point {
	r := make(Point, len(p))
	floats.AddTo(r, p, q)

	return r
}

// Sub returns p − q as a new Point.
func (p Point) Sub(q Point) Point {
	r := make(Point, len(p))
	floats.SubTo(r, p, q)

	return r
}

// Scaled returns k·p as a new Point.
func (p Point) Scaled(k float64) Point {
	r := make(Point, len(p))
	floats.ScaleTo(r, k, p)

	return r
}

// AddScaled returns p + k·q as a new Point.
func (p Point) AddScaled(k float64, q Point) Point {
	r := make(Point, len(p))
	floats.AddScaledTo(r, p, k, q)

	return r
}

// Dot returns the inner product p·q.
func (p Point) Dot(q Point) float64 { return floats.Dot(p, q) }

// Norm returns the euclidean length of p.
func (p Point) Norm() float64 { return floats.Norm(p, 2) }

// NormSq returns the squared euclidean length of p.
func (p Point) NormSq() float64 { return floats.Dot(p, p) }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return floats.Distance(p, q, 2) }

// Equal reports whether p and q coincide coordinate-wise within tol.
// Points of different dimensions are never equal.
func (p Point) Equal(q Point, tol float64) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !scalar.EqualWithinAbs(p[i], q[i], tol) {
			return false
		}
	}

	return true
}

// Pad returns p embedded in a higher-dimensional space: left zeros are
// prepended and right zeros appended, so that the result has dimension
// left + len(p) + right. Product vertex builders use this to place factor
// coordinates side by side.
func (p Point) Pad(left, right int) Point {
	r := make(Point, left+len(p)+right)
	copy(r[left:], p)

	return r
}
