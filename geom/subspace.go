// SPDX-License-Identifier: MIT

// Package geom: affine subspaces with incrementally grown orthonormal bases.
//
// Subspace is the workhorse behind circumsphere fitting, volume flattening
// and reciprocal duals: those algorithms feed vertices in one at a time and
// branch on whether each one enlarges the span.
package geom

import "gonum.org/v1/gonum/floats"

// Subspace is an affine subspace: an origin plus an orthonormal basis.
// Grow it point by point with Add, or all at once with Span.
type Subspace struct {
	origin Point
	basis  []Vector
	tol    float64
}

// NewSubspace returns the 0-dimensional subspace {origin} with DefaultTol.
func NewSubspace(origin Point) *Subspace { return NewSubspaceTol(origin, DefaultTol) }

// NewSubspaceTol returns the 0-dimensional subspace {origin} with an explicit
// tolerance for the rank-growth test.
func NewSubspaceTol(origin Point, tol float64) *Subspace {
	return &Subspace{origin: origin.Clone(), tol: tol}
}

// Span returns the affine span of the given points (the first becomes the
// origin), or nil when the slice is empty.
func Span(points []Point) *Subspace {
	if len(points) == 0 {
		return nil
	}
	s := NewSubspace(points[0])
	for _, p := range points[1:] {
		s.Add(p)
	}

	return s
}

// Rank returns the dimension of the subspace (basis vector count).
func (s *Subspace) Rank() int { return len(s.basis) }

// Dim returns the dimension of the ambient space.
func (s *Subspace) Dim() int { return s.origin.Dim() }

// IsFull reports whether the subspace fills its ambient space.
func (s *Subspace) IsFull() bool { return s.Rank() == s.Dim() }

// Origin returns a copy of the subspace origin.
func (s *Subspace) Origin() Point { return s.origin.Clone() }

// Add extends the subspace to contain p.
//
// One Gram–Schmidt step: the residual of p against the current basis either
// clears the tolerance and joins the basis (normalized), or p already lay in
// the subspace. Returns the newly added unit direction and true on growth,
// nil and false otherwise.
//
// Complexity: O(rank·dim) time, O(dim) space.
func (s *Subspace) Add(p Point) (Vector, bool) {
	r := p.Sub(s.origin)
	for _, b := range s.basis {
		floats.AddScaled(r, -floats.Dot(r, b), b)
	}
	if floats.Norm(r, 2) <= s.tol {
		return nil, false
	}
	floats.Scale(1/floats.Norm(r, 2), r)
	s.basis = append(s.basis, r)

	return r.Clone(), true
}

// Contains reports whether p lies in the subspace within the tolerance.
func (s *Subspace) Contains(p Point) bool {
	r := p.Sub(s.origin)
	for _, b := range s.basis {
		floats.AddScaled(r, -floats.Dot(r, b), b)
	}

	return floats.Norm(r, 2) <= s.tol
}

// Project returns the orthogonal projection of p onto the subspace.
func (s *Subspace) Project(p Point) Point {
	d := p.Sub(s.origin)
	q := s.origin.Clone()
	for _, b := range s.basis {
		floats.AddScaled(q, floats.Dot(d, b), b)
	}

	return q
}

// Flatten re-expresses p in basis coordinates: the result has dimension
// Rank(), with i-th coordinate (p − origin)·basis[i]. Points outside the
// subspace lose their orthogonal component.
func (s *Subspace) Flatten(p Point) Point {
	d := p.Sub(s.origin)
	q := make(Point, len(s.basis))
	for i, b := range s.basis {
		q[i] = floats.Dot(d, b)
	}

	return q
}

// FlattenAll flattens every point in ps (see Flatten).
func (s *Subspace) FlattenAll(ps []Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = s.Flatten(p)
	}

	return out
}
