package concrete

import (
	"fmt"

	"github.com/katalvlaran/hedra/abstract"
	"github.com/katalvlaran/hedra/geom"
)

// Compound merges polytopes of one shared rank and dimension into a single
// figure: the abstract compound over concatenated vertex coordinates. The
// result is dyadic but not connected. Requires rank ≥ 1
// (abstract.ErrRankMismatch otherwise) and equal dimensions.
func Compound(first *Polytope, rest ...*Polytope) (*Polytope, error) {
	factors := append([]*Polytope{first}, rest...)

	absFactors := make([]*abstract.Polytope, len(factors))
	for i, f := range factors {
		absFactors[i] = f.Abs
	}
	abs, err := abstract.Compound(absFactors...)
	if err != nil {
		return nil, fmt.Errorf("Compound: %w", err)
	}

	dim, _ := first.Dim()
	total := 0
	for i, f := range factors {
		if d, _ := f.Dim(); d != dim {
			return nil, fmt.Errorf("Compound: factor %d has dimension %d, want %d: %w",
				i, d, dim, ErrDimensionMismatch)
		}
		total += len(f.Vertices)
	}

	vs := make([]geom.Point, 0, total)
	for _, f := range factors {
		for _, v := range f.Vertices {
			vs = append(vs, v.Clone())
		}
	}

	return &Polytope{Vertices: vs, Abs: abs}, nil
}

// CompoundFromTransforms compounds the images of one polytope under each of
// the given transforms. Needs at least one transform.
func CompoundFromTransforms(p *Polytope, ms []*geom.Matrix) (*Polytope, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("CompoundFromTransforms: no transforms: %w", abstract.ErrRankMismatch)
	}

	copies := make([]*Polytope, len(ms))
	for i, m := range ms {
		c := p.Clone()
		if err := c.Apply(m); err != nil {
			return nil, fmt.Errorf("CompoundFromTransforms: transform %d: %w", i, err)
		}
		copies[i] = c
	}

	return Compound(copies[0], copies[1:]...)
}

// DualCompound compounds a polytope with its own dual, reciprocated about
// the midsphere so that both share it. The polytope should be uniform and
// centered at the origin, where the first edge's midpoint radius is the
// midradius.
func DualCompound(p *Polytope) (*Polytope, error) {
	mid, err := p.Midradius()
	if err != nil {
		return nil, fmt.Errorf("DualCompound: %w", err)
	}

	dim, _ := p.Dim()
	d, err := p.DualWithSphere(geom.Hypersphere{Center: geom.Zero(dim), Radius: mid})
	if err != nil {
		return nil, fmt.Errorf("DualCompound: %w", err)
	}

	return Compound(p, d)
}
