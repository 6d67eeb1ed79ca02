package concrete

import (
	"fmt"

	"github.com/katalvlaran/hedra/geom"
)

// Dualize reciprocates the polytope in place about the unit sphere at the
// origin. See DualizeWithSphere.
func (p *Polytope) Dualize() error {
	dim, ok := p.Dim()
	if !ok {
		dim = 1
	}

	return p.DualizeWithSphere(geom.UnitSphere(dim))
}

// DualizeWithSphere reciprocates the polytope in place about the given
// sphere: facet hyperplanes become the dual's vertices and the abstract
// structure flips top to bottom.
//
// Steps:
//  1. Rank below 1: nullitopes and points are their own duals, unchanged.
//  2. Project the sphere's center onto the affine hull of the vertices; a
//     center off the hull would bend every facet hyperplane sideways.
//  3. Project that center onto each facet's affine hull. At rank 1 the
//     vertices themselves are the facets.
//  4. Reciprocate every projection, v ↦ o + r²·(v−o)/‖v−o‖², honoring the
//     sphere's radius r. A projection within tolerance of the center means
//     the facet passes through it: ErrCenterOnFacet, polytope unchanged.
//  5. Dualize the abstract structure. The new vertex order is the old facet
//     order.
//
// Complexity: O(facets·vertices·dim) time.
func (p *Polytope) DualizeWithSphere(s geom.Hypersphere) error {
	rank := p.Rank()
	if rank < 1 {
		return nil
	}
	if dim, _ := p.Dim(); s.Dim() != dim {
		return fmt.Errorf("DualizeWithSphere: sphere dimension %d, polytope dimension %d: %w",
			s.Dim(), dim, ErrDimensionMismatch)
	}

	hull := geom.Span(p.Vertices)
	o := hull.Project(s.Center)

	var proj []geom.Point
	if rank >= 2 {
		facetCount := p.Abs.ElementCount(rank - 1)
		proj = make([]geom.Point, 0, facetCount)
		for idx := 0; idx < facetCount; idx++ {
			vs, err := p.ElementVertices(rank-1, idx)
			if err != nil {
				return fmt.Errorf("DualizeWithSphere: %w", err)
			}
			proj = append(proj, geom.Span(vs).Project(o))
		}
	} else {
		proj = make([]geom.Point, len(p.Vertices))
		for i, v := range p.Vertices {
			proj[i] = v.Clone()
		}
	}

	r2 := s.Radius * s.Radius
	for i, v := range proj {
		d := v.Sub(o)
		n2 := d.NormSq()
		if n2 < geom.DefaultTol {
			return fmt.Errorf("DualizeWithSphere: facet %d: %w", i, ErrCenterOnFacet)
		}
		proj[i] = o.AddScaled(r2/n2, d)
	}

	p.Vertices = proj
	p.Abs.Dualize()

	return nil
}

// Dual returns the reciprocal about the unit sphere at the origin.
func (p *Polytope) Dual() (*Polytope, error) {
	q := p.Clone()
	if err := q.Dualize(); err != nil {
		return nil, fmt.Errorf("Dual: %w", err)
	}

	return q, nil
}

// DualWithSphere returns the reciprocal about the given sphere.
func (p *Polytope) DualWithSphere(s geom.Hypersphere) (*Polytope, error) {
	q := p.Clone()
	if err := q.DualizeWithSphere(s); err != nil {
		return nil, fmt.Errorf("DualWithSphere: %w", err)
	}

	return q, nil
}
