package concrete

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hedra/geom"
)

// Scale multiplies every vertex by k, in place. Returns p for chaining.
func (p *Polytope) Scale(k float64) *Polytope {
	for _, v := range p.Vertices {
		floats.Scale(k, v)
	}

	return p
}

// Shift moves every vertex by −o, in place: shifting by a point places that
// point at the origin. Returns p for chaining.
func (p *Polytope) Shift(o geom.Point) *Polytope {
	for _, v := range p.Vertices {
		floats.Sub(v, o)
	}

	return p
}

// Recenter shifts the gravicenter to the origin; the nullitope is returned
// unchanged.
func (p *Polytope) Recenter() *Polytope {
	if g, ok := p.Gravicenter(); ok {
		return p.Shift(g)
	}

	return p
}

// Apply transforms every vertex by the matrix m, in place. The matrix must
// be square of the polytope's dimension.
func (p *Polytope) Apply(m *geom.Matrix) error {
	for i, v := range p.Vertices {
		w, err := geom.MulVec(m, v)
		if err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
		p.Vertices[i] = w
	}

	return nil
}

// Flatten re-expresses the vertices in the coordinates of their affine
// hull, dropping dead dimensions: a square living in a plane of 3-space
// becomes a true 2-dimensional square. Full-dimensional polytopes are left
// untouched. Returns p for chaining.
func (p *Polytope) Flatten() *Polytope {
	if len(p.Vertices) == 0 {
		return p
	}
	hull := geom.Span(p.Vertices)
	if hull.IsFull() {
		return p
	}
	p.Vertices = hull.FlattenAll(p.Vertices)

	return p
}

// MinMax returns the extent of the polytope along a direction: the minimum
// and maximum of v·direction over all vertices.
func (p *Polytope) MinMax(direction geom.Vector) (min, max float64, err error) {
	if len(p.Vertices) == 0 {
		return 0, 0, fmt.Errorf("MinMax: %w", ErrNoVertices)
	}
	dots := make([]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		dots[i] = v.Dot(direction)
	}

	return floats.Min(dots), floats.Max(dots), nil
}
