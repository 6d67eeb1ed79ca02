package concrete

import (
	"fmt"

	"github.com/katalvlaran/hedra/geom"
)

// ElementVertices returns the coordinates of the vertices in the downward
// closure of an element, in ascending vertex order. The maximal element
// yields every vertex of the polytope.
func (p *Polytope) ElementVertices(rank, idx int) ([]geom.Point, error) {
	ids, err := p.Abs.VertexIndices(rank, idx)
	if err != nil {
		return nil, fmt.Errorf("ElementVertices: %w", err)
	}

	out := make([]geom.Point, len(ids))
	for i, id := range ids {
		out[i] = p.Vertices[id].Clone()
	}

	return out, nil
}

// Element extracts an element as a polytope of its own rank: the abstract
// downward closure paired with the matching vertex coordinates. Coordinates
// keep the ambient dimension; chain Flatten to drop dead axes.
func (p *Polytope) Element(rank, idx int) (*Polytope, error) {
	abs, err := p.Abs.ElementPolytope(rank, idx)
	if err != nil {
		return nil, fmt.Errorf("Element: %w", err)
	}
	vs, err := p.ElementVertices(rank, idx)
	if err != nil {
		return nil, fmt.Errorf("Element: %w", err)
	}

	return &Polytope{Vertices: vs, Abs: abs}, nil
}

// Facet extracts the idx-th facet as a polytope of rank Rank()−1.
func (p *Polytope) Facet(idx int) (*Polytope, error) {
	q, err := p.Element(p.Rank()-1, idx)
	if err != nil {
		return nil, fmt.Errorf("Facet: %w", err)
	}

	return q, nil
}

// Verf returns the vertex figure at a vertex: the shape traced where a
// hyperplane cuts off the corner. Computed as the dual of the corresponding
// facet of the dual; reciprocation errors propagate.
func (p *Polytope) Verf(idx int) (*Polytope, error) {
	d, err := p.Dual()
	if err != nil {
		return nil, fmt.Errorf("Verf: %w", err)
	}
	f, err := d.Element(p.Rank()-1, idx)
	if err != nil {
		return nil, fmt.Errorf("Verf: %w", err)
	}
	if err := f.Dualize(); err != nil {
		return nil, fmt.Errorf("Verf: %w", err)
	}

	return f, nil
}
