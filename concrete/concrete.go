package concrete

import (
	"fmt"

	"github.com/katalvlaran/hedra/abstract"
	"github.com/katalvlaran/hedra/geom"
)

// Polytope is a concrete polytope: an abstract structure together with one
// coordinate point per rank-0 element, in matching order.
type Polytope struct {
	// Vertices holds the coordinates; Vertices[i] belongs to the i-th
	// rank-0 element of Abs. All points share one dimension.
	Vertices []geom.Point

	// Abs is the underlying abstract polytope.
	Abs *abstract.Polytope
}

// New pairs vertex coordinates with an abstract polytope. The coordinate
// count must match the rank-0 element count and all points must share one
// dimension; the slices are adopted, not copied.
func New(vertices []geom.Point, abs *abstract.Polytope) (*Polytope, error) {
	if len(vertices) != abs.ElementCount(0) {
		return nil, fmt.Errorf("New: %d coordinate points for %d vertices: %w",
			len(vertices), abs.ElementCount(0), ErrVertexCount)
	}
	for i := 1; i < len(vertices); i++ {
		if vertices[i].Dim() != vertices[0].Dim() {
			return nil, fmt.Errorf("New: point %d has dimension %d, want %d: %w",
				i, vertices[i].Dim(), vertices[0].Dim(), ErrDimensionMismatch)
		}
	}

	return &Polytope{Vertices: vertices, Abs: abs}, nil
}

// Rank returns the rank of the underlying abstract polytope.
func (p *Polytope) Rank() int { return p.Abs.Rank() }

// Dim returns the dimension of the space the polytope lives in. The second
// return is false for the nullitope, which has no vertices to live anywhere.
func (p *Polytope) Dim() (int, bool) {
	if len(p.Vertices) == 0 {
		return 0, false
	}

	return p.Vertices[0].Dim(), true
}

// Clone returns a deep copy: coordinates and structure share nothing with p.
func (p *Polytope) Clone() *Polytope {
	vs := make([]geom.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		vs[i] = v.Clone()
	}

	return &Polytope{Vertices: vs, Abs: p.Abs.Clone()}
}

// String renders the dimension and the layer counts, for example
// "dim 3, rank 3 [1 8 12 6 1]".
func (p *Polytope) String() string {
	if dim, ok := p.Dim(); ok {
		return fmt.Sprintf("dim %d, %s", dim, p.Abs)
	}

	return p.Abs.String()
}
