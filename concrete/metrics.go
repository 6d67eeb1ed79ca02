package concrete

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/hedra/geom"
)

// Gravicenter returns the mean of the vertices, or false for the nullitope.
func (p *Polytope) Gravicenter() (geom.Point, bool) {
	dim, ok := p.Dim()
	if !ok {
		return nil, false
	}

	g := geom.Zero(dim)
	for _, v := range p.Vertices {
		floats.Add(g, v)
	}
	floats.Scale(1/float64(len(p.Vertices)), g)

	return g, true
}

// Circumsphere fits the sphere through all vertices, if one exists.
//
// The affine hull is grown vertex by vertex. A vertex that enlarges the hull
// always admits a consistent center: the current center moves along the new
// basis direction b by
//
//	k = (‖o−v‖² − ‖o−v₀‖²) / (2·(v−v₀)·b)
//
// which equalizes the distances to v and to the first vertex. A vertex
// inside the hull has no freedom left; if its distance to the center
// disagrees beyond the tolerance, no circumsphere exists and the result is
// ErrNoCircumsphere.
//
// Complexity: O(n·dim·rank) time.
func (p *Polytope) Circumsphere() (geom.Hypersphere, error) {
	if len(p.Vertices) == 0 {
		return geom.Hypersphere{}, fmt.Errorf("Circumsphere: %w", ErrNoVertices)
	}

	v0 := p.Vertices[0]
	o := v0.Clone()
	hull := geom.NewSubspace(v0)

	for _, v := range p.Vertices[1:] {
		if b, grew := hull.Add(v); grew {
			k := (o.Sub(v).NormSq() - o.Sub(v0).NormSq()) / (2 * v.Sub(v0).Dot(b))
			o = o.AddScaled(k, b)
		} else if math.Abs(o.Sub(v0).Norm()-o.Sub(v).Norm()) > geom.DefaultTol {
			return geom.Hypersphere{}, fmt.Errorf("Circumsphere: %w", ErrNoCircumsphere)
		}
	}

	return geom.Hypersphere{Center: o, Radius: o.Sub(v0).Norm()}, nil
}

// EdgeLengths returns the length of every rank-1 element, in element order.
// A polytope without a rank-1 layer yields nil.
func (p *Polytope) EdgeLengths() []float64 {
	edges := p.Abs.At(1)
	if edges == nil {
		return nil
	}

	out := make([]float64, 0, len(*edges))
	for _, e := range *edges {
		out = append(out, p.Vertices[e.Subs[0]].Dist(p.Vertices[e.Subs[1]]))
	}

	return out
}

// IsEquilateralWithLen reports whether every edge has length l within the
// tolerance. Edgeless polytopes are vacuously equilateral.
func (p *Polytope) IsEquilateralWithLen(l float64) bool {
	for _, el := range p.EdgeLengths() {
		if !scalar.EqualWithinAbs(el, l, geom.DefaultTol) {
			return false
		}
	}

	return true
}

// IsEquilateral reports whether every edge has the same length as the first.
func (p *Polytope) IsEquilateral() bool {
	lens := p.EdgeLengths()
	if len(lens) == 0 {
		return true
	}

	return p.IsEquilateralWithLen(lens[0])
}

// Midradius returns the distance from the origin to the midpoint of the
// first edge. On a uniform polytope centered at the origin every edge
// midpoint is equidistant, making this the midsphere radius.
func (p *Polytope) Midradius() (float64, error) {
	edges := p.Abs.At(1)
	if edges == nil || len(*edges) == 0 {
		return 0, fmt.Errorf("Midradius: %w", ErrNoEdges)
	}

	e := (*edges)[0]

	return p.Vertices[e.Subs[0]].Add(p.Vertices[e.Subs[1]]).Norm() / 2, nil
}
