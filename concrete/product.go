package concrete

import (
	"github.com/katalvlaran/hedra/abstract"
	"github.com/katalvlaran/hedra/geom"
)

// Duopyramid returns the pyramid product with the default height 1.
func Duopyramid(p, q *Polytope) *Polytope { return DuopyramidWithHeight(p, q, 1) }

// DuopyramidWithHeight returns the pyramid product of two polytopes: q's
// vertices and p's vertices embedded side by side in a space with one extra
// height axis, q's copy raised to +h/2 and p's lowered to −h/2. The vertex
// order matches the abstract pair order, q's block first.
//
// The nullitope is the identity: a factor of rank −1 returns a clone of the
// other.
func DuopyramidWithHeight(p, q *Polytope, height float64) *Polytope {
	if p.Rank() < 0 {
		return q.Clone()
	}
	if q.Rank() < 0 {
		return p.Clone()
	}

	return &Polytope{
		Vertices: pyramidVertices(p, q, height, false),
		Abs:      abstract.Duopyramid(p.Abs, q.Abs),
	}
}

// Duoprism returns the prism product: the cartesian product of the vertex
// sets, coordinates concatenated, p-major order. A nullitope factor
// collapses the product to the nullitope; the point is the identity.
func Duoprism(p, q *Polytope) *Polytope {
	if p.Rank() < 0 || q.Rank() < 0 {
		return Nullitope()
	}

	return &Polytope{
		Vertices: cartesianVertices(p, q),
		Abs:      abstract.Duoprism(p.Abs, q.Abs),
	}
}

// Duotegum returns the tegum product: q's vertices and p's vertices embedded
// side by side around the shared origin, with no extra axis. A nullitope
// factor collapses the product to the nullitope; the point is the identity
// and returns a clone of the other factor.
func Duotegum(p, q *Polytope) *Polytope {
	if p.Rank() < 0 || q.Rank() < 0 {
		return Nullitope()
	}
	if p.Rank() == 0 {
		return q.Clone()
	}
	if q.Rank() == 0 {
		return p.Clone()
	}

	return &Polytope{
		Vertices: pyramidVertices(p, q, 0, true),
		Abs:      abstract.Duotegum(p.Abs, q.Abs),
	}
}

// Duocomb returns the comb product: the cartesian product of the vertex
// sets, like the prism's, over the comb structure. Factors of rank below 1
// have no proper elements to pair and collapse the product to the
// nullitope.
func Duocomb(p, q *Polytope) *Polytope {
	if p.Rank() < 1 || q.Rank() < 1 {
		return Nullitope()
	}

	return &Polytope{
		Vertices: cartesianVertices(p, q),
		Abs:      abstract.Duocomb(p.Abs, q.Abs),
	}
}

// Pyramid returns the pyramid over p: an apex at height 1 over the base.
func (p *Polytope) Pyramid() *Polytope { return Duopyramid(p, Point()) }

// PyramidWithHeight returns the pyramid over p with the given apex height.
func (p *Polytope) PyramidWithHeight(h float64) *Polytope {
	return DuopyramidWithHeight(p, Point(), h)
}

// Prism extrudes p along a fresh unit axis.
func (p *Polytope) Prism() *Polytope { return Duoprism(p, Dyad()) }

// Tegum returns the bipyramid over p: an apex pair at ±1/2 on a fresh axis.
func (p *Polytope) Tegum() *Polytope { return Duotegum(p, Dyad()) }

// Multiproduct folds the kind's binary product over the factors, right to
// left. The empty product is the kind's identity (nullitope for pyramids,
// the point otherwise); a single factor is cloned.
func Multiproduct(kind abstract.ProductKind, factors ...*Polytope) *Polytope {
	switch len(factors) {
	case 0:
		if kind == abstract.KindPyramid {
			return Nullitope()
		}

		return Point()
	case 1:
		return factors[0].Clone()
	}

	acc := factors[len(factors)-1]
	for i := len(factors) - 2; i >= 0; i-- {
		switch kind {
		case abstract.KindPyramid:
			acc = Duopyramid(factors[i], acc)
		case abstract.KindPrism:
			acc = Duoprism(factors[i], acc)
		case abstract.KindTegum:
			acc = Duotegum(factors[i], acc)
		default:
			acc = Duocomb(factors[i], acc)
		}
	}

	return acc
}

// Multipyramid folds Duopyramid over the factors (identity: nullitope).
func Multipyramid(factors ...*Polytope) *Polytope {
	return Multiproduct(abstract.KindPyramid, factors...)
}

// Multiprism folds Duoprism over the factors (identity: point).
func Multiprism(factors ...*Polytope) *Polytope {
	return Multiproduct(abstract.KindPrism, factors...)
}

// Multitegum folds Duotegum over the factors (identity: point).
func Multitegum(factors ...*Polytope) *Polytope {
	return Multiproduct(abstract.KindTegum, factors...)
}

// Multicomb folds Duocomb over the factors (identity: point).
func Multicomb(factors ...*Polytope) *Polytope {
	return Multiproduct(abstract.KindComb, factors...)
}

// pyramidVertices lays out the vertex coordinates of a pyramid or tegum
// product. The abstract rank-0 pairs put q's vertices (paired with p's
// minimal element) before p's, so q's block comes first; each factor is
// zero-padded into the joint space, and pyramids append one height
// coordinate, +h/2 for q's block and −h/2 for p's.
func pyramidVertices(p, q *Polytope, height float64, tegum bool) []geom.Point {
	pDim, _ := p.Dim()
	qDim, _ := q.Dim()

	out := make([]geom.Point, 0, len(p.Vertices)+len(q.Vertices))
	for _, qv := range q.Vertices {
		v := qv.Pad(pDim, 0)
		if !tegum {
			v = append(v, height/2)
		}
		out = append(out, v)
	}
	for _, pv := range p.Vertices {
		v := pv.Pad(0, qDim)
		if !tegum {
			v = append(v, -height/2)
		}
		out = append(out, v)
	}

	return out
}

// cartesianVertices concatenates every p vertex with every q vertex,
// p-major, matching the abstract rank-0 pair order of prism and comb
// products.
func cartesianVertices(p, q *Polytope) []geom.Point {
	out := make([]geom.Point, 0, len(p.Vertices)*len(q.Vertices))
	for _, pv := range p.Vertices {
		for _, qv := range q.Vertices {
			v := make(geom.Point, 0, len(pv)+len(qv))
			v = append(append(v, pv...), qv...)
			out = append(out, v)
		}
	}

	return out
}
