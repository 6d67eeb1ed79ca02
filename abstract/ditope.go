// Package abstract: ditopes and hosotopes.
package abstract

import "fmt"

// DitopeInPlace raises the rank by one by duplicating the maximal element:
// the two copies become the facets of a fresh maximal element. The ditope of
// a polygon is the corresponding dihedron.
//
// Undefined on the nullitope, whose single element cannot serve as a facet
// pair base.
func (p *Polytope) DitopeInPlace() error {
	rank := p.Rank()
	if rank < 0 {
		return fmt.Errorf("Ditope: %w", ErrNullitope)
	}

	top := p.At(rank)
	*top = append(*top, (*top)[0].Clone())
	p.Push(MaxList(2))

	return nil
}

// Ditope returns the ditope as a new polytope.
func (p *Polytope) Ditope() (*Polytope, error) {
	clone := p.Clone()
	if err := clone.DitopeInPlace(); err != nil {
		return nil, err
	}

	return clone, nil
}

// HosotopeInPlace raises the rank by one from below: the minimal element is
// duplicated into a pair of vertices over a fresh minimal element, and the
// former vertex layer is re-aimed at both copies. This is the exact order
// dual of DitopeInPlace, so Hosotope = Dual ∘ Ditope ∘ Dual; the hosotope of
// a polygon is the corresponding hosohedron.
//
// Undefined on the nullitope.
func (p *Polytope) HosotopeInPlace() error {
	if p.Rank() < 0 {
		return fmt.Errorf("Hosotope: %w", ErrNullitope)
	}

	// Former ranks shift up by one; the duplicated bottom pair becomes the
	// new vertex layer.
	p.Insert(-1, MinList())
	*p.At(0) = VertexList(2)
	layer := *p.At(1)
	for i := range layer {
		layer[i].Subs = []int{0, 1}
	}

	return nil
}

// Hosotope returns the hosotope as a new polytope.
func (p *Polytope) Hosotope() (*Polytope, error) {
	clone := p.Clone()
	if err := clone.HosotopeInPlace(); err != nil {
		return nil, err
	}

	return clone, nil
}
