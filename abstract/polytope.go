// Package abstract: the Polytope type and its structural accessors.
package abstract

import (
	"fmt"
	"slices"
	"strings"
)

// Polytope is a ranked incidence structure: one ElementList per rank from −1
// to Rank(). The container methods (At, Push, Rank, ...) are promoted, so a
// Polytope can be built layer by layer and inspected rank by rank.
//
// The zero value is an empty structure of rank −2; push a minimal list to
// begin construction, or use the generators in this package.
type Polytope struct {
	Ranked[ElementList]
}

// New returns an empty structure ready for layer-by-layer construction.
func New() *Polytope { return &Polytope{} }

// WithRank returns an empty structure with capacity preallocated for the
// given final rank.
func WithRank(rank int) *Polytope {
	return &Polytope{Ranked: RankedWithRank[ElementList](rank)}
}

// FromLists builds a structure directly from element lists in rank order,
// starting at rank −1. The lists are taken as-is, without cloning; run
// Validate to vet hand-built input.
func FromLists(lists ...ElementList) *Polytope {
	p := WithRank(len(lists) - 2)
	for _, l := range lists {
		p.Push(l)
	}

	return p
}

// PushMin starts construction with the minimal element list. The structure
// must be empty.
func (p *Polytope) PushMin() error {
	if !p.IsEmpty() {
		return fmt.Errorf("PushMin: structure already has rank %d: %w", p.Rank(), ErrLayerOrder)
	}
	p.Push(MinList())

	return nil
}

// PushVertices adds the rank 0 layer. The structure must hold exactly the
// minimal list.
func (p *Polytope) PushVertices(vertexCount int) error {
	if p.Rank() != -1 {
		return fmt.Errorf("PushVertices: structure has rank %d, want -1: %w", p.Rank(), ErrLayerOrder)
	}
	p.Push(VertexList(vertexCount))

	return nil
}

// PushMax tops the structure with a maximal element over every element of
// the current top rank.
func (p *Polytope) PushMax() error {
	if p.Rank() < -1 {
		return fmt.Errorf("PushMax: structure is empty: %w", ErrLayerOrder)
	}
	p.Push(MaxList(p.ElementCount(p.Rank())))

	return nil
}

// ElementCount returns the number of elements of one rank, or 0 when the
// rank is out of range.
func (p *Polytope) ElementCount(rank int) int {
	if l := p.At(rank); l != nil {
		return len(*l)
	}

	return 0
}

// ElementCounts returns the per-rank element counts, rank −1 first.
func (p *Polytope) ElementCounts() Ranked[int] {
	counts := RankedWithRank[int](p.Rank())
	for r := -1; r <= p.Rank(); r++ {
		counts.Push(p.ElementCount(r))
	}

	return counts
}

// Clone returns a deep copy.
func (p *Polytope) Clone() *Polytope {
	return &Polytope{Ranked: p.Ranked.CloneWith(ElementList.Clone)}
}

// Equal reports whether two structures describe the same incidences: equal
// rank, equal counts per rank, and the same subelement sets element by
// element. Subelement order is irrelevant.
func (p *Polytope) Equal(q *Polytope) bool {
	if p.Rank() != q.Rank() {
		return false
	}
	for r := -1; r <= p.Rank(); r++ {
		pl, ql := *p.At(r), *q.At(r)
		if len(pl) != len(ql) {
			return false
		}
		for i := range pl {
			ps := slices.Clone(pl[i].Subs)
			qs := slices.Clone(ql[i].Subs)
			slices.Sort(ps)
			slices.Sort(qs)
			if !slices.Equal(ps, qs) {
				return false
			}
		}
	}

	return true
}

// String renders the rank and the per-rank element counts, e.g.
// "rank 3 [1 8 12 6 1]".
func (p *Polytope) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rank %d [", p.Rank())
	for r := -1; r <= p.Rank(); r++ {
		if r > -1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", p.ElementCount(r))
	}
	b.WriteByte(']')

	return b.String()
}
