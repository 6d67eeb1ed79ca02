// Package abstract: the dual transform.
package abstract

// Dualize converts the structure into its dual in place.
//
// Algorithm, rank pair by rank pair from the bottom up:
//  1. Clear the subelement lists one rank below the current rank.
//  2. Split the storage at the current rank into two disjoint views.
//  3. For every element of the current rank, push its index into each of its
//     subelements' lists — after this, the lower rank holds superelement
//     indices in ascending order.
//  4. After all pairs: clear the maximal element's list (it becomes the new
//     minimal element) and reverse the rank order.
//
// On a structurally valid polytope this cannot fail; counts come out
// reversed and validity is preserved.
//
// Complexity: O(i) time in the total incidence count, O(1) extra space.
func (p *Polytope) Dualize() {
	rank := p.Rank()

	for r := 0; r <= rank; r++ {
		below, from := p.SplitAt(r)
		prev := below[len(below)-1]
		for i := range prev {
			prev[i].Subs = nil
		}

		for idx, el := range from[0] {
			for _, sub := range el.Subs {
				prev[sub].Subs = append(prev[sub].Subs, idx)
			}
		}
	}

	// The old maximal element keeps its facet list until here; as the new
	// minimal element it must be empty.
	(*p.At(rank))[0].Subs = nil

	p.Reverse()
}

// Dual returns the dual as a new structure, leaving the receiver untouched.
func (p *Polytope) Dual() *Polytope {
	clone := p.Clone()
	clone.Dualize()

	return clone
}
