// Package abstract: compounds.
package abstract

import "fmt"

// Compound merges polytopes of one shared rank into a single structure: a
// fresh minimal element, the proper layers of every component side by side
// with index offsets, and one maximal element over all facets.
//
// The result is valid (dyadic) but not connected; disconnection is what
// makes it a compound. Requires at least one factor of rank ≥ 1 and equal
// ranks throughout; ErrRankMismatch otherwise.
//
// Complexity: O(total incidences).
func Compound(factors ...*Polytope) (*Polytope, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("Compound: no factors: %w", ErrRankMismatch)
	}

	rank := factors[0].Rank()
	if rank < 1 {
		return nil, fmt.Errorf("Compound: factor rank %d, want >= 1: %w", rank, ErrRankMismatch)
	}
	for i, f := range factors {
		if f.Rank() != rank {
			return nil, fmt.Errorf("Compound: factor %d has rank %d, want %d: %w",
				i, f.Rank(), rank, ErrRankMismatch)
		}
	}

	out := WithRank(rank)
	out.Push(MinList())

	// Proper ranks concatenate with per-rank offsets; vertex subs ([0]) and
	// higher subs shift by the offset one rank below.
	for r := 0; r < rank; r++ {
		var list ElementList
		below := 0
		for _, f := range factors {
			for _, el := range *f.At(r) {
				shifted := el.Clone()
				if r > 0 {
					for i := range shifted.Subs {
						shifted.Subs[i] += below
					}
				}
				list = append(list, shifted)
			}
			below += f.ElementCount(r - 1)
		}
		out.Push(list)
	}

	out.Push(MaxList(out.ElementCount(rank - 1)))

	return out, nil
}
