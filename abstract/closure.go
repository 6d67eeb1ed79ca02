// Package abstract: element closures, extraction and sections.
package abstract

import "fmt"

// VertexIndices returns the ascending indices of the vertices under the
// element at (rank, idx): the rank 0 part of its downward closure. A vertex
// yields itself; ErrRankRange outside ranks 0..Rank() or the index range.
//
// Complexity: O(i) in the incidences below the element.
func (p *Polytope) VertexIndices(rank, idx int) ([]int, error) {
	if rank < 0 || rank > p.Rank() {
		return nil, fmt.Errorf("VertexIndices: rank %d: %w", rank, ErrRankRange)
	}
	if idx < 0 || idx >= p.ElementCount(rank) {
		return nil, fmt.Errorf("VertexIndices: index %d at rank %d: %w", idx, rank, ErrRankRange)
	}

	current := []int{idx}
	for r := rank; r >= 1; r-- {
		list := *p.At(r)
		mark := make([]bool, p.ElementCount(r-1))
		for _, i := range current {
			for _, sub := range list[i].Subs {
				mark[sub] = true
			}
		}

		current = current[:0]
		for i, m := range mark {
			if m {
				current = append(current, i)
			}
		}
	}

	return current, nil
}

// Section returns the closed interval between two incident elements as a
// standalone polytope: the low element becomes the minimal element, the high
// element the maximal one, and everything between is renumbered from zero
// per rank in ascending original order. The result has rank
// highRank − lowRank − 1, so Section(-1, 0, Rank(), 0) is a structural copy.
//
// ErrRankRange for out-of-range arguments, ErrNotIncident when the low
// element does not lie under the high one.
//
// Steps:
//  1. Walk the downward closure of the high element; the low element must
//     appear in it.
//  2. Walk back up from the low element, keeping only elements inside the
//     closure.
//  3. Rebuild the kept layers with renumbered subelement lists.
//
// Complexity: O(i) in the incidences between the two ranks.
func (p *Polytope) Section(lowRank, lowIdx, highRank, highIdx int) (*Polytope, error) {
	for _, arg := range [2][2]int{{lowRank, lowIdx}, {highRank, highIdx}} {
		r, i := arg[0], arg[1]
		if r < -1 || r > p.Rank() {
			return nil, fmt.Errorf("Section: rank %d: %w", r, ErrRankRange)
		}
		if i < 0 || i >= p.ElementCount(r) {
			return nil, fmt.Errorf("Section: index %d at rank %d: %w", i, r, ErrRankRange)
		}
	}
	if lowRank > highRank {
		return nil, fmt.Errorf("Section: rank %d above %d: %w", lowRank, highRank, ErrNotIncident)
	}

	height := highRank - lowRank

	// Downward closure of the high element.
	closure := make([][]bool, height+1)
	closure[height] = make([]bool, p.ElementCount(highRank))
	closure[height][highIdx] = true
	for r := highRank; r > lowRank; r-- {
		list := *p.At(r)
		below := make([]bool, p.ElementCount(r-1))
		for i, in := range closure[r-lowRank] {
			if !in {
				continue
			}
			for _, sub := range list[i].Subs {
				below[sub] = true
			}
		}
		closure[r-lowRank-1] = below
	}
	if !closure[0][lowIdx] {
		return nil, fmt.Errorf("Section: (%d,%d) not under (%d,%d): %w",
			lowRank, lowIdx, highRank, highIdx, ErrNotIncident)
	}

	// Upward cone of the low element, intersected with the closure.
	keep := make([][]bool, height+1)
	keep[0] = make([]bool, p.ElementCount(lowRank))
	keep[0][lowIdx] = true
	for r := lowRank + 1; r <= highRank; r++ {
		list := *p.At(r)
		level := make([]bool, p.ElementCount(r))
		for i, in := range closure[r-lowRank] {
			if !in {
				continue
			}
			for _, sub := range list[i].Subs {
				if keep[r-lowRank-1][sub] {
					level[i] = true
					break
				}
			}
		}
		keep[r-lowRank] = level
	}

	// Renumber each kept layer in ascending original order.
	renumber := make([][]int, height+1)
	kept := make([]int, height+1)
	for h := 0; h <= height; h++ {
		renumber[h] = make([]int, len(keep[h]))
		for i, in := range keep[h] {
			if in {
				renumber[h][i] = kept[h]
				kept[h]++
			}
		}
	}

	out := WithRank(height - 1)
	out.Push(MinList())
	for r := lowRank + 1; r <= highRank; r++ {
		h := r - lowRank
		list := *p.At(r)
		rebuilt := make(ElementList, 0, kept[h])
		for i, in := range keep[h] {
			if !in {
				continue
			}
			var subs []int
			for _, sub := range list[i].Subs {
				if keep[h-1][sub] {
					subs = append(subs, renumber[h-1][sub])
				}
			}
			rebuilt = append(rebuilt, Element{Subs: subs})
		}
		out.Push(rebuilt)
	}

	return out, nil
}

// ElementPolytope returns the element at (rank, idx) as its own polytope:
// the downward closure renumbered from zero per rank, topped by the element
// itself. ErrRankRange outside the structure.
func (p *Polytope) ElementPolytope(rank, idx int) (*Polytope, error) {
	out, err := p.Section(-1, 0, rank, idx)
	if err != nil {
		return nil, fmt.Errorf("ElementPolytope: %w", err)
	}

	return out, nil
}

// FacetPolytope returns facet idx (the element at rank Rank()−1) as its own
// polytope.
func (p *Polytope) FacetPolytope(idx int) (*Polytope, error) {
	out, err := p.Section(-1, 0, p.Rank()-1, idx)
	if err != nil {
		return nil, fmt.Errorf("FacetPolytope: %w", err)
	}

	return out, nil
}
