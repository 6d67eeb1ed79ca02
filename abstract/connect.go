// Package abstract: connectivity over the proper-element incidence graph.
package abstract

import (
	"errors"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// IsConnected reports whether the proper elements (ranks 0 through
// Rank()−1) form a single component under incidence. Polytopes of rank ≤ 1
// are connected by convention; compounds are the canonical failing case.
//
// The incidence graph is materialized as a gonum undirected graph and
// checked with topo.ConnectedComponents.
//
// Complexity: O(i) in the proper incidence count.
func (p *Polytope) IsConnected() bool {
	rank := p.Rank()
	if rank <= 1 {
		return true
	}

	// Node ids: per-rank offsets over the proper ranks.
	offsets := make([]int, rank)
	total := 0
	for r := 0; r < rank; r++ {
		offsets[r] = total
		total += p.ElementCount(r)
	}

	g := simple.NewUndirectedGraph()
	for r := 1; r < rank; r++ {
		for i, el := range *p.At(r) {
			for _, sub := range el.Subs {
				g.SetEdge(simple.Edge{
					F: simple.Node(int64(offsets[r] + i)),
					T: simple.Node(int64(offsets[r-1] + sub)),
				})
			}
		}
	}
	for id := 0; id < total; id++ {
		if g.Node(int64(id)) == nil {
			g.AddNode(simple.Node(int64(id)))
		}
	}

	return len(topo.ConnectedComponents(g)) <= 1
}

// IsStronglyConnected reports whether every section of rank ≥ 2 is
// connected, the polytope itself included. This is the textbook notion that
// separates genuine polytopes from lattice patchworks that merely pass the
// diamond check.
//
// Complexity: O(s·i) where s is the number of rank ≥ 2 sections; intended
// for vetting, not hot paths.
func (p *Polytope) IsStronglyConnected() bool {
	for lowRank := -1; lowRank <= p.Rank(); lowRank++ {
		for highRank := lowRank + 3; highRank <= p.Rank(); highRank++ {
			for lowIdx := 0; lowIdx < p.ElementCount(lowRank); lowIdx++ {
				for highIdx := 0; highIdx < p.ElementCount(highRank); highIdx++ {
					section, err := p.Section(lowRank, lowIdx, highRank, highIdx)
					if errors.Is(err, ErrNotIncident) {
						continue
					}
					if err != nil || !section.IsConnected() {
						return false
					}
				}
			}
		}
	}

	return true
}
