// Package abstract: 0/1 matrix views of the incidence structure.
package abstract

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// IncidenceMatrix returns the incidence matrix between two consecutive
// layers: rows index the elements of the given rank, columns the elements
// one rank above, and entry (i, j) is 1 exactly when element i bounds
// element j. Valid ranks run from −1, where the matrix is a single all-ones
// row over the vertices, to Rank()−1, a single all-ones column under the
// maximal element; anything else reports ErrRankRange.
//
// Chained products of these matrices count chains: multiplying all of them
// in rank order yields a 1×1 matrix holding FlagCount().
//
// Complexity: O(i) in the incidence count between the two layers, plus the
// dense allocation.
func (p *Polytope) IncidenceMatrix(rank int) (*mat.Dense, error) {
	if rank < -1 || rank >= p.Rank() {
		return nil, fmt.Errorf("IncidenceMatrix: rank %d of %d: %w", rank, p.Rank(), ErrRankRange)
	}

	m := mat.NewDense(p.ElementCount(rank), p.ElementCount(rank+1), nil)
	for j, el := range *p.At(rank + 1) {
		for _, sub := range el.Subs {
			m.Set(sub, j, 1)
		}
	}

	return m, nil
}

// AdjacencyMatrix returns the symmetric 0/1 adjacency matrix of the
// 1-skeleton: entry (i, j) is 1 exactly when vertices i and j share a
// rank 1 element. Parallel edges collapse to a single 1 and the diagonal
// stays zero. A rank 0 structure yields the 1×1 zero matrix; the nullitope
// has no vertices to relate and reports ErrNullitope.
//
// Complexity: O(e) in the rank 1 incidence count, plus the dense allocation.
func (p *Polytope) AdjacencyMatrix() (*mat.Dense, error) {
	if p.Rank() < 0 {
		return nil, fmt.Errorf("AdjacencyMatrix: %w", ErrNullitope)
	}

	m := mat.NewDense(p.ElementCount(0), p.ElementCount(0), nil)
	if p.Rank() < 1 {
		return m, nil
	}
	for _, el := range *p.At(1) {
		for _, a := range el.Subs {
			for _, b := range el.Subs {
				if a != b {
					m.Set(a, b, 1)
				}
			}
		}
	}

	return m, nil
}
