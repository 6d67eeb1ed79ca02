// Package abstract: canonical shape generators.
//
// Everything here is either a direct layer-by-layer construction (nullitope
// through polygon) or a fold of the products over such seeds (simplex,
// hypercube, orthoplex).
package abstract

import "fmt"

// Nullitope returns the unique polytope of rank −1: a single minimal
// element and nothing else.
func Nullitope() *Polytope {
	return FromLists(MinList())
}

// Point returns the unique polytope of rank 0.
func Point() *Polytope {
	return FromLists(MinList(), MaxList(1))
}

// Dyad returns the unique polytope of rank 1: two vertices under one edge.
func Dyad() *Polytope {
	return FromLists(MinList(), VertexList(2), MaxList(2))
}

// Polygon returns the rank 2 polytope with n vertices and n edges in a
// single cycle; edge i joins vertices i and (i+1) mod n. The digon (n = 2)
// is allowed; below that ErrTooFewVertices.
func Polygon(n int) (*Polytope, error) {
	if n < 2 {
		return nil, fmt.Errorf("Polygon: n = %d: %w", n, ErrTooFewVertices)
	}

	edges := make(ElementList, n)
	for i := 0; i < n; i++ {
		edges[i] = Element{Subs: []int{i, (i + 1) % n}}
	}

	return FromLists(MinList(), VertexList(n), edges, MaxList(n)), nil
}

// Simplex returns the simplex of the given rank: the multipyramid of
// rank+1 points. Rank −1 yields the nullitope.
func Simplex(rank int) (*Polytope, error) {
	if rank < -1 {
		return nil, fmt.Errorf("Simplex: rank %d: %w", rank, ErrRankRange)
	}

	points := make([]*Polytope, rank+1)
	for i := range points {
		points[i] = Point()
	}

	return Multipyramid(points...), nil
}

// Hypercube returns the hypercube of the given rank: the multiprism of
// rank dyads. Rank −1 yields the nullitope.
func Hypercube(rank int) (*Polytope, error) {
	if rank < -1 {
		return nil, fmt.Errorf("Hypercube: rank %d: %w", rank, ErrRankRange)
	}
	if rank == -1 {
		return Nullitope(), nil
	}

	dyads := make([]*Polytope, rank)
	for i := range dyads {
		dyads[i] = Dyad()
	}

	return Multiprism(dyads...), nil
}

// Orthoplex returns the orthoplex (cross-polytope) of the given rank: the
// multitegum of rank dyads. Rank −1 yields the nullitope.
func Orthoplex(rank int) (*Polytope, error) {
	if rank < -1 {
		return nil, fmt.Errorf("Orthoplex: rank %d: %w", rank, ErrRankRange)
	}
	if rank == -1 {
		return Nullitope(), nil
	}

	dyads := make([]*Polytope, rank)
	for i := range dyads {
		dyads[i] = Dyad()
	}

	return Multitegum(dyads...), nil
}
