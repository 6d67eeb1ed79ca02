// Package abstract: antiprisms.
package abstract

import "fmt"

// Antiprism returns the n-gonal antiprism: two n-gon rings joined by a band
// of 2n triangles. Counts: [1, 2n, 4n, 2n+2, 1]. The digonal case (n = 2)
// is allowed and keeps its doubled ring edges and digon ring faces, so it is
// a distinct lattice from the tetrahedron; below n = 2, ErrTooFewVertices.
//
// Index layout, used verbatim by the concrete vertex builder: vertices
// 0..n−1 top ring, n..2n−1 bottom ring; edges 0..n−1 top ring, n..2n−1
// bottom ring, 2n..3n−1 first laterals (top i to bottom i), 3n..4n−1 second
// laterals (top i+1 to bottom i); faces 0..n−1 downward triangles, n..2n−1
// upward triangles, then the two ring faces.
func Antiprism(n int) (*Polytope, error) {
	if n < 2 {
		return nil, fmt.Errorf("Antiprism: n = %d: %w", n, ErrTooFewVertices)
	}

	edges := make(ElementList, 0, 4*n)
	for i := 0; i < n; i++ {
		edges = append(edges, Element{Subs: []int{i, (i + 1) % n}})
	}
	for i := 0; i < n; i++ {
		edges = append(edges, Element{Subs: []int{n + i, n + (i+1)%n}})
	}
	for i := 0; i < n; i++ {
		edges = append(edges, Element{Subs: []int{i, n + i}})
	}
	for i := 0; i < n; i++ {
		edges = append(edges, Element{Subs: []int{(i + 1) % n, n + i}})
	}

	faces := make(ElementList, 0, 2*n+2)
	for i := 0; i < n; i++ {
		faces = append(faces, Element{Subs: []int{i, 2*n + i, 3*n + i}})
	}
	for i := 0; i < n; i++ {
		faces = append(faces, Element{Subs: []int{n + i, 3*n + i, 2*n + (i+1)%n}})
	}
	top := maxElement(n)
	bottom := Element{Subs: make([]int, n)}
	for i := 0; i < n; i++ {
		bottom.Subs[i] = n + i
	}
	faces = append(faces, top, bottom)

	return FromLists(MinList(), VertexList(2*n), edges, faces, MaxList(2*n+2)), nil
}

// AntiprismOf returns the antiprism over the given base.
//
// Defined for polygonal bases: the base must be a rank 2 polytope whose
// edges form one cycle. Any other base returns ErrUnsupported — the general
// construction runs through the full section lattice and is not provided.
func AntiprismOf(base *Polytope) (*Polytope, error) {
	if base.Rank() != 2 {
		return nil, fmt.Errorf("AntiprismOf: base rank %d, want 2: %w", base.Rank(), ErrUnsupported)
	}

	n := base.ElementCount(0)
	if n != base.ElementCount(1) || n < 2 {
		return nil, fmt.Errorf("AntiprismOf: base is not a polygon: %w", ErrUnsupported)
	}

	// The base must be one cycle, not a compound of smaller ones: walk it.
	incident := make([][]int, n)
	for ei, e := range *base.At(1) {
		if len(e.Subs) != 2 || e.Subs[0] == e.Subs[1] {
			return nil, fmt.Errorf("AntiprismOf: base edge %d is not a dyad: %w", ei, ErrUnsupported)
		}
		for _, v := range e.Subs {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("AntiprismOf: base edge %d: %w", ei, ErrIndexRange)
			}
			incident[v] = append(incident[v], ei)
		}
	}
	for v, edges := range incident {
		if len(edges) != 2 {
			return nil, fmt.Errorf("AntiprismOf: base vertex %d lies on %d edges: %w", v, len(edges), ErrUnsupported)
		}
	}

	at, prev, steps := 0, -1, 0
	for {
		edge := incident[at][0]
		if edge == prev {
			edge = incident[at][1]
		}
		e := (*base.At(1))[edge]
		next := e.Subs[0]
		if next == at {
			next = e.Subs[1]
		}
		at, prev = next, edge
		steps++
		if at == 0 {
			break
		}
	}
	if steps != n {
		return nil, fmt.Errorf("AntiprismOf: base splits into cycles: %w", ErrUnsupported)
	}

	return Antiprism(n)
}
