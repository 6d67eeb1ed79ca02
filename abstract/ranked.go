// Package abstract: the rank-indexed container.
//
// Ranks run from −1 (minimal element) to Rank() (maximal element); storage
// index = rank + 1. Keeping the conversion in one place lets every algorithm
// speak in ranks while the backing slice stays ordinary.
package abstract

import "slices"

// storageIndex converts a rank into a backing-slice index.
func storageIndex(rank int) int { return rank + 1 }

// Ranked is a vector indexed by rank instead of position. The zero value is
// an empty container of rank −2.
type Ranked[T any] struct {
	data []T
}

// RankedWithRank returns an empty container with capacity for all lists of a
// polytope of the given rank.
func RankedWithRank[T any](rank int) Ranked[T] {
	return Ranked[T]{data: make([]T, 0, storageIndex(rank)+1)}
}

// Len returns the number of stored lists.
func (r *Ranked[T]) Len() int { return len(r.data) }

// IsEmpty reports whether nothing has been stored yet.
func (r *Ranked[T]) IsEmpty() bool { return len(r.data) == 0 }

// Rank returns the greatest stored rank: Len() − 2, so the empty container
// has rank −2 and a container holding only the minimal list has rank −1.
func (r *Ranked[T]) Rank() int { return len(r.data) - 2 }

// At returns a pointer to the entry of the given rank, or nil when the rank
// is out of range. The pointer stays valid until the next Push or Insert.
func (r *Ranked[T]) At(rank int) *T {
	i := storageIndex(rank)
	if i < 0 || i >= len(r.data) {
		return nil
	}

	return &r.data[i]
}

// Push appends an entry at rank Rank()+1.
func (r *Ranked[T]) Push(v T) { r.data = append(r.data, v) }

// Insert places an entry at the given rank, shifting that rank and everything
// above it one rank up.
func (r *Ranked[T]) Insert(rank int, v T) {
	r.data = slices.Insert(r.data, storageIndex(rank), v)
}

// Swap exchanges the entries at two ranks.
func (r *Ranked[T]) Swap(a, b int) {
	r.data[storageIndex(a)], r.data[storageIndex(b)] = r.data[storageIndex(b)], r.data[storageIndex(a)]
}

// SplitAt returns two disjoint views of the storage: everything strictly
// below the given rank, and everything from it upward. The dual transpose
// relies on mutating one side while reading the other.
func (r *Ranked[T]) SplitAt(rank int) (below, from []T) {
	i := storageIndex(rank)

	return r.data[:i], r.data[i:]
}

// Reverse flips the rank order in place.
func (r *Ranked[T]) Reverse() { slices.Reverse(r.data) }

// Slice returns a copy of the storage in rank order, starting at rank −1.
func (r *Ranked[T]) Slice() []T { return slices.Clone(r.data) }

// CloneWith returns a deep copy, cloning each entry through the given
// function.
func (r *Ranked[T]) CloneWith(clone func(T) T) Ranked[T] {
	out := Ranked[T]{data: make([]T, len(r.data))}
	for i, v := range r.data {
		out.data[i] = clone(v)
	}

	return out
}
