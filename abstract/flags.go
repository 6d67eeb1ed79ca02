// Package abstract: flags — the maximal chains of the structure.
//
// A flag picks one element per rank, each lying under the next. Two flags
// are adjacent when they differ in exactly one proper rank; dyadicity makes
// that exchange unique, which turns the flag set into a graph whose
// 2-colorability is exactly orientability.
package abstract

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Flag is one maximal chain: element indices ordered by rank, minimal
// element first, so len(f) = Rank()+2 and f.At(-1) = 0 always.
type Flag []int

// At returns the flag's element index at the given rank.
func (f Flag) At(rank int) int { return f[storageIndex(rank)] }

// key encodes the chain for map storage.
func (f Flag) key() string {
	b := make([]byte, 8*len(f))
	for i, v := range f {
		binary.LittleEndian.PutUint64(b[8*i:], uint64(v))
	}

	return string(b)
}

// FlagCount returns the number of flags without enumerating them: a
// chain-count dynamic program from the minimal element up. The nullitope
// has one (empty) flag.
//
// Complexity: O(i) in the incidence count.
func (p *Polytope) FlagCount() int {
	if p.IsEmpty() {
		return 0
	}

	counts := []int{1}
	for r := 0; r <= p.Rank(); r++ {
		list := *p.At(r)
		next := make([]int, len(list))
		for i, el := range list {
			for _, sub := range el.Subs {
				next[i] += counts[sub]
			}
		}
		counts = next
	}

	return counts[0]
}

// Flags enumerates every flag by depth-first descent from the maximal
// element. Order: lexicographic in the subelement lists, top rank varying
// slowest.
//
// Complexity: O(F·rank) for F flags.
func (p *Polytope) Flags() []Flag {
	if p.IsEmpty() {
		return nil
	}

	rank := p.Rank()
	out := make([]Flag, 0, p.FlagCount())
	chain := make(Flag, rank+2)
	chain[storageIndex(rank)] = 0

	var descend func(r int)
	descend = func(r int) {
		if r < -1 {
			out = append(out, slices.Clone(chain))

			return
		}
		above := (*p.At(r + 1))[chain[storageIndex(r+1)]]
		for _, sub := range above.Subs {
			chain[storageIndex(r)] = sub
			descend(r - 1)
		}
	}
	descend(rank - 1)

	return out
}

// exchange flips the flag at proper rank j: of the two elements at rank j
// lying between f.At(j−1) and f.At(j+1), it returns the one f does not use.
// Reports failure when the diamond there does not have exactly two members.
func (p *Polytope) exchange(f Flag, j int) (int, bool) {
	above := (*p.At(j + 1))[f.At(j + 1)]
	current := f.At(j)
	other, members := -1, 0

	for _, cand := range above.Subs {
		if j > 0 && !slices.Contains((*p.At(j))[cand].Subs, f.At(j-1)) {
			continue
		}
		members++
		if cand != current {
			other = cand
		}
	}
	if members != 2 || other < 0 {
		return 0, false
	}

	return other, true
}

// IsOrientable reports whether the flag exchange graph is 2-colorable.
// Components are colored independently, so compounds of orientable parts
// count as orientable. Polytopes of rank ≤ 0 trivially are.
//
// Requires dyadic input; a broken diamond reads as non-orientable.
//
// Complexity: O(F·rank·d) for F flags with subelement lists of size ≤ d.
func (p *Polytope) IsOrientable() bool {
	rank := p.Rank()
	if rank <= 0 {
		return true
	}

	flags := p.Flags()
	color := make(map[string]int, len(flags))
	for _, start := range flags {
		if _, seen := color[start.key()]; seen {
			continue
		}
		if !p.colorComponent(start, color) {
			return false
		}
	}

	return true
}

// colorComponent BFS-colors one flag component with alternating signs;
// false on a parity conflict or a broken exchange.
func (p *Polytope) colorComponent(start Flag, color map[string]int) bool {
	color[start.key()] = 1
	queue := []Flag{start}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		sign := color[f.key()]

		for j := 0; j < p.Rank(); j++ {
			other, ok := p.exchange(f, j)
			if !ok {
				return false
			}
			g := slices.Clone(f)
			g[storageIndex(j)] = other
			if prev, seen := color[g.key()]; seen {
				if prev == sign {
					return false
				}

				continue
			}
			color[g.key()] = -sign
			queue = append(queue, g)
		}
	}

	return true
}

// OrientedFlags returns every flag together with a consistent orientation
// sign (+1 or −1). It requires the flag graph to be one component
// (ErrDisconnectedFlags — compounds have no shared orientation) and
// 2-colorable (ErrNotOrientable). The volume integrator is the main
// consumer.
func (p *Polytope) OrientedFlags() ([]Flag, []int, error) {
	flags := p.Flags()
	if len(flags) == 0 {
		return nil, nil, nil
	}
	if p.Rank() <= 0 {
		return flags, []int{1}, nil
	}

	color := make(map[string]int, len(flags))
	if !p.colorComponent(flags[0], color) {
		return nil, nil, fmt.Errorf("OrientedFlags: %w", ErrNotOrientable)
	}
	if len(color) != len(flags) {
		return nil, nil, fmt.Errorf("OrientedFlags: %d of %d flags reached: %w",
			len(color), len(flags), ErrDisconnectedFlags)
	}

	signs := make([]int, len(flags))
	for i, f := range flags {
		signs[i] = color[f.key()]
	}

	return flags, signs, nil
}
