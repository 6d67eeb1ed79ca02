package concrete

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hedra/geom"
)

// Volume returns the rank-dimensional measure of the polytope.
//
// The vertices are first re-expressed in their affine hull: a hull of
// dimension below the rank means a degenerate flat figure of volume 0, one
// above the rank means a skew embedding with no volume at all. Every element
// is then mapped to a representative vertex in its closure, and the volume
// is assembled flag by flag:
//
//	rank! · volume = |Σ_flags sign(flag) · det[rep(flag₀) … rep(flag_{rank−1})]|
//
// where flag_r is the flag's element at rank r. Each oriented flag
// contributes the signed volume of the simplex cone over its representative
// vertices; opposite orientations cancel the overcounting and the leftover
// is the polytope. Orientation comes from abstract.OrientedFlags, so
// non-orientable structures and disconnected flag graphs have no volume
// either (ErrNoVolume).
//
// Complexity: O(flags·rank³) time.
func (p *Polytope) Volume() (float64, error) {
	rank := p.Rank()
	if rank < 0 {
		return 0, fmt.Errorf("Volume: %w", ErrNoVolume)
	}

	var flat []geom.Point
	if len(p.Vertices) > 0 {
		hull := geom.Span(p.Vertices)
		switch {
		case hull.Rank() < rank:
			return 0, nil
		case hull.Rank() > rank:
			return 0, fmt.Errorf("Volume: affine hull has dimension %d, rank is %d: %w",
				hull.Rank(), rank, ErrNoVolume)
		}
		flat = hull.FlattenAll(p.Vertices)
	}

	flags, signs, err := p.Abs.OrientedFlags()
	if err != nil {
		return 0, fmt.Errorf("Volume: %w: %w", ErrNoVolume, err)
	}

	reps := p.representatives()
	cols := make([]geom.Point, rank)
	sum := 0.0
	for i, f := range flags {
		for r := 0; r < rank; r++ {
			cols[r] = flat[reps[r][f.At(r)]]
		}
		d, derr := geom.Det(cols)
		if derr != nil {
			return 0, fmt.Errorf("Volume: %w", derr)
		}
		sum += float64(signs[i]) * d
	}

	return math.Abs(sum) / factorial(rank), nil
}

// representatives maps every proper element to one vertex of its closure: a
// vertex represents itself, a higher element inherits the representative of
// its first subelement. Index as reps[rank][idx] for ranks 0..Rank()−1.
func (p *Polytope) representatives() [][]int {
	rank := p.Rank()
	reps := make([][]int, 0, rank)

	for r := 0; r < rank; r++ {
		list := *p.Abs.At(r)
		row := make([]int, len(list))
		for i, el := range list {
			if r == 0 {
				row[i] = i
				continue
			}
			row[i] = reps[r-1][el.Subs[0]]
		}
		reps = append(reps, row)
	}

	return reps
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}
