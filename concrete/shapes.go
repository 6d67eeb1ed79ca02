package concrete

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hedra/abstract"
	"github.com/katalvlaran/hedra/geom"
)

// Nullitope returns the unique polytope of rank −1. It has no vertices and
// therefore no dimension.
func Nullitope() *Polytope { return &Polytope{Abs: abstract.Nullitope()} }

// Point returns the unique polytope of rank 0: one vertex in 0-dimensional
// space.
func Point() *Polytope {
	return &Polytope{Vertices: []geom.Point{{}}, Abs: abstract.Point()}
}

// Dyad returns the rank-1 polytope of length 1, spanning [−1/2, 1/2].
func Dyad() *Polytope {
	return &Polytope{Vertices: []geom.Point{{-0.5}, {0.5}}, Abs: abstract.Dyad()}
}

// Polygon returns the regular n-gon with edge length 1: vertex i sits at
// angle 2πi/n on the circle of radius 1/(2·sin(π/n)). Needs n ≥ 2; n = 2 is
// the digon, two vertices joined along two coincident edges.
func Polygon(n int) (*Polytope, error) {
	abs, err := abstract.Polygon(n)
	if err != nil {
		return nil, fmt.Errorf("Polygon: %w", err)
	}

	r := 1 / (2 * math.Sin(math.Pi/float64(n)))
	vs := make([]geom.Point, n)
	for i := range vs {
		a := 2 * math.Pi * float64(i) / float64(n)
		vs[i] = geom.Point{r * math.Cos(a), r * math.Sin(a)}
	}

	return &Polytope{Vertices: vs, Abs: abs}, nil
}

// Simplex returns the regular simplex of the given rank with edge length 1,
// centered at its gravicenter.
//
// Built one rank at a time: over the regular (k−1)-simplex (circumradius
// R = √((k−1)/2k)) an apex rises to height √(1−R²) on a fresh axis, placing
// it at distance 1 from every base vertex, and the whole figure slides down
// so the gravicenter returns to the origin.
func Simplex(rank int) (*Polytope, error) {
	abs, err := abstract.Simplex(rank)
	if err != nil {
		return nil, fmt.Errorf("Simplex: %w", err)
	}
	if rank < 0 {
		return &Polytope{Abs: abs}, nil
	}

	vs := []geom.Point{{}}
	for k := 1; k <= rank; k++ {
		rc := math.Sqrt(float64(k-1) / float64(2*k))
		h := math.Sqrt(1 - rc*rc)
		drop := h / float64(k+1)

		next := make([]geom.Point, 0, k+1)
		for _, v := range vs {
			w := v.Pad(0, 1)
			w[k-1] = -drop
			next = append(next, w)
		}
		apex := geom.Zero(k)
		apex[k-1] = h - drop
		next = append(next, apex)
		vs = next
	}

	return &Polytope{Vertices: vs, Abs: abs}, nil
}

// Hypercube returns the rank-cube with edge length 1: the prism power of
// the dyad, coordinates ±1/2.
func Hypercube(rank int) (*Polytope, error) {
	if rank < -1 {
		return nil, fmt.Errorf("Hypercube: rank %d: %w", rank, abstract.ErrRankRange)
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

// Orthoplex returns the rank-orthoplex with edge length 1: the tegum power
// of the dyad, rescaled so the inter-axis edges measure 1. Vertices sit at
// ±(√2/2) on each axis; Orthoplex(1) is the dyad itself.
func Orthoplex(rank int) (*Polytope, error) {
	if rank < -1 {
		return nil, fmt.Errorf("Orthoplex: rank %d: %w", rank, abstract.ErrRankRange)
	}
	if rank == -1 {
		return Nullitope(), nil
	}

	dyads := make([]*Polytope, rank)
	for i := range dyads {
		dyads[i] = Dyad()
	}

	p := Multitegum(dyads...)
	if rank >= 2 {
		p.Scale(math.Sqrt2)
	}

	return p, nil
}

// Antiprism returns the uniform n-gonal antiprism with edge length 1: two
// parallel unit-edge n-gons, the lower rotated by π/n, joined by a band of
// 2n triangles. The ring radius is 1/(2·sin(π/n)) and the height h satisfies
// h² = 1 − 1/(4·cos²(π/2n)), which makes the lateral edges unit too.
// Antiprism(2) lands on the regular tetrahedron's vertices, though its
// lattice keeps the doubled ring edges and the two digon rings. Needs n ≥ 2.
func Antiprism(n int) (*Polytope, error) {
	abs, err := abstract.Antiprism(n)
	if err != nil {
		return nil, fmt.Errorf("Antiprism: %w", err)
	}

	nf := float64(n)
	r := 1 / (2 * math.Sin(math.Pi/nf))
	c := math.Cos(math.Pi / (2 * nf))
	h := math.Sqrt(1 - 1/(4*c*c))

	vs := make([]geom.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / nf
		vs = append(vs, geom.Point{r * math.Cos(a), r * math.Sin(a), h / 2})
	}
	for i := 0; i < n; i++ {
		a := 2*math.Pi*float64(i)/nf + math.Pi/nf
		vs = append(vs, geom.Point{r * math.Cos(a), r * math.Sin(a), -h / 2})
	}

	return &Polytope{Vertices: vs, Abs: abs}, nil
}
