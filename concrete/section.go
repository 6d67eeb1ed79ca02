package concrete

import (
	"fmt"

	"github.com/katalvlaran/hedra/abstract"
	"github.com/katalvlaran/hedra/geom"
)

// CrossSection slices the polytope with a hyperplane and returns the cut,
// one rank lower.
//
// Vertices of the cut are the points where edges cross the plane; every
// higher element of the cut is the image of an element one rank up, kept
// when at least one of its subelements has an image. Vertices within
// tolerance of the plane are classified to the positive side, so a plane
// grazing a vertex does not cut there.
//
// Steps:
//  1. Classify every vertex by the sign of its distance to the plane.
//  2. Interpolate a cut vertex on every edge whose endpoints land on
//     opposite sides: the crossing at parameter t = d_a/(d_a−d_b).
//  3. Walk the ranks upward, renumbering surviving elements per rank and
//     rewiring their subelement lists through the images one rank below.
//
// A cut that meets no edge is the nullitope. Cuts of convex polytopes are
// valid polytopes; non-convex input follows the same incidence images.
//
// Complexity: O(incidences) time.
func (p *Polytope) CrossSection(plane geom.Hyperplane) (*Polytope, error) {
	if dim, ok := p.Dim(); ok && plane.Dim() != dim {
		return nil, fmt.Errorf("CrossSection: plane dimension %d, polytope dimension %d: %w",
			plane.Dim(), dim, ErrDimensionMismatch)
	}
	if p.Rank() < 1 {
		return Nullitope(), nil
	}

	dist := make([]float64, len(p.Vertices))
	positive := make([]bool, len(p.Vertices))
	for i, v := range p.Vertices {
		dist[i] = plane.SignedDist(v)
		positive[i] = dist[i] >= -geom.DefaultTol
	}

	edges := *p.Abs.At(1)
	var cut []geom.Point
	image := make([]int, len(edges))
	for ei, e := range edges {
		a, b := e.Subs[0], e.Subs[1]
		if positive[a] == positive[b] {
			image[ei] = -1
			continue
		}
		t := dist[a] / (dist[a] - dist[b])
		image[ei] = len(cut)
		cut = append(cut, p.Vertices[a].AddScaled(t, p.Vertices[b].Sub(p.Vertices[a])))
	}
	if len(cut) == 0 {
		return Nullitope(), nil
	}

	out := abstract.New()
	out.Push(abstract.MinList())
	out.Push(abstract.VertexList(len(cut)))

	prev := image
	for r := 2; r <= p.Rank(); r++ {
		var list abstract.ElementList
		next := make([]int, p.Abs.ElementCount(r))
		for i, el := range *p.Abs.At(r) {
			var subs []int
			for _, s := range el.Subs {
				if prev[s] >= 0 {
					subs = append(subs, prev[s])
				}
			}
			if len(subs) == 0 {
				next[i] = -1
				continue
			}
			next[i] = len(list)
			list = append(list, abstract.Element{Subs: subs})
		}
		out.Push(list)
		prev = next
	}

	return &Polytope{Vertices: cut, Abs: out}, nil
}
