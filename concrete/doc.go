// Package concrete pairs abstract polytopes with vertex coordinates, adding
// the metric layer: unit-edge generators, affine transforms, spheres and
// volumes, reciprocal duals, vertex-matched products, cross-sections and
// compounds.
//
// A concrete polytope is (Vertices, Abs): vertex i of the abstract structure
// owns the coordinate point Vertices[i], and every operation keeps the two
// in step. Incidence questions (counts, sections, flags, connectivity) go
// through Abs; this package answers the geometric ones:
//
//   - Generators: Dyad, Polygon, Simplex, Hypercube, Orthoplex, Antiprism,
//     all with edge length 1 and gravicenter at the origin.
//   - Transforms: Scale, Shift, Recenter, Apply, Flatten, MinMax.
//   - Metrics: Gravicenter, Circumsphere, EdgeLengths, Midradius, Volume.
//   - Duals: reciprocation about a sphere, facets becoming vertices.
//   - Elements: ElementVertices, Element, Facet and the vertex figure Verf.
//   - Products: Duopyramid, Duoprism, Duotegum, Duocomb and their n-ary
//     folds, with vertex layouts matching the abstract pair order.
//   - CrossSection by a hyperplane, Compound and DualCompound.
//
// # Preconditions
//
// Operations assume a valid underlying structure (Abs.Validate() == nil) and
// uniform vertex dimensions. New checks the vertex count and dimension
// pairing; structural validity stays the caller's contract. Degenerate but
// well-formed input surfaces as wrapped sentinel errors (ErrNoVertices,
// ErrNoEdges, ErrNoCircumsphere, ...), never as panics.
//
// # Tolerance
//
// Metric predicates (circumsphere coherence, equilateral checks, facet
// containment during reciprocation, cross-section side classification) share
// geom.DefaultTol.
package concrete
