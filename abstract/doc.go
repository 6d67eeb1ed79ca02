// Package abstract implements ranked incidence structures: the purely
// combinatorial face lattices underneath polytopes of any rank, together
// with the algebra that operates on them.
//
// A polytope of rank n is stored as n+2 element lists, one per rank from −1
// (the unique minimal element, or nullitope) through n (the unique maximal
// element). An element knows only the indices of its subelements one rank
// below; everything else — duals, products, sections, flags — is derived
// from that single relation.
//
// The key operations offered are:
//
//   - Dual / Dualize
//
//   - Method: transpose the incidence relation rank pair by rank pair,
//     then reverse the rank order.
//
//   - Time:   O(i), where i is the total incidence count.
//
//   - Never fails on structurally valid input.
//
//   - Duopyramid / Duoprism / Duotegum / Duocomb
//
//   - Method: one parameterized direct product; elements of the result are
//     pairs of factor elements, laid out in lexicographic rank order with a
//     memoized offset table.
//
//   - Time:   O(e·f) pairs, where e and f are the factor element counts.
//
//   - Multipyramid / Multiprism / Multitegum / Multicomb fold the binary
//     product over a factor list with the kind's identity element.
//
//   - Validate
//
//   - Checks the minimal/maximal elements, referential integrity of every
//     subelement index, and dyadicity (every height-2 section is a diamond).
//
//   - Time:   O(i) for the first two checks, O(i²/r) worst case for the
//     diamond count pass.
//
//   - Lattice analysis
//
//   - IsConnected / IsStronglyConnected via connected components of the
//     proper-element incidence graph (gonum graph/simple + graph/topo).
//
//   - FlagCount by dynamic programming over maximal chains; IsOrientable by
//     2-coloring the flag exchange graph.
//
//   - Section / ElementPolytope extract closed intervals of the lattice as
//     standalone polytopes, renumbered from zero per rank.
//
//   - IncidenceMatrix / AdjacencyMatrix expose the layer-to-layer incidence
//     and the 1-skeleton as gonum dense matrices.
//
// # Conventions
//
// Ranks are plain ints and may be negative: −1 indexes the minimal element
// list. Lookups past either end return nil / zero counts rather than
// panicking. Mutating operations (Dualize, DitopeInPlace) require exclusive
// access; the value-returning variants clone first. Construction is open:
// callers may push layers directly and run Validate afterwards, exactly as
// the generators in this package do.
package abstract
