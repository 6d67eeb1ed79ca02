// SPDX-License-Identifier: MIT

// Package geom provides the numeric primitives under hedra's concrete layer:
// points and vectors, affine subspaces, hyperspheres, hyperplanes, and linear
// transforms, all built on gonum (mat for dense matrices, floats for the
// vector kernels).
//
// The central types are:
//
//   - Point — a euclidean coordinate vector ([]float64) with arithmetic
//     delegated to gonum/floats. Vector is an alias; the two names mark
//     position vs. direction intent at call sites.
//
//   - Subspace — an affine subspace grown incrementally from points. Each
//     added point is orthogonalized against the current basis
//     (one Gram–Schmidt step); the residual enters the basis only when its
//     norm clears the tolerance. Supports projection onto the subspace and
//     flattening (re-expressing a point in basis coordinates).
//     Time: O(rank·dim) per added point.
//
//   - Hypersphere, Hyperplane — the loci used by circumsphere fitting,
//     reciprocal duals and cross-sections.
//
//   - Matrix — alias of gonum's mat.Dense; Rotations and CentralInversion
//     build the transform families used for symmetric compounds.
//
// # Tolerance
//
// Every geometric predicate in hedra (subspace rank growth, circumsphere
// consistency, reciprocation guards, equilateral checks, cross-section side
// classification) compares against a single documented tolerance,
// DefaultTol (1e-9). Constructors with a *Tol suffix accept an explicit
// override; everything else uses the default.
//
// # Shape errors
//
// Primitive Point arithmetic mirrors gonum's policy and panics on length
// mismatch (these are programmer errors, as with slice indexing). Operations
// that face user data — transform application, hyperplane construction —
// validate and return sentinel errors instead.
package geom
