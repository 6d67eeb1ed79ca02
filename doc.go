// Package hedra is your in-memory playground for building, transforming,
// and measuring polytopes — from the abstract incidence lattice up to
// concrete coordinates, duals and products in any dimension.
//
// 🚀 What is hedra?
//
//	A small, deterministic library that brings together:
//		• Ranked incidence structures: elements by rank, minimal/maximal bookkeeping
//		• Structural algebra: duals, pyramid/prism/tegum/comb products, ditopes
//		• Canonical shapes: simplices, hypercubes, orthoplexes, polygons, antiprisms
//		• Validation: minimal/maximal presence, referential integrity, dyadicity
//		• Lattice analysis: connectivity, orientability, flag counts, sections
//		• Concrete geometry: circumspheres, reciprocal duals, volumes, cross-sections
//
// ✨ Why choose hedra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rank-generic – rank −1 (nullitope) through any dimension, one model
//   - Deterministic – pure value transforms, no hidden state, no RNG
//   - Numerically explicit – a single documented tolerance (geom.DefaultTol)
//
// Under the hood, everything is organized under three subpackages:
//
//	abstract/ — ranked element lists, duals, products, validation, flags
//	geom/     — points, subspaces, hyperspheres and transforms on gonum
//	concrete/ — vertex realizations: metrics, reciprocal duals, compounds
//
// Quick ASCII example:
//
//	    rank  3:        1          (the cube itself)
//	    rank  2:      6 squares
//	    rank  1:     12 edges
//	    rank  0:      8 vertices
//	    rank −1:        1          (the nullitope)
//
//	is the full face lattice handled by abstract.Hypercube(3).
//
// Dive into the per-package doc.go files for algorithm walkthroughs,
// complexity notes and worked examples.
//
//	go get github.com/katalvlaran/hedra
package hedra
