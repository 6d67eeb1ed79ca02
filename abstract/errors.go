// Package abstract: sentinel errors.
// Declared once here; algorithm files wrap them with operation context via
// fmt.Errorf("Op: ...: %w", Err).
package abstract

import "errors"

var (
	// ErrNoMin signals a structure without exactly one minimal element with
	// an empty subelement list.
	ErrNoMin = errors.New("abstract: missing unique minimal element")

	// ErrNoMax signals a structure without exactly one maximal element.
	ErrNoMax = errors.New("abstract: missing unique maximal element")

	// ErrIndexRange signals a subelement index that does not refer to an
	// element one rank below.
	ErrIndexRange = errors.New("abstract: subelement index out of range")

	// ErrNotDyadic signals a violated diamond property: some section of
	// height 2 does not contain exactly two proper elements.
	ErrNotDyadic = errors.New("abstract: diamond property violated")

	// ErrRankRange signals a rank argument outside the structure.
	ErrRankRange = errors.New("abstract: rank out of range")

	// ErrLayerOrder signals a layer pushed out of construction order, such
	// as vertices before the minimal element.
	ErrLayerOrder = errors.New("abstract: layer pushed out of order")

	// ErrTooFewVertices signals a polygon or antiprism request below the
	// two-vertex minimum.
	ErrTooFewVertices = errors.New("abstract: at least 2 vertices required")

	// ErrNullitope signals an operation that is undefined on the rank −1
	// polytope.
	ErrNullitope = errors.New("abstract: operation undefined on the nullitope")

	// ErrNotIncident signals a section request between two elements that are
	// not incident.
	ErrNotIncident = errors.New("abstract: elements are not incident")

	// ErrRankMismatch signals a compound of polytopes with different ranks.
	ErrRankMismatch = errors.New("abstract: compound factors must share a rank")

	// ErrUnsupported signals a construction that is not defined for the
	// given base, such as the antiprism of a base that is not a single cycle.
	ErrUnsupported = errors.New("abstract: construction unsupported for this base")

	// ErrNotOrientable signals a flag graph that cannot be 2-colored.
	ErrNotOrientable = errors.New("abstract: structure is not orientable")

	// ErrDisconnectedFlags signals a flag graph in several components, as
	// with compounds, where no global orientation relates the parts.
	ErrDisconnectedFlags = errors.New("abstract: flag graph is disconnected")
)
