package concrete

import "errors"

// Sentinel errors of the metric layer. Operations wrap them with their own
// name, so callers match with errors.Is.
var (
	// ErrVertexCount signals that the coordinate list and the abstract
	// rank-0 layer disagree in length.
	ErrVertexCount = errors.New("concrete: vertex count differs from abstract vertex count")

	// ErrDimensionMismatch signals that points, spheres, planes or
	// transforms of different dimensions were mixed.
	ErrDimensionMismatch = errors.New("concrete: dimension mismatch")

	// ErrNoVertices signals an operation that needs at least one vertex.
	ErrNoVertices = errors.New("concrete: polytope has no vertices")

	// ErrNoEdges signals an operation that needs at least one edge.
	ErrNoEdges = errors.New("concrete: polytope has no edges")

	// ErrNoCircumsphere signals vertices that lie on no common sphere.
	ErrNoCircumsphere = errors.New("concrete: vertices share no circumsphere")

	// ErrCenterOnFacet signals a facet passing through the reciprocation
	// center; its dual vertex would escape to infinity.
	ErrCenterOnFacet = errors.New("concrete: facet passes through the reciprocation center")

	// ErrNoVolume signals a polytope without a well-defined oriented
	// volume: a skew embedding, a non-orientable structure, or a
	// disconnected flag graph.
	ErrNoVolume = errors.New("concrete: volume undefined")
)
