// Package abstract: elements and per-rank element lists.
package abstract

import "slices"

// Element is a single member of the incidence structure. It records only the
// indices of its subelements one rank below; superelements are implied.
type Element struct {
	Subs []int
}

// NewElement builds an element over the given subelement indices.
func NewElement(subs ...int) Element {
	return Element{Subs: slices.Clone(subs)}
}

// minElement builds the minimal element, which has no subelements.
func minElement() Element { return Element{} }

// maxElement builds a maximal element over facets 0..facetCount−1.
func maxElement(facetCount int) Element {
	subs := make([]int, facetCount)
	for i := range subs {
		subs[i] = i
	}

	return Element{Subs: subs}
}

// Clone returns an independent copy of the element.
func (e Element) Clone() Element {
	return Element{Subs: slices.Clone(e.Subs)}
}

// ElementList holds all elements of one rank.
type ElementList []Element

// MinList is the rank −1 list: a single minimal element.
func MinList() ElementList { return ElementList{minElement()} }

// MaxList is a top-rank list: a single maximal element over facetCount
// facets.
func MaxList(facetCount int) ElementList { return ElementList{maxElement(facetCount)} }

// VertexList is a rank 0 list of vertexCount vertices, each over the
// minimal element.
func VertexList(vertexCount int) ElementList {
	els := make(ElementList, vertexCount)
	for i := range els {
		els[i] = Element{Subs: []int{0}}
	}

	return els
}

// Clone returns an independent copy of the list.
func (l ElementList) Clone() ElementList {
	out := make(ElementList, len(l))
	for i, e := range l {
		out[i] = e.Clone()
	}

	return out
}
