// Package abstract: pyramid, prism, tegum and comb products.
package abstract

// ProductKind selects one of the four direct products. The four are one
// algorithm: a kind is exactly the pair of include-minimal/include-maximal
// flags, plus the identity element of its n-ary fold.
type ProductKind int

const (
	// KindPyramid includes both the minimal and maximal elements of the
	// factors as pair components.
	KindPyramid ProductKind = iota
	// KindPrism drops the minimal elements and re-adds a fresh bottom layer.
	KindPrism
	// KindTegum drops the maximal elements and re-adds a fresh top element.
	KindTegum
	// KindComb drops both.
	KindComb
)

// String returns the kind's lowercase name.
func (k ProductKind) String() string {
	switch k {
	case KindPyramid:
		return "pyramid"
	case KindPrism:
		return "prism"
	case KindTegum:
		return "tegum"
	default:
		return "comb"
	}
}

// flags returns the include-minimal and include-maximal pair defining the
// kind.
func (k ProductKind) flags() (includeMin, includeMax bool) {
	switch k {
	case KindPyramid:
		return true, true
	case KindPrism:
		return false, true
	case KindTegum:
		return true, false
	default:
		return false, false
	}
}

// Identity returns the identity element of the kind's fold: the nullitope
// for pyramids, the point for the other three.
func (k ProductKind) Identity() *Polytope {
	if k == KindPyramid {
		return Nullitope()
	}

	return Point()
}

// Duopyramid returns the pyramid product of two polytopes: every element of
// the result corresponds to a pair of factor elements, minimal and maximal
// elements included. Rank: rank(p) + rank(q) + 1.
func Duopyramid(p, q *Polytope) *Polytope { return product(p, q, true, true) }

// Duoprism returns the prism product: pairs of proper-or-maximal elements,
// with a fresh minimal element and vertex layer. Rank: rank(p) + rank(q).
func Duoprism(p, q *Polytope) *Polytope { return product(p, q, false, true) }

// Duotegum returns the tegum product: pairs of proper-or-minimal elements,
// with a fresh maximal element. Rank: rank(p) + rank(q).
func Duotegum(p, q *Polytope) *Polytope { return product(p, q, true, false) }

// Duocomb returns the comb product: pairs of proper elements only, with
// fresh minimal and maximal layers. Rank: rank(p) + rank(q) − 1.
func Duocomb(p, q *Polytope) *Polytope { return product(p, q, false, false) }

// Pyramid returns the pyramid over the polytope (the product with a point).
func (p *Polytope) Pyramid() *Polytope { return Duopyramid(p, Point()) }

// Prism returns the prism over the polytope (the prism product with a dyad).
func (p *Polytope) Prism() *Polytope { return Duoprism(p, Dyad()) }

// Tegum returns the tegum (bipyramid) over the polytope (the tegum product
// with a dyad).
func (p *Polytope) Tegum() *Polytope { return Duotegum(p, Dyad()) }

// Multiproduct folds the kind's binary product over the factors, right to
// left, using the kind's identity for the empty product. A single factor is
// cloned unchanged.
func Multiproduct(kind ProductKind, factors ...*Polytope) *Polytope {
	switch len(factors) {
	case 0:
		return kind.Identity()
	case 1:
		return factors[0].Clone()
	}

	includeMin, includeMax := kind.flags()
	acc := factors[len(factors)-1]
	for i := len(factors) - 2; i >= 0; i-- {
		acc = product(factors[i], acc, includeMin, includeMax)
	}

	return acc
}

// Multipyramid folds Duopyramid over the factors (identity: nullitope).
func Multipyramid(factors ...*Polytope) *Polytope { return Multiproduct(KindPyramid, factors...) }

// Multiprism folds Duoprism over the factors (identity: point).
func Multiprism(factors ...*Polytope) *Polytope { return Multiproduct(KindPrism, factors...) }

// Multitegum folds Duotegum over the factors (identity: point).
func Multitegum(factors ...*Polytope) *Polytope { return Multiproduct(KindTegum, factors...) }

// Multicomb folds Duocomb over the factors (identity: point).
func Multicomb(factors ...*Polytope) *Polytope { return Multiproduct(KindComb, factors...) }

// product takes the direct product of two polytopes. With includeMin off,
// the minimal elements of both factors are ignored as pair components and a
// fresh bottom is synthesized afterwards; includeMax works the same way at
// the top.
//
// Elements of the result are pairs of factor elements. Within a rank, pairs
// are laid out first by lexicographic order of the factor ranks, then by
// lexicographic order of the factor indices; an offset table memoizes how
// many pairs precede each rank combination so that subelement indices can be
// computed directly.
//
// Steps:
//  1. Build the offset table along rank antidiagonals.
//  2. For each result rank and each admissible rank pair, emit every index
//     pair, wiring subelements through the offset table: the pairs
//     (subelement of p, element of q) and (element of p, subelement of q).
//     Pairs involving a factor's minimal element are wired only when
//     includeMin is set.
//  3. Synthesize the bottom layers (includeMin off) and the top element
//     (includeMax off).
//
// Complexity: O(pairs + incidences of the result).
func product(p, q *Polytope, includeMin, includeMax bool) *Polytope {
	pRank, qRank := p.Rank(), q.Rank()

	// Degenerate factors. The nullitope is the pyramid identity and collapses
	// the other three products; the comb product additionally collapses below
	// rank 1, where a factor has no proper elements to pair.
	if pRank < 0 || qRank < 0 {
		if includeMin && includeMax {
			if pRank < 0 {
				return q.Clone()
			}

			return p.Clone()
		}

		return Nullitope()
	}
	if !includeMin && !includeMax && (pRank < 1 || qRank < 1) {
		return Nullitope()
	}

	low := 0
	minOff := 0
	if includeMin {
		low = -1
		minOff = 1
	}
	pHi, qHi := pRank, qRank
	if !includeMax {
		pHi--
		qHi--
	}

	rank := pRank + qRank + 1
	if !includeMin {
		rank--
	}
	if !includeMax {
		rank--
	}

	prod := WithRank(rank)
	for r := -1; r <= rank; r++ {
		prod.Push(ElementList{})
	}

	// offsetMemo[pr−low][qr−low] counts the pairs at the same result rank
	// placed before and including those of rank pair (pr, qr).
	memo := make([][]int, 0, pHi-low+1)
	for pr := low; pr <= pHi; pr++ {
		row := make([]int, 0, qHi-low+1)
		for qr := low; qr <= qHi; qr++ {
			prior := 0
			if pr > low && qr < qHi {
				prior = memo[pr-low-1][qr-low+1]
			}
			row = append(row, prior+p.ElementCount(pr)*q.ElementCount(qr))
		}
		memo = append(memo, row)
	}

	offset := func(pr, qr int) int {
		if pr-low < 0 || pr-low >= len(memo) {
			return 0
		}
		row := memo[pr-low]
		if qr-low < 0 || qr-low >= len(row) {
			return 0
		}

		return row[qr-low]
	}

	// pairIndex locates the pair (pr, pIdx) × (qr, qIdx) within its result
	// rank.
	pairIndex := func(pr, pIdx, qr, qIdx int) int {
		return offset(pr-1, qr+1) + pIdx*q.ElementCount(qr) + qIdx
	}

	for prodRank := -1; prodRank <= rank; prodRank++ {
		for pr := low; pr <= pHi; pr++ {
			qr := prodRank - pr - minOff
			if qr < low || qr > qHi {
				continue
			}

			list := prod.At(prodRank)
			for pIdx, pEl := range *p.At(pr) {
				for qIdx, qEl := range *q.At(qr) {
					var subs []int

					if pr != 0 || includeMin {
						for _, s := range pEl.Subs {
							subs = append(subs, pairIndex(pr-1, s, qr, qIdx))
						}
					}
					if qr != 0 || includeMin {
						for _, s := range qEl.Subs {
							subs = append(subs, pairIndex(pr, pIdx, qr-1, s))
						}
					}

					*list = append(*list, Element{Subs: subs})
				}
			}
		}
	}

	if !includeMin {
		*prod.At(-1) = MinList()
		*prod.At(0) = VertexList(p.ElementCount(0) * q.ElementCount(0))
	}
	if !includeMax {
		*prod.At(rank) = MaxList(prod.ElementCount(rank - 1))
	}

	return prod
}
