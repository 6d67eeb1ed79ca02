// Package abstract: structural validation.
package abstract

import "fmt"

// subCount tracks how many times a sub-subelement has been reached while
// checking one diamond.
type subCount uint8

const (
	seenOnce subCount = iota + 1
	seenTwice
)

// Validate vets the whole structure:
//
//  1. Minimal/maximal presence — exactly one element at rank −1 with no
//     subelements, exactly one at the top rank.
//  2. Referential integrity — every subelement index refers to an element
//     one rank below.
//  3. Dyadicity — for every element of rank ≥ 1, each sub-subelement is
//     reached through exactly two subelements (the diamond property).
//
// The first violated check aborts with its sentinel error, wrapped with the
// offending rank and index. Connectivity is not part of validation:
// compounds are valid but disconnected.
//
// Complexity: O(i) for checks 1–2, O(d²·e) worst case for check 3, where d
// bounds the subelement count per element.
func (p *Polytope) Validate() error {
	if err := p.validateMinMax(); err != nil {
		return err
	}
	if err := p.validateIncidences(); err != nil {
		return err
	}

	return p.validateDyadic()
}

// IsValid reports whether Validate passes.
func (p *Polytope) IsValid() bool { return p.Validate() == nil }

func (p *Polytope) validateMinMax() error {
	if p.ElementCount(-1) != 1 {
		return fmt.Errorf("Validate: %d elements at rank -1: %w", p.ElementCount(-1), ErrNoMin)
	}
	if len((*p.At(-1))[0].Subs) != 0 {
		return fmt.Errorf("Validate: minimal element has subelements: %w", ErrNoMin)
	}
	if p.ElementCount(p.Rank()) != 1 {
		return fmt.Errorf("Validate: %d elements at rank %d: %w", p.ElementCount(p.Rank()), p.Rank(), ErrNoMax)
	}

	return nil
}

func (p *Polytope) validateIncidences() error {
	for r := 0; r <= p.Rank(); r++ {
		below := p.ElementCount(r - 1)
		for idx, el := range *p.At(r) {
			for _, sub := range el.Subs {
				if sub < 0 || sub >= below {
					return fmt.Errorf("Validate: rank %d element %d refers to %d of %d: %w",
						r, idx, sub, below, ErrIndexRange)
				}
			}
		}
	}

	return nil
}

func (p *Polytope) validateDyadic() error {
	for r := 1; r <= p.Rank(); r++ {
		lower := *p.At(r - 1)
		for idx, el := range *p.At(r) {
			counts := make(map[int]subCount)
			for _, sub := range el.Subs {
				for _, subSub := range lower[sub].Subs {
					switch counts[subSub] {
					case 0:
						counts[subSub] = seenOnce
					case seenOnce:
						counts[subSub] = seenTwice
					default:
						return fmt.Errorf("Validate: rank %d element %d covers %d more than twice: %w",
							r, idx, subSub, ErrNotDyadic)
					}
				}
			}

			for subSub, c := range counts {
				if c == seenOnce {
					return fmt.Errorf("Validate: rank %d element %d covers %d only once: %w",
						r, idx, subSub, ErrNotDyadic)
				}
			}
		}
	}

	return nil
}
