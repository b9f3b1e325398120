/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: set.go
Description: Fuzzy set implementation for the Akaylee Fuzzy toolkit. Represents a named
membership function over the real line with Zadeh set algebra (union, intersection,
complement), normalization, and a self-contained centroid calculation via fixed-step
quadrature. Sets are immutable once built and safe to share across goroutines.
*/

package fuzzy

import (
	"fmt"
	"math"
)

// Membership maps a domain value to a degree of membership, conventionally
// in [0,1]. Functions must be side-effect-free and deterministic; the
// toolkit does not clamp out-of-range results, it tolerates them
// arithmetically.
type Membership func(x float64) float64

// Set pairs a display name with a membership function. Derived sets
// (Union, Intersection, Complement, Normalize) capture their inputs'
// function values at derivation time, so a derived set is independent of
// any later derivations of its sources.
type Set struct {
	name string
	fn   Membership
}

// New creates a fuzzy set from a name and a membership function.
func New(name string, fn Membership) *Set {
	return &Set{
		name: name,
		fn:   fn,
	}
}

// Name returns the display label of the set. Derived sets carry
// operator-composed names like "Union(Hot, Warm)" to preserve provenance.
func (s *Set) Name() string {
	return s.name
}

// MembershipDegree evaluates the membership function at x.
func (s *Set) MembershipDegree(x float64) float64 {
	return s.fn(x)
}

// Clone returns a new set sharing the same membership function value.
// Function values are immutable, so the copy is cheap and safe.
func (s *Set) Clone() *Set {
	return &Set{
		name: s.name,
		fn:   s.fn,
	}
}

// Union returns the Zadeh union: membership at x is the pointwise maximum
// of both sets.
func (s *Set) Union(other *Set) *Set {
	a, b := s.fn, other.fn
	return New(
		fmt.Sprintf("Union(%s, %s)", s.name, other.name),
		func(x float64) float64 {
			return math.Max(a(x), b(x))
		},
	)
}

// Intersection returns the Zadeh intersection: membership at x is the
// pointwise minimum of both sets.
func (s *Set) Intersection(other *Set) *Set {
	a, b := s.fn, other.fn
	return New(
		fmt.Sprintf("Intersection(%s, %s)", s.name, other.name),
		func(x float64) float64 {
			return math.Min(a(x), b(x))
		},
	)
}

// Complement returns the standard fuzzy negation 1 - μ(x).
func (s *Set) Complement() *Set {
	fn := s.fn
	return New(
		fmt.Sprintf("Complement(%s)", s.name),
		func(x float64) float64 {
			return 1.0 - fn(x)
		},
	)
}

// Normalize returns a set whose membership is μ(x) / max(1, μ(x)).
// This only rescales values that exceed 1; values already in [0,1] pass
// through unchanged. It is NOT a peak normalization: if the curve's true
// maximum is below 1 the result is identical to the source set.
func (s *Set) Normalize() *Set {
	fn := s.fn
	return New(
		fmt.Sprintf("Normalized(%s)", s.name),
		func(x float64) float64 {
			value := fn(x)
			return value / math.Max(1.0, value)
		},
	)
}

// Centroid computes the center of gravity of the set over [min, max] by
// fixed-step quadrature: Σ(x·μ(x)) / Σ(μ(x)), scanning x from min while
// x <= max in increments of step. The step factor cancels algebraically,
// so neither sum multiplies by it. Returns 0.0 when the total membership
// mass is exactly zero, and 0.0 for a non-positive step (which would
// otherwise never terminate).
func (s *Set) Centroid(min, max, step float64) float64 {
	if step <= 0 {
		return 0.0
	}
	numerator := 0.0
	denominator := 0.0
	for x := min; x <= max; x += step {
		mu := s.fn(x)
		numerator += x * mu
		denominator += mu
	}
	if denominator == 0.0 {
		return 0.0
	}
	return numerator / denominator
}
