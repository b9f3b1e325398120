/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: membership.go
Description: Standard membership function builders for the Akaylee Fuzzy toolkit.
Provides the common shape vocabulary (triangular, trapezoidal, Gaussian, rectangular,
constant) so callers rarely need to hand-write closures. All builders return pure
functions suitable for sharing across sets, rules, and engines.
*/

package fuzzy

import "math"

// Triangular builds the classic triangle shape: 0 outside [a, c], rising
// linearly from a to a peak of 1 at b, falling linearly back to 0 at c.
// Degenerate edges (a == b or b == c) produce a vertical flank.
func Triangular(a, b, c float64) Membership {
	return func(x float64) float64 {
		switch {
		case x <= a || x >= c:
			return 0.0
		case x == b:
			return 1.0
		case x < b:
			return (x - a) / (b - a)
		default:
			return (c - x) / (c - b)
		}
	}
}

// Trapezoidal builds a flat-topped shape: 0 outside [a, d], rising from a
// to b, holding 1 on [b, c], falling from c to d.
func Trapezoidal(a, b, c, d float64) Membership {
	return func(x float64) float64 {
		switch {
		case x < a || x > d:
			return 0.0
		case x >= b && x <= c:
			return 1.0
		case x < b:
			return (x - a) / (b - a)
		default:
			return (d - x) / (d - c)
		}
	}
}

// Gaussian builds a bell curve centered on mean with the given spread.
// The peak value is exactly 1 at the mean.
func Gaussian(mean, sigma float64) Membership {
	return func(x float64) float64 {
		d := x - mean
		return math.Exp(-(d * d) / (2 * sigma * sigma))
	}
}

// Rectangular builds a crisp indicator: 1 on [lo, hi], 0 elsewhere.
// Useful for embedding classical sets in fuzzy expressions.
func Rectangular(lo, hi float64) Membership {
	return func(x float64) float64 {
		if x >= lo && x <= hi {
			return 1.0
		}
		return 0.0
	}
}

// Constant builds a membership function that returns v everywhere.
func Constant(v float64) Membership {
	return func(float64) float64 {
		return v
	}
}
