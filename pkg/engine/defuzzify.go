/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: defuzzify.go
Description: Continuous defuzzification strategies for the Akaylee Fuzzy toolkit.
Aggregates the fuzzy-set consequences of the rule collection pointwise via max
(fuzzy OR across rule outputs) and reduces the aggregate to a crisp number with
centroid, mean-of-maximum, or bisector scans over a caller-supplied domain.
*/

package engine

import (
	"math"

	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

// outputSets gathers the consequence set of every rule whose consequence
// is a fuzzy set. Conditions are not consulted here: defuzzification
// operates on the full output vocabulary of the bank, matching symbolic
// rules contribute nothing.
func (e *Engine) outputSets() []*fuzzy.Set {
	var sets []*fuzzy.Set
	for _, rule := range e.rules {
		if consequence := rule.Consequence(); consequence.IsSet() {
			sets = append(sets, consequence.Set())
		}
	}
	return sets
}

// aggregatedDegree is the pointwise fuzzy-OR of the output sets at x.
// With no output sets the aggregate is identically zero.
func aggregatedDegree(sets []*fuzzy.Set, x float64) float64 {
	mu := 0.0
	for _, set := range sets {
		mu = math.Max(mu, set.MembershipDegree(x))
	}
	return mu
}

// DefuzzifyCentroid returns the center of gravity of the aggregated
// output curve over [min, max]: Σ(x·μ(x)) / Σ(μ(x)), scanned while
// x <= max in increments of step. Zero total mass returns 0.0, as does a
// non-positive step (which would otherwise never terminate).
func (e *Engine) DefuzzifyCentroid(min, max, step float64) float64 {
	if step <= 0 {
		return 0.0
	}
	sets := e.outputSets()
	numerator := 0.0
	denominator := 0.0
	for x := min; x <= max; x += step {
		mu := aggregatedDegree(sets, x)
		numerator += x * mu
		denominator += mu
	}
	if denominator == 0.0 {
		e.logger.Debug("Centroid defuzzification over zero mass, returning fallback")
		return 0.0
	}
	return numerator / denominator
}

// DefuzzifyMOM returns the mean of maximum: the average of every sample
// point attaining the running maximum membership. A strictly larger value
// restarts the average at that point; an exactly equal value (float
// equality) joins it. The running maximum starts at zero, so an
// identically-zero curve averages every visited point. Returns 0.0 when
// the scan visits no points (min > max) or step is non-positive.
func (e *Engine) DefuzzifyMOM(min, max, step float64) float64 {
	if step <= 0 {
		return 0.0
	}
	sets := e.outputSets()
	maxMu := 0.0
	sumX := 0.0
	count := 0.0
	for x := min; x <= max; x += step {
		mu := aggregatedDegree(sets, x)
		if mu > maxMu {
			maxMu = mu
			sumX = x
			count = 1.0
		} else if mu == maxMu {
			sumX += x
			count += 1.0
		}
	}
	if count == 0.0 {
		return 0.0
	}
	return sumX / count
}

// DefuzzifyBisector returns the first sample point at which the
// cumulative area under the aggregated curve reaches half the total
// area. Two passes: the first totals Σ(μ(x)·step), the second
// accumulates left-to-right until the half-area threshold is met. If the
// threshold is never reached (zero total area) the scan falls through
// and min is returned; a non-positive step also returns min.
func (e *Engine) DefuzzifyBisector(min, max, step float64) float64 {
	if step <= 0 {
		return min
	}
	sets := e.outputSets()

	totalArea := 0.0
	for x := min; x <= max; x += step {
		totalArea += aggregatedDegree(sets, x) * step
	}

	leftArea := 0.0
	bisector := min
	for x := min; x <= max; x += step {
		leftArea += aggregatedDegree(sets, x) * step
		if leftArea >= totalArea/2.0 {
			bisector = x
			break
		}
	}
	return bisector
}
