/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Inference engine for the Akaylee Fuzzy toolkit. Holds an ordered rule
collection, evaluates it against named inputs, and aggregates fired rules into a single
crisp category via weight-normalized priority scoring with fixed threshold mapping.
The engine is stateless across calls and never mutates its rules.
*/

package engine

import (
	"github.com/kleascm/akaylee-fuzzy/pkg/rules"
	"github.com/sirupsen/logrus"
)

// Priority categories produced by Infer. Boundary scores belong to the
// higher category (inclusive lower bounds).
const (
	CategoryUrgent = "Urgent"
	CategoryHigh   = "High Priority"
	CategoryMedium = "Medium Priority"
	CategoryLow    = "Low Priority"
)

// priorityScores maps category labels to their fixed numeric priority.
// Unknown labels (and fuzzy-set consequences) score 0 in symbolic
// aggregation.
var priorityScores = map[string]float64{
	CategoryUrgent: 3.0,
	CategoryHigh:   2.0,
	CategoryMedium: 1.0,
}

// Engine evaluates a fixed rule collection. It memoizes nothing, so a
// single instance may serve concurrent callers.
type Engine struct {
	rules  []*rules.Rule
	logger *logrus.Logger
}

// New creates an inference engine over the given rule collection.
func New(rs []*rules.Rule) *Engine {
	return &Engine{
		rules:  rs,
		logger: logrus.New(),
	}
}

// SetLogger replaces the engine's logger. Nil loggers are ignored.
func (e *Engine) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// Rules returns the engine's rule collection.
func (e *Engine) Rules() []*rules.Rule {
	return e.rules
}

// Infer evaluates every rule against the inputs and reduces the fired
// rules to a single category string. It always produces a category:
// no matches or a non-positive total weight yield CategoryLow.
func (e *Engine) Infer(in rules.Inputs) string {
	var outcomes []rules.Outcome
	for i, rule := range e.rules {
		outcome, ok := rule.Evaluate(in)
		if !ok {
			continue
		}
		e.logger.WithFields(logrus.Fields{
			"rule":   i,
			"weight": outcome.Weight,
			"label":  outcome.Consequence.Label(),
		}).Debug("Rule fired")
		outcomes = append(outcomes, outcome)
	}
	category := e.aggregate(outcomes)
	e.logger.WithFields(logrus.Fields{
		"fired":    len(outcomes),
		"category": category,
	}).Debug("Inference complete")
	return category
}

// aggregate computes the weight-normalized average priority score of the
// fired rules and maps it back to a category.
func (e *Engine) aggregate(outcomes []rules.Outcome) string {
	if len(outcomes) == 0 {
		return CategoryLow
	}

	totalWeight := 0.0
	weightedSum := 0.0
	for _, outcome := range outcomes {
		score := 0.0
		if outcome.Consequence.IsLabel() {
			score = priorityScores[outcome.Consequence.Label()]
		}
		weightedSum += score * outcome.Weight
		totalWeight += outcome.Weight
	}

	if totalWeight > 0.0 {
		return scoreCategory(weightedSum / totalWeight)
	}
	return CategoryLow
}

// scoreCategory maps an averaged priority score to a category by fixed,
// half-open ascending thresholds.
func scoreCategory(score float64) string {
	switch {
	case score >= 2.5:
		return CategoryUrgent
	case score >= 1.5:
		return CategoryHigh
	case score >= 0.5:
		return CategoryMedium
	default:
		return CategoryLow
	}
}
