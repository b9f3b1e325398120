/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine_test.go
Description: Unit tests for symbolic inference and aggregation. Tests the weighted
priority average, threshold mapping with inclusive boundaries, and every defined
fallback path with proper test coverage and a suite result registry.
*/

package engine_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/kleascm/akaylee-fuzzy/pkg/engine"
	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
	"github.com/kleascm/akaylee-fuzzy/pkg/rules"
	"github.com/kleascm/akaylee-fuzzy/pkg/utils"
	"github.com/stretchr/testify/assert"
)

// --- Juicy metrics registry ---
type TestResult struct {
	Name       string  `json:"name"`
	Passed     bool    `json:"passed"`
	DurationMs float64 `json:"duration_ms"`
}

var testResults []TestResult

func runTest(t *testing.T, name string, testFunc func(t *testing.T)) {
	start := time.Now()
	testFunc(t)
	testResults = append(testResults, TestResult{
		Name:       name,
		Passed:     !t.Failed(),
		DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

func TestMain(m *testing.M) {
	code := m.Run()
	if path, err := utils.WriteSuiteReport("engine", testResults); err == nil {
		fmt.Printf("Suite report written to %s\n", path)
	}
	os.Exit(code)
}

// --- Helpers ---

func labelRule(label string, weight float64) *rules.Rule {
	return rules.New(rules.Always(), rules.Label(label), weight)
}

// --- Tests ---

func TestInferNoRules(t *testing.T) {
	runTest(t, "TestInferNoRules", func(t *testing.T) {
		eng := engine.New(nil)
		assert.Equal(t, engine.CategoryLow, eng.Infer(rules.Inputs{}))
	})
}

func TestInferNoMatches(t *testing.T) {
	runTest(t, "TestInferNoMatches", func(t *testing.T) {
		eng := engine.New([]*rules.Rule{
			rules.New(
				rules.When("severity", func(v float64) bool { return v >= 5 }),
				rules.Label(engine.CategoryUrgent),
				1.0,
			),
		})
		assert.Equal(t, engine.CategoryLow, eng.Infer(rules.Inputs{"severity": 1}))
	})
}

func TestInferWeightedAverage(t *testing.T) {
	runTest(t, "TestInferWeightedAverage", func(t *testing.T) {
		// Urgent (3.0) and Medium Priority (1.0), equal weights: average
		// score 2.0 lands in the High Priority band.
		eng := engine.New([]*rules.Rule{
			labelRule(engine.CategoryUrgent, 1.0),
			labelRule(engine.CategoryMedium, 1.0),
		})
		assert.Equal(t, engine.CategoryHigh, eng.Infer(rules.Inputs{}))
	})
}

func TestInferBoundaryBelongsToHigherCategory(t *testing.T) {
	runTest(t, "TestInferBoundaryBelongsToHigherCategory", func(t *testing.T) {
		// Urgent (3.0) and High Priority (2.0), equal weights: exactly 2.5
		// maps to Urgent via the inclusive lower bound.
		eng := engine.New([]*rules.Rule{
			labelRule(engine.CategoryUrgent, 1.0),
			labelRule(engine.CategoryHigh, 1.0),
		})
		assert.Equal(t, engine.CategoryUrgent, eng.Infer(rules.Inputs{}))
	})
}

func TestInferJustBelowBoundary(t *testing.T) {
	runTest(t, "TestInferJustBelowBoundary", func(t *testing.T) {
		// Urgent at weight 2.4999 plus an unknown label (score 0.0) at
		// weight 0.5001: average 3*2.4999/3.0 = 2.4999 < 2.5.
		eng := engine.New([]*rules.Rule{
			labelRule(engine.CategoryUrgent, 2.4999),
			labelRule("Informational", 0.5001),
		})
		assert.Equal(t, engine.CategoryHigh, eng.Infer(rules.Inputs{}))
	})
}

func TestInferUnknownLabelScoresZero(t *testing.T) {
	runTest(t, "TestInferUnknownLabelScoresZero", func(t *testing.T) {
		eng := engine.New([]*rules.Rule{
			labelRule("Not A Real Category", 5.0),
		})
		assert.Equal(t, engine.CategoryLow, eng.Infer(rules.Inputs{}))
	})
}

func TestInferFuzzyConsequenceScoresZero(t *testing.T) {
	runTest(t, "TestInferFuzzyConsequenceScoresZero", func(t *testing.T) {
		// A fuzzy-set consequence contributes score 0.0 but its weight
		// still counts: (3 + 0) / 2 = 1.5 is the High Priority boundary.
		out := fuzzy.New("Response", fuzzy.Triangular(0, 5, 10))
		eng := engine.New([]*rules.Rule{
			labelRule(engine.CategoryUrgent, 1.0),
			rules.New(rules.Always(), rules.Output(out), 1.0),
		})
		assert.Equal(t, engine.CategoryHigh, eng.Infer(rules.Inputs{}))
	})
}

func TestInferZeroTotalWeight(t *testing.T) {
	runTest(t, "TestInferZeroTotalWeight", func(t *testing.T) {
		eng := engine.New([]*rules.Rule{
			labelRule(engine.CategoryUrgent, 0.0),
			labelRule(engine.CategoryHigh, 0.0),
		})
		assert.Equal(t, engine.CategoryLow, eng.Infer(rules.Inputs{}))
	})
}

func TestInferCancelingWeights(t *testing.T) {
	runTest(t, "TestInferCancelingWeights", func(t *testing.T) {
		eng := engine.New([]*rules.Rule{
			labelRule(engine.CategoryUrgent, 1.0),
			labelRule(engine.CategoryUrgent, -1.0),
		})
		assert.Equal(t, engine.CategoryLow, eng.Infer(rules.Inputs{}))
	})
}

func TestInferNegativeTotalWeight(t *testing.T) {
	runTest(t, "TestInferNegativeTotalWeight", func(t *testing.T) {
		// A negative weight sum never passes the positive-total check, so
		// the fixed default wins.
		eng := engine.New([]*rules.Rule{
			labelRule(engine.CategoryUrgent, -2.0),
		})
		assert.Equal(t, engine.CategoryLow, eng.Infer(rules.Inputs{}))
	})
}

func TestInferIsStateless(t *testing.T) {
	runTest(t, "TestInferIsStateless", func(t *testing.T) {
		eng := engine.New([]*rules.Rule{
			rules.New(
				rules.When("severity", func(v float64) bool { return v >= 5 }),
				rules.Label(engine.CategoryUrgent),
				1.0,
			),
		})
		assert.Equal(t, engine.CategoryUrgent, eng.Infer(rules.Inputs{"severity": 9}))
		assert.Equal(t, engine.CategoryLow, eng.Infer(rules.Inputs{"severity": 1}))
		assert.Equal(t, engine.CategoryUrgent, eng.Infer(rules.Inputs{"severity": 9}))
	})
}
