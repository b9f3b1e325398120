/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rule_test.go
Description: Unit tests for fuzzy rule evaluation. Covers match and no-match paths,
label and set consequence kinds, weight passthrough including zero and negative
weights, and the input helpers.
*/

package rules_test

import (
	"testing"

	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
	"github.com/kleascm/akaylee-fuzzy/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateMatch(t *testing.T) {
	rule := rules.New(
		rules.When("severity", func(v float64) bool { return v >= 5 }),
		rules.Label("Urgent"),
		2.0,
	)

	outcome, ok := rule.Evaluate(rules.Inputs{"severity": 7})
	require.True(t, ok)
	assert.Equal(t, 2.0, outcome.Weight)
	assert.True(t, outcome.Consequence.IsLabel())
	assert.False(t, outcome.Consequence.IsSet())
	assert.Equal(t, "Urgent", outcome.Consequence.Label())
	assert.Nil(t, outcome.Consequence.Set())
}

func TestEvaluateNoMatch(t *testing.T) {
	rule := rules.New(
		rules.When("severity", func(v float64) bool { return v >= 5 }),
		rules.Label("Urgent"),
		2.0,
	)

	outcome, ok := rule.Evaluate(rules.Inputs{"severity": 3})
	assert.False(t, ok)
	assert.Equal(t, rules.Outcome{}, outcome)
}

func TestEvaluateSetConsequenceClones(t *testing.T) {
	out := fuzzy.New("Response", fuzzy.Triangular(0, 5, 10))
	rule := rules.New(rules.Always(), rules.Output(out), 1.0)

	outcome, ok := rule.Evaluate(rules.Inputs{})
	require.True(t, ok)
	require.True(t, outcome.Consequence.IsSet())

	clone := outcome.Consequence.Set()
	require.NotSame(t, out, clone)
	assert.Equal(t, out.Name(), clone.Name())
	assert.Equal(t, out.MembershipDegree(5), clone.MembershipDegree(5))
	assert.Empty(t, outcome.Consequence.Label())
}

func TestWeightNotValidated(t *testing.T) {
	zero := rules.New(rules.Always(), rules.Label("Urgent"), 0.0)
	negative := rules.New(rules.Always(), rules.Label("Urgent"), -1.5)

	outcome, ok := zero.Evaluate(rules.Inputs{})
	require.True(t, ok)
	assert.Equal(t, 0.0, outcome.Weight)

	outcome, ok = negative.Evaluate(rules.Inputs{})
	require.True(t, ok)
	assert.Equal(t, -1.5, outcome.Weight)
}

func TestWhenMissingKeySeesZero(t *testing.T) {
	rule := rules.New(
		rules.When("load", func(v float64) bool { return v == 0 }),
		rules.Label("Medium Priority"),
		1.0,
	)

	_, ok := rule.Evaluate(rules.Inputs{"severity": 9})
	assert.True(t, ok)
}

func TestScalarInputs(t *testing.T) {
	in := rules.Scalar(4.2)
	assert.Equal(t, rules.Inputs{rules.ScalarKey: 4.2}, in)

	rule := rules.New(
		rules.When(rules.ScalarKey, func(v float64) bool { return v > 4 }),
		rules.Label("High Priority"),
		1.0,
	)
	_, ok := rule.Evaluate(in)
	assert.True(t, ok)
}

func TestAlways(t *testing.T) {
	rule := rules.New(rules.Always(), rules.Label("Urgent"), 1.0)

	_, ok := rule.Evaluate(nil)
	assert.True(t, ok)
	_, ok = rule.Evaluate(rules.Inputs{"anything": -3})
	assert.True(t, ok)
}
