/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rule.go
Description: Fuzzy if-then rules for the Akaylee Fuzzy toolkit. A rule binds a guard
condition over named numeric inputs to a weighted consequence, which is either a
symbolic category label or a fuzzy output set (never both). Rules are immutable after
construction and evaluated without side effects.
*/

package rules

import (
	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

// ScalarKey is the input name used by Scalar for single-value rule banks.
const ScalarKey = "x"

// Inputs carries the named numeric inputs a rule bank is evaluated
// against.
type Inputs map[string]float64

// Scalar wraps a single value as Inputs under ScalarKey, for rule banks
// keyed on one scalar instead of a named mapping.
func Scalar(x float64) Inputs {
	return Inputs{ScalarKey: x}
}

// Condition is a predicate over the inputs deciding whether a rule fires.
type Condition func(in Inputs) bool

// When builds a condition testing a single named input with pred. A
// missing key evaluates pred against 0, the zero value of the map lookup.
func When(key string, pred func(v float64) bool) Condition {
	return func(in Inputs) bool {
		return pred(in[key])
	}
}

// Always builds a condition that fires unconditionally.
func Always() Condition {
	return func(Inputs) bool {
		return true
	}
}

// Consequence is the outcome a rule produces when it fires: exactly one
// of a category label or a fuzzy output set. Which kind a rule carries is
// fixed at construction.
type Consequence struct {
	label string
	set   *fuzzy.Set
}

// Label builds a symbolic category consequence.
func Label(s string) Consequence {
	return Consequence{label: s}
}

// Output builds a fuzzy-set consequence.
func Output(set *fuzzy.Set) Consequence {
	return Consequence{set: set}
}

// IsLabel reports whether the consequence is a symbolic category.
func (c Consequence) IsLabel() bool {
	return c.set == nil
}

// IsSet reports whether the consequence is a fuzzy output set.
func (c Consequence) IsSet() bool {
	return c.set != nil
}

// Label returns the category label, empty for set consequences.
func (c Consequence) Label() string {
	return c.label
}

// Set returns the fuzzy output set, nil for label consequences.
func (c Consequence) Set() *fuzzy.Set {
	return c.set
}

// Outcome is what a fired rule contributes to aggregation.
type Outcome struct {
	Consequence Consequence
	Weight      float64
}

// Rule binds a condition to a weighted consequence. The weight is
// caller-supplied and intentionally not validated: zero and negative
// weights are legal and flow through aggregation arithmetically.
type Rule struct {
	condition   Condition
	consequence Consequence
	weight      float64
}

// New creates a rule from a condition, a consequence, and a weight.
func New(condition Condition, consequence Consequence, weight float64) *Rule {
	return &Rule{
		condition:   condition,
		consequence: consequence,
		weight:      weight,
	}
}

// Consequence returns the rule's consequence.
func (r *Rule) Consequence() Consequence {
	return r.consequence
}

// Weight returns the rule's aggregation weight.
func (r *Rule) Weight() float64 {
	return r.weight
}

// Evaluate checks the condition against the inputs. When it holds, the
// rule's consequence and weight are returned with ok=true; otherwise
// ok=false. No match is a normal outcome, not an error. Set consequences
// are returned as clones sharing the underlying function value.
func (r *Rule) Evaluate(in Inputs) (Outcome, bool) {
	if !r.condition(in) {
		return Outcome{}, false
	}
	consequence := r.consequence
	if consequence.set != nil {
		consequence.set = consequence.set.Clone()
	}
	return Outcome{Consequence: consequence, Weight: r.weight}, true
}
