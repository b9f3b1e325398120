/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: bank.go
Description: Built-in ticket triage rule bank for the Akaylee Fuzzy CLI. Combines
symbolic priority rules over severity and impact inputs with fuzzy response-level
output sets over a 0-10 effort domain. Compiled-in Go code, not a parsed rule file.
*/

package commands

import (
	"github.com/kleascm/akaylee-fuzzy/pkg/engine"
	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
	"github.com/kleascm/akaylee-fuzzy/pkg/rules"
)

// TriageBank builds the demo rule bank. Symbolic rules score ticket
// priority from severity and impact; fuzzy rules contribute response
// effort sets to the defuzzification output.
func TriageBank() []*rules.Rule {
	gentle := fuzzy.New("Gentle Response", fuzzy.Triangular(0, 2, 4))
	standard := fuzzy.New("Standard Response", fuzzy.Triangular(3, 5, 7))
	aggressive := fuzzy.New("Aggressive Response", fuzzy.Triangular(6, 8, 10))

	return []*rules.Rule{
		rules.New(
			rules.When("severity", func(v float64) bool { return v >= 8 }),
			rules.Label(engine.CategoryUrgent),
			2.0,
		),
		rules.New(
			rules.When("severity", func(v float64) bool { return v >= 5 && v < 8 }),
			rules.Label(engine.CategoryHigh),
			1.5,
		),
		rules.New(
			rules.When("impact", func(v float64) bool { return v >= 7 }),
			rules.Label(engine.CategoryHigh),
			1.0,
		),
		rules.New(
			rules.When("severity", func(v float64) bool { return v >= 2 && v < 5 }),
			rules.Label(engine.CategoryMedium),
			1.0,
		),
		rules.New(
			rules.When("severity", func(v float64) bool { return v < 4 }),
			rules.Output(gentle),
			1.0,
		),
		rules.New(
			rules.When("severity", func(v float64) bool { return v >= 4 && v < 7 }),
			rules.Output(standard),
			1.0,
		),
		rules.New(
			rules.When("severity", func(v float64) bool { return v >= 7 }),
			rules.Output(aggressive),
			1.0,
		),
	}
}
