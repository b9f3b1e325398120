/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility command implementations for the Akaylee Fuzzy CLI. Lists the
built-in membership function builders with descriptions of their shapes.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListFunctions prints the built-in membership function builders
func ListFunctions(cmd *cobra.Command, args []string) {
	fmt.Println("📊 Akaylee Fuzzy - Membership Function Builders")
	fmt.Println("===============================================")
	fmt.Println()

	builders := []struct {
		name        string
		signature   string
		description string
	}{
		{
			name:        "Triangular",
			signature:   "Triangular(a, b, c)",
			description: "Triangle rising from a to a peak of 1 at b, falling to 0 at c",
		},
		{
			name:        "Trapezoidal",
			signature:   "Trapezoidal(a, b, c, d)",
			description: "Flat-topped shape holding 1 on [b, c], with linear flanks",
		},
		{
			name:        "Gaussian",
			signature:   "Gaussian(mean, sigma)",
			description: "Bell curve centered on mean, peak of exactly 1",
		},
		{
			name:        "Rectangular",
			signature:   "Rectangular(lo, hi)",
			description: "Crisp indicator: 1 on [lo, hi], 0 elsewhere",
		},
		{
			name:        "Constant",
			signature:   "Constant(v)",
			description: "Returns v everywhere, useful as a neutral element",
		},
	}

	for _, b := range builders {
		fmt.Printf("  %s\n", b.signature)
		fmt.Printf("      %s\n\n", b.description)
	}
}
