/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: defuzzify.go
Description: Defuzzify command implementation for the Akaylee Fuzzy CLI. Aggregates
the fuzzy output sets of the built-in triage rule bank and reduces them to a crisp
number using the selected strategy over a caller-supplied scan domain.
*/

package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-fuzzy/pkg/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunDefuzzify executes continuous defuzzification over the triage rule bank
func RunDefuzzify(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	min := viper.GetFloat64("domain_min")
	max := viper.GetFloat64("domain_max")
	step := viper.GetFloat64("step")
	method := viper.GetString("method")

	if step <= 0 {
		return fmt.Errorf("step must be positive, got %g", step)
	}
	if min > max {
		return fmt.Errorf("domain is empty: min %g > max %g", min, max)
	}

	sessionID := uuid.New().String()

	eng := engine.New(TriageBank())
	eng.SetLogger(logger.GetLogger())

	var value float64
	switch method {
	case "centroid":
		value = eng.DefuzzifyCentroid(min, max, step)
	case "mom":
		value = eng.DefuzzifyMOM(min, max, step)
	case "bisector":
		value = eng.DefuzzifyBisector(min, max, step)
	default:
		return fmt.Errorf("unknown defuzzification method: %s", method)
	}

	logger.LogDefuzzification(sessionID, method, min, max, step, value)

	fmt.Println("📐 Akaylee Fuzzy - Defuzzification Result")
	fmt.Println("=========================================")
	fmt.Printf("Session: %s\n", sessionID)
	fmt.Printf("Method:  %s\n", method)
	fmt.Printf("Domain:  [%g, %g] step %g\n", min, max, step)
	fmt.Printf("Value:   %g\n", value)

	return nil
}
