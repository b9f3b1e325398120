/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Infer command implementation for the Akaylee Fuzzy CLI. Parses named
numeric inputs, evaluates the built-in triage rule bank, and reports the resulting
priority category with a unique session ID and structured logging.
*/

package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-fuzzy/pkg/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunInfer executes symbolic inference over the triage rule bank
func RunInfer(cmd *cobra.Command, args []string) error {
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

	inputs, err := ParseInputs(viper.GetStringSlice("inputs"))
	if err != nil {
		return fmt.Errorf("failed to parse inputs: %w", err)
	}

	sessionID := uuid.New().String()

	eng := engine.New(TriageBank())
	eng.SetLogger(logger.GetLogger())

	category := eng.Infer(inputs)
	logger.LogInference(sessionID, inputs, category)

	fmt.Println("🔮 Akaylee Fuzzy - Inference Result")
	fmt.Println("===================================")
	fmt.Printf("Session:  %s\n", sessionID)
	for key, value := range inputs {
		fmt.Printf("Input:    %s = %g\n", key, value)
	}
	fmt.Printf("Category: %s\n", category)

	return nil
}
