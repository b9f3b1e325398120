/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for the Akaylee Fuzzy toolkit. Provides commands
for symbolic inference and continuous defuzzification over the built-in triage rule
bank, with configuration management and structured logging.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-fuzzy/cmd/fuzzy/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool
	logDir     string

	// Inference configuration
	inputPairs []string

	// Defuzzification configuration
	domainMin float64
	domainMax float64
	step      float64
	method    string
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-fuzzy",
		Short: "Akaylee Fuzzy - fuzzy-logic inference and defuzzification toolkit",
		Long: `Akaylee Fuzzy is a fuzzy-logic inference toolkit. It evaluates weighted
if-then rules over named numeric inputs to produce a crisp priority category, and
defuzzifies aggregated fuzzy outputs into crisp numbers via centroid, mean-of-maximum,
or bisector strategies.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = stdout only)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Run symbolic inference over the built-in triage rule bank",
		Long: `Evaluate the built-in ticket triage rule bank against named numeric inputs
and print the resulting priority category. Inputs are given as repeated
--input key=value flags, e.g. --input severity=8 --input impact=6.`,
		RunE: commands.RunInfer,
	}
	inferCmd.Flags().StringSliceVar(&inputPairs, "input", []string{}, "Named input as key=value (repeatable)")
	viper.BindPFlag("inputs", inferCmd.Flags().Lookup("input"))
	rootCmd.AddCommand(inferCmd)

	// Add defuzzify command
	defuzzifyCmd := &cobra.Command{
		Use:   "defuzzify",
		Short: "Defuzzify the rule bank's aggregated fuzzy output",
		Long: `Aggregate the fuzzy output sets of the built-in triage rule bank via
pointwise max and reduce them to a crisp number with the selected strategy
(centroid, mom, or bisector), scanning the domain in fixed increments.`,
		RunE: commands.RunDefuzzify,
	}
	defuzzifyCmd.Flags().Float64Var(&domainMin, "min", 0.0, "Lower bound of the output domain")
	defuzzifyCmd.Flags().Float64Var(&domainMax, "max", 10.0, "Upper bound of the output domain")
	defuzzifyCmd.Flags().Float64Var(&step, "step", 0.1, "Scan increment (must be positive)")
	defuzzifyCmd.Flags().StringVar(&method, "method", "centroid", "Defuzzification method (centroid, mom, bisector)")
	viper.BindPFlag("domain_min", defuzzifyCmd.Flags().Lookup("min"))
	viper.BindPFlag("domain_max", defuzzifyCmd.Flags().Lookup("max"))
	viper.BindPFlag("step", defuzzifyCmd.Flags().Lookup("step"))
	viper.BindPFlag("method", defuzzifyCmd.Flags().Lookup("method"))
	rootCmd.AddCommand(defuzzifyCmd)

	// Add list-functions command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-functions",
		Short: "List the built-in membership function builders",
		Long: `List all membership function builders shipped with the toolkit with
descriptions of their shapes and typical use cases.`,
		Run: commands.ListFunctions,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
