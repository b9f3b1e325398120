/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: metrics_writer.go
Description: Utility for writing test suite reports to the metrics directory.
Each report gets a unique ID and a timestamped, suite-specific filename so
runs never clobber each other. Writes indented JSON for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SuiteReport bundles the results of one test suite run
type SuiteReport struct {
	ID        string      `json:"id"`
	Suite     string      `json:"suite"`
	Timestamp time.Time   `json:"timestamp"`
	Results   interface{} `json:"results"`
}

// WriteSuiteReport writes a suite's results to metrics/<suite>/ with a
// timestamped filename, returning the path of the written file.
func WriteSuiteReport(suite string, results interface{}) (string, error) {
	metricsDir := filepath.Join("metrics", suite)
	if err := os.MkdirAll(metricsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create metrics directory: %w", err)
	}

	report := SuiteReport{
		ID:        uuid.New().String(),
		Suite:     suite,
		Timestamp: time.Now(),
		Results:   results,
	}

	timestamp := report.Timestamp.Format("2006-01-02_15-04-05")
	path := filepath.Join(metricsDir, fmt.Sprintf("%s_%s.json", timestamp, suite))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write metrics file: %w", err)
	}

	return path, nil
}
