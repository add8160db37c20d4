package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/OpenTraceLab/notation/pkg/history"
	"gopkg.in/yaml.v3"
)

// printRecord writes rec to stdout according to the output flags. withSteps
// prints the full trace in text mode.
func printRecord(rec history.Record, withSteps bool) error {
	if stepIndex >= 0 {
		if stepIndex >= len(rec.Steps) {
			return fmt.Errorf("step %d out of range [0, %d)", stepIndex, len(rec.Steps))
		}
		rec.Steps = rec.Steps[stepIndex : stepIndex+1]
	}

	switch strings.ToLower(outputFormat) {
	case "", "text":
		printText(rec, withSteps)
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected text, yaml or json)", outputFormat)
	}
}

func printText(rec history.Record, withSteps bool) {
	fmt.Printf("Operation: %s\n", rec.Operation)
	fmt.Printf("Input:     %s\n", rec.Input)
	fmt.Printf("Result:    %s\n", rec.Result)

	if !withSteps && stepIndex < 0 {
		return
	}

	first := 0
	if stepIndex >= 0 {
		first = stepIndex
	}
	fmt.Printf("\nSteps (%d):\n", len(rec.Steps))
	fmt.Printf("  %-4s %-15s %-20s %-20s %s\n", "#", "Token", "Stack", "Output", "Action")
	fmt.Println("  " + strings.Repeat("-", 90))
	for i, s := range rec.Steps {
		fmt.Printf("  %-4d %-15s %-20s %-20s %s\n",
			first+i, s.Token, "["+strings.Join(s.Stack, " ")+"]", s.Output, s.Action)
	}
}
