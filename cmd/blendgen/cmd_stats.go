package main

import (
	"errors"
	"fmt"
	"os"

	"blendgen/internal/artifact"

	"github.com/spf13/cobra"
)

// statsCmd reports artifact sizes and approximate token totals.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report counts and approximate token totals for the artifacts",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	names, err := artifact.ReadLines(cfg.Artifacts.NamesPath, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("Name list: %s (missing)\n", cfg.Artifacts.NamesPath)
		} else {
			return err
		}
	} else {
		fmt.Printf("Name list: %s (%d names)\n", cfg.Artifacts.NamesPath, len(names))
	}

	existing, err := artifact.LoadResults(cfg.Artifacts.ResultsPath)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		fmt.Printf("Results:   %s (empty)\n", cfg.Artifacts.ResultsPath)
		return nil
	}

	results := make([]artifact.Result, 0, len(existing))
	for input, output := range existing {
		results = append(results, artifact.Result{Input: input, Output: output})
	}
	inTokens, outTokens := artifact.ApproxResultTokens(results)
	fmt.Printf("Results:   %s (%d records, ~%d input tokens, ~%d output tokens)\n",
		cfg.Artifacts.ResultsPath, len(results), inTokens, outTokens)
	return nil
}
