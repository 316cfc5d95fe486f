package main

import (
	"fmt"

	"blendgen/internal/artifact"
	"blendgen/internal/vocabulary"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var filterOutput string

// filterCmd cleans an existing name list artifact.
var filterCmd = &cobra.Command{
	Use:   "filter [names-file]",
	Short: "Apply the heuristic name filter to an existing list artifact",
	Long: `Reads a name list file and rewrites it with names that fail the
physical-object heuristics removed: too short or long, digits, special
characters, more than three words, abstract suffixes, place names.
Ordering of the surviving names is preserved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterOutput, "output", "o", "", "destination path (default: rewrite input in place)")
}

func runFilter(cmd *cobra.Command, args []string) error {
	in := cfg.Artifacts.NamesPath
	if len(args) == 1 {
		in = args[0]
	}
	out := filterOutput
	if out == "" {
		out = in
	}

	names, err := artifact.ReadLines(in, 0)
	if err != nil {
		return fmt.Errorf("failed to read name list: %w", err)
	}

	filtered := vocabulary.NewFilter().Apply(names)
	logger.Info("filtered name list",
		zap.String("path", in),
		zap.Int("kept", len(filtered)),
		zap.Int("dropped", len(names)-len(filtered)))

	if err := artifact.WriteLines(out, filtered); err != nil {
		return fmt.Errorf("failed to write filtered list: %w", err)
	}
	fmt.Printf("Kept %d of %d names, saved to %s\n", len(filtered), len(names), out)
	return nil
}
