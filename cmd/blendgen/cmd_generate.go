package main

import (
	"fmt"

	"blendgen/internal/artifact"
	"blendgen/internal/namegen"
	"blendgen/internal/vocabulary"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateOutput string
	generateFilter bool
)

// generateCmd runs the list-assembly pipeline.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble the object-name list artifact",
	Long: `Combines every built-in category vocabulary with the modifier
vocabularies under the configured prefix limits, deduplicates, sorts
lexicographically, and writes the result one name per line. The output
is deterministic: re-running with unchanged vocabularies produces a
byte-identical file.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "destination path (default from config)")
	generateCmd.Flags().BoolVar(&generateFilter, "filter", false, "apply the heuristic name filter before writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := generateOutput
	if out == "" {
		out = cfg.Artifacts.NamesPath
	}

	policy := namegen.Policy{
		MaterialLimit: cfg.Generation.MaterialLimit,
		SizeLimit:     cfg.Generation.SizeLimit,
		StyleLimit:    cfg.Generation.StyleLimit,
		ColorLimit:    cfg.Generation.ColorLimit,
	}
	combinator := namegen.NewCombinator(vocabulary.NewRegistry(), policy)
	names := combinator.Generate()
	logger.Info("assembled object names", zap.Int("count", len(names)))

	if generateFilter || cfg.Generation.Filter {
		filtered := vocabulary.NewFilter().Apply(names)
		logger.Info("filtered object names",
			zap.Int("kept", len(filtered)),
			zap.Int("dropped", len(names)-len(filtered)))
		names = filtered
	}

	if err := artifact.WriteLines(out, names); err != nil {
		return fmt.Errorf("failed to write name list: %w", err)
	}

	fmt.Printf("Saved %d object names to %s\n", len(names), out)
	preview := names
	if len(preview) > 20 {
		preview = preview[:20]
	}
	for i, name := range preview {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}
	if len(names) > 20 {
		fmt.Printf("  ... and %d more\n", len(names)-20)
	}
	return nil
}
