package main

import (
	"fmt"

	"blendgen/internal/artifact"
	"blendgen/internal/script"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	describeCount  int
	describeInput  string
	describeOutput string
)

// describeCmd generates short entity descriptions for object names.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Generate short descriptions for names in the list artifact",
	Long: `Reads the first N names of the name list artifact and asks the LLM
for a sub-50-word physical description of each, producing an ordered
{object, description} JSON document that the dataset command can fold
into its prompts.`,
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().IntVarP(&describeCount, "count", "n", 0, "number of names to process (0 = all)")
	describeCmd.Flags().StringVarP(&describeInput, "input", "i", "", "name list path (default from config)")
	describeCmd.Flags().StringVarP(&describeOutput, "output", "o", "", "entities path (default from config)")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateLLM(); err != nil {
		return err
	}

	in := describeInput
	if in == "" {
		in = cfg.Artifacts.NamesPath
	}
	out := describeOutput
	if out == "" {
		out = cfg.Artifacts.EntitiesPath
	}

	names, err := artifact.ReadLines(in, describeCount)
	if err != nil {
		return fmt.Errorf("failed to read name list: %w", err)
	}
	logger.Info("read object names", zap.Int("count", len(names)), zap.String("path", in))

	client, err := script.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	entities, err := script.NewGenerator(client, logger).Describe(cmd.Context(), names)
	if err != nil {
		return err
	}

	if err := artifact.SaveEntities(out, entities); err != nil {
		return err
	}
	fmt.Printf("Described %d objects, saved to %s\n", len(entities), out)
	return nil
}
