package main

import (
	"fmt"

	"blendgen/internal/artifact"
	"blendgen/internal/script"
	"blendgen/internal/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	datasetCount    int
	datasetInput    string
	datasetOutput   string
	datasetUseDB    bool
	datasetEntities bool
)

// datasetCmd runs the script-generation pipeline.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Generate Blender scripts for names in the list artifact",
	Long: `Reads the first N names of the name list artifact and issues one
synchronous LLM call per name, in input order, collecting {input, output}
records into a JSON document. Names already present in the output document
are skipped and their cached output re-emitted. The first API failure
aborts the run; no retries, no partial results.`,
	RunE: runDataset,
}

func init() {
	datasetCmd.Flags().IntVarP(&datasetCount, "count", "n", 0, "number of names to process (0 = all)")
	datasetCmd.Flags().StringVarP(&datasetInput, "input", "i", "", "name list path (default from config)")
	datasetCmd.Flags().StringVarP(&datasetOutput, "output", "o", "", "results path (default from config)")
	datasetCmd.Flags().BoolVar(&datasetUseDB, "db", false, "also persist records to the SQLite store")
	datasetCmd.Flags().BoolVar(&datasetEntities, "entities", false, "use entity descriptions in prompts when available")
}

func runDataset(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateLLM(); err != nil {
		return err
	}

	in := datasetInput
	if in == "" {
		in = cfg.Artifacts.NamesPath
	}
	out := datasetOutput
	if out == "" {
		out = cfg.Artifacts.ResultsPath
	}

	names, err := artifact.ReadLines(in, datasetCount)
	if err != nil {
		return fmt.Errorf("failed to read name list: %w", err)
	}
	logger.Info("read object names", zap.Int("count", len(names)), zap.String("path", in))

	existing, err := artifact.LoadResults(out)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("loaded existing results", zap.Int("count", len(existing)))
	}

	client, err := script.NewClient(cfg, logger)
	if err != nil {
		return err
	}
	generator := script.NewGenerator(client, logger)

	if datasetEntities {
		entities, err := artifact.LoadEntities(cfg.Artifacts.EntitiesPath)
		if err != nil {
			return err
		}
		if len(entities) > 0 {
			generator = generator.WithDescriptions(entities)
			logger.Info("loaded entity descriptions", zap.Int("count", len(entities)))
		}
	}

	results, err := generator.Run(cmd.Context(), names, existing)
	if err != nil {
		return err
	}

	if err := artifact.SaveResults(out, results); err != nil {
		return err
	}

	if datasetUseDB {
		if err := persistResults(results); err != nil {
			return err
		}
	}

	fmt.Printf("Processed %d objects, results saved to %s\n", len(results), out)
	return nil
}

func persistResults(results []artifact.Result) error {
	recordStore, err := store.NewRecordStore(cfg.Store.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer recordStore.Close()

	runID := uuid.NewString()
	for _, r := range results {
		rec := store.Record{
			Object: r.Input,
			Script: r.Output,
			Model:  cfg.LLM.Model,
			RunID:  runID,
		}
		if err := recordStore.SaveRecord(rec); err != nil {
			return err
		}
	}
	logger.Info("persisted records",
		zap.Int("count", len(results)),
		zap.String("run_id", runID),
		zap.String("db", cfg.Store.DatabasePath))
	return nil
}
