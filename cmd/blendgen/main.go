package main

import (
	"fmt"
	"os"

	"blendgen/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded per invocation
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blendgen",
	Short: "blendgen - 3D object name and Blender script dataset generator",
	Long: `blendgen builds datasets for training 3D-generation models.

Two pipelines:
  1. generate: combine category and modifier vocabularies into a sorted,
     deduplicated list of object names written one per line.
  2. dataset: read the first N names and ask an LLM for a Blender Python
     script per name, collecting {input, output} records into JSON.

Supporting commands filter the name list, describe objects, export stored
scripts, and report artifact stats.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "blendgen.yaml", "path to config file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
