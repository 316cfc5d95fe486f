package main

import (
	"fmt"

	"blendgen/internal/store"

	"github.com/spf13/cobra"
)

var exportDir string

// exportCmd dumps stored scripts to files for dataset publishing.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored scripts from the record store",
	Long: `Writes every record of the SQLite store as a standalone Python file,
one per object, into the export directory. The resulting directory is
ready to publish as a dataset.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "export", "export directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	recordStore, err := store.NewRecordStore(cfg.Store.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer recordStore.Close()

	written, err := recordStore.ExportScripts(exportDir)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d scripts to %s\n", written, exportDir)
	return nil
}
