package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/loggraph/loggraph/internal"
	"github.com/loggraph/loggraph/internal/logstore"
	"github.com/loggraph/loggraph/internal/parquet"
)

// exportCmd writes a slice of the log to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recent records to a Parquet file",
	Long: `Write the most recent slice of the log to a Parquet file.

Records keep their stored shape: a timestamp, a source type, and the
raw JSON payload. The lookback accepts Go durations alongside plain
phrases like '2 weeks', '1 day', '6 hours' or '30 minutes'.

Examples:
  # Export the last day of records
  loggraph export

  # Export a fortnight to a named file
  loggraph export --lookback "2 weeks" --output-file fortnight.parquet`,
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		reader, err := logstore.OpenReader(cfg.DBPath)
		if err != nil {
			internal.FatalError("Cannot open log database", err)
		}
		defer func() { _ = reader.Close() }()

		now := time.Now()
		records, err := reader.QueryRange(cmd.Context(), now.Add(-cfg.Lookback), now)
		if err != nil {
			internal.FatalError("Cannot query log database", err)
		}
		if err := parquet.WriteRecords(records, cfg.OutputFile); err != nil {
			internal.FatalError("Cannot write Parquet file", err)
		}
		fmt.Printf("✅ Exported %d records to %s\n", len(records), cfg.OutputFile)
	},
}
