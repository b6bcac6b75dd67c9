package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loggraph/loggraph/internal"
	"github.com/loggraph/loggraph/internal/logstore"
)

// statusCmd summarizes what the log database currently holds.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-source record counts and time spans",
	Long: `Print a table with one row per record source, showing how many
records it has and the timestamps of its first and last ones.

Examples:
  # Inspect the default database
  loggraph status

  # Inspect another database
  loggraph status --db /var/lib/loggraph/data.db`,
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		reader, err := logstore.OpenReader(cfg.DBPath)
		if err != nil {
			internal.FatalError("Cannot open log database", err)
		}
		defer func() { _ = reader.Close() }()

		stats, err := reader.Stats(cmd.Context())
		if err != nil {
			internal.FatalError("Cannot read log statistics", err)
		}
		if err := internal.PrintStoreStats(stats); err != nil {
			internal.FatalError("Cannot print log statistics", err)
		}
	},
}
