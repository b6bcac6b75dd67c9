package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/loggraph/loggraph/internal"
	"github.com/loggraph/loggraph/internal/logstore"
	"github.com/loggraph/loggraph/internal/seed"
)

// seedCmd fills the database with generated history for demos and tests.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the database contents with generated sample history",
	Long: `Clear the log database and fill it with plausible generated history.

Useful for trying out the viewer without a running collector, and for
reproducing rendering issues with a known data shape. Existing records
are removed first.

Examples:
  # Three days of history, one record pair per minute
  loggraph seed

  # A week of sparse history
  loggraph seed --days 7 --interval 300`,
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		store, err := logstore.Open(cfg.DBPath)
		if err != nil {
			internal.FatalError("Cannot open log database", err)
		}
		defer func() { _ = store.Close() }()

		count, err := seed.Run(cmd.Context(), store, cfg.SeedDays, cfg.SeedInterval, time.Now())
		if err != nil {
			internal.FatalError("Cannot seed log database", err)
		}
		fmt.Printf("✅ Seeded %d records into %s\n", count, cfg.DBPath)
	},
}
