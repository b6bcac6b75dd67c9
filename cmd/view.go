package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loggraph/loggraph/internal"
	"github.com/loggraph/loggraph/internal/viewui"
)

// viewCmd renders the live terminal view over the log database.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse recorded telemetry as live terminal graphs",
	Long: `Open a full-screen terminal view over the recorded telemetry.

The view starts in follow mode, pinned to the present and refreshing on
a fixed cadence. Stepping backwards through time pauses following; a
snap back to now resumes it.

Key bindings:
  f        snap to now and resume following
  j / k    step back / forward by half a window
  h / l    jump a full day back / forward
  r        change the refresh cadence
  tab, 1-3 switch between graph tabs and the indicator board
  g        toggle the background grid
  q        quit

Examples:
  # Watch the last hour, refreshing every 5 seconds
  loggraph view

  # A six hour window with a slower refresh
  loggraph view --window 6 --refresh 30

  # Use mean buckets instead of median ones
  loggraph view --reducer mean`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := viewui.Run(cfg); err != nil {
			internal.FatalError("Cannot run viewer", err)
		}
	},
}
