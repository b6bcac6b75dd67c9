package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loggraph/loggraph/internal"
	"github.com/loggraph/loggraph/internal/ingest"
)

// collectCmd runs both stream readers until interrupted.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Record serial and sensor readings into the log database",
	Long: `Run the two stream readers side by side until interrupted:

- The serial reader consumes JSON lines from the serial port and stores
  each valid line verbatim. Malformed lines are logged and skipped.
- The sensor poller samples temperature and humidity on a fixed cadence
  and stores each sample. Each new temperature is echoed back over the
  serial port so the device can show it on its display.

A failing reader never takes down its sibling; each one logs its error
and the other keeps recording.

Examples:
  # Record with the default serial port and poll cadence
  loggraph collect

  # Record from a different device into a dedicated database
  loggraph collect --serial-port /dev/ttyUSB0 --db /var/lib/loggraph/data.db

  # Poll the sensor every 10 seconds
  loggraph collect --poll 10`,
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sensor := &ingest.SysfsSensor{
			TemperaturePath: cfg.SensorTempPath,
			HumidityPath:    cfg.SensorHumidityPath,
		}
		if err := ingest.RunCollector(ctx, cfg, sensor); err != nil {
			internal.FatalError("Cannot run collector", err)
		}
	},
}
