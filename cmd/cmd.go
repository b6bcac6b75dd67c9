// Package cmd defines the command-line interface for loggraph.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loggraph/loggraph/internal"
	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("db", contract.DefaultDBPath, "Path to the SQLite log database")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		internal.FatalError("Error binding root flags", err)
	}

	// Bind all flags of collectCmd to Viper
	collectCmd.Flags().String("serial-port", contract.DefaultSerialPort, "Serial device to read JSON lines from")
	collectCmd.Flags().String("sensor-temp", contract.DefaultSensorTemp, "Sysfs attribute holding the temperature in millidegrees")
	collectCmd.Flags().String("sensor-humidity", contract.DefaultSensorHumidity, "Sysfs attribute holding the relative humidity in milli-percent")
	collectCmd.Flags().Int("poll", contract.DefaultPollSeconds, "Sensor poll interval in seconds")
	if err := viper.BindPFlags(collectCmd.Flags()); err != nil {
		internal.FatalError("Error binding collect flags", err)
	}

	// Bind all flags of viewCmd to Viper
	viewCmd.Flags().IntP("window", "w", contract.DefaultWindowHours, "Time window size in hours")
	viewCmd.Flags().IntP("refresh", "r", contract.DefaultRefreshSeconds, "Live refresh cadence in seconds")
	viewCmd.Flags().String("reducer", string(schema.MedianReducer), "Bucket reducer: median or mean")
	viewCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	if err := viper.BindPFlags(viewCmd.Flags()); err != nil {
		internal.FatalError("Error binding view flags", err)
	}

	// Bind all flags of seedCmd to Viper
	seedCmd.Flags().Int("days", contract.DefaultSeedDays, "Number of days of history to generate")
	seedCmd.Flags().Int("interval", contract.DefaultSeedInterval, "Seconds between generated record pairs")
	if err := viper.BindPFlags(seedCmd.Flags()); err != nil {
		internal.FatalError("Error binding seed flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("output-file", "logs.parquet", "Path to write the Parquet export to")
	exportCmd.Flags().String("lookback", "1 day", "How far back to export (e.g. '1 day', '6 hours', '2 weeks')")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		internal.FatalError("Error binding export flags", err)
	}
}
