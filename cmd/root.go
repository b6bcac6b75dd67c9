package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

// All linker flags will be set by release infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file,
// env, flags). Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "loggraph",
	Short:              "Collect sensor telemetry into an append-only log and graph it live.",
	Long:               `Loggraph ingests a serial JSON stream and a polled environment sensor into one SQLite log, and renders a navigable, live-refreshing terminal view over any time window of it.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".loggraph") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("LOGGRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("db", contract.DefaultDBPath)
	viper.SetDefault("serial-port", contract.DefaultSerialPort)
	viper.SetDefault("sensor-temp", contract.DefaultSensorTemp)
	viper.SetDefault("sensor-humidity", contract.DefaultSensorHumidity)
	viper.SetDefault("poll", contract.DefaultPollSeconds)
	viper.SetDefault("window", contract.DefaultWindowHours)
	viper.SetDefault("refresh", contract.DefaultRefreshSeconds)
	viper.SetDefault("reducer", string(schema.MedianReducer))
	viper.SetDefault("width", 0)
	viper.SetDefault("days", contract.DefaultSeedDays)
	viper.SetDefault("interval", contract.DefaultSeedInterval)
	viper.SetDefault("output-file", "logs.parquet")
	viper.SetDefault("lookback", "1 day")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation. This populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
