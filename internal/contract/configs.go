package contract

import (
	"errors"
	"fmt"
	"time"

	"github.com/loggraph/loggraph/schema"
)

// Default values for configuration.
const (
	DefaultDBPath         = "data.db"
	DefaultSerialPort     = "/dev/ttyACM0"
	DefaultSensorTemp     = "/sys/bus/iio/devices/iio:device0/in_temp_input"
	DefaultSensorHumidity = "/sys/bus/iio/devices/iio:device0/in_humidityrelative_input"
	DefaultPollSeconds    = 3
	DefaultWindowHours    = 1
	DefaultRefreshSeconds = 5
	DefaultSeedDays       = 3
	DefaultSeedInterval   = 60
)

// Config holds the runtime configuration for all commands.
// This struct remains the "final, validated" config.
type Config struct {
	DBPath     string
	SerialPort string

	SensorTempPath     string
	SensorHumidityPath string
	PollInterval       time.Duration

	WindowSeconds  int
	RefreshSeconds int
	Reducer        schema.Reducer
	Width          int // Terminal width override (0 = auto-detect)

	SeedDays     int
	SeedInterval time.Duration

	OutputFile string
	Lookback   time.Duration
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	DBPath         string `mapstructure:"db"`
	SerialPort     string `mapstructure:"serial-port"`
	SensorTemp     string `mapstructure:"sensor-temp"`
	SensorHumidity string `mapstructure:"sensor-humidity"`
	PollSeconds    int    `mapstructure:"poll"`
	WindowHours    int    `mapstructure:"window"`
	RefreshSeconds int    `mapstructure:"refresh"`
	Reducer        string `mapstructure:"reducer"`
	Width          int    `mapstructure:"width"`
	SeedDays       int    `mapstructure:"days"`
	SeedInterval   int    `mapstructure:"interval"`
	OutputFile     string `mapstructure:"output-file"`
	Lookback       string `mapstructure:"lookback"`
}

// ProcessAndValidate turns the raw viper input into a validated Config.
// Every user-input validation error is rejected here, at the boundary,
// so the collector and viewer only ever see well-formed settings.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.DBPath == "" {
		return errors.New("db path must not be empty")
	}
	cfg.DBPath = input.DBPath
	cfg.SerialPort = input.SerialPort
	cfg.SensorTempPath = input.SensorTemp
	cfg.SensorHumidityPath = input.SensorHumidity

	if input.PollSeconds <= 0 {
		return fmt.Errorf("poll interval must be a positive number of seconds, got %d", input.PollSeconds)
	}
	cfg.PollInterval = time.Duration(input.PollSeconds) * time.Second

	if input.WindowHours <= 0 {
		return fmt.Errorf("time window must be a positive number of hours, got %d", input.WindowHours)
	}
	cfg.WindowSeconds = input.WindowHours * 3600

	if input.RefreshSeconds <= 0 {
		return fmt.Errorf("refresh interval must be a positive number of seconds, got %d", input.RefreshSeconds)
	}
	cfg.RefreshSeconds = input.RefreshSeconds

	reducer, err := schema.ParseReducer(input.Reducer)
	if err != nil {
		return err
	}
	cfg.Reducer = reducer

	if input.Width < 0 {
		return fmt.Errorf("width override must not be negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	if input.SeedDays <= 0 {
		return fmt.Errorf("seed days must be positive, got %d", input.SeedDays)
	}
	cfg.SeedDays = input.SeedDays
	if input.SeedInterval <= 0 {
		return fmt.Errorf("seed interval must be a positive number of seconds, got %d", input.SeedInterval)
	}
	cfg.SeedInterval = time.Duration(input.SeedInterval) * time.Second

	cfg.OutputFile = input.OutputFile

	lookback, err := ParseLookbackDuration(input.Lookback)
	if err != nil {
		return fmt.Errorf("invalid lookback: %w", err)
	}
	cfg.Lookback = lookback

	return nil
}
