package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loggraph/loggraph/schema"
)

// validInput returns raw input that passes every validation rule.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		DBPath:         "data.db",
		SerialPort:     "/dev/ttyACM0",
		SensorTemp:     DefaultSensorTemp,
		SensorHumidity: DefaultSensorHumidity,
		PollSeconds:    3,
		WindowHours:    1,
		RefreshSeconds: 5,
		Reducer:        "median",
		Width:          0,
		SeedDays:       3,
		SeedInterval:   60,
		OutputFile:     "logs.parquet",
		Lookback:       "1 day",
	}
}

// TestProcessAndValidateHappyPath verifies raw input maps into the final config.
func TestProcessAndValidateHappyPath(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, "data.db", cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 3600, cfg.WindowSeconds)
	assert.Equal(t, 5, cfg.RefreshSeconds)
	assert.Equal(t, schema.MedianReducer, cfg.Reducer)
	assert.Equal(t, 60*time.Second, cfg.SeedInterval)
	assert.Equal(t, 24*time.Hour, cfg.Lookback)
}

// TestProcessAndValidateRejections walks each boundary validation rule.
func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{name: "empty db path", mutate: func(in *ConfigRawInput) { in.DBPath = "" }},
		{name: "zero poll", mutate: func(in *ConfigRawInput) { in.PollSeconds = 0 }},
		{name: "negative poll", mutate: func(in *ConfigRawInput) { in.PollSeconds = -3 }},
		{name: "zero window", mutate: func(in *ConfigRawInput) { in.WindowHours = 0 }},
		{name: "zero refresh", mutate: func(in *ConfigRawInput) { in.RefreshSeconds = 0 }},
		{name: "unknown reducer", mutate: func(in *ConfigRawInput) { in.Reducer = "mode" }},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -80 }},
		{name: "zero seed days", mutate: func(in *ConfigRawInput) { in.SeedDays = 0 }},
		{name: "zero seed interval", mutate: func(in *ConfigRawInput) { in.SeedInterval = 0 }},
		{name: "bad lookback", mutate: func(in *ConfigRawInput) { in.Lookback = "yesterday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

// TestParseLookbackDuration covers Go layouts and human-readable phrases.
func TestParseLookbackDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{input: "720h", expected: 720 * time.Hour},
		{input: "90m", expected: 90 * time.Minute},
		{input: "1 day", expected: 24 * time.Hour},
		{input: "2 weeks", expected: 14 * 24 * time.Hour},
		{input: "6 hours", expected: 6 * time.Hour},
		{input: "30 minutes", expected: 30 * time.Minute},
		{input: "  1 Day  ", expected: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseLookbackDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}

	for _, bad := range []string{"", "yesterday", "-2h", "0 days", "3 fortnights"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseLookbackDuration(bad)
			assert.Error(t, err)
		})
	}
}
