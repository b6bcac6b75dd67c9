// Package seed fills the log store with synthetic history so the viewer
// can be exercised without live devices.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

// serialSample mirrors what the reservoir controller emits on the wire.
type serialSample struct {
	BrutFiltre   float64 `json:"brut_filtre"`
	NiveauUtile  float64 `json:"niveau_utile"`
	VolumeLitres float64 `json:"volume_litres"`
	Pourcentage  float64 `json:"pourcentage"`
}

// sensorSample mirrors the polled environment reading.
type sensorSample struct {
	Humidity    float64 `json:"humidity"`
	Temperature float64 `json:"temperature"`
}

// Run replaces the store content with days of paired SERIAL and SENSOR
// records, one pair every interval, ending at now.
func Run(ctx context.Context, store contract.RecordStore, days int, interval time.Duration, now time.Time) (int, error) {
	if err := store.Clear(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear existing logs: %w", err)
	}

	start := now.Add(-time.Duration(days) * 24 * time.Hour)
	inserted := 0
	for current := start; current.Before(now); current = current.Add(interval) {
		serialPayload, err := json.Marshal(randomSerialSample())
		if err != nil {
			return inserted, err
		}
		if err := store.Append(ctx, schema.LogRecord{
			Timestamp: current,
			Kind:      schema.SerialKind,
			Payload:   string(serialPayload),
		}); err != nil {
			return inserted, err
		}

		sensorPayload, err := json.Marshal(randomSensorSample())
		if err != nil {
			return inserted, err
		}
		if err := store.Append(ctx, schema.LogRecord{
			Timestamp: current,
			Kind:      schema.SensorKind,
			Payload:   string(sensorPayload),
		}); err != nil {
			return inserted, err
		}
		inserted += 2
	}
	return inserted, nil
}

// randomSerialSample draws a plausible reservoir reading. Volume tracks
// the level and the percentage is derived from the usable range.
func randomSerialSample() serialSample {
	level := uniform(10, 50)
	return serialSample{
		BrutFiltre:   uniform(100, 200),
		NiveauUtile:  round2(level),
		VolumeLitres: round2(level * 10),
		Pourcentage:  round2((level - 10) / 40 * 100),
	}
}

// randomSensorSample draws a plausible indoor environment reading.
func randomSensorSample() sensorSample {
	return sensorSample{
		Humidity:    round2(uniform(50, 70)),
		Temperature: round2(uniform(20, 30)),
	}
}

func uniform(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
