package ingest

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/loggraph/loggraph/internal"
	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

// nowFunc supplies record timestamps; tests substitute a fixed clock.
type nowFunc func() time.Time

// sensorPayload is the stored SENSOR record body.
type sensorPayload struct {
	Humidity    float64 `json:"humidity"`
	Temperature float64 `json:"temperature"`
}

// SensorPoller reads the local environment sensor on a fixed interval and
// stores one SENSOR record per successful read. Transient read failures
// are logged and skipped; the loop continues at the next interval and is
// never fatal.
type SensorPoller struct {
	store    contract.RecordStore
	sensor   contract.Sensor
	interval time.Duration
	now      nowFunc

	// echo, when set, forwards each accepted temperature to the serial
	// reader for write-back over the line.
	echo func(float64)
}

// NewSensorPoller returns a poller over the given sensor.
func NewSensorPoller(store contract.RecordStore, sensor contract.Sensor, interval time.Duration, now nowFunc, echo func(float64)) *SensorPoller {
	return &SensorPoller{store: store, sensor: sensor, interval: interval, now: now, echo: echo}
}

// Name implements the Reader interface.
func (p *SensorPoller) Name() string { return "sensor" }

// Run polls until ctx is cancelled. The blocking wait is the ticker, so
// cancellation is observed within one poll interval.
func (p *SensorPoller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

// pollOnce performs a single read-store-echo cycle. Every failure inside
// it is isolated to this cycle.
func (p *SensorPoller) pollOnce(ctx context.Context) {
	temperature, humidity, err := p.sensor.Read()
	if err != nil {
		internal.Warningf("sensor read failed: %v", err)
		return
	}

	payload, err := json.Marshal(sensorPayload{
		Humidity:    round2(humidity),
		Temperature: round2(temperature),
	})
	if err != nil {
		internal.Warningf("failed to encode sensor payload: %v", err)
		return
	}

	rec := schema.LogRecord{Timestamp: p.now(), Kind: schema.SensorKind, Payload: string(payload)}
	if err := p.store.Append(ctx, rec); err != nil {
		internal.Warningf("failed to store sensor record: %v", err)
		return
	}
	internal.Recordf("sensor record stored: %s", payload)

	if p.echo != nil {
		p.echo(temperature)
	}
}

// round2 rounds to two decimal places, the precision stored for sensor
// readings.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
