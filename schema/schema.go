// Package schema defines the shared data model for loggraph: log records,
// query series, aggregation types and the tokens persisted in the log store.
package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// SourceKind identifies which stream reader produced a record.
type SourceKind string

// Canonical tokens stored in the log table's type column.
const (
	SerialKind SourceKind = "SERIAL"
	SensorKind SourceKind = "SENSOR"
)

// TimestampLayout is the fixed-width local-clock layout used for the
// timestamp column. Fixed-width microseconds keep lexicographic ordering
// equal to chronological ordering, which the range scan relies on.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// LogRecord is one ingested reading. Payload is the serialized JSON object
// exactly as received; it is never rewritten after acceptance.
type LogRecord struct {
	Timestamp time.Time
	Kind      SourceKind
	Payload   string
}

// FormatTimestamp renders t in the store's timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp column value on the local clock.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid log timestamp %q: %w", s, err)
	}
	return t, nil
}

// DecodePayload parses a payload column into its JSON object form.
// Non-object payloads are rejected.
func DecodePayload(payload string) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("invalid log payload: %w", err)
	}
	return fields, nil
}

// NumericFields returns the numeric subset of a decoded payload. Which
// numeric keys exist is discovered per record; payloads may introduce or
// omit fields between records.
func NumericFields(fields map[string]any) map[string]float64 {
	numeric := make(map[string]float64, len(fields))
	for key, value := range fields {
		if v, ok := value.(float64); ok {
			numeric[key] = v
		}
	}
	return numeric
}
