// Package parquet exports log records to Parquet files using
// github.com/parquet-go/parquet-go, for analysis outside the viewer.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/loggraph/loggraph/schema"
)

// LogRow is the exported shape of one log record. The payload stays as
// its original JSON text; numeric extraction is left to the consumer,
// which knows which fields it wants.
type LogRow struct {
	// Timestamp is when the reading was ingested (nanosecond TIMESTAMP).
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// Kind is the source kind token, SERIAL or SENSOR.
	Kind string `parquet:"type,snappy"`

	// Payload is the serialized JSON object as stored.
	Payload string `parquet:"json,snappy"`
}

// WriteRecords writes log records to a Parquet file at outputPath.
func WriteRecords(records []schema.LogRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	rows := make([]LogRow, len(records))
	for i, rec := range records {
		rows[i] = LogRow{
			Timestamp: rec.Timestamp,
			Kind:      string(rec.Kind),
			Payload:   rec.Payload,
		}
	}

	// Schema is inferred from the LogRow struct tags.
	writer := parquet.NewGenericWriter[LogRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
