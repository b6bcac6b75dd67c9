// Package contract provides interfaces and shared configuration for the
// collector and viewer. Interfaces here decouple the ingestion and query
// logic from the SQLite store and the physical devices so both can be
// mocked in tests.
package contract

import (
	"context"
	"time"

	"github.com/loggraph/loggraph/schema"
)

// RecordStore is the append side of the log store. Records are immutable
// once written; ordering is by timestamp with ties broken by insertion
// order. Single-writer: only the collector process holds one of these.
type RecordStore interface {
	// Append writes one record to the log.
	Append(ctx context.Context, rec schema.LogRecord) error

	// Clear deletes every record. Used by the seed generator before
	// inserting a fresh dataset.
	Clear(ctx context.Context) error

	Close() error
}

// KindStats summarizes the stored records of one source kind.
type KindStats struct {
	Kind  schema.SourceKind
	Count int64
	First time.Time
	Last  time.Time
}

// RecordReader is the read-only query side of the log store. It is opened
// independently of any RecordStore so the viewer never shares a connection
// with the collector.
type RecordReader interface {
	// QueryRange returns all records with timestamps in [start, end],
	// inclusive, ascending by timestamp.
	QueryRange(ctx context.Context, start, end time.Time) ([]schema.LogRecord, error)

	// Stats returns per-kind record counts and timestamp bounds.
	Stats(ctx context.Context) ([]KindStats, error)

	Close() error
}

// Sensor reads instantaneous environmental values from the local device.
// Read may fail transiently (device timing errors); callers skip the
// reading and poll again at the next interval.
type Sensor interface {
	Read() (temperature, humidity float64, err error)
}
