package logstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loggraph/loggraph/schema"
)

var baseTime = time.Date(2026, 8, 15, 10, 0, 0, 0, time.Local)

// openTestStore creates a fresh store in a temp directory and cleans it up.
func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, dbPath
}

// appendAt is a test helper inserting one record at an offset from baseTime.
func appendAt(t *testing.T, store *Store, offset time.Duration, kind schema.SourceKind, payload string) {
	t.Helper()
	require.NoError(t, store.Append(context.Background(), schema.LogRecord{
		Timestamp: baseTime.Add(offset),
		Kind:      kind,
		Payload:   payload,
	}))
}

// TestStoreAppendAndQueryRange verifies the write-then-read roundtrip and
// the inclusive range bounds.
func TestStoreAppendAndQueryRange(t *testing.T) {
	store, dbPath := openTestStore(t)
	ctx := context.Background()

	appendAt(t, store, -time.Hour, schema.SerialKind, `{"niveau_utile": 30}`)
	appendAt(t, store, 0, schema.SerialKind, `{"niveau_utile": 31}`)
	appendAt(t, store, 10*time.Minute, schema.SensorKind, `{"temperature": 21.4}`)
	appendAt(t, store, time.Hour, schema.SensorKind, `{"temperature": 21.5}`)

	reader, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	// Bounds are inclusive on both ends.
	records, err := reader.QueryRange(ctx, baseTime, baseTime.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.True(t, records[0].Timestamp.Equal(baseTime))
	assert.Equal(t, schema.SerialKind, records[0].Kind)
	assert.Equal(t, `{"niveau_utile": 31}`, records[0].Payload)
	assert.Equal(t, schema.SensorKind, records[1].Kind)
	assert.True(t, records[2].Timestamp.Equal(baseTime.Add(time.Hour)))
}

// TestStoreQueryRangeOrdering verifies ascending timestamp order even when
// rows were inserted out of order.
func TestStoreQueryRangeOrdering(t *testing.T) {
	store, dbPath := openTestStore(t)

	appendAt(t, store, 30*time.Minute, schema.SerialKind, `{"a": 3}`)
	appendAt(t, store, 10*time.Minute, schema.SerialKind, `{"a": 1}`)
	appendAt(t, store, 20*time.Minute, schema.SerialKind, `{"a": 2}`)

	reader, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	records, err := reader.QueryRange(context.Background(), baseTime, baseTime.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].Timestamp.Before(records[1].Timestamp))
	assert.True(t, records[1].Timestamp.Before(records[2].Timestamp))
}

// TestStoreClear verifies Clear removes every record.
func TestStoreClear(t *testing.T) {
	store, dbPath := openTestStore(t)
	ctx := context.Background()

	appendAt(t, store, 0, schema.SerialKind, `{"a": 1}`)
	require.NoError(t, store.Clear(ctx))

	reader, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	records, err := reader.QueryRange(ctx, baseTime.Add(-time.Hour), baseTime.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestReaderStats verifies per-kind counts and timestamp bounds.
func TestReaderStats(t *testing.T) {
	store, dbPath := openTestStore(t)

	appendAt(t, store, 0, schema.SerialKind, `{"a": 1}`)
	appendAt(t, store, time.Minute, schema.SerialKind, `{"a": 2}`)
	appendAt(t, store, 2*time.Minute, schema.SensorKind, `{"temperature": 20}`)

	reader, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	stats, err := reader.Stats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// ORDER BY type puts SENSOR before SERIAL.
	assert.Equal(t, schema.SensorKind, stats[0].Kind)
	assert.Equal(t, int64(1), stats[0].Count)
	assert.Equal(t, schema.SerialKind, stats[1].Kind)
	assert.Equal(t, int64(2), stats[1].Count)
	assert.True(t, stats[1].First.Equal(baseTime))
	assert.True(t, stats[1].Last.Equal(baseTime.Add(time.Minute)))
}

// TestOpenReaderMissingDatabase verifies the read-only open refuses to
// create a database that was never written.
func TestOpenReaderMissingDatabase(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
