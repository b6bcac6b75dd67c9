// Package logstore implements the append-only log store on SQLite.
// One table holds every reading: logs(timestamp TEXT, type TEXT, json TEXT).
// The collector opens a single write handle; the viewer opens independent
// read-only handles, so the two sides never share a connection.
package logstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS logs (
		timestamp TEXT NOT NULL,
		type TEXT NOT NULL,
		json TEXT
	);
`

// Store is the write handle of the log store.
type Store struct {
	db *sql.DB
}

var _ contract.RecordStore = &Store{} // Compile-time check

// Open opens (and bootstraps, if needed) the log database for writing.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open log store at %q: %w. Ensure the directory is writable", dbPath, err)
	}
	// Limit SQLite to a single open connection to avoid "database is locked" errors
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to log store at %q: %w", dbPath, err)
	}
	if _, err := db.Exec(createTableQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create logs table: %w", err)
	}
	return &Store{db: db}, nil
}

// Append writes one record to the log.
func (s *Store) Append(ctx context.Context, rec schema.LogRecord) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO logs (timestamp, type, json) VALUES (?, ?, ?)",
		schema.FormatTimestamp(rec.Timestamp), string(rec.Kind), rec.Payload)
	if err != nil {
		return fmt.Errorf("failed to append %s record: %w", rec.Kind, err)
	}
	return nil
}

// Clear deletes every record from the log.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM logs"); err != nil {
		return fmt.Errorf("failed to clear logs: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Reader is a read-only handle of the log store.
type Reader struct {
	db *sql.DB
}

var _ contract.RecordReader = &Reader{} // Compile-time check

// OpenReader opens the log database in read-only mode. The returned handle
// is safe to use while a collector process holds the write handle.
func OpenReader(dbPath string) (*Reader, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open log store at %q for reading: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to log store at %q: %w. Run collect or seed first", dbPath, err)
	}
	return &Reader{db: db}, nil
}

// QueryRange returns all records in [start, end], inclusive, ascending by
// timestamp. Ties keep insertion order (SQLite rowid order within equal
// timestamp text).
func (r *Reader) QueryRange(ctx context.Context, start, end time.Time) ([]schema.LogRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT timestamp, type, json FROM logs WHERE timestamp BETWEEN ? AND ? ORDER BY timestamp ASC",
		schema.FormatTimestamp(start), schema.FormatTimestamp(end))
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.LogRecord
	for rows.Next() {
		var ts, kind string
		var payload sql.NullString
		if err := rows.Scan(&ts, &kind, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		timestamp, err := schema.ParseTimestamp(ts)
		if err != nil {
			// A row written by hand or by an older tool; skip it rather
			// than failing the whole window.
			continue
		}
		records = append(records, schema.LogRecord{
			Timestamp: timestamp,
			Kind:      schema.SourceKind(kind),
			Payload:   payload.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log rows: %w", err)
	}
	return records, nil
}

// Stats returns per-kind record counts and timestamp bounds.
func (r *Reader) Stats(ctx context.Context) ([]contract.KindStats, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT type, COUNT(*), MIN(timestamp), MAX(timestamp) FROM logs GROUP BY type ORDER BY type")
	if err != nil {
		return nil, fmt.Errorf("failed to query log stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []contract.KindStats
	for rows.Next() {
		var kind string
		var count int64
		var first, last sql.NullString
		if err := rows.Scan(&kind, &count, &first, &last); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		entry := contract.KindStats{Kind: schema.SourceKind(kind), Count: count}
		if first.Valid {
			if t, err := schema.ParseTimestamp(first.String); err == nil {
				entry.First = t
			}
		}
		if last.Valid {
			if t, err := schema.ParseTimestamp(last.String); err == nil {
				entry.Last = t
			}
		}
		stats = append(stats, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stats rows: %w", err)
	}
	return stats, nil
}

// Close releases the underlying database handle.
func (r *Reader) Close() error {
	return r.db.Close()
}
