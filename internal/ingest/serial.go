// Package ingest implements the stream readers and the supervisor that
// feed the append-only log store: a newline-delimited JSON reader on the
// serial line and a fixed-interval poller on the local environment sensor.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/loggraph/loggraph/internal"
	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

// SerialReader consumes newline-delimited text from the serial connection.
// Lines that parse as JSON objects are stored verbatim as SERIAL records;
// anything else is reported and dropped. The reader never retries a bad
// line, it proceeds to the next one.
type SerialReader struct {
	store  contract.RecordStore
	stream io.ReadWriter
	now    nowFunc

	// Echo state. The sensor poller calls EchoTemperature from its own
	// goroutine, so writes to the line and the last-sent value are
	// serialized behind mu. The value lives here, on the reader that owns
	// the connection, not in any shared global.
	mu       sync.Mutex
	lastSent string
}

// NewSerialReader returns a reader over an open serial connection.
func NewSerialReader(store contract.RecordStore, stream io.ReadWriter, now nowFunc) *SerialReader {
	return &SerialReader{store: store, stream: stream, now: now}
}

// Name implements the Reader interface.
func (r *SerialReader) Name() string { return "serial" }

// Run reads lines until the stream ends or ctx is cancelled. Per-line
// failures (malformed JSON, store write errors) are logged and skipped;
// only stream-level termination ends the loop. Lines are read with a
// growing buffer, so no line length can end the reader.
func (r *SerialReader) Run(ctx context.Context) error {
	buffered := bufio.NewReader(r.stream)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line, err := buffered.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			r.handleLine(ctx, trimmed)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("serial stream read failed: %w", err)
		}
	}
}

// handleLine validates and stores one received line.
func (r *SerialReader) handleLine(ctx context.Context, line string) {
	if _, err := schema.DecodePayload(line); err != nil {
		internal.Warningf("non-JSON line received: %s", line)
		return
	}
	rec := schema.LogRecord{Timestamp: r.now(), Kind: schema.SerialKind, Payload: line}
	if err := r.store.Append(ctx, rec); err != nil {
		internal.Warningf("failed to store serial record: %v", err)
		return
	}
	internal.Recordf("serial record stored: %s", line)
}

// EchoTemperature writes the reading back over the serial line, at most
// once per changed value, to avoid redundant writes to a slow line.
func (r *SerialReader) EchoTemperature(value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	formatted := fmt.Sprintf("%.1f", value)
	if formatted == r.lastSent {
		return
	}
	if _, err := fmt.Fprintf(r.stream, "%s\n", formatted); err != nil {
		internal.Warningf("failed to echo temperature over serial: %v", err)
		return
	}
	r.lastSent = formatted
	internal.Echof("temperature echoed over serial: %s", formatted)
}
