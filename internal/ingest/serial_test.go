package ingest

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

var fixedTime = time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)

// fixedNow is the deterministic clock used across ingestion tests.
func fixedNow() time.Time { return fixedTime }

// fakeStream is an in-memory serial line: reads come from the input,
// echo writes land in the output buffer.
type fakeStream struct {
	io.Reader
	out bytes.Buffer
}

func (f *fakeStream) Write(p []byte) (int, error) {
	return f.out.Write(p)
}

// TestSerialReaderStoresValidLines verifies accepted lines are stored
// verbatim with the SERIAL kind.
func TestSerialReaderStoresValidLines(t *testing.T) {
	store := &contract.MockRecordStore{}
	stream := &fakeStream{Reader: strings.NewReader(
		"{\"niveau_utile\": 32.5}\n" +
			"  {\"volume_litres\": 325}  \n",
	)}
	store.On("Append", mock.Anything, schema.LogRecord{
		Timestamp: fixedTime,
		Kind:      schema.SerialKind,
		Payload:   `{"niveau_utile": 32.5}`,
	}).Return(nil)
	store.On("Append", mock.Anything, schema.LogRecord{
		Timestamp: fixedTime,
		Kind:      schema.SerialKind,
		Payload:   `{"volume_litres": 325}`,
	}).Return(nil)

	reader := NewSerialReader(store, stream, fixedNow)
	require.NoError(t, reader.Run(context.Background()))

	store.AssertExpectations(t)
}

// TestSerialReaderSkipsMalformedLines verifies bad lines are dropped
// without ending the loop.
func TestSerialReaderSkipsMalformedLines(t *testing.T) {
	store := &contract.MockRecordStore{}
	stream := &fakeStream{Reader: strings.NewReader(
		"garbage line\n" +
			"42\n" +
			"\n" +
			"{\"niveau_utile\": 30}\n",
	)}
	store.On("Append", mock.Anything, mock.MatchedBy(func(rec schema.LogRecord) bool {
		return rec.Payload == `{"niveau_utile": 30}`
	})).Return(nil)

	reader := NewSerialReader(store, stream, fixedNow)
	require.NoError(t, reader.Run(context.Background()))

	store.AssertNumberOfCalls(t, "Append", 1)
}

// TestSerialReaderSurvivesOversizedLines verifies a line far beyond any
// fixed read buffer is skipped like any other bad line, and the lines
// after it still get stored.
func TestSerialReaderSurvivesOversizedLines(t *testing.T) {
	store := &contract.MockRecordStore{}
	oversized := strings.Repeat("x", 70*1024)
	stream := &fakeStream{Reader: strings.NewReader(
		oversized + "\n" +
			"{\"niveau_utile\": 30}\n",
	)}
	store.On("Append", mock.Anything, mock.MatchedBy(func(rec schema.LogRecord) bool {
		return rec.Payload == `{"niveau_utile": 30}`
	})).Return(nil)

	reader := NewSerialReader(store, stream, fixedNow)
	require.NoError(t, reader.Run(context.Background()))

	store.AssertNumberOfCalls(t, "Append", 1)
}

// TestSerialReaderSurvivesStoreErrors verifies a failed write skips to
// the next line instead of stopping the reader.
func TestSerialReaderSurvivesStoreErrors(t *testing.T) {
	store := &contract.MockRecordStore{}
	stream := &fakeStream{Reader: strings.NewReader(
		"{\"a\": 1}\n{\"a\": 2}\n",
	)}
	store.On("Append", mock.Anything, mock.Anything).Return(assert.AnError)

	reader := NewSerialReader(store, stream, fixedNow)
	require.NoError(t, reader.Run(context.Background()))

	store.AssertNumberOfCalls(t, "Append", 2)
}

// TestEchoTemperatureDeduplicates verifies the once-per-changed-value
// echo contract at display precision.
func TestEchoTemperatureDeduplicates(t *testing.T) {
	store := &contract.MockRecordStore{}
	stream := &fakeStream{Reader: strings.NewReader("")}
	reader := NewSerialReader(store, stream, fixedNow)

	reader.EchoTemperature(21.44)
	reader.EchoTemperature(21.41) // same "21.4" after formatting
	reader.EchoTemperature(21.5)
	reader.EchoTemperature(21.5)
	reader.EchoTemperature(21.4)

	assert.Equal(t, "21.4\n21.5\n21.4\n", stream.out.String())
}
