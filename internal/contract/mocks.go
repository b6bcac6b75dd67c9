package contract

import (
	"context"
	"time"

	"github.com/loggraph/loggraph/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordStore is a mock implementation of RecordStore for testing.
type MockRecordStore struct {
	mock.Mock
}

var _ RecordStore = &MockRecordStore{} // Compile-time check

// Append implements the RecordStore interface.
func (m *MockRecordStore) Append(ctx context.Context, rec schema.LogRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// Clear implements the RecordStore interface.
func (m *MockRecordStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close implements the RecordStore interface.
func (m *MockRecordStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockRecordReader is a mock implementation of RecordReader for testing.
type MockRecordReader struct {
	mock.Mock
}

var _ RecordReader = &MockRecordReader{} // Compile-time check

// QueryRange implements the RecordReader interface.
func (m *MockRecordReader) QueryRange(ctx context.Context, start, end time.Time) ([]schema.LogRecord, error) {
	args := m.Called(ctx, start, end)
	recs, _ := args.Get(0).([]schema.LogRecord)
	return recs, args.Error(1)
}

// Stats implements the RecordReader interface.
func (m *MockRecordReader) Stats(ctx context.Context) ([]KindStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]KindStats)
	return stats, args.Error(1)
}

// Close implements the RecordReader interface.
func (m *MockRecordReader) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockSensor is a mock implementation of Sensor for testing.
type MockSensor struct {
	mock.Mock
}

var _ Sensor = &MockSensor{} // Compile-time check

// Read implements the Sensor interface.
func (m *MockSensor) Read() (float64, float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}
