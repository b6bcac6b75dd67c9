package ingest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/internal/logstore"
)

// RunCollector wires the full ingestion pipeline and blocks until ctx is
// cancelled: one write handle on the log store, the serial line reader
// and the sensor poller under one supervisor. A serial device that
// cannot be opened is the single startup-fatal condition; everything
// after that point is isolated per reader.
func RunCollector(ctx context.Context, cfg *contract.Config, sensor contract.Sensor) error {
	store, err := logstore.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	port, err := os.OpenFile(cfg.SerialPort, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("cannot open serial port %s: %w. Check that the device is connected and the port name is correct", cfg.SerialPort, err)
	}

	serial := NewSerialReader(store, port, time.Now)
	poller := NewSensorPoller(store, sensor, cfg.PollInterval, time.Now, serial.EchoTemperature)

	supervisor := NewSupervisor(serial, poller)
	supervisor.CloseOnCancel(port)
	return supervisor.Run(ctx)
}
