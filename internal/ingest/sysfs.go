package ingest

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SysfsSensor reads temperature and humidity from Linux IIO/hwmon sysfs
// attribute files. Values are exposed in milli-units, as the kernel
// drivers for DHT-class sensors report them.
type SysfsSensor struct {
	TemperaturePath string
	HumidityPath    string
}

// Read implements the contract.Sensor interface. A failed or garbled
// attribute read is returned as an error; the device produces those
// transiently under timing pressure and callers skip that cycle.
func (s *SysfsSensor) Read() (float64, float64, error) {
	temperature, err := readMilliValue(s.TemperaturePath)
	if err != nil {
		return 0, 0, fmt.Errorf("temperature read failed: %w", err)
	}
	humidity, err := readMilliValue(s.HumidityPath)
	if err != nil {
		return 0, 0, fmt.Errorf("humidity read failed: %w", err)
	}
	return temperature, humidity, nil
}

// readMilliValue reads one sysfs attribute holding a milli-unit integer.
func readMilliValue(path string) (float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected attribute content %q: %w", strings.TrimSpace(string(raw)), err)
	}
	return float64(value) / 1000, nil
}
