package sensor

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"

	"github.com/fkcurrie/st7920-display-golang/internal/types"
)

// BME280 reads a Bosch BME280 over I²C
type BME280 struct {
	bus i2c.BusCloser
	dev *bmxx80.Dev
}

// NewBME280 opens the I²C bus by name ("" for the first one) and the sensor
// at addr. host.Init must have been called.
func NewBME280(busName string, addr uint16) (*BME280, error) {
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus: %w", err)
	}
	dev, err := bmxx80.NewI2C(bus, addr, &bmxx80.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to open BME280 at %#x: %w", addr, err)
	}
	return &BME280{bus: bus, dev: dev}, nil
}

// Read senses one sample
func (s *BME280) Read(ctx context.Context) (types.Reading, error) {
	if err := ctx.Err(); err != nil {
		return types.Reading{}, err
	}
	var env physic.Env
	if err := s.dev.Sense(&env); err != nil {
		return types.Reading{}, fmt.Errorf("failed to read BME280: %w", err)
	}
	return types.Reading{
		Temperature: Celsius(env.Temperature),
		Humidity:    Percent(env.Humidity),
		Time:        time.Now(),
	}, nil
}

// Close halts the sensor and releases the bus
func (s *BME280) Close() error {
	if err := s.dev.Halt(); err != nil {
		s.bus.Close()
		return err
	}
	return s.bus.Close()
}

// Celsius converts a periph temperature to degrees Celsius
func Celsius(t physic.Temperature) float64 {
	return float64(t-physic.ZeroCelsius) / float64(physic.Celsius)
}

// Percent converts a periph relative humidity to percent
func Percent(h physic.RelativeHumidity) float64 {
	return float64(h) / float64(physic.PercentRH)
}
