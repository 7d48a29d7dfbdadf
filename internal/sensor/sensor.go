// Package sensor provides temperature and humidity readings.
package sensor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"periph.io/x/host/v3"

	"github.com/fkcurrie/st7920-display-golang/internal/types"
)

// Source produces readings
type Source interface {
	Read(ctx context.Context) (types.Reading, error)
	Close() error
}

// Open returns the source selected by cfg
func Open(cfg types.SensorConfig) (Source, error) {
	switch cfg.Kind {
	case "static", "":
		return NewStatic(cfg.Temperature, cfg.Humidity), nil
	case "bme280":
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize periph: %w", err)
		}
		s, err := NewBME280(cfg.I2CBus, cfg.I2CAddr)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown sensor %q", cfg.Kind)
	}
}

// Static always returns the same values
type Static struct {
	mu          sync.Mutex
	temperature float64
	humidity    float64
}

// NewStatic creates a source with fixed values
func NewStatic(temperature, humidity float64) *Static {
	return &Static{temperature: temperature, humidity: humidity}
}

// Set changes the values returned by Read
func (s *Static) Set(temperature, humidity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperature, s.humidity = temperature, humidity
}

// Read returns the fixed values
func (s *Static) Read(ctx context.Context) (types.Reading, error) {
	if err := ctx.Err(); err != nil {
		return types.Reading{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.Reading{
		Temperature: s.temperature,
		Humidity:    s.humidity,
		Time:        time.Now(),
	}, nil
}

// Close does nothing
func (s *Static) Close() error {
	return nil
}
