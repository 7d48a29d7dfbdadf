// Package gpio provides digital output lines for display control signals.
package gpio

import (
	"fmt"
	"time"
)

// OutputPin is a single digital output line
type OutputPin interface {
	// SetValue drives the line low (0) or high (1)
	SetValue(value int) error
	// Close releases the line
	Close() error
}

// Backend selects how lines are requested from the kernel
type Backend string

const (
	// BackendCdev uses the GPIO character device (/dev/gpiochipN)
	BackendCdev Backend = "gpiocdev"
	// BackendPeriph resolves lines through the periph.io pin registry
	BackendPeriph Backend = "periph"
	// BackendSysfs uses the legacy /sys/class/gpio interface
	BackendSysfs Backend = "sysfs"
)

// Open requests line number as an output, initially low
func Open(backend Backend, chip string, number int) (OutputPin, error) {
	var (
		pin OutputPin
		err error
	)
	switch backend {
	case BackendCdev, "":
		pin, err = NewLine(chip, number)
	case BackendPeriph:
		pin, err = NewPeriphPin(number)
	case BackendSysfs:
		pin, err = NewPin(number)
	default:
		return nil, fmt.Errorf("unknown GPIO backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return pin, nil
}

// Pulse drives the pin high for duration, then low
func Pulse(p OutputPin, duration time.Duration) error {
	if err := p.SetValue(1); err != nil {
		return err
	}
	time.Sleep(duration)
	return p.SetValue(0)
}

// Nop is an OutputPin for signals that are not wired
type Nop struct{}

// SetValue ignores the value
func (Nop) SetValue(int) error { return nil }

// Close does nothing
func (Nop) Close() error { return nil }
