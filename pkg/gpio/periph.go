package gpio

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// PeriphPin adapts a periph.io output pin to OutputPin
type PeriphPin struct {
	pin gpio.PinOut
}

// NewPeriphPin looks up a pin by number in the periph.io registry.
// periph.io/x/host/v3 must have been initialized.
func NewPeriphPin(number int) (*PeriphPin, error) {
	p := gpioreg.ByName(strconv.Itoa(number))
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %d not found", number)
	}
	return WrapPeriph(p)
}

// WrapPeriph drives p low and returns it as an OutputPin
func WrapPeriph(p gpio.PinOut) (*PeriphPin, error) {
	if err := p.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("failed to set %s as output: %w", p, err)
	}
	glog.V(1).Infof("gpio: using periph pin %s", p)
	return &PeriphPin{pin: p}, nil
}

// SetValue drives the pin low (0) or high (1)
func (p *PeriphPin) SetValue(value int) error {
	return p.pin.Out(gpio.Level(value != 0))
}

// Close halts the pin
func (p *PeriphPin) Close() error {
	return p.pin.Halt()
}
