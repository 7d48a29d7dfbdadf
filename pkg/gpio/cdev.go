package gpio

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/warthog618/go-gpiocdev"
)

// DefaultChip is the GPIO character device holding the header pins
const DefaultChip = "gpiochip0"

// NewLine requests offset on chip as an output line, initially low.
// The returned *gpiocdev.Line satisfies OutputPin.
func NewLine(chip string, offset int) (*gpiocdev.Line, error) {
	if chip == "" {
		chip = DefaultChip
	}
	glog.V(1).Infof("gpio: requesting %s line %d as output", chip, offset)
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer("st7920"))
	if err != nil {
		return nil, fmt.Errorf("failed to request %s line %d: %w", chip, offset, err)
	}
	return line, nil
}
