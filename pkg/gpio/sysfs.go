package gpio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/golang/glog"
)

// sysfsRoot is the sysfs GPIO class directory
var sysfsRoot = "/sys/class/gpio"

// exportDelay gives udev time to create the pin directory
var exportDelay = 100 * time.Millisecond

// Pin represents a GPIO pin using the sysfs interface
type Pin struct {
	number int
	mu     sync.Mutex
}

// NewPin exports a pin through sysfs and sets it as output
func NewPin(number int) (*Pin, error) {
	glog.V(1).Infof("gpio: exporting sysfs pin %d", number)

	if err := writeFile("export", strconv.Itoa(number)); err != nil {
		// An already exported pin reports busy
		if !os.IsExist(err) && !errors.Is(err, syscall.EBUSY) {
			return nil, fmt.Errorf("failed to export pin %d: %w", number, err)
		}
		glog.V(1).Infof("gpio: pin %d already exported", number)
	}

	time.Sleep(exportDelay)

	if err := writeFile(pinFile(number, "direction"), "low"); err != nil {
		return nil, fmt.Errorf("failed to set pin %d direction: %w", number, err)
	}

	return &Pin{number: number}, nil
}

// SetValue sets the value of the GPIO pin (0 or 1)
func (p *Pin) SetValue(value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if value != 0 {
		value = 1
	}
	if err := writeFile(pinFile(p.number, "value"), strconv.Itoa(value)); err != nil {
		return fmt.Errorf("failed to write pin %d: %w", p.number, err)
	}
	return nil
}

// Close unexports the pin
func (p *Pin) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := writeFile("unexport", strconv.Itoa(p.number)); err != nil {
		glog.Warningf("gpio: failed to unexport pin %d: %v", p.number, err)
	}
	return nil
}

func pinFile(number int, name string) string {
	return filepath.Join(fmt.Sprintf("gpio%d", number), name)
}

func writeFile(name, value string) error {
	f, err := os.OpenFile(filepath.Join(sysfsRoot, name), os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(value)
	return err
}
