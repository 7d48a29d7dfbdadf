package display

import (
	"fmt"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/fkcurrie/st7920-display-golang/internal/types"
	"github.com/fkcurrie/st7920-display-golang/pkg/gpio"
	"github.com/fkcurrie/st7920-display-golang/pkg/st7920"
)

// OpenDevice creates the display selected by cfg
func OpenDevice(cfg types.DisplayConfig) (types.Device, error) {
	switch cfg.Driver {
	case "png":
		return NewPNGDevice(cfg.Width, cfg.Height, cfg.SnapshotPath, 4), nil
	case "st7920", "":
		return openST7920(cfg)
	default:
		return nil, fmt.Errorf("unknown display driver %q", cfg.Driver)
	}
}

// hardware closes the SPI port together with the controller
type hardware struct {
	*st7920.Dev
	port spi.PortCloser
}

func (h *hardware) Close() error {
	err := h.Dev.Close()
	if cerr := h.port.Close(); err == nil {
		err = cerr
	}
	return err
}

func openST7920(cfg types.DisplayConfig) (types.Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph: %w", err)
	}

	port, err := spireg.Open(cfg.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %q: %w", cfg.SPIPort, err)
	}

	backend := gpio.Backend(cfg.GPIOBackend)
	cs, err := gpio.Open(backend, cfg.GPIOChip, cfg.CSPin)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to open chip select pin: %w", err)
	}
	rst, err := gpio.Open(backend, cfg.GPIOChip, cfg.ResetPin)
	if err != nil {
		cs.Close()
		port.Close()
		return nil, fmt.Errorf("failed to open reset pin: %w", err)
	}

	opts := st7920.DefaultOpts
	opts.Width, opts.Height = cfg.Width, cfg.Height
	dev, err := st7920.NewSPI(port, cs, rst, &opts)
	if err != nil {
		rst.Close()
		cs.Close()
		port.Close()
		return nil, err
	}
	return &hardware{Dev: dev, port: port}, nil
}
