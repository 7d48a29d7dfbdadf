package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"periph.io/x/host/v3"

	"github.com/fkcurrie/st7920-display-golang/internal/app"
	"github.com/fkcurrie/st7920-display-golang/internal/config"
	"github.com/fkcurrie/st7920-display-golang/pkg/gpio"
)

var (
	interval = flag.Duration("interval", time.Second, "Time between toggles")
)

func main() {
	var opts app.Options
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	log.Println("Starting GPIO test...")
	ctx, cancel := app.SignalContext()
	defer cancel()

	if err := run(ctx, opts.LoadConfig()); err != nil {
		cancel()
		log.Fatalf("GPIO test failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	backend := gpio.Backend(cfg.Display.GPIOBackend)
	if backend == gpio.BackendPeriph {
		if _, err := host.Init(); err != nil {
			return fmt.Errorf("failed to initialize periph: %w", err)
		}
	}

	lines := map[string]int{"cs": cfg.Display.CSPin, "reset": cfg.Display.ResetPin}
	pins := make(map[string]gpio.OutputPin, len(lines))
	for name, number := range lines {
		pin, err := gpio.Open(backend, cfg.Display.GPIOChip, number)
		if err != nil {
			return fmt.Errorf("failed to request %s line %d: %w", name, number, err)
		}
		defer pin.Close()
		pins[name] = pin
		log.Printf("Requested %s line %d on %s via %s", name, number, cfg.Display.GPIOChip, backend)
	}

	// Toggle the lines until terminated
	value := 0
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("Received shutdown signal")
			return nil
		case <-ticker.C:
			value ^= 1
			for name, pin := range pins {
				if err := pin.SetValue(value); err != nil {
					log.Printf("Failed to set %s value: %v", name, err)
				}
			}
			log.Printf("Set GPIO value to %d", value)
		}
	}
}
