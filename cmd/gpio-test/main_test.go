package main

import (
	"context"
	"testing"

	"github.com/fkcurrie/st7920-display-golang/internal/config"
)

func TestRunUnknownBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.GPIOBackend = "spidev"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, cfg); err == nil {
		t.Error("run() with unknown backend did not return error")
	}
}
