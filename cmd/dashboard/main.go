package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/fkcurrie/st7920-display-golang/internal/app"
	"github.com/fkcurrie/st7920-display-golang/internal/config"
	"github.com/fkcurrie/st7920-display-golang/internal/display"
	"github.com/fkcurrie/st7920-display-golang/internal/fonts"
	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
	"github.com/fkcurrie/st7920-display-golang/internal/sensor"
)

func main() {
	var opts app.Options
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	ctx, cancel := app.SignalContext()
	defer cancel()

	if err := run(ctx, opts.LoadConfig()); err != nil {
		cancel()
		log.Fatalf("Failed to run: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	source, err := sensor.Open(cfg.Dashboard.Sensor)
	if err != nil {
		return fmt.Errorf("failed to open sensor: %w", err)
	}
	defer source.Close()

	build := func(c *gfx.Canvas, cfg *config.Config) (display.Scene, time.Duration, error) {
		valueFace, err := fonts.Load(cfg.Dashboard.ValueFont)
		if err != nil {
			return nil, 0, err
		}
		labelFace, err := fonts.Load(cfg.Dashboard.LabelFont)
		if err != nil {
			return nil, 0, err
		}
		poll := time.Duration(cfg.Dashboard.PollIntervalMs) * time.Millisecond
		dash, err := display.NewDashboard(source, valueFace, labelFace, poll)
		if err != nil {
			return nil, 0, err
		}
		return dash, time.Duration(cfg.Dashboard.DelayMs) * time.Millisecond, nil
	}
	return app.Run(ctx, cfg, build)
}
