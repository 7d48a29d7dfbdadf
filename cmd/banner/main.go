package main

import (
	"flag"
	"log"
	"time"

	"github.com/fkcurrie/st7920-display-golang/internal/app"
	"github.com/fkcurrie/st7920-display-golang/internal/config"
	"github.com/fkcurrie/st7920-display-golang/internal/display"
	"github.com/fkcurrie/st7920-display-golang/internal/fonts"
	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
)

func main() {
	var opts app.Options
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg := opts.LoadConfig()
	ctx, cancel := app.SignalContext()
	defer cancel()

	if err := app.Run(ctx, cfg, buildScene); err != nil {
		log.Fatalf("Failed to run: %v", err)
	}
}

func buildScene(c *gfx.Canvas, cfg *config.Config) (display.Scene, time.Duration, error) {
	face, err := fonts.Load(cfg.Banner.Font)
	if err != nil {
		return nil, 0, err
	}
	banner, err := display.NewBanner(c, cfg.Banner.Text, face, cfg.Banner.Baseline)
	if err != nil {
		return nil, 0, err
	}
	log.Printf("Scrolling %q, %d pixels wide", cfg.Banner.Text, banner.State().Width())
	return banner, time.Duration(cfg.Banner.DelayMs) * time.Millisecond, nil
}
