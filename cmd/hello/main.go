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

	log.Printf("Showing %q", cfg.Text.Text)
	if err := app.Run(ctx, cfg, buildScene); err != nil {
		log.Fatalf("Failed to run: %v", err)
	}
}

func buildScene(c *gfx.Canvas, cfg *config.Config) (display.Scene, time.Duration, error) {
	face, err := fonts.Load(cfg.Text.Font)
	if err != nil {
		return nil, 0, err
	}
	scene := &display.StaticText{
		Text:      cfg.Text.Text,
		X:         cfg.Text.X,
		Y:         cfg.Text.Y,
		Face:      face,
		PageDelay: time.Duration(cfg.Text.DelayMs) * time.Millisecond,
	}
	return scene, 0, nil
}
