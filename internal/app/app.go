// Package app wires configuration, display, scene and preview server into a
// running program.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fkcurrie/st7920-display-golang/internal/config"
	"github.com/fkcurrie/st7920-display-golang/internal/display"
	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
	"github.com/fkcurrie/st7920-display-golang/internal/preview"
)

// Options are the command line settings shared by all programs
type Options struct {
	ConfigPath  string
	SimPath     string
	PreviewAddr string
}

// RegisterFlags binds the options to fs
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "config.json", "Path to the JSON configuration file")
	fs.StringVar(&o.SimPath, "sim", "", "Write frames to this PNG file instead of the display")
	fs.StringVar(&o.PreviewAddr, "preview", "", "Serve the current frame over HTTP on this address")
}

// LoadConfig reads the configuration file, falling back to the defaults, and
// applies the command line overrides
func (o *Options) LoadConfig() *config.Config {
	cfg, err := config.LoadConfig(o.ConfigPath)
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if o.SimPath != "" {
		cfg.Display.Driver = "png"
		cfg.Display.SnapshotPath = o.SimPath
	}
	if o.PreviewAddr != "" {
		cfg.Preview.Addr = o.PreviewAddr
	}
	return cfg
}

// SceneFunc builds the scene of a program and returns the delay between
// frames
type SceneFunc func(c *gfx.Canvas, cfg *config.Config) (display.Scene, time.Duration, error)

// SignalContext returns a context cancelled on SIGINT or SIGTERM
func SignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()
	return ctx, cancel
}

// Run opens the display, builds the scene and renders it until ctx is
// cancelled
func Run(ctx context.Context, cfg *config.Config, build SceneFunc) error {
	dev, err := display.OpenDevice(cfg.Display)
	if err != nil {
		return fmt.Errorf("failed to open display: %w", err)
	}
	defer dev.Close()

	canvas, err := gfx.New(dev, cfg.Display.PageRows)
	if err != nil {
		return fmt.Errorf("failed to create canvas: %w", err)
	}
	if err := canvas.Begin(); err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Printf("Display %dx%d ready, %d rows per page", canvas.DisplayWidth(), canvas.DisplayHeight(), canvas.PageRows())

	scene, delay, err := build(canvas, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	previewErr := make(chan error, 1)
	if cfg.Preview.Addr != "" {
		srv := preview.NewServer(cfg.Preview, canvas)
		go func() {
			if err := srv.Start(ctx); err != nil {
				log.Printf("Preview stopped: %v", err)
			}
			close(previewErr)
		}()
	} else {
		close(previewErr)
	}

	renderer := display.NewRenderer(canvas, scene, delay)
	err = renderer.Start(ctx)
	cancel()
	<-previewErr
	log.Printf("Rendered %d frames", renderer.Frames())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
