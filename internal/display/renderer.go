package display

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
)

// Scene draws one complete frame on a canvas
type Scene interface {
	Draw(ctx context.Context, c *gfx.Canvas) error
}

// Renderer handles the display rendering loop
type Renderer struct {
	canvas *gfx.Canvas
	delay  time.Duration
	scene  Scene
	mu     sync.RWMutex
	frames atomic.Uint64
}

// NewRenderer creates a new renderer instance that waits delay after each
// frame
func NewRenderer(canvas *gfx.Canvas, scene Scene, delay time.Duration) *Renderer {
	return &Renderer{
		canvas: canvas,
		scene:  scene,
		delay:  delay,
	}
}

// SetScene sets the scene to render
func (r *Renderer) SetScene(scene Scene) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scene = scene
}

// Frames returns the number of frames rendered so far
func (r *Renderer) Frames() uint64 {
	return r.frames.Load()
}

// Start renders frames until ctx is cancelled. Frame errors are logged and
// the loop keeps going.
func (r *Renderer) Start(ctx context.Context) error {
	for {
		if err := r.RenderOnce(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Failed to render: %v", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.delay):
		}
	}
}

// RenderOnce renders a single frame
func (r *Renderer) RenderOnce(ctx context.Context) error {
	r.mu.RLock()
	scene := r.scene
	r.mu.RUnlock()

	if scene == nil {
		return nil
	}
	defer r.frames.Add(1)
	return scene.Draw(ctx, r.canvas)
}

// sleep waits d or until ctx is done
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
