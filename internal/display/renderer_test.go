package display

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
)

type funcScene func(ctx context.Context, c *gfx.Canvas) error

func (f funcScene) Draw(ctx context.Context, c *gfx.Canvas) error { return f(ctx, c) }

func TestRendererStart(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "ok"},
		{name: "failing frames", err: errors.New("bus error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newCanvas(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			draws := 0
			scene := funcScene(func(ctx context.Context, c *gfx.Canvas) error {
				draws++
				if draws == 3 {
					cancel()
				}
				return tt.err
			})

			r := NewRenderer(c, scene, time.Millisecond)
			done := make(chan error, 1)
			go func() { done <- r.Start(ctx) }()

			select {
			case err := <-done:
				if !errors.Is(err, context.Canceled) {
					t.Errorf("Start() error = %v, want context.Canceled", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Start() did not return after cancel")
			}
			if r.Frames() != 3 {
				t.Errorf("Frames() = %d, want 3", r.Frames())
			}
		})
	}
}

func TestRendererSetScene(t *testing.T) {
	c, _ := newCanvas(t)
	r := NewRenderer(c, nil, 0)

	if err := r.RenderOnce(context.Background()); err != nil {
		t.Fatalf("RenderOnce() without scene error = %v", err)
	}
	if r.Frames() != 0 {
		t.Errorf("Frames() = %d without scene, want 0", r.Frames())
	}

	called := false
	r.SetScene(funcScene(func(ctx context.Context, c *gfx.Canvas) error {
		called = true
		return nil
	}))
	if err := r.RenderOnce(context.Background()); err != nil {
		t.Fatalf("RenderOnce() error = %v", err)
	}
	if !called || r.Frames() != 1 {
		t.Errorf("scene called = %v, Frames() = %d", called, r.Frames())
	}
}
