package display

import (
	"context"
	"time"

	"golang.org/x/image/font"

	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
)

// StaticText draws a fixed string at a fixed position
type StaticText struct {
	Text string
	X, Y int
	Face font.Face
	// PageDelay is waited after drawing each page
	PageDelay time.Duration
}

// Draw renders the text page by page
func (s *StaticText) Draw(ctx context.Context, c *gfx.Canvas) error {
	return c.Draw(func(c *gfx.Canvas) {
		c.SetFont(s.Face)
		c.DrawStr(s.X, s.Y, s.Text)
		sleep(ctx, s.PageDelay)
	})
}
