package display

import (
	"context"
	"fmt"

	"golang.org/x/image/font"

	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
	"github.com/fkcurrie/st7920-display-golang/internal/scroll"
)

// Banner scrolls a text tiled across the display one pixel per frame
type Banner struct {
	text     string
	face     font.Face
	baseline int
	state    *scroll.State
}

// NewBanner measures text with face on c and returns a banner starting at
// offset zero
func NewBanner(c *gfx.Canvas, text string, face font.Face, baseline int) (*Banner, error) {
	c.SetFont(face)
	state, err := scroll.New(c.UTF8Width(text))
	if err != nil {
		return nil, fmt.Errorf("failed to measure banner %q: %w", text, err)
	}
	return &Banner{
		text:     text,
		face:     face,
		baseline: baseline,
		state:    state,
	}, nil
}

// State returns the scroll state
func (b *Banner) State() *scroll.State {
	return b.state
}

// Draw renders the tiles for the current offset, then advances it
func (b *Banner) Draw(_ context.Context, c *gfx.Canvas) error {
	err := c.Draw(func(c *gfx.Canvas) {
		c.SetFont(b.face)
		b.state.Fill(c.DisplayWidth(), func(x int) {
			c.DrawUTF8(x, b.baseline, b.text)
		})
	})
	b.state.Advance()
	return err
}
