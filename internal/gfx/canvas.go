// Package gfx is a page-buffered 1-bit drawing surface for small displays.
//
// The canvas keeps only a band of PageRows rows in memory. A frame is drawn by
// repeating the same drawing calls once per band:
//
//	c.FirstPage()
//	for {
//		c.DrawStr(14, 40, "Novotec")
//		if !c.NextPage() {
//			break
//		}
//	}
//
// Drawing calls never fail. Bus errors raised while flushing a band are kept
// and reported once by Err.
package gfx

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/fkcurrie/st7920-display-golang/internal/types"
)

// DrawColor selects how pixels are written
type DrawColor uint8

const (
	// ColorClear turns pixels off
	ColorClear DrawColor = iota
	// ColorSet turns pixels on
	ColorSet
	// ColorXOR inverts pixels
	ColorXOR
)

// FontMode selects whether glyph backgrounds are painted
type FontMode uint8

const (
	// FontModeSolid paints the glyph cell background in the inverse color
	FontModeSolid FontMode = iota
	// FontModeTransparent paints glyph pixels only
	FontModeTransparent
)

// Canvas draws into a band of rows and flushes it to a device
type Canvas struct {
	dev      types.Device
	width    int
	height   int
	pageRows int

	page *image1bit.VerticalLSB
	top  int

	face     font.Face
	color    DrawColor
	fontMode FontMode
	err      error

	// pending collects flushed bands until the frame is complete
	pending *image1bit.VerticalLSB
	mu      sync.Mutex
	frame   *image1bit.VerticalLSB
}

// New creates a canvas for dev holding pageRows rows at a time. pageRows is
// rounded up to a multiple of 8 and capped at the display height.
func New(dev types.Device, pageRows int) (*Canvas, error) {
	b := dev.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("invalid display bounds %v", b)
	}
	if pageRows <= 0 {
		return nil, fmt.Errorf("invalid page rows %d", pageRows)
	}
	pageRows = (pageRows + 7) &^ 7
	if pageRows > b.Dy() {
		pageRows = b.Dy()
	}

	full := image.Rect(0, 0, b.Dx(), b.Dy())
	return &Canvas{
		dev:      dev,
		width:    b.Dx(),
		height:   b.Dy(),
		pageRows: pageRows,
		page:     image1bit.NewVerticalLSB(image.Rect(0, 0, b.Dx(), pageRows)),
		color:    ColorSet,
		fontMode: FontModeTransparent,
		pending:  image1bit.NewVerticalLSB(full),
		frame:    image1bit.NewVerticalLSB(full),
	}, nil
}

// Begin initializes the display and clears it
func (c *Canvas) Begin() error {
	if err := c.dev.Init(); err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	c.clearPage()
	c.top = 0
	return nil
}

// DisplayWidth returns the display width in pixels
func (c *Canvas) DisplayWidth() int {
	return c.width
}

// DisplayHeight returns the display height in pixels
func (c *Canvas) DisplayHeight() int {
	return c.height
}

// PageRows returns the number of rows drawn per page
func (c *Canvas) PageRows() int {
	return c.pageRows
}

// SetDrawColor sets the color used by every drawing call
func (c *Canvas) SetDrawColor(color DrawColor) {
	c.color = color
}

// SetFontMode sets whether text paints its background
func (c *Canvas) SetFontMode(mode FontMode) {
	c.fontMode = mode
}

// FirstPage starts a new frame at the top band
func (c *Canvas) FirstPage() {
	c.top = 0
	c.clearPage()
}

// NextPage sends the current band to the display and reports whether
// another band has to be drawn.
func (c *Canvas) NextPage() bool {
	c.flush()
	c.top += c.pageRows
	if c.top >= c.height {
		c.completeFrame()
		c.top = 0
		return false
	}
	c.clearPage()
	return true
}

// Draw runs one complete frame, calling draw once per page, and returns the
// bus error of that frame if any.
func (c *Canvas) Draw(draw func(c *Canvas)) error {
	c.FirstPage()
	for {
		draw(c)
		if !c.NextPage() {
			break
		}
	}
	return c.Err()
}

// ClearBuffer clears the band and moves it to the top. Together with
// SendBuffer it is a full frame only when the canvas was created with pages
// as tall as the display.
func (c *Canvas) ClearBuffer() {
	c.FirstPage()
}

// SendBuffer sends the band at the top of the display
func (c *Canvas) SendBuffer() {
	c.top = 0
	c.flush()
	c.completeFrame()
}

// Err returns the first bus error since the previous call and clears it
func (c *Canvas) Err() error {
	err := c.err
	c.err = nil
	return err
}

// Snapshot returns a copy of the last complete frame
func (c *Canvas) Snapshot() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()

	img := image1bit.NewVerticalLSB(c.frame.Bounds())
	copy(img.Pix, c.frame.Pix)
	return img
}

func (c *Canvas) clearPage() {
	for i := range c.page.Pix {
		c.page.Pix[i] = 0
	}
}

func (c *Canvas) flush() {
	if err := c.dev.WriteRows(c.top, c.page); err != nil && c.err == nil {
		c.err = err
	}
	for y := 0; y < c.pageRows && c.top+y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.pending.SetBit(x, c.top+y, c.page.BitAt(x, y))
		}
	}
}

func (c *Canvas) completeFrame() {
	c.mu.Lock()
	c.frame, c.pending = c.pending, c.frame
	c.mu.Unlock()
}

// band returns the display rows held by the current page
func (c *Canvas) band() image.Rectangle {
	return image.Rect(0, c.top, c.width, c.top+c.pageRows).Intersect(image.Rect(0, 0, c.width, c.height))
}

// set applies the draw color at display coordinates, ignoring pixels outside
// the current band
func (c *Canvas) set(x, y int, color DrawColor) {
	if x < 0 || x >= c.width || y < c.top || y >= c.top+c.pageRows || y >= c.height {
		return
	}
	py := y - c.top
	switch color {
	case ColorClear:
		c.page.SetBit(x, py, image1bit.Off)
	case ColorSet:
		c.page.SetBit(x, py, image1bit.On)
	case ColorXOR:
		c.page.SetBit(x, py, !c.page.BitAt(x, py))
	}
}
