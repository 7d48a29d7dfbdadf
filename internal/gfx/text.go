package gfx

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// maskThreshold is the glyph coverage above which a pixel is drawn
const maskThreshold = 0x8000

// SetFont selects the face used by text calls
func (c *Canvas) SetFont(face font.Face) {
	c.face = face
}

// Ascent returns the pixels above the baseline of the current font
func (c *Canvas) Ascent() int {
	if c.face == nil {
		return 0
	}
	return c.face.Metrics().Ascent.Ceil()
}

// Descent returns the pixels below the baseline of the current font
func (c *Canvas) Descent() int {
	if c.face == nil {
		return 0
	}
	return c.face.Metrics().Descent.Ceil()
}

// StrWidth returns the pixel width of s drawn with DrawStr
func (c *Canvas) StrWidth(s string) int {
	return c.advance(byteRunes(s), false).Round()
}

// UTF8Width returns the pixel width of s drawn with DrawUTF8
func (c *Canvas) UTF8Width(s string) int {
	return c.advance([]rune(s), true).Round()
}

// DrawStr draws s with its baseline at y, one glyph per byte, and returns the
// advance in pixels.
func (c *Canvas) DrawStr(x, y int, s string) int {
	return c.drawRunes(x, y, byteRunes(s), false)
}

// DrawUTF8 draws the UTF-8 string s with its baseline at y and returns the
// advance in pixels.
func (c *Canvas) DrawUTF8(x, y int, s string) int {
	return c.drawRunes(x, y, []rune(s), true)
}

func byteRunes(s string) []rune {
	rs := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		rs[i] = rune(s[i])
	}
	return rs
}

func (c *Canvas) advance(rs []rune, kern bool) fixed.Int26_6 {
	if c.face == nil {
		return 0
	}
	var w fixed.Int26_6
	prev := rune(-1)
	for _, r := range rs {
		if kern && prev >= 0 {
			w += c.face.Kern(prev, r)
		}
		// missing glyphs still advance by their fallback glyph
		adv, _ := c.face.GlyphAdvance(r)
		w += adv
		prev = r
	}
	return w
}

func (c *Canvas) drawRunes(x, y int, rs []rune, kern bool) int {
	if c.face == nil {
		return 0
	}
	m := c.face.Metrics()
	band := c.band()
	dot := fixed.P(x, y)
	prev := rune(-1)
	for _, r := range rs {
		if kern && prev >= 0 {
			dot.X += c.face.Kern(prev, r)
		}
		prev = r

		dr, mask, mp, adv, _ := c.face.Glyph(dot, r)
		if c.fontMode == FontModeSolid && c.color != ColorXOR {
			cell := image.Rect(dot.X.Floor(), (dot.Y - m.Ascent).Floor(), (dot.X + adv).Ceil(), (dot.Y + m.Descent).Ceil())
			c.fill(cell, inverse(c.color))
		}
		if mask != nil && !dr.Intersect(band).Empty() {
			c.blit(dr, mask, mp)
		}
		dot.X += adv
	}
	return (dot.X - fixed.I(x)).Round()
}

// blit draws the covered pixels of a glyph mask
func (c *Canvas) blit(dr image.Rectangle, mask image.Image, mp image.Point) {
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		if y < c.top || y >= c.top+c.pageRows {
			continue
		}
		for x := dr.Min.X; x < dr.Max.X; x++ {
			_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
			if a >= maskThreshold {
				c.set(x, y, c.color)
			}
		}
	}
}

func inverse(color DrawColor) DrawColor {
	if color == ColorClear {
		return ColorSet
	}
	return ColorClear
}
