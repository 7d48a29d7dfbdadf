package gfx

import "image"

// DrawPixel draws one pixel
func (c *Canvas) DrawPixel(x, y int) {
	c.set(x, y, c.color)
}

// DrawHLine draws a horizontal line of w pixels starting at (x, y)
func (c *Canvas) DrawHLine(x, y, w int) {
	if y < c.top || y >= c.top+c.pageRows {
		return
	}
	for i := 0; i < w; i++ {
		c.set(x+i, y, c.color)
	}
}

// DrawVLine draws a vertical line of h pixels starting at (x, y)
func (c *Canvas) DrawVLine(x, y, h int) {
	for i := 0; i < h; i++ {
		c.set(x, y+i, c.color)
	}
}

// DrawBox draws a filled w x h rectangle with its top left corner at (x, y)
func (c *Canvas) DrawBox(x, y, w, h int) {
	c.fill(image.Rect(x, y, x+w, y+h), c.color)
}

// DrawFrame draws the outline of a w x h rectangle with its top left corner
// at (x, y). Corners are drawn once so XOR frames stay closed.
func (c *Canvas) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawHLine(x, y, w)
	if h > 1 {
		c.DrawHLine(x, y+h-1, w)
	}
	if h > 2 {
		c.DrawVLine(x, y+1, h-2)
		if w > 1 {
			c.DrawVLine(x+w-1, y+1, h-2)
		}
	}
}

func (c *Canvas) fill(r image.Rectangle, color DrawColor) {
	r = r.Intersect(c.band())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.set(x, y, color)
		}
	}
}

// DrawImage draws the opaque pixels of img with its top left corner at (x, y)
func (c *Canvas) DrawImage(x, y int, img image.Image) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy()).Intersect(c.band())
	for py := dst.Min.Y; py < dst.Max.Y; py++ {
		for px := dst.Min.X; px < dst.Max.X; px++ {
			_, _, _, a := img.At(b.Min.X+px-x, b.Min.Y+py-y).RGBA()
			if a >= maskThreshold {
				c.set(px, py, c.color)
			}
		}
	}
}
