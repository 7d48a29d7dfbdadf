package display

import (
	"image"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
)

type fakeDevice struct {
	writes int
}

func (d *fakeDevice) Init() error             { return nil }
func (d *fakeDevice) Bounds() image.Rectangle { return image.Rect(0, 0, 128, 64) }
func (d *fakeDevice) Close() error            { return nil }

func (d *fakeDevice) WriteRows(top int, img *image1bit.VerticalLSB) error {
	d.writes++
	return nil
}

func newCanvas(t *testing.T) (*gfx.Canvas, *fakeDevice) {
	t.Helper()
	dev := &fakeDevice{}
	c, err := gfx.New(dev, 8)
	if err != nil {
		t.Fatalf("gfx.New() error = %v", err)
	}
	if err := c.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	return c, dev
}

func bitAt(img image.Image, x, y int) bool {
	return bool(img.(*image1bit.VerticalLSB).BitAt(x, y))
}

func countLit(img image.Image, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if bitAt(img, x, y) {
				n++
			}
		}
	}
	return n
}
