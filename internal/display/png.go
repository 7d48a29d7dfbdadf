package display

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// PNGDevice is a display that saves every complete frame to a PNG file
type PNGDevice struct {
	path  string
	scale int

	mu    sync.Mutex
	frame *image1bit.VerticalLSB
	saved int
}

// NewPNGDevice creates a width x height display written to path, scaled up
// scale times
func NewPNGDevice(width, height int, path string, scale int) *PNGDevice {
	return &PNGDevice{
		path:  path,
		scale: scale,
		frame: image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
	}
}

// Init clears the frame
func (d *PNGDevice) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.frame.Pix {
		d.frame.Pix[i] = 0
	}
	return nil
}

// Bounds returns the display size
func (d *PNGDevice) Bounds() image.Rectangle {
	return d.frame.Bounds()
}

// WriteRows copies img into the frame and saves it once the bottom row is
// written
func (d *PNGDevice) WriteRows(top int, img *image1bit.VerticalLSB) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, h := img.Bounds(), d.frame.Bounds().Dy()
	for y := 0; y < b.Dy() && top+y < h; y++ {
		for x := 0; x < b.Dx() && x < d.frame.Bounds().Dx(); x++ {
			d.frame.SetBit(x, top+y, img.BitAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	if top+b.Dy() < h {
		return nil
	}
	if err := imaging.Save(Scale(d.frame, d.scale), d.path); err != nil {
		return fmt.Errorf("failed to save frame: %w", err)
	}
	d.saved++
	return nil
}

// Saved returns the number of frames written
func (d *PNGDevice) Saved() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saved
}

// Close does nothing
func (d *PNGDevice) Close() error {
	return nil
}

// Scale renders a 1-bit frame as dark pixels on a light background, enlarged
// scale times without smoothing
func Scale(img image.Image, scale int) image.Image {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y >= 0x80 {
				gray.SetGray(x, y, color.Gray{Y: 0x20})
			} else {
				gray.SetGray(x, y, color.Gray{Y: 0xD0})
			}
		}
	}
	if scale <= 1 {
		return gray
	}
	return imaging.Resize(gray, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
}
