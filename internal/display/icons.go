package display

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const thermometerSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<path d="M6 3a2 2 0 0 1 4 0v6.6a3.5 3.5 0 1 1-4 0z" fill="none" stroke="#000" stroke-width="1.5"/>
<circle cx="8" cy="12" r="2" fill="#000"/>
<rect x="7.25" y="5" width="1.5" height="6" fill="#000"/>
</svg>`

const dropletSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<path d="M8 1C8 1 3 7 3 10.5a5 5 0 0 0 10 0C13 7 8 1 8 1z" fill="#000"/>
</svg>`

// RasterizeSVG renders an SVG document into a size x size image
func RasterizeSVG(src string, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse icon: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// Icons holds the rasterized dashboard icons
type Icons struct {
	Thermometer image.Image
	Droplet     image.Image
}

// LoadIcons rasterizes the built-in dashboard icons
func LoadIcons() (*Icons, error) {
	thermometer, err := RasterizeSVG(thermometerSVG, iconSize)
	if err != nil {
		return nil, err
	}
	droplet, err := RasterizeSVG(dropletSVG, iconSize)
	if err != nil {
		return nil, err
	}
	return &Icons{Thermometer: thermometer, Droplet: droplet}, nil
}
