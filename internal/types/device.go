package types

import (
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Device is a monochrome display that accepts bands of rows
type Device interface {
	// Init resets the panel and clears it
	Init() error
	// Bounds returns the panel size
	Bounds() image.Rectangle
	// WriteRows copies img to the panel starting at row top
	WriteRows(top int, img *image1bit.VerticalLSB) error
	// Close releases the panel
	Close() error
}
