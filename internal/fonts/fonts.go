// Package fonts resolves font settings to faces.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/fkcurrie/st7920-display-golang/internal/types"
)

// ErrUnknownFont is returned for a font name that is not built in
var ErrUnknownFont = errors.New("unknown font")

// Basic is the name of the fixed 7x13 bitmap font
const Basic = "basic"

var builtin = map[string][]byte{
	"gobold":     gobold.TTF,
	"goregular":  goregular.TTF,
	"gomono":     gomono.TTF,
	"gomonobold": gomonobold.TTF,
}

var (
	mu     sync.Mutex
	parsed = map[string]*opentype.Font{}
)

// Names lists the built-in font names
func Names() []string {
	names := []string{Basic}
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the face described by cfg. A font file takes precedence over
// the name; the size is in pixels.
func Load(cfg types.FontConfig) (font.Face, error) {
	if cfg.File != "" {
		return LoadFile(cfg.File, cfg.Size)
	}
	if cfg.Name == Basic {
		return basicfont.Face7x13, nil
	}

	f, err := builtinFont(cfg.Name)
	if err != nil {
		return nil, err
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("invalid size %v for font %s", cfg.Size, cfg.Name)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s face: %w", cfg.Name, err)
	}
	return face, nil
}

// LoadFile parses a TrueType font file and returns a face of size pixels
func LoadFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	if size <= 0 {
		size = 12
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func builtinFont(name string) (*opentype.Font, error) {
	mu.Lock()
	defer mu.Unlock()

	if f, ok := parsed[name]; ok {
		return f, nil
	}
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	parsed[name] = f
	return f, nil
}
