package scroll

import (
	"errors"
	"fmt"
)

// ErrWidth is returned when the text width cannot be tiled
var ErrWidth = errors.New("text width must be positive")

// State holds the horizontal scroll position of a tiled text banner.
//
// Offset is the x position of the first tile. It moves one pixel to the left
// per frame and stays in (-Width, 0]; Width never changes after New.
type State struct {
	offset int
	width  int
}

// New creates a scroll state for text that is width pixels wide
func New(width int) (*State, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrWidth, width)
	}
	return &State{width: width}, nil
}

// Offset returns the x position of the first tile
func (s *State) Offset() int {
	return s.offset
}

// Width returns the cached pixel width of the text
func (s *State) Width() int {
	return s.width
}

// Phase returns how many pixels the text has moved left, in [0, Width)
func (s *State) Phase() int {
	return -s.offset
}

// Advance moves the banner one pixel to the left, restarting at zero once the
// text has fully scrolled past the left edge.
func (s *State) Advance() {
	s.offset = Next(s.offset, s.width)
}

// Next returns the offset that follows offset for text of the given width
func Next(offset, width int) int {
	offset--
	if offset <= -width {
		return 0
	}
	return offset
}

// Tiles returns the x positions at which the text is drawn for one frame.
// The first copy is always drawn, matching a draw-then-test loop.
func Tiles(offset, width, displayWidth int) []int {
	var xs []int
	Fill(offset, width, displayWidth, func(x int) {
		xs = append(xs, x)
	})
	return xs
}

// Fill calls draw for every tile position of one frame
func Fill(offset, width, displayWidth int, draw func(x int)) {
	if width <= 0 {
		draw(offset)
		return
	}
	x := offset
	for {
		draw(x)
		x += width
		if x >= displayWidth {
			return
		}
	}
}

// Fill runs the tile-fill pass for the current offset
func (s *State) Fill(displayWidth int, draw func(x int)) {
	Fill(s.offset, s.width, displayWidth, draw)
}
