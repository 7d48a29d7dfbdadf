package scroll

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		wantErr bool
	}{
		{name: "positive width", width: 50, wantErr: false},
		{name: "zero width", width: 0, wantErr: true},
		{name: "negative width", width: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.width)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrWidth) {
					t.Errorf("New() error = %v, want ErrWidth", err)
				}
				return
			}
			if s.Offset() != 0 || s.Width() != tt.width {
				t.Errorf("New() = offset %d width %d, want 0 and %d", s.Offset(), s.Width(), tt.width)
			}
		})
	}
}

func TestTiles(t *testing.T) {
	tests := []struct {
		name         string
		offset       int
		width        int
		displayWidth int
		want         []int
	}{
		{name: "three copies", offset: 0, width: 50, displayWidth: 128, want: []int{0, 50, 100}},
		{name: "shifted", offset: -49, width: 50, displayWidth: 128, want: []int{-49, 1, 51, 101}},
		{name: "exact fit", offset: 0, width: 128, displayWidth: 128, want: []int{0}},
		{name: "exact fit shifted", offset: -1, width: 128, displayWidth: 128, want: []int{-1, 127}},
		{name: "wider than display", offset: -10, width: 200, displayWidth: 128, want: []int{-10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tiles(tt.offset, tt.width, tt.displayWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tiles(%d, %d, %d) = %v, want %v", tt.offset, tt.width, tt.displayWidth, got, tt.want)
			}
		})
	}
}

func TestTilesCoverRow(t *testing.T) {
	for _, width := range []int{1, 7, 50, 64, 127, 128} {
		for offset := 0; offset > -width; offset-- {
			xs := Tiles(offset, width, 128)
			if xs[0] > 0 {
				t.Fatalf("width %d offset %d: first tile at %d, want <= 0", width, offset, xs[0])
			}
			for i := 1; i < len(xs); i++ {
				if xs[i]-xs[i-1] != width {
					t.Fatalf("width %d offset %d: gap %d between tiles", width, offset, xs[i]-xs[i-1])
				}
			}
			last := xs[len(xs)-1]
			if last >= 128 {
				t.Fatalf("width %d offset %d: tile at %d is off screen", width, offset, last)
			}
			if last+width < 128 {
				t.Fatalf("width %d offset %d: row not covered past %d", width, offset, last+width)
			}
		}
	}
}

func TestAdvancePeriod(t *testing.T) {
	s, err := New(50)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for cycle := 0; cycle < 3; cycle++ {
		zeros := 0
		for frame := 0; frame < 50; frame++ {
			if s.Phase() < 0 || s.Phase() >= s.Width() {
				t.Fatalf("phase %d out of range", s.Phase())
			}
			s.Advance()
			if s.Offset() == 0 {
				zeros++
			}
		}
		if zeros != 1 {
			t.Errorf("cycle %d: offset returned to zero %d times, want 1", cycle, zeros)
		}
		if s.Offset() != 0 {
			t.Errorf("cycle %d: offset = %d after 50 frames, want 0", cycle, s.Offset())
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		offset int
		width  int
		want   int
	}{
		{offset: 0, width: 50, want: -1},
		{offset: -48, width: 50, want: -49},
		{offset: -49, width: 50, want: 0},
		{offset: 0, width: 1, want: 0},
	}

	for _, tt := range tests {
		if got := Next(tt.offset, tt.width); got != tt.want {
			t.Errorf("Next(%d, %d) = %d, want %d", tt.offset, tt.width, got, tt.want)
		}
	}
}
