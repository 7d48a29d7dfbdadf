package st7920

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/fkcurrie/st7920-display-golang/pkg/gpio"
)

const (
	syncCommand = 0xF8
	syncData    = 0xFA

	cmdClear        = 0x01
	cmdEntryMode    = 0x06 // cursor moves right, no shift
	cmdDisplayOff   = 0x08
	cmdDisplayOn    = 0x0C
	cmdBasic        = 0x30 // 8-bit interface, basic instruction set
	cmdExtended     = 0x34 // 8-bit interface, extended instruction set
	cmdGraphicsOn   = 0x36 // extended instruction set, graphic display on
	cmdSetGDRAMAddr = 0x80

	// gdramRows is the number of addressable rows of the graphic RAM
	gdramRows = 32
)

// ErrSize is returned for panel dimensions the controller cannot address
var ErrSize = errors.New("st7920: unsupported display size")

// Conn is the bus the controller is attached to. spi.Conn satisfies it.
type Conn interface {
	Tx(w, r []byte) error
}

// Opts holds the panel geometry and timing
type Opts struct {
	Width  int
	Height int
	// CommandDelay is the wait after each instruction
	CommandDelay time.Duration
	// ResetDelay is the wait after releasing reset
	ResetDelay time.Duration
}

// DefaultOpts is a 128x64 panel with datasheet timings
var DefaultOpts = Opts{
	Width:        128,
	Height:       64,
	CommandDelay: 72 * time.Microsecond,
	ResetDelay:   50 * time.Millisecond,
}

// Dev is a handle to an ST7920 controller
type Dev struct {
	c      Conn
	cs     gpio.OutputPin
	rst    gpio.OutputPin
	opts   Opts
	rect   image.Rectangle
	halted bool
}

// NewSPI connects to the controller over p. CS is driven manually since the
// ST7920 expects it active high.
func NewSPI(p spi.Port, cs, rst gpio.OutputPin, opts *Opts) (*Dev, error) {
	c, err := p.Connect(physic.MegaHertz, spi.Mode3|spi.NoCS, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SPI port: %w", err)
	}
	return New(c, cs, rst, opts)
}

// New returns a handle to a controller on c. cs and rst may be nil when the
// lines are not wired. Call Init before writing.
func New(c Conn, cs, rst gpio.OutputPin, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Width <= 0 || o.Width%16 != 0 || o.Width > 128 || o.Height <= 0 || o.Height > 2*gdramRows {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, o.Width, o.Height)
	}
	if cs == nil {
		cs = gpio.Nop{}
	}
	if rst == nil {
		rst = gpio.Nop{}
	}
	return &Dev{
		c:    c,
		cs:   cs,
		rst:  rst,
		opts: o,
		rect: image.Rect(0, 0, o.Width, o.Height),
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ST7920{%dx%d}", d.opts.Width, d.opts.Height)
}

// Bounds returns the panel size
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Init resets the controller and switches it to graphic mode with a blank
// screen.
func (d *Dev) Init() error {
	if err := d.reset(); err != nil {
		return err
	}
	for _, c := range []struct {
		cmd   byte
		delay time.Duration
	}{
		{cmdBasic, 0},
		{cmdBasic, 0},
		{cmdDisplayOn, 0},
		{cmdClear, 2 * time.Millisecond},
		{cmdEntryMode, 0},
		{cmdExtended, 0},
		{cmdGraphicsOn, 0},
	} {
		if err := d.command(c.cmd); err != nil {
			return fmt.Errorf("failed to initialize display: %w", err)
		}
		time.Sleep(c.delay)
	}
	d.halted = false
	return d.WriteRows(0, image1bit.NewVerticalLSB(d.rect))
}

// WriteRows copies img into the graphic RAM starting at row top. Rows past the
// bottom of the panel are ignored.
func (d *Dev) WriteRows(top int, img *image1bit.VerticalLSB) error {
	if d.halted {
		if err := d.resume(); err != nil {
			return err
		}
	}

	b := img.Bounds()
	row := make([]byte, d.opts.Width/8)
	for y := 0; y < b.Dy(); y++ {
		panelY := top + y
		if panelY < 0 {
			continue
		}
		if panelY >= d.opts.Height {
			break
		}
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < d.opts.Width && x < b.Dx(); x++ {
			if img.BitAt(b.Min.X+x, b.Min.Y+y) {
				row[x/8] |= 0x80 >> uint(x%8)
			}
		}
		if err := d.writeRow(panelY, row); err != nil {
			return err
		}
	}
	return nil
}

// Halt blanks the screen
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.command(cmdBasic); err != nil {
		return err
	}
	if err := d.command(cmdDisplayOff); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// resume turns the display back on after Halt and returns to graphic mode
func (d *Dev) resume() error {
	for _, cmd := range []byte{cmdBasic, cmdDisplayOn, cmdExtended, cmdGraphicsOn} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}
	d.halted = false
	return nil
}

// Close halts the controller and releases the control lines
func (d *Dev) Close() error {
	err := d.Halt()
	if cerr := d.cs.Close(); err == nil {
		err = cerr
	}
	if cerr := d.rst.Close(); err == nil {
		err = cerr
	}
	return err
}

func (d *Dev) reset() error {
	if err := d.rst.SetValue(0); err != nil {
		return fmt.Errorf("failed to assert reset: %w", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := d.rst.SetValue(1); err != nil {
		return fmt.Errorf("failed to release reset: %w", err)
	}
	time.Sleep(d.opts.ResetDelay)
	return nil
}

// writeRow sets the GDRAM address for panel row y and writes one row of pixels
func (d *Dev) writeRow(y int, row []byte) error {
	vertical := byte(y % gdramRows)
	horizontal := byte(y / gdramRows * d.opts.Width / 16)
	if err := d.command(cmdSetGDRAMAddr | vertical); err != nil {
		return err
	}
	if err := d.command(cmdSetGDRAMAddr | horizontal); err != nil {
		return err
	}
	return d.tx(encode(syncData, row...))
}

func (d *Dev) command(cmd byte) error {
	glog.V(2).Infof("st7920: command %#02x", cmd)
	if err := d.tx(encode(syncCommand, cmd)); err != nil {
		return err
	}
	time.Sleep(d.opts.CommandDelay)
	return nil
}

// tx performs one transfer framed by chip select
func (d *Dev) tx(w []byte) error {
	if err := d.cs.SetValue(1); err != nil {
		return err
	}
	err := d.c.Tx(w, nil)
	if cerr := d.cs.SetValue(0); err == nil {
		err = cerr
	}
	return err
}

// encode frames data behind a sync byte, one nibble per byte
func encode(sync byte, data ...byte) []byte {
	w := make([]byte, 0, 1+2*len(data))
	w = append(w, sync)
	for _, b := range data {
		w = append(w, b&0xF0, b<<4)
	}
	return w
}
