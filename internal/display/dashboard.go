package display

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/image/font"

	"github.com/fkcurrie/st7920-display-golang/internal/gfx"
	"github.com/fkcurrie/st7920-display-golang/internal/sensor"
	"github.com/fkcurrie/st7920-display-golang/internal/types"
)

// missing is shown when no reading is available
const missing = "--"

// Dashboard shows temperature and humidity in two framed fields
type Dashboard struct {
	source       sensor.Source
	valueFace    font.Face
	labelFace    font.Face
	icons        *Icons
	pollInterval time.Duration

	mu      sync.Mutex
	reading types.Reading
	valid   bool
	polled  time.Time
}

// NewDashboard creates a dashboard reading from source at most once per
// pollInterval
func NewDashboard(source sensor.Source, valueFace, labelFace font.Face, pollInterval time.Duration) (*Dashboard, error) {
	icons, err := LoadIcons()
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		source:       source,
		valueFace:    valueFace,
		labelFace:    labelFace,
		icons:        icons,
		pollInterval: pollInterval,
	}, nil
}

// Reading returns the latest reading and whether it is valid
func (d *Dashboard) Reading() (types.Reading, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reading, d.valid
}

// Draw refreshes the reading when due and renders both fields
func (d *Dashboard) Draw(ctx context.Context, c *gfx.Canvas) error {
	d.poll(ctx)
	temperature, humidity := d.Values()
	layout := GetDashboardLayout(c.DisplayWidth(), c.DisplayHeight())

	return c.Draw(func(c *gfx.Canvas) {
		c.SetDrawColor(gfx.ColorSet)
		c.SetFontMode(gfx.FontModeTransparent)
		d.drawField(c, layout.Temperature, d.icons.Thermometer, "Temp", temperature)
		d.drawField(c, layout.Humidity, d.icons.Droplet, "Humidity", humidity)
	})
}

// Values returns the formatted temperature and humidity
func (d *Dashboard) Values() (temperature, humidity string) {
	r, ok := d.Reading()
	if !ok {
		return missing, missing
	}
	return fmt.Sprintf("%.1f °C", r.Temperature), fmt.Sprintf("%.0f %%", r.Humidity)
}

func (d *Dashboard) poll(ctx context.Context) {
	d.mu.Lock()
	due := d.polled.IsZero() || time.Since(d.polled) >= d.pollInterval
	d.mu.Unlock()
	if !due {
		return
	}

	r, err := d.source.Read(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.polled = time.Now()
	if err != nil {
		log.Printf("Failed to read sensor: %v", err)
		d.valid = false
		return
	}
	d.reading, d.valid = r, true
}

func (d *Dashboard) drawField(c *gfx.Canvas, l FieldLayout, icon image.Image, label, value string) {
	c.DrawFrame(l.Frame.Min.X, l.Frame.Min.Y, l.Frame.Dx(), l.Frame.Dy())
	c.DrawImage(l.Icon.X, l.Icon.Y, icon)

	c.SetFont(d.labelFace)
	c.DrawStr(l.Label.X, l.Label.Y, label)

	c.SetFont(d.valueFace)
	c.DrawUTF8(l.Value.X-c.UTF8Width(value), l.Value.Y, value)
}
