package types

// DisplayConfig represents the configuration for the display and its wiring
type DisplayConfig struct {
	Driver      string `json:"driver"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	PageRows    int    `json:"page_rows"`
	SPIPort     string `json:"spi_port"`
	GPIOBackend string `json:"gpio_backend"`
	GPIOChip    string `json:"gpio_chip"`
	CSPin       int    `json:"cs_pin"`
	ResetPin    int    `json:"reset_pin"`
	// SnapshotPath is where the png driver writes frames
	SnapshotPath string `json:"snapshot_path"`
}

// FontConfig selects a font face
type FontConfig struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
	// File is a TrueType font file used instead of Name
	File string `json:"file,omitempty"`
}

// TextConfig represents the static text screen
type TextConfig struct {
	Text    string     `json:"text"`
	X       int        `json:"x"`
	Y       int        `json:"y"`
	Font    FontConfig `json:"font"`
	DelayMs int        `json:"delay_ms"`
}

// BannerConfig represents the scrolling banner
type BannerConfig struct {
	Text     string     `json:"text"`
	Baseline int        `json:"baseline"`
	Font     FontConfig `json:"font"`
	DelayMs  int        `json:"delay_ms"`
}

// DashboardConfig represents the temperature/humidity screen
type DashboardConfig struct {
	ValueFont      FontConfig   `json:"value_font"`
	LabelFont      FontConfig   `json:"label_font"`
	DelayMs        int          `json:"delay_ms"`
	PollIntervalMs int          `json:"poll_interval_ms"`
	Sensor         SensorConfig `json:"sensor"`
}

// SensorConfig selects where dashboard readings come from
type SensorConfig struct {
	Kind        string  `json:"kind"`
	I2CBus      string  `json:"i2c_bus"`
	I2CAddr     uint16  `json:"i2c_addr"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// PreviewConfig represents the optional HTTP preview server
type PreviewConfig struct {
	Addr  string `json:"addr"`
	Scale int    `json:"scale"`
}
