package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Display.Width != 128 || cfg.Display.Height != 64 {
		t.Errorf("display = %dx%d, want 128x64", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.CSPin != 5 || cfg.Display.ResetPin != 19 {
		t.Errorf("pins = cs %d reset %d, want 5 and 19", cfg.Display.CSPin, cfg.Display.ResetPin)
	}
	if cfg.Banner.Text != "Novotec " {
		t.Errorf("banner text = %q", cfg.Banner.Text)
	}
	if cfg.Text.X != 14 || cfg.Text.Y != 40 {
		t.Errorf("text position = (%d, %d), want (14, 40)", cfg.Text.X, cfg.Text.Y)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, c *Config)
	}{
		{
			name:    "partial file keeps defaults",
			content: `{"banner": {"text": "Hello ", "delay_ms": 50}, "display": {"driver": "png"}}`,
			check: func(t *testing.T, c *Config) {
				if c.Banner.Text != "Hello " || c.Banner.DelayMs != 50 {
					t.Errorf("banner = %+v", c.Banner)
				}
				if c.Banner.Font.Name != "gobold" {
					t.Errorf("banner font = %q, want default gobold", c.Banner.Font.Name)
				}
				if c.Display.Driver != "png" || c.Display.Width != 128 {
					t.Errorf("display = %+v", c.Display)
				}
			},
		},
		{
			name:    "bad page rows",
			content: `{"display": {"page_rows": 12}}`,
			wantErr: ErrInvalid,
		},
		{
			name:    "unknown sensor",
			content: `{"dashboard": {"sensor": {"kind": "dht22"}}}`,
			wantErr: ErrInvalid,
		},
		{
			name:    "unknown driver",
			content: `{"display": {"driver": "ssd1306"}}`,
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(err) {
		t.Errorf("LoadConfig() on missing file error = %v, want not exist", err)
	}
	if _, err := LoadConfig(writeConfig(t, "{")); err == nil {
		t.Error("LoadConfig() on malformed JSON did not return error")
	}
}
