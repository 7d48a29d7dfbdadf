package gpio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeSysfs creates an export/unexport pair and a pin directory
func fakeSysfs(t *testing.T, number int) string {
	t.Helper()

	root := t.TempDir()
	oldRoot, oldDelay := sysfsRoot, exportDelay
	sysfsRoot, exportDelay = root, 0
	t.Cleanup(func() {
		sysfsRoot, exportDelay = oldRoot, oldDelay
	})

	dir := filepath.Join(root, pinFile(number, ""))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		filepath.Join(root, "export"),
		filepath.Join(root, "unexport"),
		filepath.Join(dir, "direction"),
		filepath.Join(dir, "value"),
	} {
		if err := os.WriteFile(name, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestSysfsPin(t *testing.T) {
	root := fakeSysfs(t, 19)

	p, err := NewPin(19)
	if err != nil {
		t.Fatalf("NewPin() error = %v", err)
	}

	if got := readFile(t, filepath.Join(root, "export")); got != "19" {
		t.Errorf("export = %q, want %q", got, "19")
	}
	if got := readFile(t, filepath.Join(root, "gpio19", "direction")); got != "low" {
		t.Errorf("direction = %q, want %q", got, "low")
	}

	tests := []struct {
		value int
		want  string
	}{
		{value: 1, want: "1"},
		{value: 0, want: "0"},
		{value: 7, want: "1"},
	}
	for _, tt := range tests {
		if err := p.SetValue(tt.value); err != nil {
			t.Fatalf("SetValue(%d) error = %v", tt.value, err)
		}
		if got := readFile(t, filepath.Join(root, "gpio19", "value")); got != tt.want {
			t.Errorf("SetValue(%d) wrote %q, want %q", tt.value, got, tt.want)
		}
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if got := readFile(t, filepath.Join(root, "unexport")); got != "19" {
		t.Errorf("unexport = %q, want %q", got, "19")
	}
}

func TestSysfsPinMissingDirectory(t *testing.T) {
	fakeSysfs(t, 5)

	if _, err := NewPin(6); err == nil {
		t.Error("NewPin() for a pin without a sysfs directory did not return error")
	}
}

type recordPin struct {
	values []int
}

func (p *recordPin) SetValue(v int) error {
	p.values = append(p.values, v)
	return nil
}

func (p *recordPin) Close() error { return nil }

func TestPulse(t *testing.T) {
	p := &recordPin{}
	if err := Pulse(p, time.Microsecond); err != nil {
		t.Fatalf("Pulse() error = %v", err)
	}
	if len(p.values) != 2 || p.values[0] != 1 || p.values[1] != 0 {
		t.Errorf("Pulse() wrote %v, want [1 0]", p.values)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("spidev", "", 5); err == nil {
		t.Error("Open() with unknown backend did not return error")
	}
}
