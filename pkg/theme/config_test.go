package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/slate/pkg/graphics"
)

func TestParseOverlaysDefaults(t *testing.T) {
	env, err := Parse([]byte(`
sizes:
  basic_widget_height: 24
colors:
  foreground_light: "#102030"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if env.BasicWidgetHeight != 24 {
		t.Errorf("BasicWidgetHeight = %v, want 24", env.BasicWidgetHeight)
	}
	if env.WideWidgetWidth != Default().WideWidgetWidth {
		t.Errorf("WideWidgetWidth should keep its default, got %v", env.WideWidgetWidth)
	}
	if env.ForegroundLight != graphics.RGB(0x10, 0x20, 0x30) {
		t.Errorf("ForegroundLight = %s", env.ForegroundLight.Hex())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad yaml", "sizes: [", "failed to parse theme"},
		{"unknown color", "colors:\n  neon: \"#ffffff\"\n", "unknown color token"},
		{"bad color", "colors:\n  label: \"#zz\"\n", "color label"},
		{"zero height", "sizes:\n  basic_widget_height: 0\n", "basic_widget_height must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	env, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *env != *Default() {
		t.Error("expected defaults for a missing file")
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	want := Default()
	want.BasicWidgetHeight = 30
	want.ButtonDark = graphics.RGB(1, 2, 3)

	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := Default()
	b := a.Copy()
	b.BasicWidgetHeight = 99
	if a.BasicWidgetHeight == 99 {
		t.Error("Copy should not alias the original")
	}
}
