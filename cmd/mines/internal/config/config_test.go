package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != DefaultWidth || r.Height != DefaultHeight || r.Divisor != DefaultDivisor {
		t.Errorf("board = %dx%d/%d, want defaults", r.Width, r.Height, r.Divisor)
	}
	if r.ThemePath != "" {
		t.Errorf("ThemePath = %q, want empty", r.ThemePath)
	}
}

func TestResolveReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `
app:
  name: sweeper
board:
  width: 8
  height: 6
  divisor: 4
theme: themes/dark.yaml
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.AppName != "sweeper" {
		t.Errorf("AppName = %q, want sweeper", r.AppName)
	}
	if r.Width != 8 || r.Height != 6 || r.Divisor != 4 {
		t.Errorf("board = %dx%d/%d, want 8x6/4", r.Width, r.Height, r.Divisor)
	}
	if want := filepath.Join(dir, "themes", "dark.yaml"); r.ThemePath != want {
		t.Errorf("ThemePath = %q, want %q", r.ThemePath, want)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "board: [1, 2"},
		{"negative size", "board:\n  width: -3\n"},
		{"negative divisor", "board:\n  divisor: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, FileName), tt.content)
			if _, err := Resolve(dir); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestAppNameFromGoMod(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/games/minefield/v2\n\ngo 1.24\n")
	sub := filepath.Join(root, "cmd", "play")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	r, err := Resolve(sub)
	if err != nil {
		t.Fatal(err)
	}
	if r.AppName != "minefield" {
		t.Errorf("AppName = %q, want minefield", r.AppName)
	}
}

func TestAppNameFromModule(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"github.com/go-drift/slate", "slate"},
		{"example.com/mines/v3", "mines"},
		{"mines", "mines"},
		{"", "mines"},
	}
	for _, tt := range tests {
		if got := appNameFromModule(tt.path); got != tt.want {
			t.Errorf("appNameFromModule(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
