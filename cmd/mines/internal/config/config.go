// Package config loads the optional mines.yaml next to the game.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = "mines.yaml"

// Defaults used when mines.yaml leaves a value unset.
const (
	DefaultWidth   = 15
	DefaultHeight  = 15
	DefaultDivisor = 10
	defaultAppName = "mines"
)

// Config represents the optional mines.yaml configuration.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Board BoardConfig `yaml:"board"`
	// Theme is the path of a theme YAML file, relative to the config file.
	Theme string `yaml:"theme,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// BoardConfig contains the board dimensions.
type BoardConfig struct {
	Width   int `yaml:"width,omitempty"`
	Height  int `yaml:"height,omitempty"`
	Divisor int `yaml:"divisor,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root      string
	AppName   string
	Width     int
	Height    int
	Divisor   int
	ThemePath string
}

// LoadOptional reads mines.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads mines.yaml (if present) and fills in defaults. The app
// name defaults to the last element of the module path when dir is inside
// a Go module.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultName(dir)
	}

	r := &Resolved{
		Root:    dir,
		AppName: appName,
		Width:   orDefault(cfg.Board.Width, DefaultWidth),
		Height:  orDefault(cfg.Board.Height, DefaultHeight),
		Divisor: orDefault(cfg.Board.Divisor, DefaultDivisor),
	}
	if theme := strings.TrimSpace(cfg.Theme); theme != "" {
		if !filepath.IsAbs(theme) {
			theme = filepath.Join(dir, theme)
		}
		r.ThemePath = theme
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolved) validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("board size cannot be negative (got %dx%d)", r.Width, r.Height)
	}
	if r.Divisor < 0 {
		return fmt.Errorf("board.divisor cannot be negative (got %d)", r.Divisor)
	}
	return nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// FindModuleRoot walks up from dir to the directory holding go.mod.
func FindModuleRoot(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func defaultName(dir string) string {
	root, ok := FindModuleRoot(dir)
	if !ok {
		return defaultAppName
	}
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return defaultAppName
	}
	return appNameFromModule(modfile.ModulePath(data))
}

func appNameFromModule(modulePath string) string {
	if modulePath == "" {
		return defaultAppName
	}
	name := modulePath
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		name = prefix
	}
	parts := strings.Split(name, "/")
	if base := parts[len(parts)-1]; base != "" {
		return base
	}
	return defaultAppName
}
