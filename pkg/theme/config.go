package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-drift/slate/pkg/graphics"
	"gopkg.in/yaml.v3"
)

// document is the YAML shape of a theme file. Every field is optional and
// only present fields override the defaults.
type document struct {
	Sizes struct {
		BasicWidgetHeight  *float64 `yaml:"basic_widget_height,omitempty"`
		WideWidgetWidth    *float64 `yaml:"wide_widget_width,omitempty"`
		BorderWidth        *float64 `yaml:"border_width,omitempty"`
		TextSize           *float64 `yaml:"text_size,omitempty"`
		ButtonBorderRadius *float64 `yaml:"button_border_radius,omitempty"`
	} `yaml:"sizes"`
	Colors map[string]string `yaml:"colors,omitempty"`
}

// colorTokens maps YAML color keys to Env fields.
func colorTokens(e *Env) map[string]*graphics.Color {
	return map[string]*graphics.Color{
		"window_background":         &e.WindowBackground,
		"label":                     &e.LabelColor,
		"border_dark":               &e.BorderDark,
		"border_light":              &e.BorderLight,
		"background_light":          &e.BackgroundLight,
		"background_dark":           &e.BackgroundDark,
		"foreground_light":          &e.ForegroundLight,
		"foreground_dark":           &e.ForegroundDark,
		"disabled_foreground_light": &e.DisabledForegroundLight,
		"disabled_foreground_dark":  &e.DisabledForegroundDark,
		"button_light":              &e.ButtonLight,
		"button_dark":               &e.ButtonDark,
		"disabled_button_light":     &e.DisabledButtonLight,
		"disabled_button_dark":      &e.DisabledButtonDark,
	}
}

// Parse overlays a YAML theme document on Default.
func Parse(data []byte) (*Env, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	env := Default()
	setIf := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setIf(&env.BasicWidgetHeight, doc.Sizes.BasicWidgetHeight)
	setIf(&env.WideWidgetWidth, doc.Sizes.WideWidgetWidth)
	setIf(&env.BorderWidth, doc.Sizes.BorderWidth)
	setIf(&env.TextSize, doc.Sizes.TextSize)
	setIf(&env.ButtonBorderRadius, doc.Sizes.ButtonBorderRadius)

	tokens := colorTokens(env)
	for key, value := range doc.Colors {
		dst, ok := tokens[key]
		if !ok {
			return nil, fmt.Errorf("unknown color token %q", key)
		}
		c, err := graphics.ParseHexColor(value)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", key, err)
		}
		*dst = c
	}

	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return env, nil
}

// LoadFile reads a theme file. A missing file yields the defaults.
func LoadFile(path string) (*Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	env, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return env, nil
}

// Encode renders env as a complete YAML theme document.
func Encode(env *Env) ([]byte, error) {
	var doc document
	doc.Sizes.BasicWidgetHeight = &env.BasicWidgetHeight
	doc.Sizes.WideWidgetWidth = &env.WideWidgetWidth
	doc.Sizes.BorderWidth = &env.BorderWidth
	doc.Sizes.TextSize = &env.TextSize
	doc.Sizes.ButtonBorderRadius = &env.ButtonBorderRadius
	doc.Colors = make(map[string]string)
	for key, c := range colorTokens(env) {
		doc.Colors[key] = c.Hex()
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return out, nil
}
