// Package theme provides the environment widgets read their style tokens from.
//
// An Env is a flat set of sizes and colors. Hosts create one with Default,
// optionally overlay a YAML document with Parse or LoadFile, and pass the
// same *Env to every stage of the widget contract. Widgets only read it.
package theme

import (
	"fmt"

	"github.com/go-drift/slate/pkg/graphics"
)

// Env holds the style tokens shared by all widgets in a window.
type Env struct {
	// BasicWidgetHeight is the standard control height. The slider uses it
	// as its height and as the knob diameter.
	BasicWidgetHeight float64
	// WideWidgetWidth is the standard width for wide controls such as sliders.
	WideWidgetWidth float64
	// BorderWidth is the stroke width of control borders.
	BorderWidth float64
	// TextSize is the default label font size.
	TextSize float64
	// ButtonBorderRadius is the corner radius of buttons.
	ButtonBorderRadius float64

	WindowBackground        graphics.Color
	LabelColor              graphics.Color
	BorderDark              graphics.Color
	BorderLight             graphics.Color
	BackgroundLight         graphics.Color
	BackgroundDark          graphics.Color
	ForegroundLight         graphics.Color
	ForegroundDark          graphics.Color
	DisabledForegroundLight graphics.Color
	DisabledForegroundDark  graphics.Color
	ButtonLight             graphics.Color
	ButtonDark              graphics.Color
	DisabledButtonLight     graphics.Color
	DisabledButtonDark      graphics.Color
}

// Default returns the built-in dark environment.
func Default() *Env {
	return &Env{
		BasicWidgetHeight:  18,
		WideWidgetWidth:    100,
		BorderWidth:        1,
		TextSize:           15,
		ButtonBorderRadius: 4,

		WindowBackground:        graphics.RGB(0x29, 0x29, 0x29),
		LabelColor:              graphics.RGB(0xf0, 0xf0, 0xea),
		BorderDark:              graphics.RGB(0x3a, 0x3a, 0x3a),
		BorderLight:             graphics.RGB(0xa1, 0xa1, 0xa1),
		BackgroundLight:         graphics.RGB(0x3a, 0x3a, 0x3a),
		BackgroundDark:          graphics.RGB(0x31, 0x31, 0x31),
		ForegroundLight:         graphics.RGB(0xf9, 0xf9, 0xf9),
		ForegroundDark:          graphics.RGB(0xbf, 0xbf, 0xbf),
		DisabledForegroundLight: graphics.RGB(0x5e, 0x5e, 0x5e),
		DisabledForegroundDark:  graphics.RGB(0x3c, 0x3c, 0x3c),
		ButtonLight:             graphics.RGB(0x21, 0x21, 0x21),
		ButtonDark:              graphics.RGB(0x12, 0x12, 0x12),
		DisabledButtonLight:     graphics.RGB(0x28, 0x28, 0x28),
		DisabledButtonDark:      graphics.RGB(0x1c, 0x1c, 0x1c),
	}
}

// Copy returns an independent copy of the environment.
func (e *Env) Copy() *Env {
	c := *e
	return &c
}

// Validate checks the size tokens that layout depends on.
func (e *Env) Validate() error {
	if e.BasicWidgetHeight <= 0 {
		return fmt.Errorf("basic_widget_height must be positive (got %v)", e.BasicWidgetHeight)
	}
	if e.WideWidgetWidth <= 0 {
		return fmt.Errorf("wide_widget_width must be positive (got %v)", e.WideWidgetWidth)
	}
	if e.BorderWidth < 0 {
		return fmt.Errorf("border_width cannot be negative (got %v)", e.BorderWidth)
	}
	if e.TextSize <= 0 {
		return fmt.Errorf("text_size must be positive (got %v)", e.TextSize)
	}
	return nil
}
