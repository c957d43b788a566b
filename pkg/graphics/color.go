package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Grey constructs an opaque grey with the given level (0.0 black to 1.0 white).
func Grey(level float64) Color {
	v := uint8(clamp01(level)*255 + 0.5)
	return RGB(v, v, v)
}

// WithAlpha8 returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when not fully opaque.
func (c Color) Hex() string {
	a := uint8(c >> 24)
	if a == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%06X%02X", uint32(c)&0x00FFFFFF, a)
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		return Color(0xFF000000 | uint32(v)), nil
	}
	rgb := uint32(v) >> 8
	a := uint8(v)
	return Color(uint32(a)<<24 | rgb), nil
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
