package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Gradient    *LinearGradient // If set, overrides Color
	Style       PaintStyle
	StrokeWidth float64 // Width of stroke in pixels
}

// FillPaint returns a solid fill.
func FillPaint(color Color) Paint {
	return Paint{Color: color, Style: PaintStyleFill}
}

// GradientFillPaint returns a fill painted with gradient.
func GradientFillPaint(gradient *LinearGradient) Paint {
	return Paint{Gradient: gradient, Style: PaintStyleFill}
}

// StrokePaint returns a solid outline of the given width.
func StrokePaint(color Color, width float64) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width}
}
