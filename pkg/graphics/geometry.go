package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns o translated by other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o minus other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOriginSize constructs a Rect from an origin and a size.
func RectFromOriginSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Left:   r.Left + d,
		Top:    r.Top + d,
		Right:  r.Right - d,
		Bottom: r.Bottom - d,
	}
}

// Contains reports whether p lies inside r. Left and top edges are
// inclusive, right and bottom edges exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// ToRRect rounds every corner of r with the given radius.
func (r Rect) ToRRect(radius float64) RRect {
	return RRectFromRectAndRadius(r, CircularRadius(radius))
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect represents a rounded rectangle with per-corner radii.
type RRect struct {
	Rect        Rect
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// RRectFromRectAndRadius creates a rounded rectangle with uniform corner radii.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{
		Rect:        rect,
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	}
}

// UniformRadius returns a single radius value if all corners match, or 0 if not.
func (r RRect) UniformRadius() float64 {
	v := r.TopLeft.X
	if !floatEqual(r.TopLeft.Y, v) ||
		!floatEqual(r.TopRight.X, v) ||
		!floatEqual(r.TopRight.Y, v) ||
		!floatEqual(r.BottomRight.X, v) ||
		!floatEqual(r.BottomRight.Y, v) ||
		!floatEqual(r.BottomLeft.X, v) ||
		!floatEqual(r.BottomLeft.Y, v) {
		return 0
	}
	return v
}

// Circle is a circle described by its center and radius.
type Circle struct {
	Center Offset
	Radius float64
}

// Winding returns the winding number of the circle's outline around p:
// 1 when p is inside the circle or on its boundary, 0 otherwise.
func (c Circle) Winding(p Offset) int {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	if dx*dx+dy*dy <= c.Radius*c.Radius {
		return 1
	}
	return 0
}

// Contains reports whether p is inside the circle or on its boundary.
func (c Circle) Contains(p Offset) bool {
	return c.Winding(p) > 0
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
