package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/graphics"
)

// BoxConstraints bound the size a widget may choose during layout.
type BoxConstraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only admit size.
func Tight(size graphics.Size) BoxConstraints {
	return BoxConstraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to size.
func Loose(size graphics.Size) BoxConstraints {
	return BoxConstraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper bound.
func Unbounded() BoxConstraints {
	return BoxConstraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// Constrain returns the size closest to size that satisfies the constraints.
func (c BoxConstraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  min(max(size.Width, c.MinWidth), c.MaxWidth),
		Height: min(max(size.Height, c.MinHeight), c.MaxHeight),
	}
}

// Loosen drops the minimums.
func (c BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c BoxConstraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c BoxConstraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c BoxConstraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Validate returns an error describing the first malformed bound.
func (c BoxConstraints) Validate() error {
	bounds := []struct {
		name  string
		value float64
	}{
		{"MinWidth", c.MinWidth},
		{"MaxWidth", c.MaxWidth},
		{"MinHeight", c.MinHeight},
		{"MaxHeight", c.MaxHeight},
	}
	for _, b := range bounds {
		if math.IsNaN(b.value) {
			return fmt.Errorf("%s is NaN", b.name)
		}
		if b.value < 0 {
			return fmt.Errorf("%s is negative (%v)", b.name, b.value)
		}
	}
	if math.IsInf(c.MinWidth, 1) || math.IsInf(c.MinHeight, 1) {
		return fmt.Errorf("minimum is infinite (%v x %v)", c.MinWidth, c.MinHeight)
	}
	if c.MinWidth > c.MaxWidth || c.MinHeight > c.MaxHeight {
		return fmt.Errorf("minimum exceeds maximum: %v", c)
	}
	return nil
}

// DebugCheck reports malformed constraints as a layout warning attributed
// to name. It never panics, layout carries on with whatever it was given.
func (c BoxConstraints) DebugCheck(name string) {
	if err := c.Validate(); err != nil {
		errors.Warn("layout.DebugCheck", errors.KindLayout, name, "bad constraints: %v", err)
	}
}

func (c BoxConstraints) String() string {
	return fmt.Sprintf("BoxConstraints(w=%v..%v, h=%v..%v)", c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}
