package graphics

// UnitPoint is a point in a rectangle's unit space: (0,0) is the top-left
// corner and (1,1) the bottom-right corner.
type UnitPoint struct {
	U float64
	V float64
}

// Common unit points.
var (
	UnitPointTop    = UnitPoint{U: 0.5, V: 0}
	UnitPointBottom = UnitPoint{U: 0.5, V: 1}
	UnitPointLeft   = UnitPoint{U: 0, V: 0.5}
	UnitPointRight  = UnitPoint{U: 1, V: 0.5}
	UnitPointCenter = UnitPoint{U: 0.5, V: 0.5}
)

// Resolve maps the unit point onto rect.
func (p UnitPoint) Resolve(rect Rect) Offset {
	return Offset{
		X: rect.Left + p.U*rect.Width(),
		Y: rect.Top + p.V*rect.Height(),
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *LinearGradient {
	return &LinearGradient{
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// LinearGradientIn builds a two-stop gradient running from `from` to `to`
// inside rect.
func LinearGradientIn(rect Rect, from, to UnitPoint, start, end Color) *LinearGradient {
	return NewLinearGradient(from.Resolve(rect), to.Resolve(rect), []GradientStop{
		{Position: 0, Color: start},
		{Position: 1, Color: end},
	})
}

// IsValid reports whether the gradient has usable stops.
func (g *LinearGradient) IsValid() bool {
	if g == nil || len(g.Stops) < 2 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
