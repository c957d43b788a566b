package widgets

import (
	"math"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

const (
	sliderTrackThickness = 4.0
	sliderBorderWidth    = 2.0
	sliderKnobStroke     = 2.0
)

// Slider lets the user pick a float64 in [min, max] by dragging a knob
// along a horizontal track. Clicking the track away from the knob jumps the
// value to the pointer; grabbing the knob drags it from the grab point.
//
// The knob diameter and the slider height are env.BasicWidgetHeight, the
// width is env.WideWidgetWidth.
type Slider struct {
	values      valueMapper
	knobPos     graphics.Offset
	knobHovered bool
	xOffset     float64
}

// NewSlider creates a slider over [0, 1] without stepping.
func NewSlider() *Slider {
	return &Slider{values: valueMapper{min: 0, max: 1}}
}

// WithRange sets the range covered by the slider. The bounds are checked
// when the slider is first attached to a host.
func (s *Slider) WithRange(min, max float64) *Slider {
	s.values.min = min
	s.values.max = max
	return s
}

// WithStep sets the stepping. A step of 0 means smooth values. A negative
// or non-finite step is reported and ignored.
func (s *Slider) WithStep(step float64) *Slider {
	if !(step >= 0) || math.IsInf(step, 0) {
		errors.Warn("Slider.WithStep", errors.KindConfig, "Slider", "bad stepping (must be positive): %v", step)
		return s
	}
	// A step of 0 would yield an infinite number of steps.
	s.values.step = 0
	s.values.stepped = step > 0
	if s.values.stepped {
		s.values.step = step
	}
	return s
}

// Range returns the current bounds.
func (s *Slider) Range() (min, max float64) {
	return s.values.min, s.values.max
}

// Step returns the step and whether stepping is enabled.
func (s *Slider) Step() (float64, bool) {
	return s.values.step, s.values.stepped
}

// KnobPosition returns the knob center as of the last paint.
func (s *Slider) KnobPosition() graphics.Offset {
	return s.knobPos
}

// KnobHovered reports whether the pointer was over the knob at the last move.
func (s *Slider) KnobHovered() bool {
	return s.knobHovered
}

// checkRange swaps the bounds when min > max.
func (s *Slider) checkRange() {
	v := &s.values
	if math.IsNaN(v.min) || math.IsNaN(v.max) || math.IsInf(v.min, 0) || math.IsInf(v.max, 0) {
		errors.Warn("Slider.CheckRange", errors.KindConfig, "Slider",
			"range %v..%v is not finite, using 0..1", v.min, v.max)
		v.min, v.max = 0, 1
		return
	}
	if v.max < v.min {
		errors.Warn("Slider.CheckRange", errors.KindConfig, "Slider",
			"min(%v) should be less than max(%v), swapping the values", v.min, v.max)
		v.min, v.max = v.max, v.min
	}
}

func (s *Slider) knobHitTest(knobWidth float64, pos graphics.Offset) bool {
	return graphics.Circle{Center: s.knobPos, Radius: knobWidth / 2}.Contains(pos)
}

func (s *Slider) calculateValue(mouseX, knobWidth, sliderWidth float64) float64 {
	return s.values.fromPointer(mouseX+s.xOffset, knobWidth, sliderWidth)
}

// Event handles press, drag and release. A press on the knob keeps the grab
// offset; a press elsewhere jumps the value to the pointer.
func (s *Slider) Event(ctx core.EventCtx, ev core.Event, data *float64, env *theme.Env) {
	knobSize := env.BasicWidgetHeight
	sliderWidth := ctx.Size().Width

	switch e := ev.(type) {
	case core.MouseDown:
		if ctx.IsDisabled() {
			return
		}
		ctx.SetActive(true)
		if s.knobHitTest(knobSize, e.Pos) {
			s.xOffset = s.knobPos.X - e.Pos.X
		} else {
			s.xOffset = 0
			*data = s.calculateValue(e.Pos.X, knobSize, sliderWidth)
		}
		ctx.RequestPaint()
	case core.MouseUp:
		if ctx.IsActive() && !ctx.IsDisabled() {
			*data = s.calculateValue(e.Pos.X, knobSize, sliderWidth)
			ctx.RequestPaint()
		}
		ctx.SetActive(false)
		s.xOffset = 0
	case core.MouseMove:
		if ctx.IsDisabled() {
			ctx.SetActive(false)
			return
		}
		if ctx.IsActive() {
			*data = s.calculateValue(e.Pos.X, knobSize, sliderWidth)
			ctx.RequestPaint()
		}
		if ctx.IsHot() {
			hovered := s.knobHitTest(knobSize, e.Pos)
			if hovered != s.knobHovered {
				s.knobHovered = hovered
				ctx.RequestPaint()
			}
		}
	}
}

// Lifecycle checks the range once attached and repaints when the hot,
// focused or disabled state changes.
func (s *Slider) Lifecycle(ctx core.LifeCycleCtx, ev core.LifeCycle, data float64, env *theme.Env) {
	switch ev.(type) {
	case core.WidgetAdded:
		// checked here rather than in WithRange so the warning reaches
		// whatever handler the host installed
		s.checkRange()
	case core.DisabledChanged, core.HotChanged, core.FocusChanged:
		ctx.RequestPaint()
	}
}

// Update repaints when the value changed.
func (s *Slider) Update(ctx core.UpdateCtx, old, data float64, env *theme.Env) {
	ctx.RequestPaint()
}

// Layout takes WideWidgetWidth by BasicWidgetHeight, within bc.
func (s *Slider) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data float64, env *theme.Env) graphics.Size {
	bc.DebugCheck("Slider")
	height := env.BasicWidgetHeight
	width := env.WideWidgetWidth
	ctx.SetBaselineOffset(height/2 - sliderTrackThickness)
	return bc.Constrain(graphics.Size{Width: width, Height: height})
}

// Paint draws the track, then the knob at the clamped value.
func (s *Slider) Paint(ctx core.PaintCtx, data float64, env *theme.Env) {
	clamped := s.values.normalize(data)
	size := ctx.Size()
	knobSize := env.BasicWidgetHeight
	canvas := ctx.Canvas()

	// track
	trackRect := graphics.RectFromOriginSize(
		graphics.Offset{X: knobSize / 2, Y: (knobSize - sliderTrackThickness) / 2},
		graphics.Size{Width: size.Width - knobSize, Height: sliderTrackThickness},
	).Inset(-sliderBorderWidth / 2)
	track := trackRect.ToRRect(2)
	trackGradient := graphics.LinearGradientIn(trackRect, graphics.UnitPointTop, graphics.UnitPointBottom,
		env.BackgroundLight, env.BackgroundDark)
	canvas.DrawRRect(track, graphics.StrokePaint(env.BorderDark, sliderBorderWidth))
	canvas.DrawRRect(track, graphics.GradientFillPaint(trackGradient))

	// knob
	disabled := ctx.IsDisabled()
	active := ctx.IsActive()
	s.knobPos = graphics.Offset{X: knobCenterX(clamped, knobSize, size.Width), Y: knobSize / 2}
	knobRadius := (knobSize - sliderKnobStroke) / 2
	knobRect := graphics.RectFromLTWH(s.knobPos.X-knobRadius, s.knobPos.Y-knobRadius, 2*knobRadius, 2*knobRadius)

	var knobGradient *graphics.LinearGradient
	switch {
	case disabled:
		knobGradient = graphics.LinearGradientIn(knobRect, graphics.UnitPointTop, graphics.UnitPointBottom,
			env.DisabledForegroundLight, env.DisabledForegroundDark)
	case active:
		knobGradient = graphics.LinearGradientIn(knobRect, graphics.UnitPointTop, graphics.UnitPointBottom,
			env.ForegroundDark, env.ForegroundLight)
	default:
		knobGradient = graphics.LinearGradientIn(knobRect, graphics.UnitPointTop, graphics.UnitPointBottom,
			env.ForegroundLight, env.ForegroundDark)
	}

	borderColor := env.ForegroundDark
	if (s.knobHovered || active) && !disabled {
		borderColor = env.ForegroundLight
	}
	canvas.DrawCircle(s.knobPos, knobRadius, graphics.StrokePaint(borderColor, sliderKnobStroke))
	canvas.DrawCircle(s.knobPos, knobRadius, graphics.GradientFillPaint(knobGradient))
}
