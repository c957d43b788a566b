package widgets

import "math"

// valueMapper converts between pointer positions and slider values.
// It holds no interaction state.
type valueMapper struct {
	min     float64
	max     float64
	step    float64
	stepped bool
}

// fromPointer maps a knob-center x coordinate to a value in [min, max].
//
// The knob travels over sliderWidth-knobWidth pixels, starting half a knob
// in from the left edge. With stepping enabled the value snaps to
// min+k*step, except that max is always reachable: above the last aligned
// step the value goes to whichever of that step and max is closer, ties
// going to the aligned step.
func (m valueMapper) fromPointer(x, knobWidth, sliderWidth float64) float64 {
	travel := sliderWidth - knobWidth
	scalar := 0.0
	if travel > 0 {
		scalar = (x - knobWidth/2) / travel
	}
	if math.IsNaN(scalar) {
		scalar = 0
	}
	scalar = min(max(scalar, 0), 1)

	value := min(max(m.lerp(scalar), m.min), m.max)
	if !m.stepped {
		return value
	}

	maxStepValue := math.Floor((m.max-m.min)/m.step)*m.step + m.min
	if math.IsInf(maxStepValue, 0) || math.IsNaN(maxStepValue) {
		return value
	}
	if value > maxStepValue {
		// make sure max is reachable
		leftDist := value - maxStepValue
		rightDist := m.max - value
		if leftDist <= rightDist {
			return maxStepValue
		}
		return m.max
	}
	return min(math.Round((value-m.min)/m.step)*m.step+m.min, m.max)
}

// lerp interpolates between min and max without forming max-min, which
// overflows for ranges wider than math.MaxFloat64.
func (m valueMapper) lerp(scalar float64) float64 {
	if span := m.max - m.min; !math.IsInf(span, 0) {
		return m.min + scalar*span
	}
	return m.min + scalar*m.max - scalar*m.min
}

// normalize maps value onto [0, 1]. A degenerate range maps to 0.
func (m valueMapper) normalize(value float64) float64 {
	span := m.max - m.min
	if span <= 0 || math.IsNaN(value) {
		return 0
	}
	clamped := min(max(value, m.min), m.max)
	if math.IsInf(span, 0) {
		return min((clamped/2-m.min/2)/(m.max/2-m.min/2), 1)
	}
	return (clamped - m.min) / span
}

// knobCenterX is the inverse of fromPointer for unstepped values: the x
// coordinate at which the knob is drawn for a normalized value.
func knobCenterX(normalized, knobWidth, sliderWidth float64) float64 {
	return (sliderWidth-knobWidth)*normalized + knobWidth/2
}
