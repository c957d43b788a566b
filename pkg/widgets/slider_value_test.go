package widgets

import (
	"math"
	"testing"
)

const (
	testKnob  = 20.0
	testWidth = 100.0
)

var mapperCases = []struct {
	name string
	m    valueMapper
}{
	{"unit", valueMapper{min: 0, max: 1}},
	{"negative", valueMapper{min: -3, max: 7}},
	{"quarters", valueMapper{min: 0, max: 10, step: 2.5, stepped: true}},
	{"thirds", valueMapper{min: 0, max: 10, step: 3, stepped: true}},
	{"uneven", valueMapper{min: -1, max: 1, step: 0.3, stepped: true}},
	{"tenths", valueMapper{min: 0, max: 1, step: 0.1, stepped: true}},
	{"inexact", valueMapper{min: -0.3, max: 0.1}},
	{"huge", valueMapper{min: -math.MaxFloat64, max: math.MaxFloat64}},
	{"huge stepped", valueMapper{min: -math.MaxFloat64, max: math.MaxFloat64, step: 1, stepped: true}},
}

func TestValueMapperStaysInRange(t *testing.T) {
	for _, tc := range mapperCases {
		t.Run(tc.name, func(t *testing.T) {
			for x := -50.0; x <= 150; x += 0.5 {
				v := tc.m.fromPointer(x, testKnob, testWidth)
				if v < tc.m.min || v > tc.m.max {
					t.Fatalf("fromPointer(%v) = %v, outside [%v, %v]", x, v, tc.m.min, tc.m.max)
				}
			}
		})
	}
}

func TestValueMapperIsMonotonic(t *testing.T) {
	for _, tc := range mapperCases {
		t.Run(tc.name, func(t *testing.T) {
			prev := math.Inf(-1)
			for x := -10.0; x <= 110; x += 0.25 {
				n := tc.m.normalize(tc.m.fromPointer(x, testKnob, testWidth))
				if n < prev {
					t.Fatalf("normalized value decreased at x=%v: %v < %v", x, n, prev)
				}
				prev = n
			}
		})
	}
}

func TestValueMapperMaxIsReachable(t *testing.T) {
	for _, tc := range mapperCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.fromPointer(testWidth-testKnob/2, testKnob, testWidth); got != tc.m.max {
				t.Errorf("value at the right end = %v, want %v", got, tc.m.max)
			}
			if got := tc.m.fromPointer(testKnob/2, testKnob, testWidth); got != tc.m.min {
				t.Errorf("value at the left end = %v, want %v", got, tc.m.min)
			}
		})
	}
}

func TestValueMapperStepAlignment(t *testing.T) {
	for _, tc := range mapperCases {
		if !tc.m.stepped {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			for x := 0.0; x <= testWidth; x += 0.5 {
				v := tc.m.fromPointer(x, testKnob, testWidth)
				if v == tc.m.max {
					continue
				}
				k := (v - tc.m.min) / tc.m.step
				if math.Abs(k-math.Round(k)) > 1e-9 {
					t.Fatalf("fromPointer(%v) = %v is not min+k*step", x, v)
				}
			}
		})
	}
}

func TestValueMapperTieGoesToAlignedStep(t *testing.T) {
	m := valueMapper{min: 0, max: 8, step: 3, stepped: true}
	// x=80 maps to 7, halfway between the last step (6) and max (8).
	if got := m.fromPointer(80, testKnob, testWidth); got != 6 {
		t.Errorf("tie = %v, want 6", got)
	}
	if got := m.fromPointer(81, testKnob, testWidth); got != 8 {
		t.Errorf("just past the tie = %v, want 8", got)
	}
	if got := m.fromPointer(79, testKnob, testWidth); got != 6 {
		t.Errorf("just before the tie = %v, want 6", got)
	}
}

func TestValueMapperSnapsToNearestStep(t *testing.T) {
	m := valueMapper{min: 0, max: 10, step: 2.5, stepped: true}
	tests := []struct {
		x    float64
		want float64
	}{
		{95, 10},
		{10, 0},
		{30, 2.5}, // raw 2.5
		{34, 2.5}, // raw 3.0
		{36, 2.5}, // raw 3.25
		{41, 5},   // raw 3.875
		{50, 5},   // raw 5
		{200, 10}, // clamped
		{-200, 0}, // clamped
	}
	for _, tt := range tests {
		if got := m.fromPointer(tt.x, testKnob, testWidth); got != tt.want {
			t.Errorf("fromPointer(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestValueMapperRoundTrip(t *testing.T) {
	m := valueMapper{min: -3, max: 7}
	for v := -3.0; v <= 7; v += 0.125 {
		x := knobCenterX(m.normalize(v), testKnob, testWidth)
		if got := m.fromPointer(x, testKnob, testWidth); math.Abs(got-v) > 1e-9 {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestValueMapperDegenerate(t *testing.T) {
	m := valueMapper{min: 5, max: 5}
	for _, v := range []float64{-1, 5, 100, math.NaN()} {
		if n := m.normalize(v); n != 0 {
			t.Errorf("normalize(%v) = %v, want 0 for an empty range", v, n)
		}
	}
	if got := m.fromPointer(60, testKnob, testWidth); got != 5 {
		t.Errorf("fromPointer on an empty range = %v, want 5", got)
	}

	stepped := valueMapper{min: 5, max: 5, step: 1, stepped: true}
	if got := stepped.fromPointer(60, testKnob, testWidth); got != 5 {
		t.Errorf("stepped fromPointer on an empty range = %v, want 5", got)
	}

	unit := valueMapper{min: 0, max: 1}
	if got := unit.fromPointer(15, testKnob, testKnob); got != 0 {
		t.Errorf("fromPointer with no travel = %v, want 0", got)
	}
	if got := unit.fromPointer(math.NaN(), testKnob, testWidth); got != 0 {
		t.Errorf("fromPointer(NaN) = %v, want 0", got)
	}
}

func TestValueMapperOverflowingSpan(t *testing.T) {
	m := valueMapper{min: -math.MaxFloat64, max: math.MaxFloat64}
	if got := m.fromPointer(50, testKnob, testWidth); got != 0 {
		t.Errorf("fromPointer at the middle = %v, want 0", got)
	}
	if got := m.normalize(0); got != 0.5 {
		t.Errorf("normalize(0) = %v, want 0.5", got)
	}
	if got := m.normalize(math.MaxFloat64); got != 1 {
		t.Errorf("normalize(max) = %v, want 1", got)
	}
}

func TestNormalizeClamps(t *testing.T) {
	m := valueMapper{min: 0, max: 10}
	tests := []struct{ v, want float64 }{
		{-5, 0},
		{0, 0},
		{2.5, 0.25},
		{10, 1},
		{15, 1},
	}
	for _, tt := range tests {
		if got := m.normalize(tt.v); got != tt.want {
			t.Errorf("normalize(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
