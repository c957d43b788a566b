package engine

import (
	"sync"
	"time"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each stage of a dispatch (ms).
type FramePhaseTimings struct {
	EventMs     float64 `json:"eventMs"`
	LifecycleMs float64 `json:"lifecycleMs"`
	UpdateMs    float64 `json:"updateMs"`
	LayoutMs    float64 `json:"layoutMs"`
	PaintMs     float64 `json:"paintMs"`
}

// FrameFlags records which optional stages a dispatch ran.
type FrameFlags struct {
	Updated   bool `json:"updated,omitempty"`
	LaidOut   bool `json:"laidOut,omitempty"`
	Painted   bool `json:"painted,omitempty"`
	Recovered bool `json:"recovered,omitempty"`
}

// FrameSample is a single dispatch trace sample.
type FrameSample struct {
	Timestamp int64             `json:"ts"`
	FrameMs   float64           `json:"frameMs"`
	Event     string            `json:"event,omitempty"`
	Phases    FramePhaseTimings `json:"phases"`
	Flags     FrameFlags        `json:"flags"`
}

// FrameTimeline is a chronological view of the buffer.
type FrameTimeline struct {
	Samples     []FrameSample `json:"samples"`
	SlowFrames  int           `json:"slowFrames"`
	ThresholdMs float64       `json:"thresholdMs"`
}

// FrameTraceBuffer stores recent dispatch samples in a ring buffer.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	samples   []FrameSample
	index     int
	count     int
	slow      int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a new frame trace buffer.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{
		samples:   make([]FrameSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *FrameTraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Threshold returns the slow frame threshold.
func (b *FrameTraceBuffer) Threshold() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.threshold
}

// Add records a sample and updates the slow frame count.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if frameDuration > b.threshold {
		b.slow++
	}
	b.mu.Unlock()
}

// Snapshot returns a chronological copy of samples and stats.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return FrameTimeline{ThresholdMs: durationToMillis(b.threshold)}
	}

	result := make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}

	return FrameTimeline{
		Samples:     result,
		SlowFrames:  b.slow,
		ThresholdMs: durationToMillis(b.threshold),
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
