// Package engine drives a widget tree from a stream of input events.
package engine

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// DefaultSize is the window size used when WithSize is not given.
var DefaultSize = graphics.Size{Width: 800, Height: 600}

type config struct {
	size   graphics.Size
	equal  any
	tracer func(core.Stage, string)
	trace  *FrameTraceBuffer
}

// Option configures a Window.
type Option func(*config)

// WithSize sets the logical window size.
func WithSize(size graphics.Size) Option {
	return func(c *config) { c.size = size }
}

// WithEqual sets the function used to decide whether data changed during an
// event. The default is reflect.DeepEqual.
func WithEqual[T any](equal func(a, b T) bool) Option {
	return func(c *config) { c.equal = equal }
}

// WithTracer installs a callback invoked at the start of every stage.
// The detail string names the event, notification or root widget type.
func WithTracer(tracer func(stage core.Stage, detail string)) Option {
	return func(c *config) { c.tracer = tracer }
}

// WithFrameTrace records timing samples for every pass into buf.
func WithFrameTrace(buf *FrameTraceBuffer) Option {
	return func(c *config) { c.trace = buf }
}

// Window owns a root widget, the application data and the environment, and
// runs every input through the stages in order: event, lifecycle, update,
// layout, paint. A paint requested while handling an event is performed
// before Dispatch returns.
//
// Window methods are safe to call from multiple goroutines; passes are
// serialized.
type Window[T any] struct {
	mu       sync.Mutex
	root     *core.WidgetPod[T]
	data     T
	env      *theme.Env
	equal    func(a, b T) bool
	size     graphics.Size
	tracer   func(core.Stage, string)
	trace    *FrameTraceBuffer
	list     *graphics.DisplayList
	attached bool
	dirty    bool
	aborted  bool
	stage    core.Stage
}

// NewWindow creates a window hosting root. A nil env uses theme.Default().
func NewWindow[T any](root core.Widget[T], data T, env *theme.Env, opts ...Option) *Window[T] {
	cfg := config{size: DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if env == nil {
		env = theme.Default()
	}
	w := &Window[T]{
		root:   core.NewWidgetPod(root),
		data:   data,
		env:    env,
		size:   cfg.size,
		tracer: cfg.tracer,
		trace:  cfg.trace,
	}
	switch eq := cfg.equal.(type) {
	case nil:
	case func(a, b T) bool:
		w.equal = eq
	default:
		errors.Warn("engine.NewWindow", errors.KindConfig, "",
			"equality func %T does not match data type %T, using reflect.DeepEqual", cfg.equal, data)
	}
	if w.equal == nil {
		w.equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return w
}

// Data returns the current application data.
func (w *Window[T]) Data() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.data
}

// Env returns the environment passed to every widget.
func (w *Window[T]) Env() *theme.Env {
	return w.env
}

// Size returns the logical window size.
func (w *Window[T]) Size() graphics.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Root returns the pod hosting the root widget.
func (w *Window[T]) Root() *core.WidgetPod[T] {
	return w.root
}

// DisplayList returns the output of the most recent paint, or nil.
func (w *Window[T]) DisplayList() *graphics.DisplayList {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.list
}

// Attach delivers WidgetAdded and runs the first layout and paint.
// Calling it again has no effect on the widgets.
func (w *Window[T]) Attach() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.run("attach", w.attachPass)
}

func (w *Window[T]) attachPass(sample *FrameSample) {
	ctx := &hostCtx{size: w.size}
	w.attach(ctx, sample)
	w.flush(ctx, sample)
}

func (w *Window[T]) attach(ctx *hostCtx, sample *FrameSample) {
	if w.attached {
		return
	}
	w.attached = true
	w.runStage(core.StageLifecycle, "core.WidgetAdded", sample, func() {
		w.root.Lifecycle(ctx, core.WidgetAdded{}, w.data, w.env)
	})
	// the root always gets a first layout, whatever it requested
	ctx.layout = true
	ctx.paint = true
}

// Dispatch runs one input event through the tree. A window that was not
// attached yet is attached in a separate pass first.
func (w *Window[T]) Dispatch(ev core.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.attached {
		w.run("attach", w.attachPass)
	}
	w.run(fmt.Sprintf("%T", ev), func(sample *FrameSample) {
		ctx := &hostCtx{size: w.size}
		old := w.data
		w.runStage(core.StageEvent, fmt.Sprintf("%T", ev), sample, func() {
			w.root.Event(ctx, ev, &w.data, w.env)
		})
		w.update(ctx, old, sample)
		w.flush(ctx, sample)
	})
}

// SetData replaces the application data, as if an event had changed it.
func (w *Window[T]) SetData(data T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.run("SetData", func(sample *FrameSample) {
		ctx := &hostCtx{size: w.size}
		old := w.data
		w.data = data
		w.update(ctx, old, sample)
		w.flush(ctx, sample)
	})
}

// SetDisabled disables or enables the whole tree.
func (w *Window[T]) SetDisabled(disabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.run("SetDisabled", func(sample *FrameSample) {
		ctx := &hostCtx{size: w.size}
		w.runStage(core.StageLifecycle, "core.DisabledChanged", sample, func() {
			w.root.SetDisabled(ctx, disabled, w.data, w.env)
		})
		w.flush(ctx, sample)
	})
}

// SetSize resizes the window and lays the tree out again.
func (w *Window[T]) SetSize(size graphics.Size) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.size = size
	w.run("SetSize", func(sample *FrameSample) {
		ctx := &hostCtx{size: w.size}
		ctx.RequestLayout()
		w.flush(ctx, sample)
	})
}

// Frame forces a layout and paint and returns the resulting display list.
func (w *Window[T]) Frame() *graphics.DisplayList {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.attached {
		w.run("attach", w.attachPass)
	}
	w.run("Frame", func(sample *FrameSample) {
		ctx := &hostCtx{size: w.size}
		ctx.RequestLayout()
		w.flush(ctx, sample)
	})
	return w.list
}

func (w *Window[T]) update(ctx *hostCtx, old T, sample *FrameSample) {
	if w.aborted || w.equal(old, w.data) {
		return
	}
	sample.Flags.Updated = true
	w.runStage(core.StageUpdate, w.rootName(), sample, func() {
		w.root.Update(ctx, old, w.data, w.env)
	})
}

// flush runs layout and paint if anything in the tree asked for them.
func (w *Window[T]) flush(ctx *hostCtx, sample *FrameSample) {
	if w.aborted {
		return
	}
	if ctx.layout || w.dirty || w.root.NeedsLayout() {
		sample.Flags.LaidOut = true
		w.runStage(core.StageLayout, w.rootName(), sample, w.layout)
	}
	if ctx.paint || w.dirty || w.root.NeedsPaint() {
		sample.Flags.Painted = true
		w.runStage(core.StagePaint, w.rootName(), sample, w.paint)
	}
	w.dirty = false
}

func (w *Window[T]) layout() {
	ctx := &hostCtx{size: w.size}
	w.root.Layout(ctx, layout.Loose(w.size), w.data, w.env)
	w.root.SetOrigin(graphics.Offset{})
}

func (w *Window[T]) paint() {
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(w.size)
	ctx := &hostCtx{size: w.size, canvas: canvas}
	w.root.Paint(ctx, w.data, w.env)
	w.list = recorder.EndRecording()
}

func (w *Window[T]) rootName() string {
	return fmt.Sprintf("%T", w.root.Widget())
}

// runStage runs fn as stage. Once a stage has panicked, the remaining stages
// of the pass are skipped.
func (w *Window[T]) runStage(stage core.Stage, detail string, sample *FrameSample, fn func()) {
	if w.aborted {
		return
	}
	w.stage = stage
	if w.tracer != nil {
		w.tracer(stage, detail)
	}
	start := time.Now()
	func() {
		defer errors.RecoverWithCallback("engine."+stage.String(), func(any) {
			w.aborted = true
		})
		fn()
	}()
	elapsed := durationToMillis(time.Since(start))
	switch stage {
	case core.StageEvent:
		sample.Phases.EventMs += elapsed
	case core.StageLifecycle:
		sample.Phases.LifecycleMs += elapsed
	case core.StageUpdate:
		sample.Phases.UpdateMs += elapsed
	case core.StageLayout:
		sample.Phases.LayoutMs += elapsed
	case core.StagePaint:
		sample.Phases.PaintMs += elapsed
	}
}

// run executes one pass. A panic inside a widget is reported through the
// error handler and the next pass starts from a full layout and paint.
func (w *Window[T]) run(name string, pass func(sample *FrameSample)) {
	start := time.Now()
	sample := FrameSample{Timestamp: start.UnixMilli(), Event: name}
	w.aborted = false
	pass(&sample)
	if w.aborted {
		sample.Flags.Recovered = true
		w.dirty = true
		w.aborted = false
	}
	if w.trace != nil {
		elapsed := time.Since(start)
		sample.FrameMs = durationToMillis(elapsed)
		w.trace.Add(sample, elapsed)
	}
}
