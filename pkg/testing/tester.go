package testing

import (
	"testing"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/engine"
	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/theme"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// StageRecord is one stage call observed by the tester.
type StageRecord struct {
	// Pass numbers the window operation that made the call, starting at 1.
	Pass   int
	Stage  core.Stage
	Detail string
}

type options struct {
	env    *theme.Env
	size   graphics.Size
	engine []engine.Option
}

// Option configures a WidgetTester.
type Option func(*options)

// WithEnv sets the environment passed to the widget.
func WithEnv(env *theme.Env) Option {
	return func(o *options) { o.env = env }
}

// WithSize sets the logical surface size.
func WithSize(size graphics.Size) Option {
	return func(o *options) { o.size = size }
}

// WithEngineOptions passes extra options to the underlying window.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(o *options) { o.engine = append(o.engine, opts...) }
}

// WidgetTester drives a single widget through an engine.Window without a
// platform. The widget is attached on creation.
type WidgetTester[T any] struct {
	window      *engine.Window[T]
	stages      []StageRecord
	pass        int
	collector   *errors.Collector
	prevHandler errors.ErrorHandler
	buttons     core.MouseButtons
	mods        core.Modifiers
	pointer     graphics.Offset
}

// NewWidgetTester creates a tester for widget bound to data.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester[T any](widget core.Widget[T], data T, opts ...Option) *WidgetTester[T] {
	o := options{size: graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}}
	for _, opt := range opts {
		opt(&o)
	}
	t := &WidgetTester[T]{
		collector:   &errors.Collector{},
		prevHandler: errors.CurrentHandler(),
	}
	errors.SetHandler(t.collector)

	engineOpts := append([]engine.Option{
		engine.WithSize(o.size),
		engine.WithTracer(t.record),
	}, o.engine...)
	t.window = engine.NewWindow(widget, data, o.env, engineOpts...)
	t.do(t.window.Attach)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT[T any](t testing.TB, widget core.Widget[T], data T, opts ...Option) *WidgetTester[T] {
	tester := NewWidgetTester(widget, data, opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the error handler that was installed before the tester.
func (t *WidgetTester[T]) Cleanup() {
	errors.SetHandler(t.prevHandler)
}

func (t *WidgetTester[T]) record(stage core.Stage, detail string) {
	t.stages = append(t.stages, StageRecord{Pass: t.pass, Stage: stage, Detail: detail})
}

// do runs one window operation as its own pass.
func (t *WidgetTester[T]) do(fn func()) {
	t.pass++
	fn()
}

// Window returns the underlying window.
func (t *WidgetTester[T]) Window() *engine.Window[T] {
	return t.window
}

// Root returns the pod hosting the widget under test.
func (t *WidgetTester[T]) Root() *core.WidgetPod[T] {
	return t.window.Root()
}

// Data returns the current data.
func (t *WidgetTester[T]) Data() T {
	return t.window.Data()
}

// SetData replaces the data and runs update, layout and paint as needed.
func (t *WidgetTester[T]) SetData(data T) {
	t.do(func() { t.window.SetData(data) })
}

// SetDisabled disables or enables the widget.
func (t *WidgetTester[T]) SetDisabled(disabled bool) {
	t.do(func() { t.window.SetDisabled(disabled) })
}

// Pump forces a layout and paint.
func (t *WidgetTester[T]) Pump() *graphics.DisplayList {
	var list *graphics.DisplayList
	t.do(func() { list = t.window.Frame() })
	return list
}

// Dispatch sends a raw event.
func (t *WidgetTester[T]) Dispatch(ev core.Event) {
	t.do(func() { t.window.Dispatch(ev) })
}

// DisplayList returns the output of the most recent paint.
func (t *WidgetTester[T]) DisplayList() *graphics.DisplayList {
	return t.window.DisplayList()
}

// Stages returns the stage calls recorded so far.
func (t *WidgetTester[T]) Stages() []StageRecord {
	return append([]StageRecord(nil), t.stages...)
}

// ResetStages drops the recorded stage calls.
func (t *WidgetTester[T]) ResetStages() {
	t.stages = nil
}

// Warnings returns the warnings reported since the tester was created.
func (t *WidgetTester[T]) Warnings() []*errors.Warning {
	return t.collector.Warnings()
}

// Panics returns the panics recovered since the tester was created.
func (t *WidgetTester[T]) Panics() []*errors.PanicError {
	return t.collector.Panics()
}
