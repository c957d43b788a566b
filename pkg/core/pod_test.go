package core

import (
	"testing"

	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// fakeCtx is a parent context that records requests.
type fakeCtx struct {
	active, hot, disabled, focused bool
	size                           graphics.Size
	handled                        bool
	paints, layouts                int
	canvas                         graphics.Canvas
}

func (c *fakeCtx) IsActive() bool            { return c.active }
func (c *fakeCtx) IsHot() bool               { return c.hot }
func (c *fakeCtx) IsDisabled() bool          { return c.disabled }
func (c *fakeCtx) IsFocused() bool           { return c.focused }
func (c *fakeCtx) Size() graphics.Size       { return c.size }
func (c *fakeCtx) SetActive(a bool)          { c.active = a }
func (c *fakeCtx) RequestPaint()             { c.paints++ }
func (c *fakeCtx) RequestLayout()            { c.layouts++ }
func (c *fakeCtx) SetHandled()               { c.handled = true }
func (c *fakeCtx) IsHandled() bool           { return c.handled }
func (c *fakeCtx) SetBaselineOffset(float64) {}
func (c *fakeCtx) Canvas() graphics.Canvas   { return c.canvas }

// probe records every call it receives.
type probe struct {
	events     []Event
	lifecycles []LifeCycle
	updates    int
	grab       bool
	handle     bool
	paintOnHot bool
}

func (w *probe) Event(ctx EventCtx, ev Event, data *int, env *theme.Env) {
	w.events = append(w.events, ev)
	switch ev.(type) {
	case MouseDown:
		if w.grab {
			ctx.SetActive(true)
		}
	case MouseUp:
		ctx.SetActive(false)
	}
	if w.handle {
		ctx.SetHandled()
	}
	*data++
}

func (w *probe) Lifecycle(ctx LifeCycleCtx, ev LifeCycle, data int, env *theme.Env) {
	w.lifecycles = append(w.lifecycles, ev)
	if _, ok := ev.(HotChanged); ok && w.paintOnHot {
		ctx.RequestPaint()
	}
}

func (w *probe) Update(ctx UpdateCtx, old, data int, env *theme.Env) {
	w.updates++
	ctx.RequestLayout()
}

func (w *probe) Layout(ctx LayoutCtx, bc layout.BoxConstraints, data int, env *theme.Env) graphics.Size {
	ctx.SetBaselineOffset(3)
	return bc.Constrain(graphics.Size{Width: 40, Height: 20})
}

func (w *probe) Paint(ctx PaintCtx, data int, env *theme.Env) {
	ctx.Canvas().DrawCircle(graphics.Offset{X: 1, Y: 1}, 1, graphics.FillPaint(graphics.ColorWhite))
}

func newProbePod(t *testing.T, w *probe, origin graphics.Offset) *WidgetPod[int] {
	t.Helper()
	pod := NewWidgetPod[int](w)
	pod.Layout(&fakeCtx{}, layout.Loose(graphics.Size{Width: 100, Height: 100}), 0, theme.Default())
	pod.SetOrigin(origin)
	return pod
}

func mouseMove(x, y float64) MouseMove {
	p := graphics.Offset{X: x, Y: y}
	return MouseMove{MouseEvent{Pos: p, WindowPos: p}}
}

func mouseDown(x, y float64) MouseDown {
	p := graphics.Offset{X: x, Y: y}
	return MouseDown{MouseEvent{Pos: p, WindowPos: p, Button: MouseButtonLeft}}
}

func mouseUp(x, y float64) MouseUp {
	p := graphics.Offset{X: x, Y: y}
	return MouseUp{MouseEvent{Pos: p, WindowPos: p, Button: MouseButtonLeft}}
}

func TestWidgetPod_TranslatesAndTracksHot(t *testing.T) {
	w := &probe{paintOnHot: true}
	pod := newProbePod(t, w, graphics.Offset{X: 10, Y: 10})
	parent := &fakeCtx{}
	env := theme.Default()
	data := 0

	pod.Event(parent, mouseMove(5, 5), &data, env)
	if len(w.events) != 0 {
		t.Fatalf("pointer outside the child should not be delivered, got %d events", len(w.events))
	}

	pod.Event(parent, mouseMove(15, 12), &data, env)
	if !pod.IsHot() {
		t.Fatal("expected pod to be hot")
	}
	if len(w.lifecycles) != 1 || w.lifecycles[0] != (HotChanged{Hot: true}) {
		t.Fatalf("expected HotChanged{true}, got %v", w.lifecycles)
	}
	if parent.paints == 0 {
		t.Error("paint requested during HotChanged should reach the parent")
	}
	move := w.events[0].(MouseMove)
	if move.Pos != (graphics.Offset{X: 5, Y: 2}) {
		t.Errorf("Pos = %v, want child coordinates (5,2)", move.Pos)
	}
	if move.WindowPos != (graphics.Offset{X: 15, Y: 12}) {
		t.Errorf("WindowPos should not be translated, got %v", move.WindowPos)
	}
	if data != 1 {
		t.Errorf("data = %d, want 1", data)
	}
}

func TestWidgetPod_ActiveCapturesOutsidePointer(t *testing.T) {
	w := &probe{grab: true}
	pod := newProbePod(t, w, graphics.Offset{})
	parent := &fakeCtx{}
	env := theme.Default()
	data := 0

	pod.Event(parent, mouseDown(5, 5), &data, env)
	if !pod.IsActive() {
		t.Fatal("expected child to be active after grabbing")
	}
	pod.Event(parent, mouseMove(500, 500), &data, env)
	if len(w.events) != 2 {
		t.Fatalf("active child should receive moves outside its bounds, got %d events", len(w.events))
	}
	if pod.IsHot() {
		t.Error("pointer outside the child should clear hot")
	}
	pod.Event(parent, mouseUp(500, 500), &data, env)
	if pod.IsActive() {
		t.Error("expected release to clear active")
	}
	pod.Event(parent, mouseMove(600, 600), &data, env)
	if len(w.events) != 3 {
		t.Errorf("released child should not receive outside moves, got %d events", len(w.events))
	}
}

func TestWidgetPod_NestedActiveIsNoted(t *testing.T) {
	inner := &probe{grab: true}
	innerPod := newProbePod(t, inner, graphics.Offset{})
	outer := &container{child: innerPod}
	outerPod := NewWidgetPod[int](outer)
	outerPod.Layout(&fakeCtx{}, layout.Loose(graphics.Size{Width: 100, Height: 100}), 0, theme.Default())

	data := 0
	outerPod.Event(&fakeCtx{}, mouseDown(5, 5), &data, theme.Default())
	if !outerPod.HasActive() {
		t.Fatal("outer pod should know a descendant is active")
	}
	if outerPod.IsActive() {
		t.Error("outer pod itself should not be active")
	}
	outerPod.Event(&fakeCtx{}, mouseUp(900, 900), &data, theme.Default())
	if outerPod.HasActive() {
		t.Error("release should clear the descendant flag")
	}
}

func TestWidgetPod_HandledStopsDelivery(t *testing.T) {
	w := &probe{}
	pod := newProbePod(t, w, graphics.Offset{})
	parent := &fakeCtx{handled: true}
	data := 0
	pod.Event(parent, mouseMove(5, 5), &data, theme.Default())
	if len(w.events) != 0 {
		t.Error("handled events should not be delivered")
	}

	w.handle = true
	parent.handled = false
	pod.Event(parent, mouseMove(6, 6), &data, theme.Default())
	if !parent.handled {
		t.Error("SetHandled in the child should reach the parent")
	}
}

func TestWidgetPod_WidgetAddedOnce(t *testing.T) {
	w := &probe{}
	pod := newProbePod(t, w, graphics.Offset{})
	for i := 0; i < 3; i++ {
		pod.Lifecycle(&fakeCtx{}, WidgetAdded{}, 0, theme.Default())
	}
	if len(w.lifecycles) != 1 {
		t.Errorf("WidgetAdded delivered %d times, want 1", len(w.lifecycles))
	}
	if !pod.IsAdded() {
		t.Error("expected IsAdded")
	}
}

func TestWidgetPod_DisabledMerging(t *testing.T) {
	w := &probe{}
	pod := newProbePod(t, w, graphics.Offset{})
	env := theme.Default()
	parent := &fakeCtx{}

	pod.SetDisabled(parent, true, 0, env)
	pod.Lifecycle(parent, DisabledChanged{Disabled: true}, 0, env)
	pod.Lifecycle(parent, DisabledChanged{Disabled: false}, 0, env)
	if !pod.IsDisabled() {
		t.Fatal("own disabled flag should survive the ancestor re-enabling")
	}
	pod.SetDisabled(parent, false, 0, env)

	want := []LifeCycle{DisabledChanged{Disabled: true}, DisabledChanged{Disabled: false}}
	if len(w.lifecycles) != len(want) {
		t.Fatalf("got %v, want %v", w.lifecycles, want)
	}
	for i := range want {
		if w.lifecycles[i] != want[i] {
			t.Errorf("lifecycle[%d] = %v, want %v", i, w.lifecycles[i], want[i])
		}
	}

	pod.Lifecycle(parent, HotChanged{Hot: true}, 0, env)
	pod.Lifecycle(parent, FocusChanged{Focused: true}, 0, env)
	if len(w.lifecycles) != len(want) {
		t.Error("HotChanged and FocusChanged from the parent should not be forwarded")
	}

	pod.SetFocused(parent, true, 0, env)
	if !pod.IsFocused() || w.lifecycles[len(w.lifecycles)-1] != (FocusChanged{Focused: true}) {
		t.Error("SetFocused should deliver FocusChanged")
	}
}

func TestWidgetPod_UpdateForwardsLayoutRequest(t *testing.T) {
	w := &probe{}
	pod := newProbePod(t, w, graphics.Offset{})
	parent := &fakeCtx{}
	pod.Update(parent, 0, 1, theme.Default())
	if w.updates != 1 {
		t.Fatalf("updates = %d", w.updates)
	}
	if parent.layouts != 1 {
		t.Errorf("layout request should reach the parent, got %d", parent.layouts)
	}
	if !pod.NeedsLayout() || !pod.NeedsPaint() {
		t.Error("pod should be marked for layout and paint")
	}
}

func TestWidgetPod_LayoutAndPaint(t *testing.T) {
	w := &probe{}
	pod := NewWidgetPod[int](w)
	size := pod.Layout(&fakeCtx{}, layout.Tight(graphics.Size{Width: 30, Height: 30}), 0, theme.Default())
	if size != (graphics.Size{Width: 30, Height: 30}) {
		t.Errorf("size = %v", size)
	}
	if pod.BaselineOffset() != 3 {
		t.Errorf("baseline = %v, want 3", pod.BaselineOffset())
	}
	pod.SetOrigin(graphics.Offset{X: 7, Y: 9})

	recorder := &graphics.PictureRecorder{}
	parent := &fakeCtx{canvas: recorder.BeginRecording(graphics.Size{Width: 100, Height: 100})}
	pod.Paint(parent, 0, theme.Default())
	list := recorder.EndRecording()

	shapes := list.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}
	if shapes[0].Origin != (graphics.Offset{X: 7, Y: 9}) {
		t.Errorf("child should paint at its origin, got %v", shapes[0].Origin)
	}
	if pod.NeedsPaint() {
		t.Error("paint should clear NeedsPaint")
	}
}

// container hosts a single pod at the origin.
type container struct {
	child *WidgetPod[int]
}

func (c *container) Event(ctx EventCtx, ev Event, data *int, env *theme.Env) {
	c.child.Event(ctx, ev, data, env)
}

func (c *container) Lifecycle(ctx LifeCycleCtx, ev LifeCycle, data int, env *theme.Env) {
	c.child.Lifecycle(ctx, ev, data, env)
}

func (c *container) Update(ctx UpdateCtx, old, data int, env *theme.Env) {
	c.child.Update(ctx, old, data, env)
}

func (c *container) Layout(ctx LayoutCtx, bc layout.BoxConstraints, data int, env *theme.Env) graphics.Size {
	c.child.Layout(ctx, bc, data, env)
	return bc.Constrain(graphics.Size{Width: 100, Height: 100})
}

func (c *container) Paint(ctx PaintCtx, data int, env *theme.Env) {
	c.child.Paint(ctx, data, env)
}
