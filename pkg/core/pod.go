package core

import (
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// podState holds the host-owned flags of one child widget.
type podState struct {
	origin           graphics.Offset
	size             graphics.Size
	baseline         float64
	active           bool
	hasActive        bool // a descendant holds pointer capture
	hot              bool
	disabled         bool
	ancestorDisabled bool
	focused          bool
	added            bool
	needsPaint       bool
	needsLayout      bool
}

func (s *podState) isDisabled() bool {
	return s.disabled || s.ancestorDisabled
}

// podCtx implements every context interface on top of a podState.
// Requests are recorded per call so the pod forwards only what the call
// actually asked for.
type podCtx struct {
	state       *podState
	canvas      graphics.Canvas
	handled     bool
	paint       bool
	layout      bool
	childActive bool
}

func (c *podCtx) IsActive() bool          { return c.state.active }
func (c *podCtx) IsHot() bool             { return c.state.hot }
func (c *podCtx) IsDisabled() bool        { return c.state.isDisabled() }
func (c *podCtx) IsFocused() bool         { return c.state.focused }
func (c *podCtx) Size() graphics.Size     { return c.state.size }
func (c *podCtx) SetActive(active bool)   { c.state.active = active }
func (c *podCtx) SetHandled()             { c.handled = true }
func (c *podCtx) IsHandled() bool         { return c.handled }
func (c *podCtx) Canvas() graphics.Canvas { return c.canvas }

func (c *podCtx) RequestPaint() {
	c.paint = true
	c.state.needsPaint = true
}

func (c *podCtx) RequestLayout() {
	c.layout = true
	c.state.needsLayout = true
	c.RequestPaint()
}

func (c *podCtx) SetBaselineOffset(offset float64) {
	c.state.baseline = offset
}

// noteChild is called by child pods at the end of their event handling.
func (c *podCtx) noteChild(active bool) {
	c.childActive = c.childActive || active
}

type childNoter interface {
	noteChild(active bool)
}

type requester interface {
	RequestPaint()
	RequestLayout()
}

// forward propagates the requests recorded in ctx to the parent context.
func forward(ctx *podCtx, parent requester) {
	if ctx.layout {
		parent.RequestLayout()
	} else if ctx.paint {
		parent.RequestPaint()
	}
}

// WidgetPod hosts a child widget inside a container.
//
// The pod owns the child's active, hot, disabled, and focused flags, its
// laid-out size and origin, and its baseline. It translates pointer
// positions into the child's coordinate space and emits HotChanged when the
// pointer crosses the child's bounds.
type WidgetPod[T any] struct {
	inner Widget[T]
	state podState
}

// NewWidgetPod wraps w in a pod.
func NewWidgetPod[T any](w Widget[T]) *WidgetPod[T] {
	p := &WidgetPod[T]{inner: w}
	p.state.needsLayout = true
	p.state.needsPaint = true
	return p
}

// Widget returns the hosted widget.
func (p *WidgetPod[T]) Widget() Widget[T] { return p.inner }

// SetOrigin positions the child in the parent's coordinate space.
// Containers call it during their own layout.
func (p *WidgetPod[T]) SetOrigin(origin graphics.Offset) { p.state.origin = origin }

// Origin returns the child's position in the parent's coordinate space.
func (p *WidgetPod[T]) Origin() graphics.Offset { return p.state.origin }

// Size returns the size chosen by the most recent layout.
func (p *WidgetPod[T]) Size() graphics.Size { return p.state.size }

// Rect returns the child's bounds in the parent's coordinate space.
func (p *WidgetPod[T]) Rect() graphics.Rect {
	return graphics.RectFromOriginSize(p.state.origin, p.state.size)
}

// BaselineOffset returns the baseline reported by the most recent layout.
func (p *WidgetPod[T]) BaselineOffset() float64 { return p.state.baseline }

// IsActive reports whether the child holds pointer capture.
func (p *WidgetPod[T]) IsActive() bool { return p.state.active }

// HasActive reports whether the child or one of its descendants holds
// pointer capture.
func (p *WidgetPod[T]) HasActive() bool { return p.state.active || p.state.hasActive }

// IsHot reports whether the pointer is over the child.
func (p *WidgetPod[T]) IsHot() bool { return p.state.hot }

// IsDisabled reports the child's effective disabled state.
func (p *WidgetPod[T]) IsDisabled() bool { return p.state.isDisabled() }

// IsFocused reports whether the child has focus.
func (p *WidgetPod[T]) IsFocused() bool { return p.state.focused }

// NeedsPaint reports whether the child asked for a repaint it has not had yet.
func (p *WidgetPod[T]) NeedsPaint() bool { return p.state.needsPaint }

// NeedsLayout reports whether the child asked for a layout it has not had yet.
func (p *WidgetPod[T]) NeedsLayout() bool { return p.state.needsLayout }

// IsAdded reports whether WidgetAdded has been delivered.
func (p *WidgetPod[T]) IsAdded() bool { return p.state.added }

// Event routes ev to the child. ev is expressed in the parent's coordinates.
func (p *WidgetPod[T]) Event(parent EventCtx, ev Event, data *T, env *theme.Env) {
	deliver := true
	if mouse, ok := Mouse(ev); ok {
		hot := p.Rect().Contains(mouse.Pos)
		if hot != p.state.hot {
			p.state.hot = hot
			p.sendLifecycle(parent, HotChanged{Hot: hot}, *data, env)
		}
		deliver = hot || p.HasActive()
	}
	if parent.IsHandled() {
		deliver = false
	}

	if deliver {
		ctx := &podCtx{state: &p.state}
		p.inner.Event(ctx, translated(ev, p.state.origin), data, env)
		p.state.hasActive = ctx.childActive
		if ctx.handled {
			parent.SetHandled()
		}
		forward(ctx, parent)
	}
	if n, ok := parent.(childNoter); ok {
		n.noteChild(p.HasActive())
	}
}

// Lifecycle forwards a notification from the parent to the child.
//
// WidgetAdded reaches the child once. DisabledChanged carries the parent's
// effective state and is merged with the pod's own flag; the child only
// hears about changes to its own effective state. HotChanged and
// FocusChanged are produced by the pod itself and are not forwarded.
func (p *WidgetPod[T]) Lifecycle(parent LifeCycleCtx, ev LifeCycle, data T, env *theme.Env) {
	switch e := ev.(type) {
	case WidgetAdded:
		if p.state.added {
			return
		}
		p.state.added = true
	case DisabledChanged:
		was := p.state.isDisabled()
		p.state.ancestorDisabled = e.Disabled
		now := p.state.isDisabled()
		if was == now {
			return
		}
		ev = DisabledChanged{Disabled: now}
	case HotChanged, FocusChanged:
		return
	}
	p.sendLifecycle(parent, ev, data, env)
}

// SetDisabled changes the pod's own disabled flag and notifies the child
// when its effective state changes.
func (p *WidgetPod[T]) SetDisabled(parent LifeCycleCtx, disabled bool, data T, env *theme.Env) {
	was := p.state.isDisabled()
	p.state.disabled = disabled
	if now := p.state.isDisabled(); now != was {
		p.sendLifecycle(parent, DisabledChanged{Disabled: now}, data, env)
	}
}

// SetFocused changes the child's focus and notifies it on change.
func (p *WidgetPod[T]) SetFocused(parent LifeCycleCtx, focused bool, data T, env *theme.Env) {
	if p.state.focused == focused {
		return
	}
	p.state.focused = focused
	p.sendLifecycle(parent, FocusChanged{Focused: focused}, data, env)
}

func (p *WidgetPod[T]) sendLifecycle(parent requester, ev LifeCycle, data T, env *theme.Env) {
	ctx := &podCtx{state: &p.state}
	p.inner.Lifecycle(ctx, ev, data, env)
	forward(ctx, parent)
}

// Update forwards a data change to the child.
func (p *WidgetPod[T]) Update(parent UpdateCtx, old, data T, env *theme.Env) {
	ctx := &podCtx{state: &p.state}
	p.inner.Update(ctx, old, data, env)
	forward(ctx, parent)
}

// Layout lays the child out and records its size and baseline.
// The caller positions the child afterwards with SetOrigin.
func (p *WidgetPod[T]) Layout(parent LayoutCtx, bc layout.BoxConstraints, data T, env *theme.Env) graphics.Size {
	ctx := &podCtx{state: &p.state}
	p.state.needsLayout = false
	p.state.size = p.inner.Layout(ctx, bc, data, env)
	return p.state.size
}

// Paint paints the child at its origin.
func (p *WidgetPod[T]) Paint(parent PaintCtx, data T, env *theme.Env) {
	canvas := parent.Canvas()
	canvas.Save()
	canvas.Translate(p.state.origin.X, p.state.origin.Y)
	ctx := &podCtx{state: &p.state, canvas: canvas}
	p.inner.Paint(ctx, data, env)
	canvas.Restore()
	p.state.needsPaint = false
}
