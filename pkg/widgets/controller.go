package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// Controller intercepts the event, lifecycle and update stages of the
// widget it is attached to. It is responsible for calling the child.
type Controller[T any] interface {
	Event(child core.Widget[T], ctx core.EventCtx, ev core.Event, data *T, env *theme.Env)
	Lifecycle(child core.Widget[T], ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env)
	Update(child core.Widget[T], ctx core.UpdateCtx, old, data T, env *theme.Env)
}

// ControllerBase forwards every stage to the child. Embed it and override
// the stages a controller cares about.
type ControllerBase[T any] struct{}

func (ControllerBase[T]) Event(child core.Widget[T], ctx core.EventCtx, ev core.Event, data *T, env *theme.Env) {
	child.Event(ctx, ev, data, env)
}

func (ControllerBase[T]) Lifecycle(child core.Widget[T], ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env) {
	child.Lifecycle(ctx, ev, data, env)
}

func (ControllerBase[T]) Update(child core.Widget[T], ctx core.UpdateCtx, old, data T, env *theme.Env) {
	child.Update(ctx, old, data, env)
}

// ControllerHost attaches a Controller to a widget. The child shares the
// host's context, so both see the same hot, active and disabled state.
type ControllerHost[T any] struct {
	child      core.Widget[T]
	controller Controller[T]
}

// NewControllerHost wraps child with controller.
func NewControllerHost[T any](child core.Widget[T], controller Controller[T]) *ControllerHost[T] {
	return &ControllerHost[T]{child: child, controller: controller}
}

// Child returns the wrapped widget.
func (h *ControllerHost[T]) Child() core.Widget[T] {
	return h.child
}

func (h *ControllerHost[T]) Event(ctx core.EventCtx, ev core.Event, data *T, env *theme.Env) {
	h.controller.Event(h.child, ctx, ev, data, env)
}

func (h *ControllerHost[T]) Lifecycle(ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env) {
	h.controller.Lifecycle(h.child, ctx, ev, data, env)
}

func (h *ControllerHost[T]) Update(ctx core.UpdateCtx, old, data T, env *theme.Env) {
	h.controller.Update(h.child, ctx, old, data, env)
}

func (h *ControllerHost[T]) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data T, env *theme.Env) graphics.Size {
	return h.child.Layout(ctx, bc, data, env)
}

func (h *ControllerHost[T]) Paint(ctx core.PaintCtx, data T, env *theme.Env) {
	h.child.Paint(ctx, data, env)
}
