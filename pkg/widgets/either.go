package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// Either shows one of two widgets depending on a predicate over data.
// Only the visible branch receives events, updates and paint. Both
// branches are attached and disabled together.
type Either[T any] struct {
	pred    func(data T, env *theme.Env) bool
	ifTrue  *core.WidgetPod[T]
	ifFalse *core.WidgetPod[T]
	current bool
}

// NewEither creates a widget that shows ifTrue while pred holds and ifFalse
// otherwise.
func NewEither[T any](pred func(data T, env *theme.Env) bool, ifTrue, ifFalse core.Widget[T]) *Either[T] {
	return &Either[T]{
		pred:    pred,
		ifTrue:  core.NewWidgetPod(ifTrue),
		ifFalse: core.NewWidgetPod(ifFalse),
	}
}

// Current reports which branch is shown.
func (e *Either[T]) Current() bool {
	return e.current
}

func (e *Either[T]) visible() *core.WidgetPod[T] {
	if e.current {
		return e.ifTrue
	}
	return e.ifFalse
}

func (e *Either[T]) Event(ctx core.EventCtx, ev core.Event, data *T, env *theme.Env) {
	e.visible().Event(ctx, ev, data, env)
}

func (e *Either[T]) Lifecycle(ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env) {
	switch ev.(type) {
	case core.WidgetAdded:
		e.current = e.pred(data, env)
		e.ifTrue.Lifecycle(ctx, ev, data, env)
		e.ifFalse.Lifecycle(ctx, ev, data, env)
	case core.DisabledChanged:
		e.ifTrue.Lifecycle(ctx, ev, data, env)
		e.ifFalse.Lifecycle(ctx, ev, data, env)
	default:
		e.visible().Lifecycle(ctx, ev, data, env)
	}
}

func (e *Either[T]) Update(ctx core.UpdateCtx, old, data T, env *theme.Env) {
	if current := e.pred(data, env); current != e.current {
		e.current = current
		ctx.RequestLayout()
	}
	e.visible().Update(ctx, old, data, env)
}

func (e *Either[T]) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data T, env *theme.Env) graphics.Size {
	child := e.visible()
	size := child.Layout(ctx, bc, data, env)
	child.SetOrigin(graphics.Offset{})
	ctx.SetBaselineOffset(child.BaselineOffset())
	return size
}

func (e *Either[T]) Paint(ctx core.PaintCtx, data T, env *theme.Env) {
	e.visible().Paint(ctx, data, env)
}
