package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/theme"
)

// Click is a controller that calls its action when a press is released
// over the widget. Any mouse button counts, the action receives the
// release event so it can tell them apart.
//
// Example:
//
//	cell := widgets.NewControllerHost[Board](widgets.NewButton[Board](""),
//	    widgets.NewClick(func(_ core.EventCtx, b *Board, _ *theme.Env, ev core.MouseEvent) {
//	        b.Open(ev.Button == core.MouseButtonRight)
//	    }))
type Click[T any] struct {
	ControllerBase[T]
	action func(ctx core.EventCtx, data *T, env *theme.Env, ev core.MouseEvent)
}

// NewClick creates a click controller.
func NewClick[T any](action func(ctx core.EventCtx, data *T, env *theme.Env, ev core.MouseEvent)) *Click[T] {
	return &Click[T]{action: action}
}

func (c *Click[T]) Event(child core.Widget[T], ctx core.EventCtx, ev core.Event, data *T, env *theme.Env) {
	switch e := ev.(type) {
	case core.MouseDown:
		if !ctx.IsDisabled() {
			ctx.SetActive(true)
			ctx.RequestPaint()
		}
	case core.MouseUp:
		if ctx.IsActive() {
			ctx.SetActive(false)
			if ctx.IsHot() && !ctx.IsDisabled() && c.action != nil {
				c.action(ctx, data, env, e.MouseEvent)
			}
			ctx.RequestPaint()
		}
	}
	child.Event(ctx, ev, data, env)
}

func (c *Click[T]) Lifecycle(child core.Widget[T], ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env) {
	switch ev.(type) {
	case core.HotChanged, core.FocusChanged:
		ctx.RequestPaint()
	}
	child.Lifecycle(ctx, ev, data, env)
}
