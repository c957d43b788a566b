package core

import (
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// Widget is a retained UI element bound to data of type T.
//
// A host calls the methods in the order Event, Lifecycle, Update, Layout,
// Paint, from a single goroutine. Only Event may mutate data, and only for
// the duration of the call: widgets must not keep the pointer.
type Widget[T any] interface {
	// Event handles an input event, possibly mutating data.
	Event(ctx EventCtx, ev Event, data *T, env *theme.Env)
	// Lifecycle handles notifications about the widget's place in the tree.
	Lifecycle(ctx LifeCycleCtx, ev LifeCycle, data T, env *theme.Env)
	// Update is called when data changed since the previous pass.
	Update(ctx UpdateCtx, old, data T, env *theme.Env)
	// Layout chooses a size within bc.
	Layout(ctx LayoutCtx, bc layout.BoxConstraints, data T, env *theme.Env) graphics.Size
	// Paint draws the widget in its own coordinate space.
	Paint(ctx PaintCtx, data T, env *theme.Env)
}
