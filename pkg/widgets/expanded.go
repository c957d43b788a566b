package widgets

import (
	"math"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// SizedBox forces its child to a size. An infinite dimension means "as
// large as the parent allows"; a nil child makes the box an empty spacer.
//
// Use [Expanded] to fill the offered space and [Fixed] for an exact size.
type SizedBox[T any] struct {
	child  *core.WidgetPod[T]
	width  float64
	height float64
}

// Expanded makes child fill all the space its parent offers.
//
// Example:
//
//	row := widgets.Row[Board]().
//	    WithFlexChild(widgets.Expanded[Board](cell), 1)
func Expanded[T any](child core.Widget[T]) *SizedBox[T] {
	return newSizedBox(child, math.Inf(1), math.Inf(1))
}

// Fixed gives child an exact size, within the parent's constraints.
func Fixed[T any](child core.Widget[T], size graphics.Size) *SizedBox[T] {
	return newSizedBox(child, size.Width, size.Height)
}

func newSizedBox[T any](child core.Widget[T], width, height float64) *SizedBox[T] {
	s := &SizedBox[T]{width: width, height: height}
	if child != nil {
		s.child = core.NewWidgetPod(child)
	}
	return s
}

// childConstraints resolves the box size against bc. Dimensions that stay
// unresolved (infinite and unbounded) are left loose.
func (s *SizedBox[T]) childConstraints(bc layout.BoxConstraints) layout.BoxConstraints {
	out := bc
	if w := min(s.width, bc.MaxWidth); !math.IsInf(w, 1) {
		w = max(w, bc.MinWidth)
		out.MinWidth, out.MaxWidth = w, w
	}
	if h := min(s.height, bc.MaxHeight); !math.IsInf(h, 1) {
		h = max(h, bc.MinHeight)
		out.MinHeight, out.MaxHeight = h, h
	}
	return out
}

func (s *SizedBox[T]) Event(ctx core.EventCtx, ev core.Event, data *T, env *theme.Env) {
	if s.child != nil {
		s.child.Event(ctx, ev, data, env)
	}
}

func (s *SizedBox[T]) Lifecycle(ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env) {
	if s.child != nil {
		s.child.Lifecycle(ctx, ev, data, env)
	}
}

func (s *SizedBox[T]) Update(ctx core.UpdateCtx, old, data T, env *theme.Env) {
	if s.child != nil {
		s.child.Update(ctx, old, data, env)
	}
}

func (s *SizedBox[T]) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data T, env *theme.Env) graphics.Size {
	bc.DebugCheck("SizedBox")
	inner := s.childConstraints(bc)
	if s.child == nil {
		return inner.Constrain(graphics.Size{})
	}
	size := s.child.Layout(ctx, inner, data, env)
	s.child.SetOrigin(graphics.Offset{})
	ctx.SetBaselineOffset(s.child.BaselineOffset())
	return inner.Constrain(size)
}

func (s *SizedBox[T]) Paint(ctx core.PaintCtx, data T, env *theme.Env) {
	if s.child != nil {
		s.child.Paint(ctx, data, env)
	}
}
