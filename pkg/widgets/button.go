package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

const (
	buttonXPadding = 8.0
	buttonYPadding = 2.0
)

// Button is a labelled push button. The click handler runs when the
// primary press is released over the button.
//
// Example:
//
//	reset := widgets.NewButton[Game]("reset").OnClick(func(_ core.EventCtx, g *Game, _ *theme.Env) {
//	    g.Restart()
//	})
//
// Visual feedback:
//   - Hover lightens the border
//   - Press inverts the gradient while the pointer stays over the button
//   - Disabled buttons use the disabled palette and ignore input
type Button[T any] struct {
	label     *Label[T]
	labelSize graphics.Size
	onClick   func(ctx core.EventCtx, data *T, env *theme.Env)
}

// NewButton creates a button with fixed text.
func NewButton[T any](text string) *Button[T] {
	return &Button[T]{label: NewLabel[T](text)}
}

// NewDynamicButton creates a button whose text is computed from data.
func NewDynamicButton[T any](fn func(data T, env *theme.Env) string) *Button[T] {
	return &Button[T]{label: NewDynamicLabel(fn)}
}

// OnClick sets the click handler.
func (b *Button[T]) OnClick(fn func(ctx core.EventCtx, data *T, env *theme.Env)) *Button[T] {
	b.onClick = fn
	return b
}

// Text returns the current label text.
func (b *Button[T]) Text() string {
	return b.label.Text()
}

func (b *Button[T]) Event(ctx core.EventCtx, ev core.Event, data *T, env *theme.Env) {
	switch ev.(type) {
	case core.MouseDown:
		if !ctx.IsDisabled() {
			ctx.SetActive(true)
			ctx.RequestPaint()
		}
	case core.MouseUp:
		if ctx.IsActive() {
			ctx.SetActive(false)
			ctx.RequestPaint()
			if ctx.IsHot() && !ctx.IsDisabled() && b.onClick != nil {
				b.onClick(ctx, data, env)
			}
		}
	}
}

func (b *Button[T]) Lifecycle(ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env) {
	switch ev.(type) {
	case core.HotChanged, core.DisabledChanged:
		ctx.RequestPaint()
	}
	b.label.Lifecycle(ctx, ev, data, env)
}

func (b *Button[T]) Update(ctx core.UpdateCtx, old, data T, env *theme.Env) {
	b.label.Update(ctx, old, data, env)
}

func (b *Button[T]) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data T, env *theme.Env) graphics.Size {
	bc.DebugCheck("Button")
	inner := bc.Loosen()
	inner.MaxWidth = max(inner.MaxWidth-2*buttonXPadding, 0)
	inner.MaxHeight = max(inner.MaxHeight-2*buttonYPadding, 0)
	b.labelSize = b.label.Layout(ctx, inner, data, env)

	size := bc.Constrain(graphics.Size{
		Width:  b.labelSize.Width + 2*buttonXPadding,
		Height: max(b.labelSize.Height+2*buttonYPadding, env.BasicWidgetHeight),
	})
	ctx.SetBaselineOffset(b.label.baseline() + (size.Height-b.labelSize.Height)/2)
	return size
}

func (b *Button[T]) Paint(ctx core.PaintCtx, data T, env *theme.Env) {
	size := ctx.Size()
	disabled := ctx.IsDisabled()
	pressed := ctx.IsActive() && ctx.IsHot()
	canvas := ctx.Canvas()

	stroke := env.BorderWidth
	rect := graphics.RectFromOriginSize(graphics.Offset{}, size).Inset(stroke / 2)
	rrect := rect.ToRRect(env.ButtonBorderRadius)

	var gradient *graphics.LinearGradient
	switch {
	case disabled:
		gradient = graphics.LinearGradientIn(rect, graphics.UnitPointTop, graphics.UnitPointBottom,
			env.DisabledButtonLight, env.DisabledButtonDark)
	case pressed:
		gradient = graphics.LinearGradientIn(rect, graphics.UnitPointTop, graphics.UnitPointBottom,
			env.ButtonDark, env.ButtonLight)
	default:
		gradient = graphics.LinearGradientIn(rect, graphics.UnitPointTop, graphics.UnitPointBottom,
			env.ButtonLight, env.ButtonDark)
	}

	border := env.BorderDark
	if ctx.IsHot() && !disabled {
		border = env.BorderLight
	}
	canvas.DrawRRect(rrect, graphics.StrokePaint(border, stroke))
	canvas.DrawRRect(rrect, graphics.GradientFillPaint(gradient))

	canvas.Save()
	canvas.Translate((size.Width-b.labelSize.Width)/2, (size.Height-b.labelSize.Height)/2)
	b.label.Paint(ctx, data, env)
	canvas.Restore()
}
