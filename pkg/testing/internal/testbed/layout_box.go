package testbed

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// LayoutBox is a fixed-size colored box for layout testing. It records the
// last event it received.
type LayoutBox struct {
	Width  float64
	Height float64
	Color  graphics.Color

	LastEvent core.Event
}

func (b *LayoutBox) Event(ctx core.EventCtx, ev core.Event, data *int, env *theme.Env) {
	b.LastEvent = ev
}

func (b *LayoutBox) Lifecycle(core.LifeCycleCtx, core.LifeCycle, int, *theme.Env) {}

func (b *LayoutBox) Update(core.UpdateCtx, int, int, *theme.Env) {}

func (b *LayoutBox) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data int, env *theme.Env) graphics.Size {
	return bc.Constrain(graphics.Size{Width: b.Width, Height: b.Height})
}

func (b *LayoutBox) Paint(ctx core.PaintCtx, data int, env *theme.Env) {
	if b.Color != 0 {
		size := ctx.Size()
		ctx.Canvas().DrawRRect(
			graphics.RectFromLTWH(0, 0, size.Width, size.Height).ToRRect(0),
			graphics.FillPaint(b.Color),
		)
	}
}
