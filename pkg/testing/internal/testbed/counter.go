// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// Counter displays an int and increments it on every completed click.
type Counter struct {
	OnTap func(count int)
}

func (c *Counter) Event(ctx core.EventCtx, ev core.Event, data *int, env *theme.Env) {
	switch ev.(type) {
	case core.MouseDown:
		ctx.SetActive(true)
	case core.MouseUp:
		if ctx.IsActive() && ctx.IsHot() {
			*data++
			if c.OnTap != nil {
				c.OnTap(*data)
			}
		}
		ctx.SetActive(false)
	}
}

func (c *Counter) Lifecycle(core.LifeCycleCtx, core.LifeCycle, int, *theme.Env) {}

func (c *Counter) Update(ctx core.UpdateCtx, old, data int, env *theme.Env) {
	ctx.RequestLayout()
}

func (c *Counter) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data int, env *theme.Env) graphics.Size {
	text := graphics.LayoutText(strconv.Itoa(data), graphics.TextStyle{FontSize: env.TextSize})
	return bc.Constrain(graphics.Size{Width: text.Size.Width + 8, Height: env.BasicWidgetHeight})
}

func (c *Counter) Paint(ctx core.PaintCtx, data int, env *theme.Env) {
	text := graphics.LayoutText(strconv.Itoa(data), graphics.TextStyle{Color: env.LabelColor, FontSize: env.TextSize})
	ctx.Canvas().DrawText(text, graphics.Offset{X: 4})
}
