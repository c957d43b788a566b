package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// labelXPadding is the horizontal space on each side of the text.
const labelXPadding = 2.0

// Label displays a single line of text, either fixed or computed from data.
//
// Example:
//
//	count := widgets.NewDynamicLabel(func(n int, _ *theme.Env) string {
//	    return strconv.Itoa(n)
//	}).Center()
type Label[T any] struct {
	resolve  func(data T, env *theme.Env) string
	centered bool
	text     string
	layout   *graphics.TextLayout
	size     graphics.Size
}

// NewLabel creates a label with fixed text.
func NewLabel[T any](text string) *Label[T] {
	return &Label[T]{resolve: func(T, *theme.Env) string { return text }, text: text}
}

// NewDynamicLabel creates a label whose text is computed from data.
func NewDynamicLabel[T any](fn func(data T, env *theme.Env) string) *Label[T] {
	return &Label[T]{resolve: fn}
}

// Center makes the label take all the space it is offered and center its
// text in it.
func (l *Label[T]) Center() *Label[T] {
	l.centered = true
	return l
}

// Text returns the text as of the last update or layout.
func (l *Label[T]) Text() string {
	return l.text
}

// setText re-resolves the text and reports whether it changed.
func (l *Label[T]) setText(data T, env *theme.Env) bool {
	text := l.resolve(data, env)
	if text == l.text && l.layout != nil {
		return false
	}
	l.text = text
	l.layout = graphics.LayoutText(text, graphics.TextStyle{Color: env.LabelColor, FontSize: env.TextSize})
	return true
}

func (l *Label[T]) Event(core.EventCtx, core.Event, *T, *theme.Env) {}

func (l *Label[T]) Lifecycle(ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env) {
	if _, ok := ev.(core.WidgetAdded); ok {
		l.setText(data, env)
	}
}

func (l *Label[T]) Update(ctx core.UpdateCtx, old, data T, env *theme.Env) {
	if l.setText(data, env) {
		ctx.RequestLayout()
	}
}

func (l *Label[T]) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data T, env *theme.Env) graphics.Size {
	bc.DebugCheck("Label")
	// hidden labels miss updates, so resolve again here
	l.setText(data, env)

	want := graphics.Size{
		Width:  l.layout.Size.Width + 2*labelXPadding,
		Height: l.layout.Size.Height,
	}
	if l.centered {
		if bc.HasBoundedWidth() {
			want.Width = max(want.Width, bc.MaxWidth)
		}
		if bc.HasBoundedHeight() {
			want.Height = max(want.Height, bc.MaxHeight)
		}
	}
	l.size = bc.Constrain(want)

	ctx.SetBaselineOffset(l.baseline())
	return l.size
}

// baseline is the distance from the bottom edge to the text baseline.
func (l *Label[T]) baseline() float64 {
	return l.size.Height - (l.textOrigin().Y + l.layout.Ascent)
}

func (l *Label[T]) textOrigin() graphics.Offset {
	if l.centered {
		return graphics.Offset{
			X: (l.size.Width - l.layout.Size.Width) / 2,
			Y: (l.size.Height - l.layout.Size.Height) / 2,
		}
	}
	return graphics.Offset{X: labelXPadding, Y: (l.size.Height - l.layout.Size.Height) / 2}
}

func (l *Label[T]) Paint(ctx core.PaintCtx, data T, env *theme.Env) {
	if l.layout == nil || l.text == "" {
		return
	}
	ctx.Canvas().DrawText(l.layout, l.textOrigin())
}
