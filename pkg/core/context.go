package core

import "github.com/go-drift/slate/pkg/graphics"

// WidgetState exposes the host-owned flags of the widget being called.
// Hosts are authoritative for these values; widgets read them and change
// only the active flag, through EventCtx.SetActive.
type WidgetState interface {
	// IsActive reports whether the widget holds pointer capture.
	IsActive() bool
	// IsHot reports whether the pointer is over the widget.
	IsHot() bool
	// IsDisabled reports whether the widget or any ancestor is disabled.
	IsDisabled() bool
	// IsFocused reports whether the widget has keyboard focus.
	IsFocused() bool
	// Size is the size assigned by the most recent layout.
	Size() graphics.Size
}

// EventCtx is passed to Widget.Event.
type EventCtx interface {
	WidgetState
	// SetActive claims or releases pointer capture.
	SetActive(active bool)
	// RequestPaint asks the host to repaint the widget before the next event.
	RequestPaint()
	// RequestLayout asks the host to lay the widget out again.
	RequestLayout()
	// SetHandled stops the event from reaching later siblings.
	SetHandled()
	// IsHandled reports whether a widget already handled the event.
	IsHandled() bool
}

// LifeCycleCtx is passed to Widget.Lifecycle.
type LifeCycleCtx interface {
	WidgetState
	RequestPaint()
	RequestLayout()
}

// UpdateCtx is passed to Widget.Update.
type UpdateCtx interface {
	WidgetState
	RequestPaint()
	RequestLayout()
}

// LayoutCtx is passed to Widget.Layout.
type LayoutCtx interface {
	WidgetState
	// SetBaselineOffset records the distance from the bottom edge of the
	// widget to its text baseline.
	SetBaselineOffset(offset float64)
}

// PaintCtx is passed to Widget.Paint.
type PaintCtx interface {
	WidgetState
	// Canvas returns the canvas in the widget's coordinate space.
	Canvas() graphics.Canvas
}
