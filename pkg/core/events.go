package core

import (
	"fmt"

	"github.com/go-drift/slate/pkg/graphics"
)

// MouseButton identifies a single pointer button.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonNone:
		return "none"
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// MouseButtons is the set of buttons held down when an event was generated.
type MouseButtons uint8

// With returns the set with b added.
func (s MouseButtons) With(b MouseButton) MouseButtons {
	if b == MouseButtonNone {
		return s
	}
	return s | 1<<uint(b)
}

// Without returns the set with b removed.
func (s MouseButtons) Without(b MouseButton) MouseButtons {
	if b == MouseButtonNone {
		return s
	}
	return s &^ (1 << uint(b))
}

// Has reports whether b is held.
func (s MouseButtons) Has(b MouseButton) bool {
	return b != MouseButtonNone && s&(1<<uint(b)) != 0
}

// Modifiers is the set of keyboard modifiers held during a pointer event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Meta() bool  { return m&ModMeta != 0 }

// MouseEvent carries the data shared by all pointer events.
type MouseEvent struct {
	// Pos is the position in the receiving widget's coordinate space.
	Pos graphics.Offset
	// WindowPos is the position in window coordinates. It is never translated.
	WindowPos graphics.Offset
	// Button is the button that triggered a down or up event.
	Button MouseButton
	// Buttons is the set of buttons held after the event.
	Buttons MouseButtons
	// Mods holds the keyboard modifiers.
	Mods Modifiers
	// Count is the click count for down events.
	Count int
}

// Event is an input event delivered to Widget.Event.
// The set of implementations is closed: MouseDown, MouseUp, MouseMove.
type Event interface {
	isEvent()
}

// MouseDown is sent when a pointer button is pressed.
type MouseDown struct{ MouseEvent }

// MouseUp is sent when a pointer button is released.
type MouseUp struct{ MouseEvent }

// MouseMove is sent when the pointer moves.
type MouseMove struct{ MouseEvent }

func (MouseDown) isEvent() {}
func (MouseUp) isEvent()   {}
func (MouseMove) isEvent() {}

// Mouse returns the pointer data of ev and whether ev is a pointer event.
func Mouse(ev Event) (MouseEvent, bool) {
	switch e := ev.(type) {
	case MouseDown:
		return e.MouseEvent, true
	case MouseUp:
		return e.MouseEvent, true
	case MouseMove:
		return e.MouseEvent, true
	}
	return MouseEvent{}, false
}

// translated returns ev with Pos shifted by -origin.
func translated(ev Event, origin graphics.Offset) Event {
	switch e := ev.(type) {
	case MouseDown:
		e.Pos = e.Pos.Sub(origin)
		return e
	case MouseUp:
		e.Pos = e.Pos.Sub(origin)
		return e
	case MouseMove:
		e.Pos = e.Pos.Sub(origin)
		return e
	}
	return ev
}

// LifeCycle is a notification about a widget's place in the tree.
// The set of implementations is closed: WidgetAdded, HotChanged,
// FocusChanged, DisabledChanged.
type LifeCycle interface {
	isLifeCycle()
}

// WidgetAdded is delivered once, when the widget is first attached to a host.
type WidgetAdded struct{}

// HotChanged is delivered when the pointer enters or leaves the widget.
type HotChanged struct{ Hot bool }

// FocusChanged is delivered when the widget gains or loses focus.
type FocusChanged struct{ Focused bool }

// DisabledChanged is delivered when the widget's effective disabled state changes.
type DisabledChanged struct{ Disabled bool }

func (WidgetAdded) isLifeCycle()     {}
func (HotChanged) isLifeCycle()      {}
func (FocusChanged) isLifeCycle()    {}
func (DisabledChanged) isLifeCycle() {}
