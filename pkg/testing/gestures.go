package testing

import (
	"fmt"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
)

// SetModifiers sets the keyboard modifiers reported with subsequent
// pointer events.
func (t *WidgetTester[T]) SetModifiers(mods core.Modifiers) {
	t.mods = mods
}

// Tap simulates a left click at the center of the first op matched by finder.
func (t *WidgetTester[T]) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no ops: %s", finder.Description())
	}
	t.TapAt(OpBounds(result.First()).Center())
	return nil
}

// TapAt simulates a left click at the given window position.
func (t *WidgetTester[T]) TapAt(pos graphics.Offset) {
	t.ClickAt(pos, core.MouseButtonLeft)
}

// ClickAt simulates a press and release of button at pos.
func (t *WidgetTester[T]) ClickAt(pos graphics.Offset, button core.MouseButton) {
	t.SendPointerDown(pos, button)
	t.SendPointerUp(pos, button)
}

// DragFrom simulates a left-button drag from start by delta.
func (t *WidgetTester[T]) DragFrom(start, delta graphics.Offset) {
	t.SendPointerDown(start, core.MouseButtonLeft)
	end := start.Add(delta)
	t.SendPointerMove(end)
	t.SendPointerUp(end, core.MouseButtonLeft)
}

// SendPointerDown presses button at pos.
func (t *WidgetTester[T]) SendPointerDown(pos graphics.Offset, button core.MouseButton) {
	t.buttons = t.buttons.With(button)
	t.Dispatch(core.MouseDown{MouseEvent: t.mouse(pos, button, 1)})
}

// SendPointerMove moves the pointer to pos with the currently held buttons.
func (t *WidgetTester[T]) SendPointerMove(pos graphics.Offset) {
	t.Dispatch(core.MouseMove{MouseEvent: t.mouse(pos, core.MouseButtonNone, 0)})
}

// SendPointerUp releases button at pos.
func (t *WidgetTester[T]) SendPointerUp(pos graphics.Offset, button core.MouseButton) {
	t.buttons = t.buttons.Without(button)
	t.Dispatch(core.MouseUp{MouseEvent: t.mouse(pos, button, 1)})
}

func (t *WidgetTester[T]) mouse(pos graphics.Offset, button core.MouseButton, count int) core.MouseEvent {
	t.pointer = pos
	return core.MouseEvent{
		Pos:       pos,
		WindowPos: pos,
		Button:    button,
		Buttons:   t.buttons,
		Mods:      t.mods,
		Count:     count,
	}
}

// PointerPosition returns the position of the last pointer event.
func (t *WidgetTester[T]) PointerPosition() graphics.Offset {
	return t.pointer
}
