package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawText draws a measured text layout with its top-left corner at position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
