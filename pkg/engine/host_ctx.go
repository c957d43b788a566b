package engine

import "github.com/go-drift/slate/pkg/graphics"

// hostCtx is the context the window hands to its root pod. The window
// itself is never active, hot or disabled.
type hostCtx struct {
	size    graphics.Size
	canvas  graphics.Canvas
	handled bool
	paint   bool
	layout  bool
}

func (c *hostCtx) IsActive() bool            { return false }
func (c *hostCtx) IsHot() bool               { return false }
func (c *hostCtx) IsDisabled() bool          { return false }
func (c *hostCtx) IsFocused() bool           { return false }
func (c *hostCtx) Size() graphics.Size       { return c.size }
func (c *hostCtx) SetActive(bool)            {}
func (c *hostCtx) SetHandled()               { c.handled = true }
func (c *hostCtx) IsHandled() bool           { return c.handled }
func (c *hostCtx) RequestPaint()             { c.paint = true }
func (c *hostCtx) SetBaselineOffset(float64) {}
func (c *hostCtx) Canvas() graphics.Canvas   { return c.canvas }

func (c *hostCtx) RequestLayout() {
	c.layout = true
	c.paint = true
}
