package graphics

import "fmt"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpRRect
	OpCircle
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpTranslate:
		return "translate"
	case OpRRect:
		return "rrect"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// DrawOp is one recorded canvas call.
type DrawOp struct {
	Kind OpKind
	// Dx and Dy are the arguments of a translate.
	Dx, Dy float64
	RRect  RRect
	Center Offset
	Radius float64
	Paint  Paint
	Text   *TextLayout
	// Position is the text origin for OpText.
	Position Offset
	// Origin is the accumulated translation when the op was recorded, so
	// Origin+Center is the circle center in canvas coordinates.
	Origin Offset
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []DrawOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpSave:
			canvas.Save()
		case OpRestore:
			canvas.Restore()
		case OpTranslate:
			canvas.Translate(op.Dx, op.Dy)
		case OpRRect:
			canvas.DrawRRect(op.RRect, op.Paint)
		case OpCircle:
			canvas.DrawCircle(op.Center, op.Radius, op.Paint)
		case OpText:
			canvas.DrawText(op.Text, op.Position)
		}
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []DrawOp {
	return append([]DrawOp(nil), d.ops...)
}

// Shapes returns only the drawing operations (rrects, circles, text).
func (d *DisplayList) Shapes() []DrawOp {
	var out []DrawOp
	for _, op := range d.ops {
		switch op.Kind {
		case OpRRect, OpCircle, OpText:
			out = append(out, op)
		}
	}
	return out
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []DrawOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DrawOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op DrawOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
	origin   Offset
	saved    []Offset
}

func (c *recordingCanvas) Save() {
	c.saved = append(c.saved, c.origin)
	c.recorder.append(DrawOp{Kind: OpSave, Origin: c.origin})
}

func (c *recordingCanvas) Restore() {
	if n := len(c.saved); n > 0 {
		c.origin = c.saved[n-1]
		c.saved = c.saved[:n-1]
	}
	c.recorder.append(DrawOp{Kind: OpRestore, Origin: c.origin})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.origin = c.origin.Add(Offset{X: dx, Y: dy})
	c.recorder.append(DrawOp{Kind: OpTranslate, Dx: dx, Dy: dy, Origin: c.origin})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(DrawOp{Kind: OpRRect, RRect: rrect, Paint: paint, Origin: c.origin})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(DrawOp{Kind: OpCircle, Center: center, Radius: radius, Paint: paint, Origin: c.origin})
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	if layout == nil {
		return
	}
	c.recorder.append(DrawOp{Kind: OpText, Text: layout, Position: position, Origin: c.origin})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
