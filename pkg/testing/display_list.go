package testing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/slate/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String renders the op on one line with its params in key order.
func (o DisplayOp) String() string {
	var sb strings.Builder
	sb.WriteString(o.Op)
	for _, k := range sortedKeys(o.Params) {
		fmt.Fprintf(&sb, " %s=%v", k, o.Params[k])
	}
	return sb.String()
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", serializeRadius(rrect),
			"paint", serializePaint(paint),
		),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
			"paint", serializePaint(paint),
		),
	})
}

func (c *serializingCanvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", layout.Text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"color", serializeColor(layout.Style.Color),
		),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializePaint(p graphics.Paint) map[string]any {
	m := sortedMap("style", p.Style.String())
	if p.Style == graphics.PaintStyleStroke {
		m["strokeWidth"] = round2(p.StrokeWidth)
	}
	if p.Gradient != nil {
		stops := make([]string, len(p.Gradient.Stops))
		for i, s := range p.Gradient.Stops {
			stops[i] = serializeColor(s.Color)
		}
		m["gradient"] = stops
	} else {
		m["color"] = serializeColor(p.Color)
	}
	return m
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// Keys are sorted alphabetically in the resulting map (Go maps iterate
// in random order, but JSON marshaling sorts keys via our snapshot encoder).
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
