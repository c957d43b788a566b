package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/slate/pkg/graphics"
)

// Finder locates drawing operations in a display list.
type Finder interface {
	// Evaluate returns the matching ops in paint order.
	Evaluate(ops []graphics.DrawOp) []graphics.DrawOp
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult holds the ops matched by a finder.
type FinderResult struct {
	ops    []graphics.DrawOp
	finder Finder
}

// First returns the first match. Panics if there are none.
func (r FinderResult) First() graphics.DrawOp {
	if len(r.ops) == 0 {
		panic(fmt.Sprintf("FinderResult.First: no ops matched %s", r.finder.Description()))
	}
	return r.ops[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) graphics.DrawOp {
	if index < 0 || index >= len(r.ops) {
		panic(fmt.Sprintf("FinderResult.At(%d): index out of range (count=%d) for %s",
			index, len(r.ops), r.finder.Description()))
	}
	return r.ops[index]
}

// All returns every match.
func (r FinderResult) All() []graphics.DrawOp {
	return r.ops
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.ops)
}

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool {
	return len(r.ops) > 0
}

// Find evaluates finder against the shapes of the most recent paint.
func (t *WidgetTester[T]) Find(finder Finder) FinderResult {
	var ops []graphics.DrawOp
	if list := t.window.DisplayList(); list != nil {
		ops = finder.Evaluate(list.Shapes())
	}
	return FinderResult{ops: ops, finder: finder}
}

// OpBounds returns the window-space bounds of a shape op.
func OpBounds(op graphics.DrawOp) graphics.Rect {
	switch op.Kind {
	case graphics.OpRRect:
		return op.RRect.Rect.Translate(op.Origin.X, op.Origin.Y)
	case graphics.OpCircle:
		c := op.Origin.Add(op.Center)
		return graphics.RectFromLTWH(c.X-op.Radius, c.Y-op.Radius, 2*op.Radius, 2*op.Radius)
	case graphics.OpText:
		p := op.Origin.Add(op.Position)
		return graphics.RectFromOriginSize(p, op.Text.Size)
	}
	return graphics.RectFromOriginSize(op.Origin, graphics.Size{})
}

type predicateFinder struct {
	fn   func(graphics.DrawOp) bool
	desc string
}

func (f *predicateFinder) Evaluate(ops []graphics.DrawOp) []graphics.DrawOp {
	var out []graphics.DrawOp
	for _, op := range ops {
		if f.fn(op) {
			out = append(out, op)
		}
	}
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByKind finds ops of the given kind.
func ByKind(kind graphics.OpKind) Finder {
	return &predicateFinder{
		fn:   func(op graphics.DrawOp) bool { return op.Kind == kind },
		desc: fmt.Sprintf("ByKind(%s)", kind),
	}
}

// ByText finds text ops with exactly the given content.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(op graphics.DrawOp) bool { return op.Kind == graphics.OpText && op.Text.Text == text },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining finds text ops containing substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(op graphics.DrawOp) bool {
			return op.Kind == graphics.OpText && strings.Contains(op.Text.Text, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByPredicate finds ops for which fn returns true.
func ByPredicate(fn func(graphics.DrawOp) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate"}
}

// Within finds ops whose bounds center lies inside rect.
func Within(rect graphics.Rect, matching Finder) Finder {
	return &predicateFinder{
		fn: func(op graphics.DrawOp) bool {
			return len(matching.Evaluate([]graphics.DrawOp{op})) == 1 && rect.Contains(OpBounds(op).Center())
		},
		desc: fmt.Sprintf("Within(%v, %s)", rect, matching.Description()),
	}
}
