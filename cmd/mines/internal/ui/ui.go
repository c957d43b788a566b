// Package ui builds the minesweeper widget tree.
package ui

import (
	"math/rand/v2"
	"strconv"

	"github.com/go-drift/slate/cmd/mines/internal/board"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/theme"
	"github.com/go-drift/slate/pkg/widgets"
)

// UI is the widget tree of one game: a reset button above a grid of cells.
// Hidden cells are buttons, revealed cells are labels.
type UI struct {
	root   *widgets.Flex[board.Board]
	rows   []*widgets.Flex[board.Board]
	width  int
	height int
}

// New builds the tree for a width x height board. rng places the mines
// when the reset button is clicked.
func New(width, height int, rng *rand.Rand) *UI {
	u := &UI{width: width, height: height}
	u.root = widgets.Column[board.Board]().MainAxisAlignment(widgets.MainAxisAlignmentSpaceEvenly)

	reset := widgets.NewButton[board.Board]("reset").OnClick(func(_ core.EventCtx, b *board.Board, _ *theme.Env) {
		*b = b.Reset(rng)
	})
	u.root.WithFlexChild(reset, 1)

	for y := 0; y < height; y++ {
		row := widgets.Row[board.Board]().MainAxisAlignment(widgets.MainAxisAlignmentCenter)
		for x := 0; x < width; x++ {
			row.WithFlexChild(widgets.Expanded(cell(board.Field{X: x, Y: y})), 1)
		}
		u.rows = append(u.rows, row)
		u.root.WithFlexChild(row, 1)
	}
	return u
}

// IsFlagClick reports whether a click should toggle a flag rather than
// reveal: a right click, or a left click with ctrl held.
func IsFlagClick(ev core.MouseEvent) bool {
	return ev.Button == core.MouseButtonRight ||
		(ev.Button == core.MouseButtonLeft && ev.Mods.Ctrl())
}

func cell(f board.Field) core.Widget[board.Board] {
	label := widgets.NewDynamicLabel(func(b board.Board, _ *theme.Env) string {
		if b.IsMine(f) {
			return "X"
		}
		if n := b.CountMines(f); n > 0 {
			return strconv.Itoa(n)
		}
		return ""
	}).Center()

	button := widgets.NewDynamicButton(func(b board.Board, _ *theme.Env) string {
		if b.IsFlagged(f) {
			return "F"
		}
		return ""
	})
	click := widgets.NewClick(func(_ core.EventCtx, b *board.Board, _ *theme.Env, ev core.MouseEvent) {
		*b = b.Click(f, IsFlagClick(ev))
	})

	return widgets.NewEither[board.Board](func(b board.Board, _ *theme.Env) bool { return b.IsRevealed(f) },
		label, widgets.NewControllerHost[board.Board](button, click))
}

// Root returns the root widget.
func (u *UI) Root() core.Widget[board.Board] {
	return u.root
}

// ResetCenter returns the window position of the reset button's center,
// as of the last layout.
func (u *UI) ResetCenter() graphics.Offset {
	return u.root.ChildRect(0).Center()
}

// CellCenter returns the window position of the center of f, as of the
// last layout. ok is false for fields off the board.
func (u *UI) CellCenter(f board.Field) (pos graphics.Offset, ok bool) {
	if f.X < 0 || f.X >= u.width || f.Y < 0 || f.Y >= u.height {
		return graphics.Offset{}, false
	}
	row := u.root.ChildRect(f.Y + 1)
	c := u.rows[f.Y].ChildRect(f.X).Center()
	return graphics.Offset{X: row.Left + c.X, Y: row.Top + c.Y}, true
}
