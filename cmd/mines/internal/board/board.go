// Package board models a minesweeper field.
//
// A Board is an immutable value: every operation that changes the game
// returns a new Board and leaves the receiver untouched, so the previous
// value stays valid for change detection.
package board

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Field is a cell coordinate.
type Field struct {
	X, Y int
}

// Status is the state of a game.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type fieldSet map[Field]struct{}

func (s fieldSet) has(f Field) bool {
	_, ok := s[f]
	return ok
}

func (s fieldSet) clone() fieldSet {
	out := make(fieldSet, len(s))
	for f := range s {
		out[f] = struct{}{}
	}
	return out
}

func (s fieldSet) equal(o fieldSet) bool {
	if len(s) != len(o) {
		return false
	}
	for f := range s {
		if !o.has(f) {
			return false
		}
	}
	return true
}

// Board is a minesweeper game.
type Board struct {
	width    int
	height   int
	mines    fieldSet
	revealed fieldSet
	flagged  fieldSet
}

// New creates a board with width*height/divisor mines placed by rng.
func New(width, height, divisor int, rng *rand.Rand) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("board size must be positive (got %dx%d)", width, height)
	}
	if divisor <= 0 {
		return Board{}, fmt.Errorf("mine divisor must be positive (got %d)", divisor)
	}
	b := Board{
		width:    width,
		height:   height,
		revealed: fieldSet{},
		flagged:  fieldSet{},
	}
	b.mines = placeMines(width, height, width*height/divisor, rng)
	return b, nil
}

// WithMines creates a board with mines at the given fields. Fields outside
// the board are ignored.
func WithMines(width, height int, mines ...Field) Board {
	b := Board{
		width:    width,
		height:   height,
		mines:    fieldSet{},
		revealed: fieldSet{},
		flagged:  fieldSet{},
	}
	for _, f := range mines {
		if b.Contains(f) {
			b.mines[f] = struct{}{}
		}
	}
	return b
}

func placeMines(width, height, count int, rng *rand.Rand) fieldSet {
	mines := make(fieldSet, count)
	for len(mines) < count {
		mines[Field{X: rng.IntN(width), Y: rng.IntN(height)}] = struct{}{}
	}
	return mines
}

func (b Board) Width() int  { return b.width }
func (b Board) Height() int { return b.height }

// MineCount returns the number of mines on the board.
func (b Board) MineCount() int { return len(b.mines) }

// Contains reports whether f lies on the board.
func (b Board) Contains(f Field) bool {
	return f.X >= 0 && f.X < b.width && f.Y >= 0 && f.Y < b.height
}

func (b Board) IsMine(f Field) bool     { return b.mines.has(f) }
func (b Board) IsRevealed(f Field) bool { return b.revealed.has(f) }
func (b Board) IsFlagged(f Field) bool  { return b.flagged.has(f) }

// Neighbors returns the up to eight fields around f, row by row.
func (b Board) Neighbors(f Field) []Field {
	out := make([]Field, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n := Field{X: f.X + dx, Y: f.Y + dy}
			if (dx == 0 && dy == 0) || !b.Contains(n) {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}

// CountMines returns the number of mines around f.
func (b Board) CountMines(f Field) int {
	n := 0
	for _, nb := range b.Neighbors(f) {
		if b.mines.has(nb) {
			n++
		}
	}
	return n
}

// Reveal opens f. Opening a mine opens every mine; opening a field with
// no mines around it opens its neighbours too, repeatedly.
func (b Board) Reveal(f Field) Board {
	if !b.Contains(f) {
		return b
	}
	next := b
	next.revealed = b.revealed.clone()
	if b.mines.has(f) {
		for m := range b.mines {
			next.revealed[m] = struct{}{}
		}
		return next
	}

	// iterative so large empty areas cannot exhaust the stack
	stack := []Field{f}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if next.revealed.has(cur) || b.mines.has(cur) {
			continue
		}
		next.revealed[cur] = struct{}{}
		if b.CountMines(cur) == 0 {
			stack = append(stack, b.Neighbors(cur)...)
		}
	}
	return next
}

// ToggleFlag flags or unflags f. Revealed fields cannot be flagged.
func (b Board) ToggleFlag(f Field) Board {
	if !b.Contains(f) || b.revealed.has(f) {
		return b
	}
	next := b
	next.flagged = b.flagged.clone()
	if next.flagged.has(f) {
		delete(next.flagged, f)
	} else {
		next.flagged[f] = struct{}{}
	}
	return next
}

// Click applies a player action to f: a flag toggle, or a reveal unless
// the field is flagged. Finished games ignore clicks.
func (b Board) Click(f Field, flag bool) Board {
	if b.Status() != Playing {
		return b
	}
	if flag {
		return b.ToggleFlag(f)
	}
	if b.flagged.has(f) {
		return b
	}
	return b.Reveal(f)
}

// Status reports whether the game is still running.
func (b Board) Status() Status {
	for m := range b.mines {
		if b.revealed.has(m) {
			return Lost
		}
	}
	if len(b.revealed) == b.width*b.height-len(b.mines) {
		return Won
	}
	return Playing
}

// Reset starts a new game of the same size and mine count.
func (b Board) Reset(rng *rand.Rand) Board {
	return Board{
		width:    b.width,
		height:   b.height,
		mines:    placeMines(b.width, b.height, len(b.mines), rng),
		revealed: fieldSet{},
		flagged:  fieldSet{},
	}
}

// Equal reports whether two boards hold the same game.
func (b Board) Equal(o Board) bool {
	return b.width == o.width && b.height == o.height &&
		b.mines.equal(o.mines) && b.revealed.equal(o.revealed) && b.flagged.equal(o.flagged)
}

// CellText is what a field shows: "F" for a flag, "#" while hidden, "X"
// for a mine, the neighbour count, or "." for an empty field.
func (b Board) CellText(f Field) string {
	switch {
	case !b.revealed.has(f) && b.flagged.has(f):
		return "F"
	case !b.revealed.has(f):
		return "#"
	case b.mines.has(f):
		return "X"
	}
	if n := b.CountMines(f); n > 0 {
		return strconv.Itoa(n)
	}
	return "."
}

// String renders the board with column and row numbers.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < b.width; x++ {
		fmt.Fprintf(&sb, "%2d", x%100)
	}
	sb.WriteByte('\n')
	for y := 0; y < b.height; y++ {
		fmt.Fprintf(&sb, "%2d ", y%100)
		for x := 0; x < b.width; x++ {
			fmt.Fprintf(&sb, " %s", b.CellText(Field{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
