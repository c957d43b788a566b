package board

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewPlacesMines(t *testing.T) {
	tests := []struct {
		width, height, divisor int
		want                   int
	}{
		{15, 15, 10, 22},
		{4, 4, 4, 4},
		{3, 3, 100, 0},
	}
	for _, tt := range tests {
		b, err := New(tt.width, tt.height, tt.divisor, seeded())
		if err != nil {
			t.Fatalf("New(%d, %d, %d): %v", tt.width, tt.height, tt.divisor, err)
		}
		if b.MineCount() != tt.want {
			t.Errorf("New(%d, %d, %d) placed %d mines, want %d", tt.width, tt.height, tt.divisor, b.MineCount(), tt.want)
		}
		if b.Status() != Playing {
			t.Errorf("new board status = %v", b.Status())
		}
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	for _, args := range [][3]int{{0, 5, 10}, {5, -1, 10}, {5, 5, 0}} {
		if _, err := New(args[0], args[1], args[2], seeded()); err == nil {
			t.Errorf("New%v should fail", args)
		}
	}
}

func TestNeighbors(t *testing.T) {
	b := WithMines(10, 10)
	tests := []struct {
		f    Field
		want int
	}{
		{Field{5, 5}, 8},
		{Field{0, 0}, 3},
		{Field{9, 0}, 3},
		{Field{0, 5}, 5},
		{Field{9, 9}, 3},
	}
	for _, tt := range tests {
		ns := b.Neighbors(tt.f)
		if len(ns) != tt.want {
			t.Errorf("Neighbors(%v) = %v, want %d fields", tt.f, ns, tt.want)
		}
		if slices.Contains(ns, tt.f) {
			t.Errorf("Neighbors(%v) contains the field itself", tt.f)
		}
	}
}

func TestCountMines(t *testing.T) {
	b := WithMines(3, 3, Field{0, 0}, Field{2, 2}, Field{1, 0})
	if got := b.CountMines(Field{1, 1}); got != 3 {
		t.Errorf("CountMines(1,1) = %d, want 3", got)
	}
	if got := b.CountMines(Field{0, 2}); got != 0 {
		t.Errorf("CountMines(0,2) = %d, want 0", got)
	}
}

func TestRevealFloodFill(t *testing.T) {
	// . . . .
	// . . . .
	// . . 1 1
	// . . 1 X
	b := WithMines(4, 4, Field{3, 3})
	next := b.Reveal(Field{0, 0})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			f := Field{x, y}
			if want := f != (Field{3, 3}); next.IsRevealed(f) != want {
				t.Errorf("revealed(%v) = %v, want %v", f, next.IsRevealed(f), want)
			}
		}
	}
	if next.Status() != Won {
		t.Errorf("status = %v, want won", next.Status())
	}
	if b.IsRevealed(Field{0, 0}) {
		t.Error("Reveal modified the receiver")
	}
}

func TestRevealStopsAtNumbers(t *testing.T) {
	b := WithMines(5, 1, Field{4, 0})
	next := b.Reveal(Field{0, 0})

	if !next.IsRevealed(Field{3, 0}) {
		t.Error("numbered border field should be revealed")
	}
	if next.IsRevealed(Field{4, 0}) {
		t.Error("flood fill must not reveal mines")
	}

	single := b.Reveal(Field{3, 0})
	if single.IsRevealed(Field{2, 0}) {
		t.Error("revealing a numbered field should not spread")
	}
}

func TestRevealLargeEmptyBoard(t *testing.T) {
	b := WithMines(300, 300)
	if got := b.Reveal(Field{150, 150}).Status(); got != Won {
		t.Errorf("status = %v, want won", got)
	}
}

func TestRevealMineRevealsAll(t *testing.T) {
	mines := []Field{{0, 0}, {2, 2}, {1, 3}}
	b := WithMines(4, 4, mines...).Reveal(Field{2, 2})

	for _, m := range mines {
		if !b.IsRevealed(m) {
			t.Errorf("mine %v not revealed", m)
		}
	}
	if b.Status() != Lost {
		t.Errorf("status = %v, want lost", b.Status())
	}
}

func TestClick(t *testing.T) {
	b := WithMines(3, 3, Field{2, 2})
	f := Field{0, 2}

	flagged := b.Click(f, true)
	if !flagged.IsFlagged(f) {
		t.Fatal("flag click should flag the field")
	}
	if got := flagged.Click(f, false); !got.Equal(flagged) {
		t.Error("revealing a flagged field should do nothing")
	}
	unflagged := flagged.Click(f, true)
	if unflagged.IsFlagged(f) {
		t.Error("second flag click should unflag")
	}
	if !unflagged.Click(f, false).IsRevealed(f) {
		t.Error("reveal click should reveal the unflagged field")
	}
}

func TestToggleFlagIgnoresRevealed(t *testing.T) {
	b := WithMines(3, 3, Field{2, 2}).Reveal(Field{0, 0})
	if b.ToggleFlag(Field{0, 0}).IsFlagged(Field{0, 0}) {
		t.Error("revealed fields cannot be flagged")
	}
	if got := b.ToggleFlag(Field{-1, 0}); !got.Equal(b) {
		t.Error("fields off the board are ignored")
	}
}

func TestFinishedGameIgnoresClicks(t *testing.T) {
	lost := WithMines(3, 3, Field{1, 1}).Click(Field{1, 1}, false)
	if lost.Status() != Lost {
		t.Fatalf("status = %v, want lost", lost.Status())
	}
	if got := lost.Click(Field{0, 0}, false); !got.Equal(lost) {
		t.Error("clicks after a loss should be ignored")
	}
}

func TestReset(t *testing.T) {
	b, err := New(8, 8, 8, seeded())
	if err != nil {
		t.Fatal(err)
	}
	played := b.Click(Field{0, 0}, true).Click(Field{7, 7}, false)
	reset := played.Reset(seeded())

	if reset.MineCount() != b.MineCount() {
		t.Errorf("mine count = %d, want %d", reset.MineCount(), b.MineCount())
	}
	if reset.IsFlagged(Field{0, 0}) || reset.IsRevealed(Field{7, 7}) {
		t.Error("reset should clear flags and revealed fields")
	}
	if reset.Status() != Playing {
		t.Errorf("status = %v", reset.Status())
	}
}

func TestEqual(t *testing.T) {
	a := WithMines(3, 3, Field{1, 1})
	b := WithMines(3, 3, Field{1, 1})
	if !a.Equal(b) {
		t.Error("boards with the same state should be equal")
	}
	if a.Equal(b.ToggleFlag(Field{0, 0})) {
		t.Error("flags should matter")
	}
	if a.Equal(WithMines(3, 4, Field{1, 1})) {
		t.Error("size should matter")
	}
}

func TestString(t *testing.T) {
	b := WithMines(3, 2, Field{2, 1}).Reveal(Field{0, 0}).ToggleFlag(Field{2, 1})
	got := b.String()
	want := strings.Join([]string{
		"    0 1 2",
		" 0  . 1 #",
		" 1  . 1 F",
		"",
	}, "\n")
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
