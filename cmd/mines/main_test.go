package main

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/slate/cmd/mines/internal/board"
	"github.com/go-drift/slate/cmd/mines/internal/stats"
	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/theme"
)

func testGame(t *testing.T) *game {
	t.Helper()
	b := board.WithMines(3, 3, board.Field{X: 2, Y: 2})
	g := newGame(b, rand.New(rand.NewPCG(3, 4)), theme.Default())
	rec, err := stats.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	g.stats = rec
	g.key = stats.Key(3, 3, 1)
	return g
}

func TestExecReveal(t *testing.T) {
	g := testGame(t)
	var out bytes.Buffer

	if !g.exec("r 0 0", &out) {
		t.Fatal("reveal should not quit")
	}
	if got := g.window.Data().Status(); got != board.Won {
		t.Errorf("status = %v, want won", got)
	}
	if got := g.stats.Get(g.key); got.Won != 1 || got.Played != 1 {
		t.Errorf("stats = %+v, want one win", got)
	}
}

func TestExecFlagAndLose(t *testing.T) {
	g := testGame(t)
	var out bytes.Buffer

	g.exec("f 2 2", &out)
	if !g.window.Data().IsFlagged(board.Field{X: 2, Y: 2}) {
		t.Fatal("f should flag the field")
	}
	g.exec("f 2 2", &out)
	g.exec("r 2 2", &out)
	if got := g.window.Data().Status(); got != board.Lost {
		t.Errorf("status = %v, want lost", got)
	}
	if got := g.stats.Get(g.key); got.Lost != 1 {
		t.Errorf("stats = %+v, want one loss", got)
	}

	// finished games do not count twice
	g.exec("r 0 0", &out)
	if got := g.stats.Get(g.key); got.Played != 1 {
		t.Errorf("played = %d, want 1", got.Played)
	}
}

func TestExecReset(t *testing.T) {
	g := testGame(t)
	var out bytes.Buffer
	g.exec("r 0 0", &out)

	g.exec("reset", &out)

	b := g.window.Data()
	if b.Status() != board.Playing || b.IsRevealed(board.Field{X: 0, Y: 0}) {
		t.Error("reset should start a new game")
	}
}

func TestExecErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"r 1", "expected two coordinates"},
		{"r a 1", "bad column"},
		{"f 1 b", "bad row"},
		{"r 5 5", "no field at 5 5"},
		{"dig", "unknown command"},
	}
	for _, tt := range tests {
		g := testGame(t)
		var out bytes.Buffer
		if !g.exec(tt.line, &out) {
			t.Errorf("%q should not quit", tt.line)
		}
		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("%q printed %q, want %q", tt.line, out.String(), tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	g := testGame(t)
	var out bytes.Buffer

	g.run(strings.NewReader("\nr 0 0\nquit\nr 2 2\n"), &out)

	text := out.String()
	if !strings.Contains(text, "you won!") {
		t.Errorf("output should announce the win:\n%s", text)
	}
	if strings.Contains(text, "boom") {
		t.Error("commands after quit should not run")
	}
	if !strings.Contains(text, "played 1, won 1, lost 0") {
		t.Errorf("output should show the stats:\n%s", text)
	}
}

func collectErrors(t *testing.T) *errors.Collector {
	t.Helper()
	collector := &errors.Collector{}
	old := errors.CurrentHandler()
	errors.SetHandler(collector)
	t.Cleanup(func() { errors.SetHandler(old) })
	return collector
}

func TestLoadThemeReportsBadFile(t *testing.T) {
	collector := collectErrors(t)
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("colors: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	env := loadTheme(path)

	if *env != *theme.Default() {
		t.Error("expected the default theme after a bad file")
	}
	errs := collector.Errors()
	if len(errs) != 1 || errs[0].Op != "theme.LoadFile" || errs[0].Kind != errors.KindConfig {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestLoadThemeWithoutPath(t *testing.T) {
	collector := collectErrors(t)
	if env := loadTheme(""); env == nil {
		t.Fatal("expected the default theme")
	}
	if len(collector.Errors()) != 0 {
		t.Errorf("unexpected errors %v", collector.Errors())
	}
}

func TestOpenStatsInMemory(t *testing.T) {
	collector := collectErrors(t)
	rec := openStats("")
	rec.Finish("3x3/1", board.Won)
	if err := rec.Save(); err != nil {
		t.Fatal(err)
	}
	if got := rec.Get("3x3/1"); got.Won != 1 {
		t.Errorf("record = %+v, want one win", got)
	}
	if len(collector.Errors()) != 0 {
		t.Errorf("unexpected errors %v", collector.Errors())
	}
}
