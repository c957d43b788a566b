// Command mines plays minesweeper in a terminal.
//
// The game runs the same widget tree a windowed host would: every command
// is turned into pointer clicks at the laid-out cell positions and sent
// through an engine.Window.
//
// Commands:
//
//	r X Y    reveal the field at column X, row Y
//	f X Y    flag or unflag the field
//	reset    start a new game
//	quit     leave
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/slate/cmd/mines/internal/board"
	"github.com/go-drift/slate/cmd/mines/internal/config"
	"github.com/go-drift/slate/cmd/mines/internal/stats"
	"github.com/go-drift/slate/cmd/mines/internal/ui"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/engine"
	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/theme"
)

// cellSize is the logical size of one field in the hidden window.
const cellSize = 32

func main() {
	dir := flag.String("dir", ".", "directory holding mines.yaml")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	memory := flag.Bool("memory", false, "do not persist statistics")
	flag.Parse()

	cfg, err := config.Resolve(*dir)
	if err != nil {
		log.Fatalf("mines: %v", err)
	}

	env := loadTheme(cfg.ThemePath)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(*seed, *seed>>1|1))

	b, err := board.New(cfg.Width, cfg.Height, cfg.Divisor, rng)
	if err != nil {
		log.Fatalf("mines: %v", err)
	}

	appName := cfg.AppName
	if *memory {
		appName = ""
	}
	rec := openStats(appName)

	g := newGame(b, rng, env)
	g.stats = rec
	g.key = stats.Key(b.Width(), b.Height(), b.MineCount())
	g.run(os.Stdin, os.Stdout)

	if err := rec.Save(); err != nil {
		errors.Report(&errors.WidgetError{Op: "stats.Save", Kind: errors.KindConfig, Err: err})
	}
}

// loadTheme reads the theme at path. A theme that cannot be loaded is
// reported and the default theme is used.
func loadTheme(path string) *theme.Env {
	if path == "" {
		return theme.Default()
	}
	env, err := theme.LoadFile(path)
	if err != nil {
		errors.Report(&errors.WidgetError{Op: "theme.LoadFile", Kind: errors.KindConfig, Err: err})
		return theme.Default()
	}
	return env
}

// openStats opens the persisted statistics of appName. An empty appName, or
// storage that cannot be opened, keeps the statistics in memory.
func openStats(appName string) *stats.Manager {
	if appName == "" {
		rec, _ := stats.New(nil)
		return rec
	}
	rec, err := stats.Open(appName)
	if err != nil {
		errors.Report(&errors.WidgetError{Op: "stats.Open", Kind: errors.KindConfig, Err: err})
	}
	if rec == nil {
		rec, _ = stats.New(nil)
	}
	return rec
}

// game connects the command loop to the window.
type game struct {
	ui     *ui.UI
	window *engine.Window[board.Board]
	stats  *stats.Manager
	key    string
}

func newGame(b board.Board, rng *rand.Rand, env *theme.Env) *game {
	u := ui.New(b.Width(), b.Height(), rng)
	size := graphics.Size{
		Width:  float64(b.Width() * cellSize),
		Height: float64((b.Height() + 1) * cellSize),
	}
	w := engine.NewWindow(u.Root(), b, env,
		engine.WithSize(size),
		engine.WithEqual(board.Board.Equal))
	w.Attach()
	return &game{ui: u, window: w}
}

// click presses and releases button at pos.
func (g *game) click(pos graphics.Offset, button core.MouseButton) {
	ev := core.MouseEvent{Pos: pos, WindowPos: pos, Button: button, Buttons: core.MouseButtons(0).With(button), Count: 1}
	g.window.Dispatch(core.MouseDown{MouseEvent: ev})
	ev.Buttons = 0
	g.window.Dispatch(core.MouseUp{MouseEvent: ev})
}

// exec runs one command line. It reports false when the player quits.
func (g *game) exec(line string, out io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	before := g.window.Data().Status()

	switch fields[0] {
	case "q", "quit", "exit":
		return false
	case "reset":
		g.click(g.ui.ResetCenter(), core.MouseButtonLeft)
	case "r", "f":
		f, err := parseField(fields[1:])
		if err != nil {
			fmt.Fprintln(out, err)
			return true
		}
		pos, ok := g.ui.CellCenter(f)
		if !ok {
			fmt.Fprintf(out, "no field at %d %d\n", f.X, f.Y)
			return true
		}
		button := core.MouseButtonLeft
		if fields[0] == "f" {
			button = core.MouseButtonRight
		}
		g.click(pos, button)
	default:
		fmt.Fprintf(out, "unknown command %q (r X Y, f X Y, reset, quit)\n", fields[0])
		return true
	}

	b := g.window.Data()
	if status := b.Status(); status != before && status != board.Playing && g.stats != nil {
		g.stats.Finish(g.key, status)
	}
	return true
}

func parseField(args []string) (board.Field, error) {
	if len(args) != 2 {
		return board.Field{}, fmt.Errorf("expected two coordinates, got %d", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return board.Field{}, fmt.Errorf("bad column %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return board.Field{}, fmt.Errorf("bad row %q", args[1])
	}
	return board.Field{X: x, Y: y}, nil
}

func (g *game) print(out io.Writer) {
	b := g.window.Data()
	fmt.Fprint(out, b.String())
	switch b.Status() {
	case board.Won:
		fmt.Fprintln(out, "you won!")
	case board.Lost:
		fmt.Fprintln(out, "boom.")
	}
	if g.stats != nil {
		r := g.stats.Get(g.key)
		fmt.Fprintf(out, "played %d, won %d, lost %d\n", r.Played, r.Won, r.Lost)
	}
}

func (g *game) run(in io.Reader, out io.Writer) {
	g.print(out)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		if !g.exec(scanner.Text(), out) {
			return
		}
		g.print(out)
	}
}
