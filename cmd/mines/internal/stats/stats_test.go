package stats

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/go-drift/slate/cmd/mines/internal/board"
)

func openStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	store, err := gdata.Open(gdata.Config{AppName: "mines_stats_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return store
}

func TestKey(t *testing.T) {
	if got := Key(15, 15, 22); got != "15x15/22" {
		t.Errorf("Key = %q", got)
	}
}

func TestInMemory(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	key := Key(3, 3, 1)
	m.Finish(key, board.Won)
	m.Finish(key, board.Lost)
	m.Finish(key, board.Playing)

	want := Record{Played: 2, Won: 1, Lost: 1}
	if got := m.Get(key); got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
	if err := m.Save(); err != nil {
		t.Errorf("Save without a store should be a no-op, got %v", err)
	}
}

func TestPersistence(t *testing.T) {
	store := openStore(t)
	m, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	key := Key(8, 8, 8)
	m.Finish(key, board.Won)
	if err := m.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	if got := reloaded.Get(key); got != (Record{Played: 1, Won: 1}) {
		t.Errorf("reloaded record = %+v", got)
	}
}

func TestLoadCorruptData(t *testing.T) {
	store := openStore(t)
	if err := store.SaveObjectProp(statsObject, statsProperty, []byte("{not: [yaml")); err != nil {
		t.Fatal(err)
	}

	m, err := New(store)
	if err == nil {
		t.Error("expected an unmarshal error")
	}
	if m == nil || len(m.records) != 0 {
		t.Error("a manager with empty records should still be returned")
	}
}
