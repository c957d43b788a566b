// Package stats keeps win and loss counters across runs.
package stats

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/slate/cmd/mines/internal/board"
)

const (
	statsObject   = "stats"
	statsProperty = "games"
)

// Record holds the counters for one board size.
type Record struct {
	Played int `yaml:"played"`
	Won    int `yaml:"won"`
	Lost   int `yaml:"lost"`
}

// Manager loads and saves records through a gdata manager. A nil gdata
// manager keeps the records in memory only.
type Manager struct {
	store   *gdata.Manager
	records map[string]Record
}

// Open creates a gdata-backed manager for appName.
func Open(appName string) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open stats storage: %w", err)
	}
	return New(store)
}

// New creates a manager over store and loads the saved records. store may
// be nil.
func New(store *gdata.Manager) (*Manager, error) {
	m := &Manager{store: store, records: map[string]Record{}}
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// Key names the record of a board size.
func Key(width, height, mines int) string {
	return fmt.Sprintf("%dx%d/%d", width, height, mines)
}

// Load replaces the in-memory records with the saved ones. Missing data
// is not an error.
func (m *Manager) Load() error {
	m.records = map[string]Record{}
	if m.store == nil || !m.store.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}
	data, err := m.store.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	var records map[string]Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	if records != nil {
		m.records = records
	}
	return nil
}

// Save writes the records. It is a no-op without a store.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.records)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := m.store.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Finish counts a finished game for key. Games still being played are
// ignored.
func (m *Manager) Finish(key string, status board.Status) {
	r := m.records[key]
	switch status {
	case board.Won:
		r.Won++
	case board.Lost:
		r.Lost++
	default:
		return
	}
	r.Played++
	m.records[key] = r
}

// Get returns the record for key.
func (m *Manager) Get(key string) Record {
	return m.records[key]
}
