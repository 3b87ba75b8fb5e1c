package presets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/ducminhle1904/strategy-sim/internal/config"
	"github.com/ducminhle1904/strategy-sim/internal/simerr"
)

// Preset is a named snapshot of simulation parameters with a creation stamp.
type Preset struct {
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Scenario  config.Scenario `json:"scenario"`
}

// Store persists named presets to a single JSON file. The engine neither
// reads nor writes this store; it exists for the settings side of the UI.
type Store struct {
	path    string
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewStore opens the store at path, loading existing presets if the file is
// present.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		presets: make(map[string]Preset),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, simerr.Wrap(err, simerr.ErrorCategoryStorage, "presets", "open")
	}

	var list []Preset
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, simerr.Wrap(err, simerr.ErrorCategoryStorage, "presets", "parse")
	}
	for _, p := range list {
		s.presets[p.Name] = p
	}
	return s, nil
}

// Save stores a scenario under name, stamping the creation time. Saving an
// existing name overwrites it with a fresh stamp.
func (s *Store) Save(name string, sc config.Scenario) (Preset, error) {
	if name == "" {
		return Preset{}, simerr.New(simerr.ErrorCategoryValidation, "presets", "save", "preset name must not be empty")
	}
	if err := sc.Validate(); err != nil {
		return Preset{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Preset{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Scenario:  sc,
	}
	s.presets[name] = p

	if err := s.persist(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Get returns the preset stored under name.
func (s *Store) Get(name string) (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.presets[name]
	return p, ok
}

// List returns all presets ordered by creation time, oldest first.
func (s *Store) List() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Name < out[j].Name
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Delete removes the preset stored under name.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[name]; !ok {
		return simerr.Newf(simerr.ErrorCategoryStorage, "presets", "delete", "no preset named %q", name)
	}
	delete(s.presets, name)
	return s.persist()
}

// persist writes the full preset list to disk. Callers hold the write lock.
func (s *Store) persist() error {
	list := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return simerr.Wrap(err, simerr.ErrorCategoryStorage, "presets", "marshal")
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create presets directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return simerr.Wrap(err, simerr.ErrorCategoryStorage, "presets", "write")
	}
	return nil
}
