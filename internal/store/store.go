// Package store persists named field setups as keyed records in a JSON
// file under the user config directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"field-setter/internal/scene"
)

const setupsFile = "setups.json"

// Record is one saved setup. Records are immutable; overwriting a saved
// setup means delete then create.
type Record struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Scene     *scene.Scene `json:"scene"`
	CreatedAt time.Time    `json:"created_at"`
}

// Store is a keyed record store backed by a single JSON file.
type Store struct {
	path string
}

// DefaultPath returns the setups file location under the user config
// directory, creating the directory as needed.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	dir := filepath.Join(configDir, "field-setter")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, setupsFile)
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// List returns all saved records in file order. A missing or corrupt file
// reads as "no saved setups", never an error.
func (s *Store) List() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// Create appends a new record for the given scene and returns it.
func (s *Store) Create(name string, sc *scene.Scene) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		Name:      name,
		Scene:     sc,
		CreatedAt: time.Now().UTC(),
	}
	records := append(s.List(), rec)
	if err := s.write(records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Delete removes the record with the given id. Deleting an unknown id is
// a no-op.
func (s *Store) Delete(id string) error {
	records := s.List()
	out := records[:0]
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return s.write(out)
}

// Get returns the record with the given id, or false.
func (s *Store) Get(id string) (Record, bool) {
	for _, r := range s.List() {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

func (s *Store) write(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode setups: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write setups: %w", err)
	}
	return nil
}
