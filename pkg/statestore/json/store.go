// Package json stores the rotation state as a single JSON file, rewritten
// in full on every change. This is the default backend.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/miketth/hyprtap/pkg/switcher"
)

type StateStore struct {
	path string
}

func NewStateStore(path string) (*StateStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	return &StateStore{path: path}, nil
}

func (s *StateStore) Close() error {
	return nil
}

func (s *StateStore) Load() (*switcher.Data, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, switcher.ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("open state file: %w", err)
	}
	defer file.Close()

	// records written before the threshold existed have no max_duration
	// field, so seed the default before decoding
	data := &switcher.Data{MaxDuration: switcher.DefaultMaxDuration}
	if err := json.NewDecoder(file).Decode(data); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	return data, nil
}

func (s *StateStore) Store(data *switcher.Data) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create state file: %w", err)
	}

	if err := json.NewEncoder(file).Encode(data); err != nil {
		file.Close()
		return fmt.Errorf("encode state file: %w", err)
	}

	return file.Close()
}
