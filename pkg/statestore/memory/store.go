// Package memory holds the rotation state in memory. Used in tests, where
// copies on Load and Store stand in for the process boundary.
package memory

import "codeberg.org/miketth/hyprtap/pkg/switcher"

type StateStore struct {
	data *switcher.Data
}

func NewStateStore() *StateStore {
	return &StateStore{}
}

func (s *StateStore) Close() error {
	return nil
}

func (s *StateStore) Load() (*switcher.Data, error) {
	if s.data == nil {
		return nil, switcher.ErrNotInitialized
	}
	return clone(s.data), nil
}

func (s *StateStore) Store(data *switcher.Data) error {
	s.data = clone(data)
	return nil
}

func clone(data *switcher.Data) *switcher.Data {
	out := *data
	out.Devices = append([]string(nil), data.Devices...)
	out.Layouts = append([]int(nil), data.Layouts...)
	return &out
}
