// Package sqlite stores the rotation state in a single-user sqlite
// database, schema managed through embedded migrations.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"codeberg.org/miketth/hyprtap/pkg/statestore/sqlite/migrations"
	"codeberg.org/miketth/hyprtap/pkg/switcher"
)

type StateStore struct {
	db *sql.DB
}

func NewStateStore(filename string, log *zap.SugaredLogger) (*StateStore, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &StateStore{db: db}, nil
}

func (s *StateStore) Close() error {
	return s.db.Close()
}

func (s *StateStore) Load() (*switcher.Data, error) {
	data := &switcher.Data{}

	row := s.db.QueryRow(`SELECT last_time, cur_freq, cur_all, sum_time, counter, max_duration FROM state WHERE id = 1`)
	err := row.Scan(&data.LastTime, &data.CurFreq, &data.CurAll, &data.SumTime, &data.Counter, &data.MaxDuration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, switcher.ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}

	data.Devices, err = s.loadDevices()
	if err != nil {
		return nil, err
	}

	data.Layouts, err = s.loadLayouts()
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (s *StateStore) loadDevices() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM devices ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select devices: %w", err)
	}
	defer rows.Close()

	var devices []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		devices = append(devices, name)
	}

	return devices, rows.Err()
}

func (s *StateStore) loadLayouts() ([]int, error) {
	rows, err := s.db.Query(`SELECT layout FROM layouts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select layouts: %w", err)
	}
	defer rows.Close()

	var layouts []int
	for rows.Next() {
		var layout int
		if err := rows.Scan(&layout); err != nil {
			return nil, fmt.Errorf("scan layout: %w", err)
		}
		layouts = append(layouts, layout)
	}

	return layouts, rows.Err()
}

func (s *StateStore) Store(data *switcher.Data) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO state (id, last_time, cur_freq, cur_all, sum_time, counter, max_duration)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			last_time = excluded.last_time,
			cur_freq = excluded.cur_freq,
			cur_all = excluded.cur_all,
			sum_time = excluded.sum_time,
			counter = excluded.counter,
			max_duration = excluded.max_duration`,
		data.LastTime, data.CurFreq, data.CurAll, data.SumTime, data.Counter, float64(data.MaxDuration))
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM devices`); err != nil {
		return fmt.Errorf("clear devices: %w", err)
	}
	for i, name := range data.Devices {
		if _, err := tx.Exec(`INSERT INTO devices (position, name) VALUES (?, ?)`, i, name); err != nil {
			return fmt.Errorf("insert device: %w", err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM layouts`); err != nil {
		return fmt.Errorf("clear layouts: %w", err)
	}
	for i, layout := range data.Layouts {
		if _, err := tx.Exec(`INSERT INTO layouts (position, layout) VALUES (?, ?)`, i, layout); err != nil {
			return fmt.Errorf("insert layout: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
