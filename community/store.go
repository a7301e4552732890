package community

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MemoryStore keeps the table in memory only. Used in tests and as the
// degraded mode when no persistence is configured.
type MemoryStore struct {
	table Table
}

func (m *MemoryStore) Load() (Table, error) {
	if m.table == nil {
		return Table{}, nil
	}
	cp := make(Table, len(m.table))
	for k, v := range m.table {
		cp[k] = v
	}
	return cp, nil
}

func (m *MemoryStore) Save(t Table) error {
	cp := make(Table, len(t))
	for k, v := range t {
		cp[k] = v
	}
	m.table = cp
	return nil
}

// FileStore snapshots the whole table to one JSON file per save. Whole-file
// last-writer-wins; concurrent votes for the same location can race, which
// is a documented limitation.
type FileStore struct {
	Path string
}

func (f *FileStore) Load() (Table, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	return t, nil
}

func (f *FileStore) Save(t Table) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return os.WriteFile(f.Path, data, 0o644)
}
