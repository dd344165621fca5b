// Package save persists run snapshots as JSON files on disk.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lazharichir/tribulation/run"
)

const saveFileName = "run.json"

// Store reads and writes the single active save slot under a directory.
type Store struct {
	dir string
}

// NewStore opens (and creates if needed) the save directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, saveFileName)
}

// Save writes a snapshot atomically: the payload lands in a temp file
// first and replaces the slot with a rename.
func (s *Store) Save(snapshot run.Snapshot) error {
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, saveFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp save file: %w", err)
	}

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp save file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing save file: %w", err)
	}
	return nil
}

// Load reads the saved snapshot. A missing slot returns ok=false; a
// corrupt slot is deleted and also returns ok=false, so the caller
// starts fresh either way.
func (s *Store) Load() (run.Snapshot, bool, error) {
	payload, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return run.Snapshot{}, false, nil
	}
	if err != nil {
		return run.Snapshot{}, false, fmt.Errorf("reading save file: %w", err)
	}

	var snapshot run.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		os.Remove(s.path())
		return run.Snapshot{}, false, nil
	}

	return snapshot, true, nil
}

// Clear deletes the save slot. A missing slot is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
