package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akudrin/cinewallet/internal/domain"
)

var ErrNotFound = errors.New("user record not found")

// RecordStore persists one JSON file per user under a data directory. Writes
// go through a temp file and rename so a crash mid-write never corrupts an
// existing record.
type RecordStore struct {
	dir string
}

func New(dir string) *RecordStore {
	return &RecordStore{dir: dir}
}

func (s *RecordStore) Save(user *domain.User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("can't create data dir: %w", err)
	}
	path := s.path(user.Username)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("can't create record file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(user); err != nil {
		f.Close()
		return fmt.Errorf("can't encode record: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load restores a record by username. A missing or malformed file is
// reported as ErrNotFound; the stored credential digest is returned verbatim,
// never re-derived.
func (s *RecordStore) Load(username string) (*domain.User, error) {
	f, err := os.Open(s.path(username))
	if err != nil {
		return nil, ErrNotFound
	}
	defer f.Close()

	var user domain.User
	if err := json.NewDecoder(f).Decode(&user); err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *RecordStore) path(username string) string {
	return filepath.Join(s.dir, username+".json")
}
