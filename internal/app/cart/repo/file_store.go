package repo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
)

// FileStore persists the cart snapshot as a JSON file. It plays the role
// of the browser's local storage slot: one well-known location, one
// writer, best-effort durability.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file. A missing file yields (nil, nil); a
// corrupt file yields an error so the caller can fall back to an empty
// cart.
func (s *FileStore) Load(_ context.Context) (*contracts.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read snapshot %s", s.path)
	}

	var snap contracts.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", s.path)
	}
	return &snap, nil
}

// Save writes the snapshot atomically: marshal to a temp file in the
// same directory, then rename over the target.
func (s *FileStore) Save(_ context.Context, snap *contracts.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return errors.Wrapf(err, "create temp snapshot in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write temp snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close temp snapshot")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replace snapshot %s", s.path)
	}
	return nil
}

// Delete removes the snapshot file. A missing file is not an error.
func (s *FileStore) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove snapshot %s", s.path)
	}
	return nil
}
