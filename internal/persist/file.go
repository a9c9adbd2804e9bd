package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File stores the snapshot as a single JSON file on disk. Writes go through
// a temp file and rename so a crash mid-write never leaves a torn snapshot.
type File struct {
	path string
}

func NewFile(path string) (*File, error) {
	if path == "" {
		path = StorageKey + ".json"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}
	return &File{path: path}, nil
}

func (f *File) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

func (f *File) Save(ctx context.Context, data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (f *File) Close(ctx context.Context) error {
	return nil
}
