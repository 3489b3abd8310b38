package storage

import (
	"context"
	"os"
	"path/filepath"
)

// DiskStore writes resumes into a local directory that the server also
// serves statically.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir}, nil
}

func (d *DiskStore) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	path := filepath.Join(d.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return URLPrefix + name, nil
}

func (d *DiskStore) Remove(ctx context.Context, name string) error {
	return os.Remove(filepath.Join(d.Dir, name))
}
