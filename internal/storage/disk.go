package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore keeps processed images on the local filesystem.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(ctx context.Context, raw []byte, originalName string) (string, error) {
	processed, err := ProcessImage(raw)
	if err != nil {
		return "", err
	}

	name, err := imageName(originalName)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), processed, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return name, nil
}

func (s *DiskStore) Delete(ctx context.Context, ref string) error {
	// Refs are bare file names; reject anything trying to escape the dir.
	if ref != filepath.Base(ref) {
		return fmt.Errorf("invalid image reference %q", ref)
	}

	err := os.Remove(filepath.Join(s.dir, ref))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
