package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileImageStore saves images to disk under a base directory.
type FileImageStore struct {
	basePath string
}

// NewFileImageStore creates the base directory if missing.
func NewFileImageStore(basePath string) (*FileImageStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileImageStore{basePath: basePath}, nil
}

// Save writes the image under name.
func (f *FileImageStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	name = safeName(name)
	if name == "" {
		return fmt.Errorf("invalid image name")
	}

	out, err := os.Create(filepath.Join(f.basePath, name))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Open returns a reader for the image stored under name.
func (f *FileImageStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	name = safeName(name)
	if name == "" {
		return nil, ErrNotFound
	}

	file, err := os.Open(filepath.Join(f.basePath, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return file, nil
}
