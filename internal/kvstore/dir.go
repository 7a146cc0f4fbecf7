package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir is a Store keeping one JSON file per key in a directory. It suits
// settings that should be easy to inspect or edit by hand.
// Layout: <base>/<normalized key>.json
type Dir struct {
	baseDir string
}

// NewDir creates a store rooted at base. The directory is created on the
// first Set.
func NewDir(base string) *Dir {
	return &Dir{baseDir: base}
}

// BaseDir returns the store's root directory.
func (d *Dir) BaseDir() string {
	return d.baseDir
}

// Path returns the file holding key.
func (d *Dir) Path(key string) string {
	// Normalize: lowercase, no path separators or spaces
	normalized := strings.ToLower(key)
	normalized = strings.NewReplacer("/", "-", `\`, "-", " ", "-").Replace(normalized)
	return filepath.Join(d.baseDir, normalized+".json")
}

// Get implements Store. A missing file means the key is absent.
func (d *Dir) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(d.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return b, true, nil
}

// Set implements Store. The value is written to a temp file and renamed so
// readers never see a partial record.
func (d *Dir) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.baseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	path := d.Path(key)
	tmp, err := os.CreateTemp(d.baseDir, ".kv-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
