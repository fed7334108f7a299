// Package filedoc persists the document as one JSON file on local disk, the
// closest server-side analogue of the browser's origin-scoped key-value
// storage. The file name is derived from the storage key so two stores with
// different keys never collide.
package filedoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/billboardbooker/marketplace/internal/core/domain"
)

type Backend struct {
	path string
}

// New returns a backend writing <dir>/<key>.json. The directory is created on
// first use.
func New(dir, key string) *Backend {
	return &Backend{path: filepath.Join(dir, key+".json")}
}

func (b *Backend) Get(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoDocument
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	return raw, nil
}

// Put replaces the file through a temp-file rename so a crash mid-write never
// leaves a truncated document behind.
func (b *Backend) Put(_ context.Context, doc []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".doc-*")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close document: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
