// Package memdoc is an in-memory document backend. It keeps the same
// replace-whole-document contract as the durable backends and exists for tests
// and ephemeral demo runs.
package memdoc

import (
	"context"
	"sync"

	"github.com/billboardbooker/marketplace/internal/core/domain"
)

type Backend struct {
	mu  sync.RWMutex
	doc []byte
}

func New() *Backend {
	return &Backend{}
}

func (b *Backend) Get(_ context.Context) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.doc == nil {
		return nil, domain.ErrNoDocument
	}
	out := make([]byte, len(b.doc))
	copy(out, b.doc)
	return out, nil
}

func (b *Backend) Put(_ context.Context, doc []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc = make([]byte, len(doc))
	copy(b.doc, doc)
	return nil
}
