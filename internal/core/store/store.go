// Package store owns the single persisted marketplace document and its
// mutation protocol: load the whole database, change it in memory, write it
// back, notify observers. There is no partial write and no transaction log.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// Store persists the database through a pluggable backend and fans out change
// notifications after every successful save.
//
// A store-level mutex serializes cycles within one process. Writers in other
// processes sharing the same backend key still race read-modify-write: the
// later save silently overwrites the earlier one. That lost-update hazard is a
// known limitation of the single-document model, not something the store
// attempts to detect.
type Store struct {
	backend ports.DocumentBackend
	log     zerolog.Logger

	mu        sync.Mutex
	observers []observer
	nextObsID int
}

type observer struct {
	id int
	fn ports.Observer
}

// New builds a store around backend.
func New(backend ports.DocumentBackend, log zerolog.Logger) *Store {
	return &Store{backend: backend, log: log}
}

// Load returns the current database. A missing document or one that fails to
// parse yields the seeded default database; that fallback is deterministic and
// never fails. Only backend I/O errors are surfaced.
func (s *Store) Load(ctx context.Context) (*domain.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) (*domain.Database, error) {
	raw, err := s.backend.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoDocument) {
			return domain.SeedDatabase(), nil
		}
		return nil, err
	}

	var db domain.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		s.log.Warn().Err(err).Msg("persisted document unparseable, using seed database")
		return domain.SeedDatabase(), nil
	}
	return &db, nil
}

// Save persists db and synchronously notifies every observer with db's
// session. Observers run in registration order with no error isolation: a
// panicking observer aborts delivery to the ones after it.
func (s *Store) Save(ctx context.Context, db *domain.Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, db)
}

func (s *Store) save(ctx context.Context, db *domain.Database) error {
	raw, err := json.Marshal(db)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, raw); err != nil {
		return err
	}
	s.notify(db.Session)
	return nil
}

// Mutate runs one load→fn→save cycle under the store mutex. When fn returns
// an error nothing is written and no observer fires.
func (s *Store) Mutate(ctx context.Context, fn func(db *domain.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	return s.save(ctx, db)
}
