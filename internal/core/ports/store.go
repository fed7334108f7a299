package ports

import (
	"context"

	"github.com/billboardbooker/marketplace/internal/core/domain"
)

// Observer is notified with the current session after every successful save.
type Observer func(session *domain.Session)

// DocumentStore is the persisted store the services mutate through. Every
// logical operation is one Mutate cycle: load the whole document, change it in
// memory, write it back, notify observers.
type DocumentStore interface {
	// Load returns the current database. A missing or unparseable document
	// yields the seeded default; only backend I/O failures surface as errors.
	Load(ctx context.Context) (*domain.Database, error)

	// Save persists db and synchronously notifies every subscribed observer
	// with db's session.
	Save(ctx context.Context, db *domain.Database) error

	// Mutate runs one load→fn→save cycle. When fn returns an error the save
	// and the observer notification are skipped and the error is returned.
	Mutate(ctx context.Context, fn func(db *domain.Database) error) error

	// Subscribe registers an observer and returns its unsubscribe function.
	Subscribe(obs Observer) func()
}
