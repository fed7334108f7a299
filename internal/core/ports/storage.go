package ports

import "context"

// DocumentBackend is durable key-value access to the single serialized
// database document. Implementations live under internal/infrastructure/storage.
//
// Get returns domain.ErrNoDocument when nothing has been written yet. Put
// always replaces the whole document; backends never patch it.
type DocumentBackend interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, doc []byte) error
}
