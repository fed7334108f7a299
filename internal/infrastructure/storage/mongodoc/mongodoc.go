// Package mongodoc persists the document as a single record in a MongoDB
// collection, keyed by the storage key. The serialized JSON is stored opaque
// in one field so the byte-for-byte single-document contract of the store
// holds regardless of BSON field ordering.
package mongodoc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/billboardbooker/marketplace/internal/core/domain"
)

const (
	defaultTimeout = 10 * time.Second
	collectionName = "documents"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

type mongoDocument struct {
	ID   string `bson:"_id"`
	JSON []byte `bson:"json"`
}

// Backend stores the document in the "documents" collection under _id = key.
type Backend struct {
	coll *mongo.Collection
	key  string
}

func New(db *mongo.Database, key string) *Backend {
	return &Backend{coll: db.Collection(collectionName), key: key}
}

func (b *Backend) Get(ctx context.Context) ([]byte, error) {
	var doc mongoDocument
	if err := b.coll.FindOne(ctx, bson.M{"_id": b.key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoDocument
		}
		return nil, fmt.Errorf("mongo find document: %w", err)
	}
	return doc.JSON, nil
}

func (b *Backend) Put(ctx context.Context, doc []byte) error {
	_, err := b.coll.ReplaceOne(ctx,
		bson.M{"_id": b.key},
		mongoDocument{ID: b.key, JSON: doc},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo replace document: %w", err)
	}
	return nil
}
