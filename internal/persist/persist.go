package persist

import (
	"context"
	"errors"
)

// StorageKey is the single key the whole application state lives under, for
// backends that are key addressed. Other backends keep it as a column or
// document id so snapshots written by one backend stay recognizable.
const StorageKey = "telefon-teknik-servis-data"

// ErrNotFound reports that no snapshot has been saved yet.
var ErrNotFound = errors.New("state snapshot not found")

// Persister loads and saves the serialized application state as one opaque
// JSON blob. Save always replaces the previous snapshot.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close(ctx context.Context) error
}
