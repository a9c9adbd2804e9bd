package persist

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo keeps the snapshot as one document in an app_state collection. The
// payload stays raw JSON so the stored bytes match the other backends.
type Mongo struct {
	client   *mongo.Client
	dbName   string
	collName string
}

type mongoSnapshot struct {
	StorageKey string `bson:"_id"`
	Payload    []byte `bson:"payload"`
}

func NewMongo(ctx context.Context, uri string, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Mongo{client: client, dbName: dbName, collName: "app_state"}, nil
}

func (m *Mongo) Load(ctx context.Context) ([]byte, error) {
	coll := m.client.Database(m.dbName).Collection(m.collName)
	var snap mongoSnapshot
	err := coll.FindOne(ctx, bson.M{"_id": StorageKey}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find state: %w", err)
	}
	return snap.Payload, nil
}

func (m *Mongo) Save(ctx context.Context, data []byte) error {
	coll := m.client.Database(m.dbName).Collection(m.collName)
	_, err := coll.ReplaceOne(ctx,
		bson.M{"_id": StorageKey},
		mongoSnapshot{StorageKey: StorageKey, Payload: data},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
