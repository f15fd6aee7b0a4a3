package graphstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pidcanvas/pidcanvas/pkg/errors"
)

// Mongo collection defaults.
const (
	defaultDatabase   = "pidcanvas"
	defaultCollection = "diagrams"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string
	// Database defaults to "pidcanvas".
	Database string
	// Collection defaults to "diagrams".
	Collection string
}

// MongoStore is a MongoDB-backed diagram store.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = defaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, d Diagram) (Diagram, error) {
	d = prepare(d)

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, opts); err != nil {
		return Diagram{}, fmt.Errorf("save diagram: %w", err)
	}
	return d, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (Diagram, error) {
	var d Diagram
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return Diagram{}, errors.New(errors.ErrCodeGraphNotFound, "diagram %q not found", id)
	}
	if err != nil {
		return Diagram{}, fmt.Errorf("get diagram: %w", err)
	}
	return d, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Info, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetProjection(bson.M{"name": 1, "updated_at": 1, "graph.nodes.id": 1, "graph.edges.id": 1})

	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list diagrams: %w", err)
	}
	defer cur.Close(ctx)

	var infos []Info
	for cur.Next(ctx) {
		var d Diagram
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode diagram: %w", err)
		}
		infos = append(infos, infoOf(d))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list diagrams: %w", err)
	}
	return infos, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete diagram: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
