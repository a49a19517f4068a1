package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the long-lived mongo client and the service database
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *slog.Logger
}

// NewConnection connects to uri and verifies the primary is reachable.
func NewConnection(ctx context.Context, uri, database string, timeout time.Duration, logger *slog.Logger) (*DB, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetAppName("news-reader")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("mongo connection established", "database", database)

	return &DB{
		client:   client,
		database: client.Database(database),
		logger:   logger,
	}, nil
}

// Collection returns a handle on the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.database.Collection(name)
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	d.logger.Info("closing mongo connection")
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique url index and the date_saved listing index.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(IndexURLUnique),
		},
		{
			Keys:    bson.D{{Key: "date_saved", Value: -1}},
			Options: options.Index().SetName(IndexDateSavedDesc),
		},
	}

	names, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	return names, nil
}

// Index names maintained by EnsureIndexes.
const (
	IndexURLUnique     = "url_unique"
	IndexDateSavedDesc = "date_saved_desc"
)

var managedIndexes = []string{IndexURLUnique, IndexDateSavedDesc}

// DropIndexes removes the indexes created by EnsureIndexes. Missing indexes are ignored.
func DropIndexes(ctx context.Context, coll *mongo.Collection) error {
	existing, err := ListIndexNames(ctx, coll)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	for _, name := range managedIndexes {
		if !present[name] {
			continue
		}
		if _, err := coll.Indexes().DropOne(ctx, name); err != nil {
			return fmt.Errorf("failed to drop index %s: %w", name, err)
		}
	}
	return nil
}

// ListIndexNames returns the names of every index on coll.
func ListIndexNames(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list indexes on %s: %w", coll.Name(), err)
	}

	var specs []struct {
		Name string `bson:"name"`
	}
	if err := cursor.All(ctx, &specs); err != nil {
		return nil, fmt.Errorf("failed to decode indexes on %s: %w", coll.Name(), err)
	}

	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	return names, nil
}

// ManagedIndexes returns the index names EnsureIndexes maintains.
func ManagedIndexes() []string {
	return append([]string(nil), managedIndexes...)
}
