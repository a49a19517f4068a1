package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"news-reader/app/config"
	"news-reader/app/driver/mongodb"
	"news-reader/app/driver/postgres/migrations"
	"news-reader/app/utils/database"
	"news-reader/app/utils/migration"
)

// schemaStore is one backend's schema lifecycle.
type schemaStore interface {
	Up(ctx context.Context) error
	Down(ctx context.Context, steps int) error
	Status(ctx context.Context, w io.Writer) error
	Close(ctx context.Context)
}

func openStore(ctx context.Context) (schemaStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		conn, err := database.NewConnection(ctx, database.DefaultConfig(cfg.DatabaseURL), appLogger)
		if err != nil {
			return nil, err
		}
		return &postgresSchema{
			conn:     conn,
			migrator: migration.NewMigrator(conn.DB(), appLogger, migrations.FS),
		}, nil

	case config.StoreBackendMongo:
		db, err := mongodb.NewConnection(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.StoreConnectTimeout, appLogger)
		if err != nil {
			return nil, err
		}
		return &mongoSchema{db: db, collection: cfg.MongoCollection}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}

type postgresSchema struct {
	conn     *database.Connection
	migrator *migration.Migrator
}

func (s *postgresSchema) Up(ctx context.Context) error {
	applied, err := s.migrator.Up(ctx)
	if err != nil {
		return err
	}
	appLogger.Info("Migrations applied", "count", applied)
	return nil
}

func (s *postgresSchema) Down(ctx context.Context, steps int) error {
	rolledBack := 0
	for i := 0; i < steps; i++ {
		ok, err := s.migrator.Down(ctx)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if !ok {
			break
		}
		rolledBack++
	}
	appLogger.Info("Migrations rolled back", "count", rolledBack)
	return nil
}

func (s *postgresSchema) Status(ctx context.Context, w io.Writer) error {
	statuses, err := s.migrator.Status(ctx)
	if err != nil {
		return err
	}
	for _, st := range statuses {
		state := "pending"
		if st.Applied {
			state = "applied " + st.Timestamp.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%03d  %-32s %s\n", st.Version, st.Name, state)
	}
	return nil
}

func (s *postgresSchema) Close(context.Context) {
	_ = s.conn.Close()
}

type mongoSchema struct {
	db         *mongodb.DB
	collection string
}

func (s *mongoSchema) Up(ctx context.Context) error {
	names, err := mongodb.EnsureIndexes(ctx, s.db.Collection(s.collection))
	if err != nil {
		return err
	}
	appLogger.Info("Indexes ensured", "collection", s.collection, "indexes", names)
	return nil
}

func (s *mongoSchema) Down(ctx context.Context, _ int) error {
	if err := mongodb.DropIndexes(ctx, s.db.Collection(s.collection)); err != nil {
		return err
	}
	appLogger.Info("Indexes dropped", "collection", s.collection)
	return nil
}

func (s *mongoSchema) Status(ctx context.Context, w io.Writer) error {
	existing, err := mongodb.ListIndexNames(ctx, s.db.Collection(s.collection))
	if err != nil {
		return err
	}
	for _, name := range mongodb.ManagedIndexes() {
		state := "missing"
		if slices.Contains(existing, name) {
			state = "present"
		}
		fmt.Fprintf(w, "%-32s %s\n", name, state)
	}
	return nil
}

func (s *mongoSchema) Close(ctx context.Context) {
	_ = s.db.Close(ctx)
}
