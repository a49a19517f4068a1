package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"news-reader/app/config"
	"news-reader/app/driver/mongodb"
	"news-reader/app/driver/newsapi"
	"news-reader/app/driver/postgres"
	"news-reader/app/gateway"
	"news-reader/app/port"
	"news-reader/app/rest"
	"news-reader/app/usecase"
	"news-reader/app/utils/logger"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers; exactly one store is set
	MongoDB    *mongodb.DB
	PostgresDB *postgres.DB
	NewsClient *newsapi.Client

	// Gateways
	NewsGateway         port.NewsGateway
	SavedArticleGateway port.SavedArticleGateway

	// Usecases
	NewsUsecase         port.NewsUsecase
	SavedArticleUsecase port.SavedArticleUsecase

	enableTracing bool
}

// Option customizes a Container
type Option func(*Container)

// WithTracing installs the echo tracing middleware
func WithTracing(enabled bool) Option {
	return func(c *Container) { c.enableTracing = enabled }
}

// NewContainer opens the configured store and wires every layer above it.
func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: log,
	}
	for _, opt := range opts {
		opt(container)
	}

	repo, err := container.openStore(ctx)
	if err != nil {
		return nil, err
	}

	container.NewsClient = newsapi.NewClient(cfg.NewsAPIURL, cfg.NewsAPIKey, nil, logger.UpstreamLogger(log))
	if !container.NewsClient.HasAPIKey() {
		log.Warn("NEWS_API_KEY is not set; /news requests will fail until it is configured")
	}

	container.NewsGateway = gateway.NewNewsGateway(container.NewsClient, log)
	container.SavedArticleGateway = gateway.NewSavedArticleGateway(repo, log)

	container.NewsUsecase = usecase.NewNewsUsecase(container.NewsGateway, log)
	container.SavedArticleUsecase = usecase.NewSavedArticleUsecase(container.SavedArticleGateway, log)

	log.Info("Container initialized", "store_backend", cfg.StoreBackend)

	return container, nil
}

func (c *Container) openStore(ctx context.Context) (port.SavedArticleRepositoryPort, error) {
	cfg := c.Config
	storeLogger := logger.StoreLogger(c.Logger, cfg.StoreBackend)

	switch cfg.StoreBackend {
	case config.StoreBackendMongo:
		db, err := mongodb.NewConnection(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.StoreConnectTimeout, storeLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		c.MongoDB = db

		coll := db.Collection(cfg.MongoCollection)
		if cfg.EnsureIndexes {
			names, err := mongodb.EnsureIndexes(ctx, coll)
			if err != nil {
				_ = db.Close(ctx)
				return nil, err
			}
			storeLogger.Info("indexes ensured", "collection", cfg.MongoCollection, "indexes", names)
		}
		return mongodb.NewSavedArticleRepository(coll, storeLogger), nil

	case config.StoreBackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.StoreConnectTimeout, storeLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		c.PostgresDB = db
		return postgres.NewSavedArticleRepository(db.Pool(), storeLogger), nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:              c.Logger,
		NewsUsecase:         c.NewsUsecase,
		SavedArticleUsecase: c.SavedArticleUsecase,
		HealthChecker:       c.SavedArticleGateway,
		CORSAllowOrigins:    c.Config.CORSAllowOrigins,
		EnableMetrics:       c.Config.EnableMetrics,
		EnableTracing:       c.enableTracing,
		ServiceName:         "news-reader",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close(ctx context.Context) error {
	var err error
	if c.MongoDB != nil {
		err = c.MongoDB.Close(ctx)
	}
	if c.PostgresDB != nil {
		c.PostgresDB.Close()
	}

	c.Logger.Info("Container closed")
	return err
}
