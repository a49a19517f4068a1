package port

//go:generate mockgen -source=saved_article_port.go -destination=../mocks/mock_saved_article_port.go

import (
	"context"

	"news-reader/app/domain"
)

// SavedArticleUsecase defines saved-article business logic interface
type SavedArticleUsecase interface {
	Save(ctx context.Context, req domain.SaveArticleRequest) (string, error)
	List(ctx context.Context) (*domain.SavedArticleList, error)
	Delete(ctx context.Context, articleID string) error
	Digest(ctx context.Context) (*domain.Digest, error)
}

// SavedArticleGateway defines saved-article gateway interface
type SavedArticleGateway interface {
	FindByURL(ctx context.Context, url string) (*domain.SavedArticle, error)
	Create(ctx context.Context, article *domain.SavedArticle) (string, error)
	List(ctx context.Context, query domain.SavedArticleQuery) ([]*domain.SavedArticle, error)
	Delete(ctx context.Context, articleID string) error
	Ping(ctx context.Context) error
}

// SavedArticleRepositoryPort defines saved-article data access interface.
// FindByURL returns (nil, nil) when nothing matches.
type SavedArticleRepositoryPort interface {
	FindByURL(ctx context.Context, url string) (*domain.SavedArticle, error)
	Insert(ctx context.Context, article *domain.SavedArticle) (string, error)
	List(ctx context.Context, query domain.SavedArticleQuery) ([]*domain.SavedArticle, error)
	DeleteByID(ctx context.Context, articleID string) (int64, error)
	IsValidID(articleID string) bool
	Ping(ctx context.Context) error
}

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}
