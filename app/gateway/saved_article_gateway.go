package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news-reader/app/domain"
	"news-reader/app/port"
	"news-reader/app/utils/logger"
)

// SavedArticleGateway implements port.SavedArticleGateway interface
// It acts as an anti-corruption layer between the domain and the store driver
type SavedArticleGateway struct {
	repo   port.SavedArticleRepositoryPort
	logger *slog.Logger
}

// NewSavedArticleGateway creates a new SavedArticleGateway instance
func NewSavedArticleGateway(repo port.SavedArticleRepositoryPort, log *slog.Logger) *SavedArticleGateway {
	return &SavedArticleGateway{
		repo:   repo,
		logger: log.With("component", "saved_article_gateway"),
	}
}

// FindByURL looks up a saved article by url; nil when absent.
func (g *SavedArticleGateway) FindByURL(ctx context.Context, url string) (*domain.SavedArticle, error) {
	article, err := g.repo.FindByURL(ctx, url)
	if err != nil {
		logger.LogError(g.logger, err, "failed to look up article by url", "url", url)
		return nil, fmt.Errorf("failed to look up article: %w", err)
	}
	return article, nil
}

// Create stores article and returns the new identifier.
func (g *SavedArticleGateway) Create(ctx context.Context, article *domain.SavedArticle) (string, error) {
	id, err := g.repo.Insert(ctx, article)
	if err != nil {
		logger.LogError(g.logger, err, "failed to save article", "url", article.URL)
		return "", fmt.Errorf("failed to save article: %w", err)
	}

	g.logger.Info("article saved", "article_id", id, "url", article.URL)
	return id, nil
}

// List returns saved articles newest first.
func (g *SavedArticleGateway) List(ctx context.Context, query domain.SavedArticleQuery) ([]*domain.SavedArticle, error) {
	start := time.Now()
	articles, err := g.repo.List(ctx, query)
	if err != nil {
		logger.LogError(g.logger, err, "failed to list articles")
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	if articles == nil {
		articles = []*domain.SavedArticle{}
	}

	logger.LogDuration(g.logger, start, "list_saved_articles", "count", len(articles), "limit", query.Limit)
	return articles, nil
}

// Delete removes one article; a malformed id or a miss is reported as a domain error.
func (g *SavedArticleGateway) Delete(ctx context.Context, articleID string) error {
	if !g.repo.IsValidID(articleID) {
		return domain.ErrInvalidArticleID
	}

	deleted, err := g.repo.DeleteByID(ctx, articleID)
	if err != nil {
		logger.LogError(g.logger, err, "failed to delete article", "article_id", articleID)
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if deleted == 0 {
		return domain.ErrArticleNotFound
	}

	g.logger.Info("article deleted", "article_id", articleID)
	return nil
}

// Ping checks the store.
func (g *SavedArticleGateway) Ping(ctx context.Context) error {
	return g.repo.Ping(ctx)
}
