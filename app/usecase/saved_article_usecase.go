package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"news-reader/app/domain"
	"news-reader/app/port"
	apperrors "news-reader/app/utils/errors"
)

// SavedArticleUsecase implements port.SavedArticleUsecase
type SavedArticleUsecase struct {
	gateway port.SavedArticleGateway
	logger  *slog.Logger
	now     func() time.Time
}

// NewSavedArticleUsecase creates a new SavedArticleUsecase
func NewSavedArticleUsecase(gateway port.SavedArticleGateway, logger *slog.Logger) *SavedArticleUsecase {
	return &SavedArticleUsecase{
		gateway: gateway,
		logger:  logger.With("component", "saved_article_usecase"),
		now:     time.Now,
	}
}

// WithClock replaces the time source.
func (u *SavedArticleUsecase) WithClock(now func() time.Time) *SavedArticleUsecase {
	u.now = now
	return u
}

// Save stores a new article unless its url was saved before.
func (u *SavedArticleUsecase) Save(ctx context.Context, req domain.SaveArticleRequest) (string, error) {
	article, err := domain.NewSavedArticle(req, u.now())
	if err != nil {
		return "", apperrors.NewValidationError(err.Error()).WithCause(err)
	}

	existing, err := u.gateway.FindByURL(ctx, article.URL)
	if err != nil {
		return "", apperrors.NewDatabaseError(err)
	}
	if existing != nil {
		u.logger.Info("article already saved", "url", article.URL, "article_id", existing.ID)
		return "", apperrors.New(apperrors.ErrCodeConflict, "Article already saved").
			WithContext("article_id", existing.ID)
	}

	id, err := u.gateway.Create(ctx, article)
	if err != nil {
		if errors.Is(err, domain.ErrArticleAlreadySaved) {
			return "", apperrors.Wrap(apperrors.ErrCodeConflict, "Article already saved", err)
		}
		return "", apperrors.NewDatabaseError(err)
	}

	return id, nil
}

// List returns every saved article newest first.
func (u *SavedArticleUsecase) List(ctx context.Context) (*domain.SavedArticleList, error) {
	articles, err := u.gateway.List(ctx, domain.SavedArticleQuery{})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return domain.NewSavedArticleList(articles), nil
}

// Delete removes one article by identifier.
func (u *SavedArticleUsecase) Delete(ctx context.Context, articleID string) error {
	err := u.gateway.Delete(ctx, articleID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidArticleID):
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, "Invalid article ID", err)
	case errors.Is(err, domain.ErrArticleNotFound):
		return apperrors.NewNotFound("Article").WithCause(err).WithContext("article_id", articleID)
	default:
		return apperrors.NewDatabaseError(err)
	}
}

// Digest returns up to five articles saved in the last 24 hours.
func (u *SavedArticleUsecase) Digest(ctx context.Context) (*domain.Digest, error) {
	now := u.now()

	articles, err := u.gateway.List(ctx, domain.DigestQuery(now))
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return domain.NewDigest(now, articles), nil
}
