package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"news-reader/app/domain"
	"news-reader/app/port"
	apperrors "news-reader/app/utils/errors"
)

// NewsUsecase implements port.NewsUsecase
type NewsUsecase struct {
	newsGateway port.NewsGateway
	logger      *slog.Logger
}

// NewNewsUsecase creates a new NewsUsecase
func NewNewsUsecase(newsGateway port.NewsGateway, logger *slog.Logger) *NewsUsecase {
	return &NewsUsecase{
		newsGateway: newsGateway,
		logger:      logger.With("component", "news_usecase"),
	}
}

// FetchByCategory validates the request and fetches one page of headlines.
// The configuration check runs before category validation.
func (u *NewsUsecase) FetchByCategory(ctx context.Context, category, country string, pageSize int) (*domain.HeadlinesPage, error) {
	if !u.newsGateway.Configured() {
		u.logger.Error("news api key is not configured")
		return nil, apperrors.NewConfigError("NewsAPI configuration missing").WithCause(domain.ErrNewsAPINotConfigured)
	}

	parsed, ok := domain.ParseCategory(category)
	if !ok {
		return nil, apperrors.NewValidationError("Invalid category. Must be one of: " + domain.CategoryList()).
			WithCause(domain.ErrInvalidCategory)
	}

	if country == "" {
		country = domain.DefaultCountry
	}

	page, err := u.newsGateway.FetchTopHeadlines(ctx, domain.HeadlinesQuery{
		Category: parsed,
		Country:  strings.ToLower(country),
		PageSize: pageSize,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamRejected) {
			return nil, apperrors.NewUpstreamError("NewsAPI returned an error", err)
		}
		u.logger.Error("failed to fetch headlines", "category", parsed, "error", err)
		return nil, apperrors.Wrapf(apperrors.ErrCodeUpstreamError, err, "Error fetching news: %v", err)
	}

	page.Category = category
	return page, nil
}
