package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"news-reader/app/domain"
	"news-reader/app/port"
	"news-reader/app/utils/dateformat"
)

// NewsGateway implements port.NewsGateway.
// It reshapes raw NewsAPI payloads into domain.HeadlinesPage.
type NewsGateway struct {
	client port.NewsClientPort
	logger *slog.Logger
}

// NewNewsGateway creates a new NewsGateway instance
func NewNewsGateway(client port.NewsClientPort, logger *slog.Logger) *NewsGateway {
	return &NewsGateway{
		client: client,
		logger: logger.With("component", "news_gateway"),
	}
}

// Configured reports whether the upstream API key is present.
func (g *NewsGateway) Configured() bool {
	return g.client.HasAPIKey()
}

// FetchTopHeadlines fetches one page of headlines and applies display defaults.
func (g *NewsGateway) FetchTopHeadlines(ctx context.Context, query domain.HeadlinesQuery) (*domain.HeadlinesPage, error) {
	raw, err := g.client.TopHeadlines(ctx, query)
	if err != nil {
		return nil, err
	}

	if raw.Status != "ok" {
		g.logger.Warn("upstream rejected headlines request",
			"category", query.Category,
			"status", raw.Status)
		return nil, fmt.Errorf("%w: status %q", domain.ErrUpstreamRejected, raw.Status)
	}

	articles := make([]domain.NewsArticle, 0, len(raw.Articles))
	for _, a := range raw.Articles {
		articles = append(articles, toNewsArticle(a))
	}

	g.logger.Info("headlines fetched",
		"category", query.Category,
		"count", len(articles),
		"total_results", raw.TotalResults)

	return &domain.HeadlinesPage{
		Category:     string(query.Category),
		TotalResults: raw.TotalResults,
		Articles:     articles,
	}, nil
}

func toNewsArticle(a domain.UpstreamArticle) domain.NewsArticle {
	return domain.NewsArticle{
		Title:       domain.StringOr(a.Title, domain.DefaultTitle),
		Description: domain.StringOr(a.Description, domain.DefaultDescription),
		URL:         domain.StringOr(a.URL, ""),
		URLToImage:  domain.StringOr(a.URLToImage, ""),
		PublishedAt: dateformat.LongDate(a.PublishedAt),
		Source:      domain.StringOr(a.SourceName, domain.DefaultSource),
	}
}
