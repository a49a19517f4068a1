package port

//go:generate mockgen -source=news_port.go -destination=../mocks/mock_news_port.go

import (
	"context"

	"news-reader/app/domain"
)

// NewsUsecase defines the headlines business logic interface
type NewsUsecase interface {
	FetchByCategory(ctx context.Context, category, country string, pageSize int) (*domain.HeadlinesPage, error)
}

// NewsGateway defines the headlines gateway interface
type NewsGateway interface {
	Configured() bool
	FetchTopHeadlines(ctx context.Context, query domain.HeadlinesQuery) (*domain.HeadlinesPage, error)
}

// NewsClientPort defines the raw NewsAPI access interface
type NewsClientPort interface {
	HasAPIKey() bool
	TopHeadlines(ctx context.Context, query domain.HeadlinesQuery) (*domain.UpstreamHeadlines, error)
}
