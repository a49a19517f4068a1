package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"news-reader/app/domain"
	"news-reader/app/utils/metrics"
)

// Client calls the NewsAPI top-headlines endpoint
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a NewsAPI client. httpClient may be nil.
func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

type headlinesResponse struct {
	Status       string            `json:"status"`
	TotalResults *int              `json:"totalResults"`
	Articles     []articleResponse `json:"articles"`
	Code         string            `json:"code,omitempty"`
	Message      string            `json:"message,omitempty"`
}

type articleResponse struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	URL         *string         `json:"url"`
	URLToImage  *string         `json:"urlToImage"`
	PublishedAt *string         `json:"publishedAt"`
	Source      *sourceResponse `json:"source"`
}

type sourceResponse struct {
	Name *string `json:"name"`
}

// HasAPIKey reports whether an API key was configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// TopHeadlines performs one GET against the configured endpoint.
// A payload whose status is not "ok" is returned as-is; judging it is the caller's job.
func (c *Client) TopHeadlines(ctx context.Context, query domain.HeadlinesQuery) (*domain.UpstreamHeadlines, error) {
	start := time.Now()
	category := string(query.Category)

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid news api url: %w", err)
	}
	q := u.Query()
	q.Set("category", category)
	q.Set("country", strings.ToLower(query.Country))
	q.Set("pageSize", strconv.Itoa(query.UpstreamPageSize()))
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream(category, metrics.OutcomeTransport, time.Since(start).Seconds())
		// url.Error embeds the request URL, which carries the API key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		c.logger.Error("news api request failed", "category", category, "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstream(category, metrics.OutcomeHTTPStatus, time.Since(start).Seconds())
		c.logger.Warn("news api returned error status", "category", category, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var body headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.RecordUpstream(category, metrics.OutcomeDecode, time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	outcome := metrics.OutcomeOK
	if body.Status != "ok" {
		outcome = metrics.OutcomeStatusNotOK
		c.logger.Warn("news api payload not ok", "category", category, "code", body.Code, "message", body.Message)
	}
	metrics.RecordUpstream(category, outcome, time.Since(start).Seconds())

	return body.toDomain(), nil
}

func (r headlinesResponse) toDomain() *domain.UpstreamHeadlines {
	out := &domain.UpstreamHeadlines{
		Status:   r.Status,
		Articles: make([]domain.UpstreamArticle, 0, len(r.Articles)),
	}
	if r.TotalResults != nil {
		out.TotalResults = *r.TotalResults
	}
	for _, a := range r.Articles {
		article := domain.UpstreamArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
			PublishedAt: a.PublishedAt,
		}
		if a.Source != nil {
			article.SourceName = a.Source.Name
		}
		out.Articles = append(out.Articles, article)
	}
	return out
}
