package domain

// Headline query defaults
const (
	DefaultCountry  = "us"
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Display defaults for fields NewsAPI leaves out or sends as null
const (
	DefaultTitle       = "No title"
	DefaultDescription = "No description"
	DefaultSource      = "Unknown source"
)

// HeadlinesQuery is a validated top-headlines request
type HeadlinesQuery struct {
	Category Category
	Country  string
	PageSize int
}

// UpstreamPageSize caps the page size sent to NewsAPI.
func (q HeadlinesQuery) UpstreamPageSize() int {
	return min(q.PageSize, MaxPageSize)
}

// UpstreamArticle is a NewsAPI article as received; nil means absent or null.
type UpstreamArticle struct {
	Title       *string
	Description *string
	URL         *string
	URLToImage  *string
	PublishedAt *string
	SourceName  *string
}

// UpstreamHeadlines is a decoded NewsAPI top-headlines payload
type UpstreamHeadlines struct {
	Status       string
	TotalResults int
	Articles     []UpstreamArticle
}

// NewsArticle is the reshaped article returned to callers
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
}

// HeadlinesPage is the response for one category fetch
type HeadlinesPage struct {
	Category     string        `json:"category"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}

// StringOr dereferences s, falling back to def when s is nil.
func StringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
