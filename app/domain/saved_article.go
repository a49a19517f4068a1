package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateSavedLayout is fixed width so string order matches time order.
const DateSavedLayout = "2006-01-02T15:04:05.000000Z"

// DigestDateLayout renders the digest day.
const DigestDateLayout = "2006-01-02"

// Digest window and size
const (
	DigestWindow = 24 * time.Hour
	DigestLimit  = 5
)

// SavedArticle is a user-saved article
type SavedArticle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Description string `json:"description"`
	DateSaved   string `json:"date_saved"`
}

// SaveArticleRequest carries the save form fields
type SaveArticleRequest struct {
	Title       string `form:"title" validate:"required"`
	URL         string `form:"url" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Description string `form:"description"`
}

// NewSavedArticle builds an unsaved record stamped with now in UTC.
func NewSavedArticle(req SaveArticleRequest, now time.Time) (*SavedArticle, error) {
	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.URL == "" {
		missing = append(missing, "url")
	}
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	return &SavedArticle{
		Title:       req.Title,
		URL:         req.URL,
		Category:    req.Category,
		Description: req.Description,
		DateSaved:   FormatDateSaved(now),
	}, nil
}

// FormatDateSaved renders t in UTC using DateSavedLayout.
func FormatDateSaved(t time.Time) string {
	return t.UTC().Format(DateSavedLayout)
}

// SavedArticleQuery filters a listing. A zero SavedSince means no lower bound,
// a zero Limit means no limit. Results are always newest first.
type SavedArticleQuery struct {
	SavedSince time.Time
	Limit      int
}

// SavedArticleList is the list response
type SavedArticleList struct {
	Count    int             `json:"count"`
	Articles []*SavedArticle `json:"articles"`
}

// NewSavedArticleList never returns a nil Articles slice.
func NewSavedArticleList(articles []*SavedArticle) *SavedArticleList {
	if articles == nil {
		articles = []*SavedArticle{}
	}
	return &SavedArticleList{Count: len(articles), Articles: articles}
}

// Digest is the last-24-hours view
type Digest struct {
	Date     string          `json:"date"`
	Count    int             `json:"count"`
	Articles []*SavedArticle `json:"articles"`
}

// DigestQuery returns the listing query for a digest taken at now.
func DigestQuery(now time.Time) SavedArticleQuery {
	return SavedArticleQuery{
		SavedSince: now.UTC().Add(-DigestWindow),
		Limit:      DigestLimit,
	}
}

// NewDigest builds a digest dated at now's UTC day.
func NewDigest(now time.Time, articles []*SavedArticle) *Digest {
	list := NewSavedArticleList(articles)
	return &Digest{
		Date:     now.UTC().Format(DigestDateLayout),
		Count:    list.Count,
		Articles: list.Articles,
	}
}
