package middleware

import "strings"

// Route tags group endpoints in logs the way the public API documents them.
const (
	TagNews          = "News"
	TagSavedArticles = "Saved Articles"
	TagDigest        = "Digest"
)

// RouteTag returns the tag for a route template, or "" for infrastructure routes.
func RouteTag(route string) string {
	switch {
	case route == "/" || strings.HasPrefix(route, "/news"):
		return TagNews
	case strings.HasPrefix(route, "/saved"):
		return TagSavedArticles
	case strings.HasPrefix(route, "/digest"):
		return TagDigest
	default:
		return ""
	}
}
