package domain

import "errors"

// News errors
var (
	ErrNewsAPINotConfigured = errors.New("news api key not configured")
	ErrInvalidCategory      = errors.New("invalid news category")
	ErrInvalidPageSize      = errors.New("invalid page size")
	ErrUpstreamRejected     = errors.New("news api returned a non-ok status")
)

// Saved-article errors
var (
	ErrArticleAlreadySaved = errors.New("article already saved")
	ErrArticleNotFound     = errors.New("article not found")
	ErrInvalidArticleID    = errors.New("invalid article id")
	ErrMissingField        = errors.New("required field missing")
)
