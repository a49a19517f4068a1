package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"news-reader/app/domain"
	"news-reader/app/utils/metrics"
)

const (
	backend            = "postgres"
	uniqueViolationSQL = "23505"
)

// SavedArticleRepository implements port.SavedArticleRepositoryPort on PostgreSQL
type SavedArticleRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSavedArticleRepository creates a new PostgreSQL saved-article repository
func NewSavedArticleRepository(db DatabaseIface, logger *slog.Logger) *SavedArticleRepository {
	return &SavedArticleRepository{
		db:     db,
		logger: logger.With("repository", "saved_articles"),
	}
}

const selectColumns = `id::text, title, url, category, description, date_saved`

func scanArticle(row pgx.Row) (*domain.SavedArticle, error) {
	var (
		article   domain.SavedArticle
		dateSaved time.Time
	)
	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.URL,
		&article.Category,
		&article.Description,
		&dateSaved,
	); err != nil {
		return nil, err
	}
	article.DateSaved = domain.FormatDateSaved(dateSaved)
	return &article, nil
}

// FindByURL returns the record saved under url, or nil.
func (r *SavedArticleRepository) FindByURL(ctx context.Context, url string) (*domain.SavedArticle, error) {
	query := `SELECT ` + selectColumns + ` FROM saved_articles WHERE url = $1`

	article, err := scanArticle(r.db.QueryRow(ctx, query, url))
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.RecordStoreOperation(backend, "find_by_url", nil)
		return nil, nil
	}
	metrics.RecordStoreOperation(backend, "find_by_url", err)
	if err != nil {
		return nil, fmt.Errorf("failed to find article by url: %w", err)
	}
	return article, nil
}

// Insert stores article under a fresh UUID and returns it.
func (r *SavedArticleRepository) Insert(ctx context.Context, article *domain.SavedArticle) (string, error) {
	dateSaved, err := time.Parse(domain.DateSavedLayout, article.DateSaved)
	if err != nil {
		return "", fmt.Errorf("invalid date_saved %q: %w", article.DateSaved, err)
	}

	query := `
		INSERT INTO saved_articles (id, title, url, category, description, date_saved)
		VALUES ($1, $2, $3, $4, $5, $6)`

	id := uuid.New()
	_, err = r.db.Exec(ctx, query,
		id,
		article.Title,
		article.URL,
		article.Category,
		article.Description,
		dateSaved,
	)
	metrics.RecordStoreOperation(backend, "insert", err)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationSQL {
			r.logger.Warn("duplicate url rejected by unique index", "url", article.URL)
			return "", domain.ErrArticleAlreadySaved
		}
		return "", fmt.Errorf("failed to insert article: %w", err)
	}

	return id.String(), nil
}

// List returns records newest first, filtered and limited by query.
func (r *SavedArticleRepository) List(ctx context.Context, query domain.SavedArticleQuery) ([]*domain.SavedArticle, error) {
	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString(`SELECT ` + selectColumns + ` FROM saved_articles`)
	if !query.SavedSince.IsZero() {
		args = append(args, query.SavedSince.UTC())
		sb.WriteString(fmt.Sprintf(` WHERE date_saved >= $%d`, len(args)))
	}
	sb.WriteString(` ORDER BY date_saved DESC`)
	if query.Limit > 0 {
		args = append(args, query.Limit)
		sb.WriteString(fmt.Sprintf(` LIMIT $%d`, len(args)))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		metrics.RecordStoreOperation(backend, "list", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*domain.SavedArticle, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			metrics.RecordStoreOperation(backend, "list", err)
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}
	err = rows.Err()
	metrics.RecordStoreOperation(backend, "list", err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, nil
}

// DeleteByID removes the record with the given UUID and reports how many were deleted.
func (r *SavedArticleRepository) DeleteByID(ctx context.Context, articleID string) (int64, error) {
	id, err := uuid.Parse(articleID)
	if err != nil {
		return 0, domain.ErrInvalidArticleID
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM saved_articles WHERE id = $1`, id)
	metrics.RecordStoreOperation(backend, "delete", err)
	if err != nil {
		return 0, fmt.Errorf("failed to delete article: %w", err)
	}
	return tag.RowsAffected(), nil
}

// IsValidID reports whether articleID parses as a UUID.
func (r *SavedArticleRepository) IsValidID(articleID string) bool {
	_, err := uuid.Parse(articleID)
	return err == nil
}

// Ping checks the pool.
func (r *SavedArticleRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
