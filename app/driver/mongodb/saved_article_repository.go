package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"news-reader/app/domain"
	"news-reader/app/utils/metrics"
)

const backend = "mongo"

// SavedArticleRepository implements port.SavedArticleRepositoryPort on a mongo collection
type SavedArticleRepository struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewSavedArticleRepository creates a repository over coll
func NewSavedArticleRepository(coll *mongo.Collection, logger *slog.Logger) *SavedArticleRepository {
	return &SavedArticleRepository{
		coll:   coll,
		logger: logger.With("repository", "saved_articles"),
	}
}

type savedArticleDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	URL         string             `bson:"url"`
	Category    string             `bson:"category"`
	Description string             `bson:"description"`
	DateSaved   string             `bson:"date_saved"`
}

func (d *savedArticleDocument) toDomain() *domain.SavedArticle {
	if d == nil {
		return nil
	}
	return &domain.SavedArticle{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		URL:         d.URL,
		Category:    d.Category,
		Description: d.Description,
		DateSaved:   d.DateSaved,
	}
}

// FindByURL returns the record saved under url, or nil.
func (r *SavedArticleRepository) FindByURL(ctx context.Context, url string) (*domain.SavedArticle, error) {
	var doc savedArticleDocument
	err := r.coll.FindOne(ctx, bson.M{"url": url}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		metrics.RecordStoreOperation(backend, "find_by_url", nil)
		return nil, nil
	}
	metrics.RecordStoreOperation(backend, "find_by_url", err)
	if err != nil {
		return nil, fmt.Errorf("failed to find article by url: %w", err)
	}
	return doc.toDomain(), nil
}

// Insert stores article and returns its hex ObjectID.
func (r *SavedArticleRepository) Insert(ctx context.Context, article *domain.SavedArticle) (string, error) {
	doc := savedArticleDocument{
		ID:          primitive.NewObjectID(),
		Title:       article.Title,
		URL:         article.URL,
		Category:    article.Category,
		Description: article.Description,
		DateSaved:   article.DateSaved,
	}

	_, err := r.coll.InsertOne(ctx, doc)
	metrics.RecordStoreOperation(backend, "insert", err)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("duplicate url rejected by unique index", "url", article.URL)
			return "", domain.ErrArticleAlreadySaved
		}
		return "", fmt.Errorf("failed to insert article: %w", err)
	}

	return doc.ID.Hex(), nil
}

// List returns records newest first, filtered and limited by query.
func (r *SavedArticleRepository) List(ctx context.Context, query domain.SavedArticleQuery) ([]*domain.SavedArticle, error) {
	filter := bson.M{}
	if !query.SavedSince.IsZero() {
		filter["date_saved"] = bson.M{"$gte": domain.FormatDateSaved(query.SavedSince)}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date_saved", Value: -1}})
	if query.Limit > 0 {
		opts.SetLimit(int64(query.Limit))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		metrics.RecordStoreOperation(backend, "list", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []savedArticleDocument
	err = cursor.All(ctx, &docs)
	metrics.RecordStoreOperation(backend, "list", err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}

	articles := make([]*domain.SavedArticle, 0, len(docs))
	for i := range docs {
		articles = append(articles, docs[i].toDomain())
	}
	return articles, nil
}

// DeleteByID removes the record with the given hex id and reports how many were deleted.
func (r *SavedArticleRepository) DeleteByID(ctx context.Context, articleID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return 0, domain.ErrInvalidArticleID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	metrics.RecordStoreOperation(backend, "delete", err)
	if err != nil {
		return 0, fmt.Errorf("failed to delete article: %w", err)
	}
	return res.DeletedCount, nil
}

// IsValidID reports whether articleID is a 24-character hex ObjectID.
func (r *SavedArticleRepository) IsValidID(articleID string) bool {
	return primitive.IsValidObjectID(articleID)
}

// Ping checks the deployment behind the collection.
func (r *SavedArticleRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
