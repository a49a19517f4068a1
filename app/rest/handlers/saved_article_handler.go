package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-reader/app/domain"
	"news-reader/app/port"
	apperrors "news-reader/app/utils/errors"
	"news-reader/app/utils/validator"
)

// SaveArticleResponse is returned after a successful save
type SaveArticleResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// SavedArticleHandler serves the saved-article collection and the digest
type SavedArticleHandler struct {
	savedUsecase port.SavedArticleUsecase
	logger       *slog.Logger
}

// NewSavedArticleHandler creates a new saved-article handler
func NewSavedArticleHandler(savedUsecase port.SavedArticleUsecase, logger *slog.Logger) *SavedArticleHandler {
	return &SavedArticleHandler{
		savedUsecase: savedUsecase,
		logger:       logger,
	}
}

// SaveArticle stores an article posted as form fields
// @Summary Save an article
// @Tags Saved Articles
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "title"
// @Param url formData string true "url"
// @Param category formData string true "category"
// @Param description formData string false "description"
// @Success 200 {object} SaveArticleResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /saved [post]
func (h *SavedArticleHandler) SaveArticle(c echo.Context) error {
	var req domain.SaveArticleRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return apperrors.NewValidationError("invalid form body").WithCause(err)
	}

	if err := c.Validate(&req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return apperrors.NewValidationError(verr.Error()).WithCause(err)
		}
		return err
	}

	id, err := h.savedUsecase.Save(c.Request().Context(), req)
	if err != nil {
		return err
	}

	h.logger.InfoContext(c.Request().Context(), "article saved", "id", id, "category", req.Category)

	return c.JSON(http.StatusOK, SaveArticleResponse{
		Message: "Article saved successfully!",
		ID:      id,
	})
}

// ListSavedArticles returns every saved article, newest first
// @Summary List saved articles
// @Tags Saved Articles
// @Produce json
// @Success 200 {object} domain.SavedArticleList
// @Failure 500 {object} middleware.ErrorResponse
// @Router /saved [get]
func (h *SavedArticleHandler) ListSavedArticles(c echo.Context) error {
	list, err := h.savedUsecase.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// DeleteSavedArticle removes a saved article by id
// @Summary Delete a saved article
// @Tags Saved Articles
// @Produce json
// @Param article_id path string true "article id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /saved/{article_id} [delete]
func (h *SavedArticleHandler) DeleteSavedArticle(c echo.Context) error {
	id := c.Param("article_id")

	if err := h.savedUsecase.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.logger.InfoContext(c.Request().Context(), "article deleted", "id", id)

	return c.JSON(http.StatusOK, MessageResponse{Message: "Article deleted successfully!"})
}

// GetDigest returns up to five articles saved in the last 24 hours
// @Summary Daily digest
// @Tags Digest
// @Produce json
// @Success 200 {object} domain.Digest
// @Failure 500 {object} middleware.ErrorResponse
// @Router /digest [get]
func (h *SavedArticleHandler) GetDigest(c echo.Context) error {
	digest, err := h.savedUsecase.Digest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, digest)
}
