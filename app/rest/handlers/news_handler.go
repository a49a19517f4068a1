package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-reader/app/domain"
	"news-reader/app/port"
	apperrors "news-reader/app/utils/errors"
)

// MessageResponse is the body of endpoints that only acknowledge
type MessageResponse struct {
	Message string `json:"message"`
}

// NewsHandler serves top headlines
type NewsHandler struct {
	newsUsecase port.NewsUsecase
	logger      *slog.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsUsecase port.NewsUsecase, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{
		newsUsecase: newsUsecase,
		logger:      logger,
	}
}

// Welcome returns the API greeting
// @Summary Welcome message
// @Tags News
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *NewsHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Welcome to News Reader API!"})
}

// GetNewsByCategory returns top headlines for a category
// @Summary Top headlines by category
// @Tags News
// @Produce json
// @Param category path string true "business, entertainment, general, health, science, sports or technology"
// @Param country query string false "two-letter country code" default(us)
// @Param page_size query int false "number of articles" default(10)
// @Success 200 {object} domain.HeadlinesPage
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /news/{category} [get]
func (h *NewsHandler) GetNewsByCategory(c echo.Context) error {
	category := c.Param("category")
	country := c.QueryParam("country")

	pageSize := domain.DefaultPageSize
	if err := echo.QueryParamsBinder(c).Int("page_size", &pageSize).BindError(); err != nil {
		return apperrors.NewValidationError("page_size must be an integer").
			WithCause(fmt.Errorf("%w: %v", domain.ErrInvalidPageSize, err))
	}

	page, err := h.newsUsecase.FetchByCategory(c.Request().Context(), category, country, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}
