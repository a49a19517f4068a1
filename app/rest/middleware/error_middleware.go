package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "news-reader/app/utils/errors"
	"news-reader/app/utils/logger"
	"news-reader/app/utils/validator"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// CustomHTTPErrorHandler renders errors as ErrorResponse.
//
// AppError keeps its code, status and message. Validation failures become 422.
// echo.HTTPError keeps its status; 5xx messages are replaced. Anything else
// becomes a 500 INTERNAL_ERROR.
func CustomHTTPErrorHandler(base *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()
		log := logger.FromContext(ctx, base)

		var (
			status int
			body   ErrorResponse
		)

		appErr, isAppErr := apperrors.AsAppError(err)
		var validationErr *validator.ValidationError
		var httpErr *echo.HTTPError
		switch {
		case isAppErr:
			status = appErr.StatusCode
			body = ErrorResponse{Detail: appErr.Message, Code: string(appErr.Code)}
			if status >= http.StatusInternalServerError {
				log.ErrorContext(ctx, "application error",
					"code", appErr.Code,
					"message", appErr.Message,
					"cause", appErr.Cause,
					"context", appErr.Context)
			}

		case errors.As(err, &validationErr):
			status = http.StatusUnprocessableEntity
			body = ErrorResponse{Detail: validationErr.Error(), Code: string(apperrors.ErrCodeValidationFailed)}

		case errors.As(err, &httpErr):
			status = httpErr.Code
			detail := http.StatusText(status)
			if m, ok := httpErr.Message.(string); ok && m != "" {
				detail = m
			} else if httpErr.Message != nil {
				detail = fmt.Sprint(httpErr.Message)
			}
			if status >= http.StatusInternalServerError {
				log.ErrorContext(ctx, "http error", "status", status, "error", httpErr)
				detail = "internal server error"
			}
			body = ErrorResponse{Detail: detail, Code: httpErrorCode(status)}

		default:
			internal := apperrors.NewInternalError(err)
			status = internal.StatusCode
			body = ErrorResponse{Detail: internal.Message, Code: string(internal.Code)}
			log.ErrorContext(ctx, "unhandled error", "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.ErrorContext(ctx, "failed to send error response", "error", err)
		}
	}
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return string(apperrors.ErrCodeNotFound)
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return string(apperrors.ErrCodeInvalidInput)
	case http.StatusServiceUnavailable:
		return string(apperrors.ErrCodeServiceUnavailable)
	default:
		if status >= http.StatusInternalServerError {
			return string(apperrors.ErrCodeInternalError)
		}
		return "HTTP_ERROR"
	}
}
