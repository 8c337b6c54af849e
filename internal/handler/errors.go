package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawarnirmal/portfolio/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MapError maps domain errors to HTTP status codes and error codes. Unknown
// errors become a 500 with a generic message.
func MapError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	case errors.Is(err, domain.ErrInvalidMessage):
		return http.StatusUnprocessableEntity, "INVALID_MESSAGE", message
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "RATE_LIMITED", message
	case errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, "MESSAGE_NOT_FOUND", message
	case errors.Is(err, domain.ErrAlreadySent):
		return http.StatusConflict, "ALREADY_SENT", message
	case errors.Is(err, domain.ErrLinkNotFound):
		return http.StatusNotFound, "LINK_NOT_FOUND", message
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", message
	case errors.Is(err, domain.ErrInvalidContent):
		return http.StatusBadRequest, "INVALID_CONTENT", message
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "UNAVAILABLE", "request cancelled"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

// respondError writes a standard error response.
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondDomainError maps err and writes it as JSON.
func respondDomainError(c *gin.Context, err error) {
	status, code, message := MapError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respondError(c, status, code, message)
}
