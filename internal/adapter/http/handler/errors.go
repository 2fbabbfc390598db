package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naza-official/bart-one-shot-classification-service/internal/usecase"
)

// HTTPError represents a structured error response
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It provides consistent error handling across all handlers.
func MapUsecaseError(err error) HTTPError {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return HTTPError{
			StatusCode: http.StatusNotFound,
			Code:       "NOT_FOUND",
			Message:    "job not found",
		}
	case errors.Is(err, usecase.ErrBatchTooLarge):
		return HTTPError{
			StatusCode: http.StatusBadRequest,
			Code:       "BATCH_TOO_LARGE",
			Message:    err.Error(),
		}
	case errors.Is(err, usecase.ErrInvalidRequest):
		return HTTPError{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    err.Error(),
		}
	case errors.Is(err, usecase.ErrClassifierUnavailable):
		return HTTPError{
			StatusCode: http.StatusBadGateway,
			Code:       "UPSTREAM_UNAVAILABLE",
			Message:    "classifier unavailable",
		}
	default:
		return HTTPError{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP
// response.
func HandleUsecaseError(c *gin.Context, err error) {
	httpErr := MapUsecaseError(err)
	respondError(c, httpErr.StatusCode, httpErr.Code, httpErr.Message)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}
