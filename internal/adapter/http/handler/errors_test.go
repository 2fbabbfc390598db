package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/naza-official/bart-one-shot-classification-service/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
	}{
		{
			name:               "job not found",
			err:                usecase.ErrJobNotFound,
			expectedStatusCode: http.StatusNotFound,
			expectedCode:       "NOT_FOUND",
		},
		{
			name:               "invalid request",
			err:                usecase.ErrInvalidRequest,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
		},
		{
			name:               "batch too large",
			err:                usecase.ErrBatchTooLarge,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "BATCH_TOO_LARGE",
		},
		{
			name:               "classifier unavailable",
			err:                usecase.ErrClassifierUnavailable,
			expectedStatusCode: http.StatusBadGateway,
			expectedCode:       "UPSTREAM_UNAVAILABLE",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}

	t.Run("wrapped errors keep their mapping and detail", func(t *testing.T) {
		err := fmt.Errorf("%w: got 101 titles, maximum is 100", usecase.ErrBatchTooLarge)

		httpErr := MapUsecaseError(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
		assert.Equal(t, "BATCH_TOO_LARGE", httpErr.Code)
		assert.Contains(t, httpErr.Message, "101 titles")
	})
}

func TestHandleUsecaseError(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		HandleUsecaseError(c, usecase.ErrJobNotFound)
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
	assert.Contains(t, w.Body.String(), "job not found")
}

func TestHandleInvalidRequest(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		HandleInvalidRequest(c, "titles are required")
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	assert.Contains(t, w.Body.String(), "titles are required")
}
