package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExtractUUIDParam(t *testing.T) {
	t.Run("parses a valid uuid", func(t *testing.T) {
		want := uuid.New()
		var got uuid.UUID
		var gotErr error

		router := gin.New()
		router.GET("/jobs/:id", func(c *gin.Context) {
			got, gotErr = ExtractUUIDParam(c, "id")
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest("GET", "/jobs/"+want.String(), nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.NoError(t, gotErr)
		assert.Equal(t, want, got)
	})

	t.Run("rejects a malformed uuid", func(t *testing.T) {
		var gotErr error

		router := gin.New()
		router.GET("/jobs/:id", func(c *gin.Context) {
			_, gotErr = ExtractUUIDParam(c, "id")
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest("GET", "/jobs/not-a-uuid", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Error(t, gotErr)
		assert.Contains(t, gotErr.Error(), "invalid id")
	})
}
