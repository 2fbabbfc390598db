package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/entity"
	"github.com/naza-official/bart-one-shot-classification-service/internal/usecase"
)

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJobHandler_GetJob(t *testing.T) {
	t.Run("returns status view", func(t *testing.T) {
		id := uuid.New()
		started := time.Now().UTC()
		duration := 1.5
		mockUC := new(MockClassificationUsecase)
		mockUC.On("GetStatus", id).Return(&usecase.JobStatusOutput{
			Status:     string(entity.JobStatusProcessing),
			CreatedAt:  started,
			Progress:   50,
			Total:      2,
			Categories: []string{"X", "Y"},
			StartedAt:  &started,
			Duration:   &duration,
		}, nil)

		router := gin.New()
		router.GET("/jobs/:id", NewJobHandler(mockUC).GetJob)

		w := getPath(router, "/jobs/"+id.String())

		assert.Equal(t, http.StatusOK, w.Code)

		var body usecase.JobStatusOutput
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "processing", body.Status)
		assert.Equal(t, 50.0, body.Progress)
		assert.Equal(t, 2, body.Total)
		assert.NotNil(t, body.StartedAt)
		assert.Nil(t, body.CompletedAt)
	})

	t.Run("unknown job", func(t *testing.T) {
		id := uuid.New()
		mockUC := new(MockClassificationUsecase)
		mockUC.On("GetStatus", id).Return(nil, usecase.ErrJobNotFound)

		router := gin.New()
		router.GET("/jobs/:id", NewJobHandler(mockUC).GetJob)

		w := getPath(router, "/jobs/"+id.String())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("invalid id", func(t *testing.T) {
		mockUC := new(MockClassificationUsecase)
		router := gin.New()
		router.GET("/jobs/:id", NewJobHandler(mockUC).GetJob)

		w := getPath(router, "/jobs/not-a-uuid")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "GetStatus")
	})
}

func TestJobHandler_GetJobResults(t *testing.T) {
	t.Run("returns partial results while processing", func(t *testing.T) {
		id := uuid.New()
		mockUC := new(MockClassificationUsecase)
		mockUC.On("GetResults", id).Return(&usecase.JobResultsOutput{
			JobID: id.String(),
			Results: []*entity.Result{
				{Title: "a", Predicted: "X", Scores: map[string]float64{"X": 0.8, "Y": 0.2}},
			},
			Total:      3,
			Categories: []string{"X", "Y"},
		}, nil)

		router := gin.New()
		router.GET("/jobs/:id/results", NewJobHandler(mockUC).GetJobResults)

		w := getPath(router, "/jobs/"+id.String()+"/results")

		assert.Equal(t, http.StatusOK, w.Code)

		var body usecase.JobResultsOutput
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, id.String(), body.JobID)
		assert.Equal(t, 3, body.Total)
		require.Len(t, body.Results, 1)
		assert.Equal(t, "X", body.Results[0].Predicted)
	})

	t.Run("unknown job", func(t *testing.T) {
		id := uuid.New()
		mockUC := new(MockClassificationUsecase)
		mockUC.On("GetResults", id).Return(nil, usecase.ErrJobNotFound)

		router := gin.New()
		router.GET("/jobs/:id/results", NewJobHandler(mockUC).GetJobResults)

		w := getPath(router, "/jobs/"+id.String()+"/results")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestJobHandler_GetJobLog(t *testing.T) {
	t.Run("returns joined log", func(t *testing.T) {
		id := uuid.New()
		mockUC := new(MockClassificationUsecase)
		mockUC.On("GetLog", id).Return(&usecase.JobLogOutput{
			JobID: id.String(),
			Log:   "starting classification of 3 titles\njob completed successfully",
		}, nil)

		router := gin.New()
		router.GET("/jobs/:id/log", NewJobHandler(mockUC).GetJobLog)

		w := getPath(router, "/jobs/"+id.String()+"/log")

		assert.Equal(t, http.StatusOK, w.Code)

		var body usecase.JobLogOutput
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Log, "job completed successfully")
	})

	t.Run("unknown job", func(t *testing.T) {
		id := uuid.New()
		mockUC := new(MockClassificationUsecase)
		mockUC.On("GetLog", id).Return(nil, usecase.ErrJobNotFound)

		router := gin.New()
		router.GET("/jobs/:id/log", NewJobHandler(mockUC).GetJobLog)

		w := getPath(router, "/jobs/"+id.String()+"/log")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
