package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naza-official/bart-one-shot-classification-service/internal/usecase"
)

// JobHandler handles job status, result, and log queries
type JobHandler struct {
	classificationUC usecase.ClassificationUsecase
}

// NewJobHandler creates a new job handler
func NewJobHandler(classificationUC usecase.ClassificationUsecase) *JobHandler {
	return &JobHandler{classificationUC: classificationUC}
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidRequest(c, "invalid job id")
		return
	}

	output, err := h.classificationUC.GetStatus(id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, output)
}

// GetJobResults handles GET /jobs/:id/results. While the job is still
// processing the results array holds only the titles classified so far.
func (h *JobHandler) GetJobResults(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidRequest(c, "invalid job id")
		return
	}

	output, err := h.classificationUC.GetResults(id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, output)
}

// GetJobLog handles GET /jobs/:id/log
func (h *JobHandler) GetJobLog(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidRequest(c, "invalid job id")
		return
	}

	output, err := h.classificationUC.GetLog(id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, output)
}
