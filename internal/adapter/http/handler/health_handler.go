package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naza-official/bart-one-shot-classification-service/internal/usecase"
)

// ReadinessChecker reports whether the model inference service has finished
// loading its weights
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classificationUC usecase.ClassificationUsecase
	model            ReadinessChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(classificationUC usecase.ClassificationUsecase, model ReadinessChecker) *HealthHandler {
	return &HealthHandler{
		classificationUC: classificationUC,
		model:            model,
	}
}

// Health handles GET /health. It reports job store occupancy and always
// answers 200; liveness does not depend on the model collaborator.
func (h *HealthHandler) Health(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.classificationUC.Health())
}

// Ready handles GET /ready. The service is ready once the model inference
// collaborator has its weights loaded.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.model == nil {
		respondJSON(c, http.StatusOK, gin.H{"status": "ready"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.model.Ready(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model service unavailable"})
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"status": "ready"})
}
