package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naza-official/bart-one-shot-classification-service/internal/usecase"
)

// ClassifyHandler handles classification HTTP requests
type ClassifyHandler struct {
	classificationUC usecase.ClassificationUsecase
}

// NewClassifyHandler creates a new classification handler
func NewClassifyHandler(classificationUC usecase.ClassificationUsecase) *ClassifyHandler {
	return &ClassifyHandler{classificationUC: classificationUC}
}

// ClassifyRequest is the body for POST /classify
type ClassifyRequest struct {
	Title      string   `json:"title" binding:"required"`
	Categories []string `json:"categories" binding:"required,min=1"`
}

// BatchRequest is the body for POST /classify/batch
type BatchRequest struct {
	Titles     []string `json:"titles" binding:"required,min=1"`
	Categories []string `json:"categories" binding:"required,min=1"`
}

// Classify handles POST /classify
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.classificationUC.Classify(c.Request.Context(), req.Title, req.Categories)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, output)
}

// ClassifyBatch handles POST /classify/batch
func (h *ClassifyHandler) ClassifyBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.classificationUC.SubmitBatch(req.Titles, req.Categories)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondJSON(c, http.StatusAccepted, output)
}
