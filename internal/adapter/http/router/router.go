package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/naza-official/bart-one-shot-classification-service/internal/adapter/http/handler"
	"github.com/naza-official/bart-one-shot-classification-service/internal/adapter/http/middleware"
	"github.com/naza-official/bart-one-shot-classification-service/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(classificationUC usecase.ClassificationUsecase, model handler.ReadinessChecker, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(classificationUC, model)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Classification endpoints
	classifyHandler := handler.NewClassifyHandler(classificationUC)
	router.POST("/classify", classifyHandler.Classify)
	router.POST("/classify/batch", classifyHandler.ClassifyBatch)

	// Job endpoints
	jobHandler := handler.NewJobHandler(classificationUC)
	router.GET("/jobs/:id", jobHandler.GetJob)
	router.GET("/jobs/:id/results", jobHandler.GetJobResults)
	router.GET("/jobs/:id/log", jobHandler.GetJobLog)

	return router
}
