package routes

import (
	"github.com/gin-gonic/gin"

	"mp3-transcriber/internal/api/middleware"
	"mp3-transcriber/internal/api/v1/handlers"
	"mp3-transcriber/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	// Request bodies carry whole audio batches
	router.Use(middleware.BodyLimit(container.MaxRequestMB))

	transcriptionHandler := handlers.NewTranscriptionHandler(
		container.TranscriptionService,
		container.ExportService,
		container.MaxRequestMB,
	)
	router.POST("/transcriptions", transcriptionHandler.Upload)

	exportHandler := handlers.NewExportHandler(container.ExportService)
	router.POST("/exports", exportHandler.Export)
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	ExportService        services.ExportService
	MaxRequestMB         int
}
