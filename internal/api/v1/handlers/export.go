package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mp3-transcriber/internal/api/middleware"
	"mp3-transcriber/internal/api/v1/dto"
	"mp3-transcriber/internal/api/v1/services"
	"mp3-transcriber/internal/app/model"
)

// ExportHandler handles export-related HTTP requests
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// Export handles POST /api/v1/exports
//
// @Summary Export transcripts
// @Description Serializes transcripts, possibly edited after transcription, into a CSV (UTF-8 with BOM), a ZIP of text files, or an XLSX workbook.
// @Tags exports
// @Accept json
// @Produce text/csv
// @Produce application/zip
// @Param export body dto.ExportRequest true "Results to export"
// @Success 200 {file} file "Export download"
// @Failure 413 {object} errors.APIError "Request body too large"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /exports [post]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	artifact, err := h.service.Export(c.Request.Context(), req.Format, dto.ToResults(req.Results))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	writeArtifact(c, artifact)
}

func writeArtifact(c *gin.Context, artifact *model.ExportArtifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", artifact.FileName))
	c.Data(http.StatusOK, artifact.MIMEType, artifact.Data)
}
