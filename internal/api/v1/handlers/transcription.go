package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mp3-transcriber/internal/api/errors"
	"mp3-transcriber/internal/api/middleware"
	"mp3-transcriber/internal/api/v1/dto"
	"mp3-transcriber/internal/api/v1/services"
	"mp3-transcriber/internal/app/model"
)

// UploadField is the multipart field carrying the audio files
const UploadField = "files"

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service       services.TranscriptionService
	exportService services.ExportService
	maxRequestMB  int
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService, exportService services.ExportService, maxRequestMB int) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:       service,
		exportService: exportService,
		maxRequestMB:  maxRequestMB,
	}
}

// Upload handles POST /api/v1/transcriptions
// Transcribes a batch of uploaded audio files
//
// @Summary Transcribe a batch of audio files
// @Description Validates and transcribes each uploaded file in order. Rejected or failed files are reported as warnings and never stop the batch. With a format, the transcripts are returned as a download instead of JSON.
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Produce text/csv
// @Produce application/zip
// @Param files formData file true "Audio files to transcribe (repeatable)"
// @Param format query string false "Return an export instead of JSON" Enums(csv,zip,xlsx)
// @Success 200 {object} dto.BatchResponse "Batch transcribed"
// @Failure 400 {object} errors.APIError "Bad request - no files"
// @Failure 413 {object} errors.APIError "Request body too large"
// @Failure 422 {object} errors.APIError "Invalid format, or nothing to export"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Header 200 {string} X-Skipped-Files "Number of files without a transcript"
// @Router /transcriptions [post]
func (h *TranscriptionHandler) Upload(c *gin.Context) {
	var query dto.UploadQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		if middleware.IsBodyTooLarge(err) {
			middleware.HandleError(c, errors.NewPayloadTooLargeError(h.maxRequestMB))
			return
		}
		middleware.HandleError(c, errors.NewBadRequestError("Expected a multipart form with audio files"))
		return
	}
	defer form.RemoveAll()

	uploads := uploadsFromForm(form.File[UploadField])
	if len(uploads) == 0 {
		middleware.HandleError(c, errors.NewBadRequestError("No files uploaded"))
		return
	}

	report, err := h.service.TranscribeBatch(c.Request.Context(), uploads)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Batch-ID", report.ID)
	c.Header("X-Skipped-Files", strconv.Itoa(report.Skipped()))

	if query.Format == "" {
		c.JSON(http.StatusOK, dto.NewBatchResponse(report))
		return
	}

	if len(report.Results) == 0 {
		apiErr := errors.NewValidationError("No files could be transcribed", nil)
		apiErr.Warnings = dto.NewWarnings(report.Warnings)
		middleware.HandleError(c, apiErr)
		return
	}

	artifact, err := h.exportService.Export(c.Request.Context(), query.Format, report.Results)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	writeArtifact(c, artifact)
}

func uploadsFromForm(headers []*multipart.FileHeader) []model.UploadedAudio {
	uploads := make([]model.UploadedAudio, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		uploads = append(uploads, model.UploadedAudio{
			FileName:    filepath.Base(strings.ReplaceAll(fh.Filename, "\\", "/")),
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return uploads
}
