package services

import (
	"context"

	"mp3-transcriber/internal/app/model"
)

// TranscriptionService defines the interface for batch transcription
type TranscriptionService interface {
	TranscribeBatch(ctx context.Context, uploads []model.UploadedAudio) (*model.BatchReport, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	// Export serializes results; an empty format selects the configured default.
	Export(ctx context.Context, format string, results []model.TranscriptionResult) (*model.ExportArtifact, error)
}
