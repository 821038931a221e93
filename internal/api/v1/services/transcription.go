package services

import (
	"context"

	"go.uber.org/zap"

	"mp3-transcriber/internal/api/errors"
	"mp3-transcriber/internal/app/converter"
	"mp3-transcriber/internal/app/model"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	converter *converter.Converter
	logger    *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(conv *converter.Converter, logger *zap.Logger) TranscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptionServiceImpl{
		converter: conv,
		logger:    logger,
	}
}

// TranscribeBatch runs the batch to completion. Per-file problems are
// reported in the batch warnings, never as an error.
func (s *TranscriptionServiceImpl) TranscribeBatch(ctx context.Context, uploads []model.UploadedAudio) (*model.BatchReport, error) {
	if len(uploads) == 0 {
		return nil, errors.NewBadRequestError("No files uploaded")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewServiceUnavailableError("Request cancelled")
	}

	return s.converter.Process(uploads, nil), nil
}
