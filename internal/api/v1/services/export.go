package services

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"mp3-transcriber/internal/api/errors"
	"mp3-transcriber/internal/app/converter/export"
	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/model"
)

// ExportServiceImpl implements ExportService
type ExportServiceImpl struct {
	exporter      *export.Exporter
	defaultFormat export.Format
	logger        *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(exporter *export.Exporter, defaultFormat export.Format, logger *zap.Logger) ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultFormat == "" {
		defaultFormat = export.FormatCSV
	}
	return &ExportServiceImpl{
		exporter:      exporter,
		defaultFormat: defaultFormat,
		logger:        logger,
	}
}

// Export serializes results into a downloadable artifact
func (s *ExportServiceImpl) Export(ctx context.Context, format string, results []model.TranscriptionResult) (*model.ExportArtifact, error) {
	f := s.defaultFormat
	if format != "" {
		parsed, err := export.ParseFormat(format)
		if err != nil {
			return nil, errors.NewValidationError("Unsupported export format", map[string]string{"format": "must be one of csv, zip, xlsx"})
		}
		f = parsed
	}

	artifact, err := s.exporter.Export(f, results)
	switch {
	case err == nil:
		return artifact, nil
	case stderrors.Is(err, apperrors.ErrNothingToExport):
		return nil, errors.NewValidationError("No transcriptions to export", nil)
	default:
		s.logger.Error("export failed", zap.String("format", string(f)), zap.Error(err))
		return nil, errors.NewInternalError("Failed to create the export file")
	}
}
