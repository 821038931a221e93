package converter

import (
	stderrors "errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mp3-transcriber/internal/app/api"
	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/intake"
	"mp3-transcriber/internal/app/metrics"
	"mp3-transcriber/internal/app/model"
	"mp3-transcriber/internal/app/postprocess"
	"mp3-transcriber/internal/app/utils"
)

// Observer is notified as each file of a batch is handled.
type Observer interface {
	FileStarted(fileName string)
	FileFinished(fileName string, transcribed bool)
}

// Converter turns a batch of uploads into transcripts, one file at a time.
type Converter struct {
	validator *intake.Validator
	adapter   *api.Adapter
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewConverter(validator *intake.Validator, adapter *api.Adapter, m *metrics.Metrics, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		validator: validator,
		adapter:   adapter,
		metrics:   m,
		logger:    logger,
	}
}

var errOversized = stderrors.New("upload exceeds size limit")

// Process handles uploads sequentially in the given order. A problem with one
// file becomes a warning and never stops the batch. observer may be nil.
func (c *Converter) Process(uploads []model.UploadedAudio, observer Observer) *model.BatchReport {
	report := &model.BatchReport{
		ID:       uuid.NewString(),
		Results:  make([]model.TranscriptionResult, 0, len(uploads)),
		Warnings: make([]model.Warning, 0),
	}
	logger := c.logger.With(zap.String("batch_id", report.ID))
	logger.Info("processing batch", zap.Int("files", len(uploads)))

	for _, upload := range uploads {
		if observer != nil {
			observer.FileStarted(upload.FileName)
		}

		result, warnings := c.convertToText(logger, upload)
		report.Warnings = append(report.Warnings, warnings...)
		if result != nil {
			report.Results = append(report.Results, *result)
		}

		if observer != nil {
			observer.FileFinished(upload.FileName, result != nil)
		}
	}

	c.metrics.BatchProcessed()
	logger.Info("batch finished",
		zap.Int("transcribed", len(report.Results)),
		zap.Int("skipped", report.Skipped()),
	)
	return report
}

func (c *Converter) convertToText(logger *zap.Logger, upload model.UploadedAudio) (*model.TranscriptionResult, []model.Warning) {
	logger = logger.With(zap.String("file", upload.FileName), zap.Int64("declared_size", upload.Size))

	verdict := c.validator.Check(upload)
	if !verdict.Accepted {
		logger.Info("upload rejected", zap.String("reason", string(verdict.Warnings[0].Kind)))
		c.metrics.FileProcessed(metrics.OutcomeRejected)
		return nil, verdict.Warnings
	}
	warnings := verdict.Warnings
	if len(warnings) > 0 {
		c.metrics.ContentTypeAdvisory()
	}

	data, err := c.readAudio(upload)
	if stderrors.Is(err, errOversized) {
		logger.Info("upload rejected after read", zap.Error(err))
		c.metrics.FileProcessed(metrics.OutcomeRejected)
		return nil, append(warnings, c.validator.TooLarge(upload.FileName, max(upload.Size, int64(len(data)))))
	}
	if err != nil {
		logger.Warn("upload unreadable", zap.Error(err))
		c.metrics.FileProcessed(metrics.OutcomeUnreadable)
		return nil, append(warnings, c.validator.Warn(model.WarningUnreadable, upload.FileName, upload.FileName))
	}

	start := time.Now()
	text, err := c.adapter.Transcribe(data, intake.Extension(upload.FileName))
	c.metrics.ObserveTranscription(time.Since(start))
	if err != nil {
		c.metrics.FileProcessed(metrics.OutcomeFailed)
		return nil, append(warnings, c.validator.Warn(model.WarningTranscriptionFailed, upload.FileName, upload.FileName))
	}

	c.metrics.FileProcessed(metrics.OutcomeTranscribed)
	logger.Info("transcription completed", zap.Duration("elapsed", time.Since(start)))

	return &model.TranscriptionResult{
		FileName: upload.FileName,
		Text:     postprocess.Normalize(text),
		Size:     int64(len(data)),
		Digest:   utils.Digest(data),
	}, warnings
}

// readAudio reads the whole upload. Reading stops one byte past the size
// limit so that a wrong declared size cannot bypass it.
func (c *Converter) readAudio(upload model.UploadedAudio) ([]byte, error) {
	if upload.Open == nil {
		return nil, apperrors.ErrUnreadable
	}
	rc, err := upload.Open()
	if err != nil {
		return nil, apperrors.Mark(err, apperrors.ErrUnreadable)
	}
	defer rc.Close()

	limit := c.validator.MaxBytes()
	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, apperrors.Mark(err, apperrors.ErrUnreadable)
	}
	if int64(len(data)) > limit {
		return data, errOversized
	}
	return data, nil
}
