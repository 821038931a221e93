package api

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "mp3-transcriber/internal/app/errors"
)

// WithTempFile writes data to a fresh temporary file, hands its path to fn and
// removes the file on every path out, including a panic in fn. Removal errors
// are ignored.
func WithTempFile(dir, suffix string, data []byte, fn func(path string) error) error {
	f, err := os.CreateTemp(dir, "upload-*"+sanitizeSuffix(suffix))
	if err != nil {
		return apperrors.Wrap(err, "create temp file")
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return apperrors.Mark(err, apperrors.ErrFileWriteFailed)
	}
	if err := f.Close(); err != nil {
		return apperrors.Mark(err, apperrors.ErrFileWriteFailed)
	}

	return fn(path)
}

func sanitizeSuffix(suffix string) string {
	if strings.ContainsAny(suffix, `/\*`) {
		return ""
	}
	return suffix
}

// Adapter stages uploaded bytes for a path-based Transcriber.
type Adapter struct {
	transcriber Transcriber
	tempDir     string
	logger      *zap.Logger
}

// NewAdapter creates an Adapter. An empty tempDir means the OS default.
func NewAdapter(transcriber Transcriber, tempDir string, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		transcriber: transcriber,
		tempDir:     tempDir,
		logger:      logger,
	}
}

// Transcribe runs the model over data. Any failure, including a panic inside
// the model, is returned as ErrTranscriptionFailed; the detail is only logged.
func (a *Adapter) Transcribe(data []byte, suffix string) (text string, err error) {
	start := time.Now()
	err = WithTempFile(a.tempDir, suffix, data, func(path string) (callErr error) {
		defer func() {
			if r := recover(); r != nil {
				callErr = fmt.Errorf("transcriber panic: %v", r)
			}
		}()
		text, callErr = a.transcriber.Transcript(path)
		return callErr
	})
	if err != nil {
		a.logger.Warn("transcription failed",
			zap.Error(err),
			zap.Int("bytes", len(data)),
			zap.Duration("elapsed", time.Since(start)),
		)
		return "", apperrors.Mark(err, apperrors.ErrTranscriptionFailed)
	}

	a.logger.Debug("transcription finished",
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}
