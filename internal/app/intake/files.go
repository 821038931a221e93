package intake

import (
	"io"
	"os"
	"path/filepath"

	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/model"
)

// FromFile describes a file on disk as an upload. The file is only opened
// when the batch processor reads it. A path that cannot be stat'ed still
// yields an upload whose Open reports the failure, so the batch skips it
// with a warning instead of stopping.
func FromFile(path string) model.UploadedAudio {
	upload := model.UploadedAudio{FileName: filepath.Base(path)}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		err = apperrors.InvalidField(path, "is a directory")
	}
	if err != nil {
		upload.Open = func() (io.ReadCloser, error) {
			return nil, err
		}
		return upload
	}

	upload.Size = info.Size()
	upload.ContentType = SniffContentType(path)
	upload.Open = func() (io.ReadCloser, error) {
		return os.Open(path)
	}
	return upload
}

// FromFiles describes several files in the given order.
func FromFiles(paths []string) []model.UploadedAudio {
	uploads := make([]model.UploadedAudio, 0, len(paths))
	for _, p := range paths {
		uploads = append(uploads, FromFile(p))
	}
	return uploads
}
