package model

import (
	"bytes"
	"io"
)

// UploadedAudio is one file of a batch as received from the user.
// The bytes are reached through Open so that files rejected on their
// declared metadata are never read.
type UploadedAudio struct {
	FileName    string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// NewUploadedAudio wraps an in-memory buffer.
func NewUploadedAudio(fileName, contentType string, data []byte) UploadedAudio {
	return UploadedAudio{
		FileName:    fileName,
		Size:        int64(len(data)),
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
