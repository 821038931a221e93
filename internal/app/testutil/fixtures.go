package testutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mp3-transcriber/internal/app/model"
)

// SampleResults provides transcription results for export tests
var SampleResults = []model.TranscriptionResult{
	{FileName: "lesson_01.mp3", Text: "コラショと一緒に勉強しよう。"},
	{FileName: "lesson_02.mp3", Text: "Hello, world"},
	{FileName: "quote,comma.mp3", Text: "He said \"hi\",\nthen left."},
}

// Upload builds an accepted-looking MP3 upload holding content.
func Upload(name, content string) model.UploadedAudio {
	return model.NewUploadedAudio(name, "audio/mpeg", []byte(content))
}

// UploadWithType builds an upload with an explicit declared content type.
func UploadWithType(name, contentType, content string) model.UploadedAudio {
	return model.NewUploadedAudio(name, contentType, []byte(content))
}

// SizedUpload declares size bytes but holds content, for size-limit checks.
func SizedUpload(name string, size int64, content string) model.UploadedAudio {
	u := Upload(name, content)
	u.Size = size
	return u
}

// LargeUpload holds n bytes of zeroes.
func LargeUpload(name string, n int) model.UploadedAudio {
	return model.NewUploadedAudio(name, "audio/mpeg", make([]byte, n))
}

// UnreadableUpload fails when opened.
func UnreadableUpload(name string) model.UploadedAudio {
	return model.UploadedAudio{
		FileName:    name,
		Size:        16,
		ContentType: "audio/mpeg",
		Open: func() (io.ReadCloser, error) {
			return nil, errors.New("stream closed")
		},
	}
}

// WriteAudioFile writes content to dir/name and returns the path.
func WriteAudioFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// AssertDirEmpty fails the test when dir holds any entry.
func AssertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Empty(t, entries, "leftover files: %s", strings.Join(names, ", "))
}
