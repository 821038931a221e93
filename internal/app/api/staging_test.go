package api

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mp3-transcriber/internal/app/errors"
)

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary files left behind")
}

func TestWithTempFile_RemovesOnSuccess(t *testing.T) {
	dir := t.TempDir()
	var seen string

	err := WithTempFile(dir, ".mp3", []byte("audio"), func(path string) error {
		seen = path
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "audio", string(data))
		assert.True(t, strings.HasSuffix(path, ".mp3"))
		assert.Equal(t, dir, filepath.Dir(path))
		return nil
	})

	require.NoError(t, err)
	assert.NoFileExists(t, seen)
	assertDirEmpty(t, dir)
}

func TestWithTempFile_RemovesOnError(t *testing.T) {
	dir := t.TempDir()
	boom := stderrors.New("boom")

	err := WithTempFile(dir, ".mp3", []byte("audio"), func(path string) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assertDirEmpty(t, dir)
}

func TestWithTempFile_RemovesOnPanic(t *testing.T) {
	dir := t.TempDir()

	assert.Panics(t, func() {
		_ = WithTempFile(dir, ".mp3", []byte("audio"), func(path string) error {
			panic("model exploded")
		})
	})
	assertDirEmpty(t, dir)
}

func TestWithTempFile_SwallowsRemovalError(t *testing.T) {
	dir := t.TempDir()

	err := WithTempFile(dir, ".mp3", []byte("audio"), func(path string) error {
		return os.Remove(path)
	})

	assert.NoError(t, err)
}

func TestWithTempFile_UnsafeSuffix(t *testing.T) {
	dir := t.TempDir()

	err := WithTempFile(dir, "/../x", []byte("audio"), func(path string) error {
		assert.Equal(t, dir, filepath.Dir(path))
		return nil
	})

	assert.NoError(t, err)
}

func TestAdapter_Transcribe(t *testing.T) {
	dir := t.TempDir()
	var staged string
	adapter := NewAdapter(TranscriberFunc(func(path string) (string, error) {
		staged = path
		return " hello", nil
	}), dir, nil)

	text, err := adapter.Transcribe([]byte("audio"), ".mp3")

	require.NoError(t, err)
	assert.Equal(t, " hello", text)
	assert.NoFileExists(t, staged)
	assertDirEmpty(t, dir)
}

func TestAdapter_TranscribeFailureIsGeneric(t *testing.T) {
	dir := t.TempDir()
	adapter := NewAdapter(TranscriberFunc(func(path string) (string, error) {
		return "", stderrors.New("CUDA out of memory at 0xdeadbeef")
	}), dir, nil)

	text, err := adapter.Transcribe([]byte("audio"), ".mp3")

	assert.Empty(t, text)
	assert.ErrorIs(t, err, apperrors.ErrTranscriptionFailed)
	assertDirEmpty(t, dir)
}

func TestAdapter_TranscribeRecoversPanic(t *testing.T) {
	dir := t.TempDir()
	adapter := NewAdapter(TranscriberFunc(func(path string) (string, error) {
		panic("decoder crashed")
	}), dir, nil)

	text, err := adapter.Transcribe([]byte("audio"), ".mp3")

	assert.Empty(t, text)
	assert.ErrorIs(t, err, apperrors.ErrTranscriptionFailed)
	assertDirEmpty(t, dir)
}
