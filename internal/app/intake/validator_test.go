package intake

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mp3-transcriber/internal/app/model"
)

func newDefaultValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator(DefaultPolicy())
	require.NoError(t, err)
	return v
}

func TestValidator_Check(t *testing.T) {
	v := newDefaultValidator(t)

	tests := []struct {
		name         string
		upload       model.UploadedAudio
		wantAccepted bool
		wantKinds    []model.WarningKind
	}{
		{
			name:         "plain mp3",
			upload:       model.UploadedAudio{FileName: "meeting.mp3", Size: 1024, ContentType: "audio/mpeg"},
			wantAccepted: true,
		},
		{
			name:         "upper-case extension",
			upload:       model.UploadedAudio{FileName: "MEETING.MP3", Size: 1024},
			wantAccepted: true,
		},
		{
			name:         "exactly at the limit",
			upload:       model.UploadedAudio{FileName: "a.mp3", Size: 50 * 1024 * 1024},
			wantAccepted: true,
		},
		{
			name:      "one byte over the limit",
			upload:    model.UploadedAudio{FileName: "a.mp3", Size: 50*1024*1024 + 1},
			wantKinds: []model.WarningKind{model.WarningTooLarge},
		},
		{
			name:      "wav is not allowed",
			upload:    model.UploadedAudio{FileName: "a.wav", Size: 10, ContentType: "audio/wav"},
			wantKinds: []model.WarningKind{model.WarningUnsupportedExtension},
		},
		{
			name:      "no extension",
			upload:    model.UploadedAudio{FileName: "mp3", Size: 10},
			wantKinds: []model.WarningKind{model.WarningUnsupportedExtension},
		},
		{
			name:      "oversized with bad extension reports size first",
			upload:    model.UploadedAudio{FileName: "a.wav", Size: 60 * 1024 * 1024},
			wantKinds: []model.WarningKind{model.WarningTooLarge},
		},
		{
			name:         "unexpected content type is advisory",
			upload:       model.UploadedAudio{FileName: "a.mp3", Size: 10, ContentType: "application/octet-stream"},
			wantAccepted: true,
			wantKinds:    []model.WarningKind{model.WarningContentType},
		},
		{
			name:         "content type parameters are ignored",
			upload:       model.UploadedAudio{FileName: "a.mp3", Size: 10, ContentType: "Audio/MPEG; charset=binary"},
			wantAccepted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := v.Check(tt.upload)

			assert.Equal(t, tt.wantAccepted, verdict.Accepted)
			kinds := make([]model.WarningKind, 0, len(verdict.Warnings))
			for _, w := range verdict.Warnings {
				kinds = append(kinds, w.Kind)
				assert.Equal(t, tt.upload.FileName, w.FileName)
				assert.Equal(t, w.Kind == model.WarningContentType, w.Advisory)
			}
			if len(tt.wantKinds) == 0 {
				assert.Empty(t, kinds)
			} else {
				assert.Equal(t, tt.wantKinds, kinds)
			}
		})
	}
}

func TestValidator_TooLargeMessage(t *testing.T) {
	v := newDefaultValidator(t)

	w := v.TooLarge("long.mp3", 54_840_000)

	assert.Equal(t, "File is too large (52.3MB > 50MB): long.mp3", w.Message)
}

func TestNewValidator_InvalidPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{"no extensions", Policy{MaxFileMB: 10}},
		{"extension without dot", Policy{AllowedExtensions: []string{"mp3"}, MaxFileMB: 10}},
		{"zero size", Policy{AllowedExtensions: []string{".mp3"}}},
		{"bad mime", Policy{AllowedExtensions: []string{".mp3"}, MaxFileMB: 1, AllowedMIMETypes: []string{"mpeg"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidator(tt.policy)
			assert.Error(t, err)
		})
	}
}

func TestValidator_CustomPolicy(t *testing.T) {
	v, err := NewValidator(Policy{
		AllowedExtensions: []string{".MP3", ".wav"},
		MaxFileMB:         1,
	})
	require.NoError(t, err)

	assert.True(t, v.Check(model.UploadedAudio{FileName: "a.wav", Size: 1, ContentType: "audio/wav"}).Accepted)
	assert.Empty(t, v.Check(model.UploadedAudio{FileName: "a.wav", Size: 1, ContentType: "audio/wav"}).Warnings)
	assert.True(t, v.Check(model.UploadedAudio{FileName: "a.mp3", Size: 1}).Accepted)
	assert.Equal(t, int64(1024*1024), v.MaxBytes())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0o644))

	upload := FromFile(path)

	assert.Equal(t, "clip.mp3", upload.FileName)
	assert.Equal(t, int64(16), upload.Size)
	assert.Equal(t, "text/plain", upload.ContentType)

	rc, err := upload.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "not really audio", string(data))
}

func TestFromFiles_UnreadablePathsDeferToOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))
	missing := filepath.Join(dir, "missing.mp3")

	uploads := FromFiles([]string{path, missing, dir})
	require.Len(t, uploads, 3)
	assert.Equal(t, []string{"clip.mp3", "missing.mp3", filepath.Base(dir)},
		[]string{uploads[0].FileName, uploads[1].FileName, uploads[2].FileName})

	_, err := uploads[1].Open()
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 1, strings.Count(err.Error(), missing))

	_, err = uploads[2].Open()
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"a.mp3":        ".mp3",
		"A.MP3":        ".mp3",
		"dir/b.tar.gz": ".gz",
		"plain":        "",
		".mp3":         "",
		"..mp3":        "",
		"dir/.hidden":  "",
		".config.mp3":  ".mp3",
	}
	for in, want := range tests {
		assert.Equal(t, want, Extension(in), in)
	}
}

func TestValidator_LeadingDotNameRejected(t *testing.T) {
	v := newDefaultValidator(t)

	verdict := v.Check(model.UploadedAudio{FileName: ".mp3", Size: 10})

	assert.False(t, verdict.Accepted)
	require.Len(t, verdict.Warnings, 1)
	assert.Equal(t, model.WarningUnsupportedExtension, verdict.Warnings[0].Kind)
}

func TestValidator_JapaneseMessages(t *testing.T) {
	policy := DefaultPolicy()
	policy.Language = MessagesJapanese
	v, err := NewValidator(policy)
	require.NoError(t, err)

	assert.Equal(t, "ファイルが大きすぎます（52.3MB > 50MB）: long.mp3", v.TooLarge("long.mp3", 54_840_000).Message)
	assert.Equal(t, "未対応の拡張子です: a.wav", v.Check(model.UploadedAudio{FileName: "a.wav", Size: 1}).Warnings[0].Message)

	w := v.Warn(model.WarningUnreadable, "a.mp3", "a.mp3")
	assert.Equal(t, "ファイル読み込みに失敗しました。破損していないかご確認ください: a.mp3", w.Message)
	assert.False(t, w.Advisory)

	_, err = NewValidator(Policy{AllowedExtensions: []string{".mp3"}, MaxFileMB: 1, Language: "fr"})
	assert.Error(t, err)
}
