package intake

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/model"
	"mp3-transcriber/internal/app/utils"
)

// Policy describes which uploads are accepted.
type Policy struct {
	AllowedExtensions []string `validate:"min=1,dive,startswith=."`
	MaxFileMB         int      `validate:"gt=0"`
	AllowedMIMETypes  []string `validate:"dive,contains=/"`
	Language          string   `validate:"omitempty,oneof=en ja"`
}

// DefaultPolicy accepts mp3 files up to 50MB and expects audio/mpeg.
func DefaultPolicy() Policy {
	return Policy{
		AllowedExtensions: []string{".mp3"},
		MaxFileMB:         50,
		AllowedMIMETypes:  []string{"audio/mpeg"},
		Language:          MessagesEnglish,
	}
}

// Verdict is the outcome of checking one upload. Advisory warnings may be
// present on an accepted upload.
type Verdict struct {
	Accepted bool
	Warnings []model.Warning
}

// Validator applies a Policy to upload metadata. It never reads file content.
type Validator struct {
	policy     Policy
	extensions map[string]struct{}
	mimeTypes  map[string]struct{}
}

// NewValidator validates the policy and builds lookup sets.
func NewValidator(policy Policy) (*Validator, error) {
	if err := validator.New().Struct(policy); err != nil {
		return nil, apperrors.Wrap(err, "invalid intake policy")
	}

	lower := func(s string, _ int) string { return strings.ToLower(strings.TrimSpace(s)) }
	return &Validator{
		policy:     policy,
		extensions: lo.SliceToMap(lo.Map(policy.AllowedExtensions, lower), func(s string) (string, struct{}) { return s, struct{}{} }),
		mimeTypes:  lo.SliceToMap(lo.Map(policy.AllowedMIMETypes, lower), func(s string) (string, struct{}) { return s, struct{}{} }),
	}, nil
}

// MaxBytes is the largest accepted upload size.
func (v *Validator) MaxBytes() int64 {
	return utils.MBToBytes(v.policy.MaxFileMB)
}

// Policy returns the policy the validator was built from.
func (v *Validator) Policy() Policy {
	return v.policy
}

// Check validates size, extension and declared content type, in that order.
func (v *Validator) Check(upload model.UploadedAudio) Verdict {
	if upload.Size > v.MaxBytes() {
		return Verdict{Warnings: []model.Warning{v.TooLarge(upload.FileName, upload.Size)}}
	}

	if _, ok := v.extensions[Extension(upload.FileName)]; !ok {
		return Verdict{Warnings: []model.Warning{v.Warn(model.WarningUnsupportedExtension, upload.FileName, upload.FileName)}}
	}

	verdict := Verdict{Accepted: true}
	if upload.ContentType != "" && len(v.mimeTypes) > 0 {
		if _, ok := v.mimeTypes[BaseMediaType(upload.ContentType)]; !ok {
			verdict.Warnings = append(verdict.Warnings, v.Warn(model.WarningContentType, upload.FileName, upload.ContentType))
		}
	}
	return verdict
}

// TooLarge builds the rejection warning for an oversized upload.
func (v *Validator) TooLarge(fileName string, size int64) model.Warning {
	return v.Warn(model.WarningTooLarge, fileName, utils.SizeMB(size).StringFixed(1), v.policy.MaxFileMB, fileName)
}

// Extension returns the lower-cased trailing extension including the dot.
// Leading dots of the base name do not start an extension, so ".mp3" has none.
func Extension(fileName string) string {
	base := filepath.Base(fileName)
	if !strings.Contains(strings.TrimLeft(base, "."), ".") {
		return ""
	}
	return strings.ToLower(filepath.Ext(base))
}

// BaseMediaType strips parameters and lower-cases a content type.
func BaseMediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// SniffContentType detects the media type of a file on disk. It is used for
// uploads that arrive without a declared type.
func SniffContentType(path string) string {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	return BaseMediaType(mt.String())
}
