package config

import (
	"strings"
	"time"

	apperrors "mp3-transcriber/internal/app/errors"
)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return apperrors.Newf("%s timeout must be positive", name)
	}
	if timeout > time.Hour {
		return apperrors.Newf("%s timeout too large (max 1 hour)", name)
	}
	return nil
}

// ValidateAPIKey validates OpenAI API key presence and basic shape
func ValidateAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return apperrors.RequiredField("OPENAI_API_KEY")
	}
	if len(apiKey) < 20 {
		return apperrors.InvalidField("OPENAI_API_KEY", "too short")
	}
	return nil
}
