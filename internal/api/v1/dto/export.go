package dto

import (
	"fmt"
	"strings"

	"mp3-transcriber/internal/api/errors"
)

// ExportRequest carries results, possibly edited by the user, to serialize
type ExportRequest struct {
	Format  string                `json:"format" binding:"omitempty,oneof=csv zip xlsx"`
	Results []TranscriptionResult `json:"results" binding:"required,min=1,dive"`
}

// Validate rejects results whose filename is only whitespace.
func (r *ExportRequest) Validate() error {
	fields := make(map[string]string)
	for i, result := range r.Results {
		if strings.TrimSpace(result.FileName) == "" {
			fields[fmt.Sprintf("results[%d].filename", i)] = "is blank"
		}
	}
	if len(fields) > 0 {
		return errors.NewValidationError("Validation failed", fields)
	}
	return nil
}
