package dto

import (
	"mp3-transcriber/internal/app/model"
)

// UploadQuery holds the optional query parameters of a batch upload
type UploadQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=csv zip xlsx"`
}

// TranscriptionResult is one transcript in API requests and responses
type TranscriptionResult struct {
	FileName string `json:"filename" binding:"required"`
	Text     string `json:"text"`
}

// WarningResponse is a per-file notice shown to the user
type WarningResponse struct {
	FileName string `json:"filename,omitempty"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Advisory bool   `json:"advisory,omitempty"`
}

// BatchResponse represents the outcome of one uploaded batch
type BatchResponse struct {
	BatchID     string                `json:"batch_id"`
	Results     []TranscriptionResult `json:"results"`
	Warnings    []WarningResponse     `json:"warnings"`
	Transcribed int                   `json:"transcribed"`
	Skipped     int                   `json:"skipped"`
}

// NewBatchResponse converts a batch report for the API
func NewBatchResponse(report *model.BatchReport) *BatchResponse {
	resp := &BatchResponse{
		BatchID:     report.ID,
		Results:     FromResults(report.Results),
		Warnings:    NewWarnings(report.Warnings),
		Transcribed: len(report.Results),
		Skipped:     report.Skipped(),
	}
	return resp
}

// NewWarnings converts model warnings for the API
func NewWarnings(warnings []model.Warning) []WarningResponse {
	out := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, WarningResponse{
			FileName: w.FileName,
			Kind:     string(w.Kind),
			Message:  w.Message,
			Advisory: w.Advisory,
		})
	}
	return out
}

func FromResults(results []model.TranscriptionResult) []TranscriptionResult {
	out := make([]TranscriptionResult, 0, len(results))
	for _, r := range results {
		out = append(out, TranscriptionResult{FileName: r.FileName, Text: r.Text})
	}
	return out
}

func ToResults(results []TranscriptionResult) []model.TranscriptionResult {
	out := make([]model.TranscriptionResult, 0, len(results))
	for _, r := range results {
		out = append(out, model.TranscriptionResult{FileName: r.FileName, Text: r.Text})
	}
	return out
}
