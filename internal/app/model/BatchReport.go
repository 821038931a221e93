package model

type WarningKind string

const (
	WarningTooLarge             WarningKind = "too_large"
	WarningUnsupportedExtension WarningKind = "unsupported_extension"
	WarningContentType          WarningKind = "content_type"
	WarningUnreadable           WarningKind = "unreadable"
	WarningTranscriptionFailed  WarningKind = "transcription_failed"
	WarningExportFailed         WarningKind = "export_failed"
)

// Warning is a user-facing notice. Messages never carry internal error detail.
type Warning struct {
	FileName string      `json:"filename,omitempty"`
	Kind     WarningKind `json:"kind"`
	Message  string      `json:"message"`
	Advisory bool        `json:"advisory,omitempty"`
}

// BatchReport collects the outcome of processing one batch in upload order.
type BatchReport struct {
	ID       string                `json:"batch_id"`
	Results  []TranscriptionResult `json:"results"`
	Warnings []Warning             `json:"warnings"`
}

// Skipped counts files that produced no result.
func (r *BatchReport) Skipped() int {
	n := 0
	for _, w := range r.Warnings {
		if !w.Advisory {
			n++
		}
	}
	return n
}
