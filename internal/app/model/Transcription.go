package model

// TranscriptionResult is the normalized transcript of one accepted upload.
type TranscriptionResult struct {
	FileName string `json:"filename"`
	Text     string `json:"text"`
	Size     int64  `json:"size_bytes,omitempty"`
	Digest   string `json:"digest,omitempty"`
}
