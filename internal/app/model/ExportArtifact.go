package model

// ExportArtifact is a serialized batch ready to be handed out as a download.
type ExportArtifact struct {
	FileName string
	MIMEType string
	Data     []byte
}
