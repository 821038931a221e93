package api

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}

// TranscriberFunc adapts a plain function to Transcriber.
type TranscriberFunc func(inputFilePath string) (string, error)

func (f TranscriberFunc) Transcript(inputFilePath string) (string, error) {
	return f(inputFilePath)
}
