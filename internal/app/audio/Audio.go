package audio

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/model"
)

var convertibleExtensions = []string{".mp3", ".m4a", ".wav"}

// Is16kHzWavFile reports whether ffprobe sees a 16kHz PCM stream in filePath.
func Is16kHzWavFile(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}

	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return false, err
	}

	return lo.ContainsBy(probeOutput.Streams, func(s model.FFProbeStream) bool {
		return s.CodecType == "audio" && s.CodecName == "pcm_s16le" && s.SampleRate == 16000
	}), nil
}

// WavOutputPath is where ConvertTo16kHzWav writes its result.
func WavOutputPath(inputFilePath, outputDir string) string {
	base := filepath.Base(inputFilePath)
	return filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+"_16khz.wav")
}

// ConvertTo16kHzWav converts an audio file to mono 16kHz PCM WAV inside outputDir.
func ConvertTo16kHzWav(inputFilePath, outputDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(inputFilePath))
	if !lo.Contains(convertibleExtensions, ext) {
		return "", apperrors.Newf("unsupported audio format not in %v: %s", convertibleExtensions, ext)
	}

	outputFilePath := WavOutputPath(inputFilePath, outputDir)
	cmd := exec.Command("ffmpeg", "-y", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputFilePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", apperrors.Wrapf(err, "FFmpeg error, stderr: %s", stderr.String())
	}

	return outputFilePath, nil
}
