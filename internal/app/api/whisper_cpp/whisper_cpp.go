package whisper_cpp

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"mp3-transcriber/internal/app/audio"
	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/util/files"
)

// LocalTranscriber implements local transcription, using local binary commands.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
	prompt     string
	logger     *zap.Logger

	// prepare turns the input into something the binary accepts and returns its path.
	prepare func(inputFilePath, workDir string) (string, error)
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath, language, prompt string, logger *zap.Logger) *LocalTranscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
		prompt:     prompt,
		logger:     logger,
		prepare:    ensure16kHzWav,
	}
}

func ensure16kHzWav(inputFilePath, workDir string) (string, error) {
	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err == nil && is16kHzWav {
		return inputFilePath, nil
	}
	return audio.ConvertTo16kHzWav(inputFilePath, workDir)
}

// Transcript runs whisper.cpp over the file and returns the text output.
// Intermediate files live in a private directory removed before returning.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	workDir, err := os.MkdirTemp(filepath.Dir(inputFilePath), "whisper-cpp-*")
	if err != nil {
		return "", apperrors.Wrap(err, "create work directory")
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	wavPath, err := lt.prepare(inputFilePath, workDir)
	if err != nil {
		return "", apperrors.Wrap(err, "error converting input file")
	}

	outputPrefix := filepath.Join(workDir, "transcript")
	args := []string{
		"-m", lt.modelPath,
		"-otxt",
		"-f", wavPath,
		"-of", outputPrefix,
	}
	if lt.language != "" {
		args = append(args, "-l", lt.language)
	}
	if lt.prompt != "" {
		args = append(args, "--prompt", lt.prompt)
	}

	command := exec.Command(lt.binaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	lt.logger.Debug("running whisper.cpp",
		zap.String("binary", lt.binaryPath),
		zap.String("args", strings.Join(args, " ")),
	)

	if err := command.Run(); err != nil {
		return "", apperrors.Wrapf(err, "command execution error, stderr: %s", stderr.String())
	}

	output, err := files.ReadOutputFile(outputPrefix + ".txt")
	if err != nil {
		return "", apperrors.Wrap(err, "failed to read output file")
	}
	return output, nil
}
