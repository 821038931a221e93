package whisper_server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "mp3-transcriber/internal/app/errors"
)

// WhisperServerProvider implements transcription via HTTP to a whisper-server instance
type WhisperServerProvider struct {
	config WhisperServerConfig
	client *http.Client
}

// WhisperServerConfig represents configuration for whisper-server HTTP API
type WhisperServerConfig struct {
	BaseURL       string            // Base URL of whisper-server (e.g., "http://127.0.0.1:8080")
	InferencePath string            // Inference endpoint path (default: "/inference")
	Timeout       time.Duration     // Request timeout
	Language      string            // Default language code
	Temperature   float64           // Decoding temperature (0.0-1.0)
	CustomHeaders map[string]string // Custom HTTP headers
}

// WhisperServerResponse is the json response of whisper-server. Only Text is
// required; the rest is informational.
type WhisperServerResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// NewWhisperServerProvider creates a new whisper-server HTTP provider
func NewWhisperServerProvider(config WhisperServerConfig) *WhisperServerProvider {
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Minute
	}
	if config.CustomHeaders == nil {
		config.CustomHeaders = make(map[string]string)
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &WhisperServerProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Transcript uploads the file at inputFilePath and returns the "text" field of the result.
func (wsp *WhisperServerProvider) Transcript(inputFilePath string) (string, error) {
	body, contentType, err := wsp.createMultipartForm(inputFilePath)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to create multipart form")
	}

	url := wsp.config.BaseURL + wsp.config.InferencePath
	httpReq, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to create HTTP request")
	}
	httpReq.Header.Set("Content-Type", contentType)
	for key, value := range wsp.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}

	resp, err := wsp.client.Do(httpReq)
	if err != nil {
		return "", apperrors.Wrap(err, "HTTP request failed")
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Newf("whisper-server returned status %d: %s", resp.StatusCode, truncate(string(responseData), 200))
	}

	var result WhisperServerResponse
	if err := json.Unmarshal(responseData, &result); err != nil {
		return "", apperrors.Wrap(err, "failed to parse JSON response")
	}
	if result.Error != "" {
		return "", apperrors.Newf("whisper-server error: %s", result.Error)
	}

	return result.Text, nil
}

// createMultipartForm creates the multipart form for the API request
func (wsp *WhisperServerProvider) createMultipartForm(inputFilePath string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	file, err := os.Open(inputFilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %w", err)
	}

	params := map[string]string{
		"response_format": "json",
		"temperature":     fmt.Sprintf("%.2f", wsp.config.Temperature),
	}
	if wsp.config.Language != "" {
		params["language"] = wsp.config.Language
	}
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
