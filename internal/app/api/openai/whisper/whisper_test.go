package whisper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appopenai "mp3-transcriber/internal/app/api/openai"
)

func createTempTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake mp3"), 0o644))
	return path
}

// TestRemoteTranscriber_Transcript tests the RemoteTranscriber implementation
func TestRemoteTranscriber_Transcript(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectError   bool
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
		},
		{
			name:         "japanese text",
			mockResponse: `{"text": "クラシャが来ました"}`,
			mockStatus:   http.StatusOK,
			expectedText: "クラシャが来ました",
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - server error",
			mockResponse:  `{"error": {"message": "Internal server error", "type": "server_error"}}`,
			mockStatus:    http.StatusInternalServerError,
			expectError:   true,
			errorContains: "500",
		},
		{
			name:         "empty transcription",
			mockResponse: `{"text": ""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.NotEmpty(t, r.Header.Get("Authorization"))
				assert.True(t, strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data"))

				if err := r.ParseMultipartForm(32 << 20); assert.NoError(t, err) {
					assert.Equal(t, "whisper-1", r.FormValue("model"))
					assert.Equal(t, "ja", r.FormValue("language"))
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			client := appopenai.NewClient("test-api-key", server.URL+"/v1")
			rt := NewRemoteTranscriber(client, "", "ja")

			result, err := rt.Transcript(createTempTestFile(t))

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, result)
		})
	}
}

// TestRemoteTranscriber_FileNotFound tests handling of non-existent files
func TestRemoteTranscriber_FileNotFound(t *testing.T) {
	client := appopenai.NewClient("test-api-key", "http://127.0.0.1:1/v1")
	rt := NewRemoteTranscriber(client, "", "")

	_, err := rt.Transcript(filepath.Join(t.TempDir(), "missing.mp3"))

	assert.Error(t, err)
}
