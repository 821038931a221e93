package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mp3-transcriber/internal/api/errors"
	"mp3-transcriber/internal/api/middleware"
	"mp3-transcriber/internal/api/v1/handlers"
	"mp3-transcriber/internal/app/model"
)

type mockTranscriptionService struct {
	mock.Mock
}

func (m *mockTranscriptionService) TranscribeBatch(ctx context.Context, uploads []model.UploadedAudio) (*model.BatchReport, error) {
	args := m.Called(ctx, uploads)
	report, _ := args.Get(0).(*model.BatchReport)
	return report, args.Error(1)
}

type mockExportService struct {
	mock.Mock
}

func (m *mockExportService) Export(ctx context.Context, format string, results []model.TranscriptionResult) (*model.ExportArtifact, error) {
	args := m.Called(ctx, format, results)
	artifact, _ := args.Get(0).(*model.ExportArtifact)
	return artifact, args.Error(1)
}

type uploadFile struct {
	name        string
	contentType string
	content     string
}

func multipartBody(t *testing.T, files ...uploadFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func setupTestRouter(ts *mockTranscriptionService, es *mockExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler(zap.NewNop()))

	th := handlers.NewTranscriptionHandler(ts, es, 10)
	eh := handlers.NewExportHandler(es)
	router.POST("/api/v1/transcriptions", th.Upload)
	router.POST("/api/v1/exports", eh.Export)
	return router
}

func sampleReport() *model.BatchReport {
	return &model.BatchReport{
		ID: "batch-1",
		Results: []model.TranscriptionResult{
			{FileName: "a.mp3", Text: "コラショ"},
		},
		Warnings: []model.Warning{
			{FileName: "b.wav", Kind: model.WarningUnsupportedExtension, Message: "Unsupported file extension: b.wav"},
		},
	}
}

func TestTranscriptionHandler_Upload(t *testing.T) {
	ts := &mockTranscriptionService{}
	es := &mockExportService{}
	router := setupTestRouter(ts, es)

	ts.On("TranscribeBatch", mock.Anything, mock.MatchedBy(func(uploads []model.UploadedAudio) bool {
		if len(uploads) != 2 || uploads[0].FileName != "a.mp3" || uploads[1].FileName != "b.wav" {
			return false
		}
		if uploads[0].ContentType != "audio/mpeg" || uploads[0].Size != int64(len("AAA")) {
			return false
		}
		rc, err := uploads[0].Open()
		if err != nil {
			return false
		}
		defer rc.Close()
		data, _ := io.ReadAll(rc)
		return string(data) == "AAA"
	})).Return(sampleReport(), nil).Once()

	body, contentType := multipartBody(t,
		uploadFile{name: "a.mp3", contentType: "audio/mpeg", content: "AAA"},
		uploadFile{name: "b.wav", contentType: "audio/wav", content: "BBBB"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "1", w.Header().Get("X-Skipped-Files"))
	assert.Equal(t, "batch-1", w.Header().Get("X-Batch-ID"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "batch-1", resp["batch_id"])
	assert.Equal(t, float64(1), resp["transcribed"])
	assert.Equal(t, float64(1), resp["skipped"])
	results := resp["results"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "コラショ", results[0].(map[string]interface{})["text"])

	ts.AssertExpectations(t)
	es.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscriptionHandler_UploadWithFormat(t *testing.T) {
	ts := &mockTranscriptionService{}
	es := &mockExportService{}
	router := setupTestRouter(ts, es)

	report := sampleReport()
	ts.On("TranscribeBatch", mock.Anything, mock.Anything).Return(report, nil).Once()
	es.On("Export", mock.Anything, "zip", report.Results).Return(&model.ExportArtifact{
		FileName: "transcriptions.zip",
		MIMEType: "application/zip",
		Data:     []byte("PK"),
	}, nil).Once()

	body, contentType := multipartBody(t, uploadFile{name: "a.mp3", content: "AAA"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions?format=zip", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transcriptions.zip"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String())
	es.AssertExpectations(t)
}

func TestTranscriptionHandler_UploadNothingTranscribed(t *testing.T) {
	ts := &mockTranscriptionService{}
	es := &mockExportService{}
	router := setupTestRouter(ts, es)

	report := &model.BatchReport{ID: "b", Warnings: []model.Warning{
		{FileName: "x.wav", Kind: model.WarningUnsupportedExtension, Message: "Unsupported file extension: x.wav"},
	}}
	ts.On("TranscribeBatch", mock.Anything, mock.Anything).Return(report, nil).Once()

	body, contentType := multipartBody(t, uploadFile{name: "x.wav", content: "X"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions?format=csv", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported file extension: x.wav")
	es.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscriptionHandler_UploadErrors(t *testing.T) {
	tests := []struct {
		name           string
		buildRequest   func(t *testing.T) *http.Request
		expectedStatus int
		expectedKind   errors.ErrorKind
	}{
		{
			name: "not multipart",
			buildRequest: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", bytes.NewBufferString("{}"))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   errors.KindBadRequest,
		},
		{
			name: "no files",
			buildRequest: func(t *testing.T) *http.Request {
				body, contentType := multipartBody(t)
				req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   errors.KindBadRequest,
		},
		{
			name: "invalid format",
			buildRequest: func(t *testing.T) *http.Request {
				body, contentType := multipartBody(t, uploadFile{name: "a.mp3", content: "A"})
				req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions?format=pdf", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKind:   errors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := &mockTranscriptionService{}
			router := setupTestRouter(ts, &mockExportService{})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tt.buildRequest(t))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, string(tt.expectedKind), body["kind"])
			ts.AssertNotCalled(t, "TranscribeBatch", mock.Anything, mock.Anything)
		})
	}
}

func TestExportHandler_Export(t *testing.T) {
	es := &mockExportService{}
	router := setupTestRouter(&mockTranscriptionService{}, es)

	edited := []model.TranscriptionResult{{FileName: "a.mp3", Text: "edited"}}
	es.On("Export", mock.Anything, "csv", edited).Return(&model.ExportArtifact{
		FileName: "transcriptions.csv",
		MIMEType: "text/csv",
		Data:     []byte("\xEF\xBB\xBFfilename,transcribed_text\na.mp3,edited\n"),
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports",
		bytes.NewBufferString(`{"format":"csv","results":[{"filename":"a.mp3","text":"edited"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "a.mp3,edited")
	es.AssertExpectations(t)
}

func TestExportHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty results", `{"format":"csv","results":[]}`},
		{"missing results", `{"format":"csv"}`},
		{"bad format", `{"format":"pdf","results":[{"filename":"a.mp3","text":"x"}]}`},
		{"missing filename", `{"results":[{"text":"x"}]}`},
		{"blank filename", `{"results":[{"filename":"a.mp3","text":"x"},{"filename":"  ","text":"y"}]}`},
		{"malformed json", `{"results":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := &mockExportService{}
			router := setupTestRouter(&mockTranscriptionService{}, es)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			es.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExportHandler_ServiceError(t *testing.T) {
	es := &mockExportService{}
	router := setupTestRouter(&mockTranscriptionService{}, es)
	es.On("Export", mock.Anything, "", mock.Anything).
		Return(nil, errors.NewInternalError("Failed to create the export file")).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports",
		bytes.NewBufferString(`{"results":[{"filename":"a.mp3","text":"x"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to create the export file")
}
