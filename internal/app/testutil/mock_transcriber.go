package testutil

import (
	"os"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a testify mock of api.Transcriber.
// Expectations are matched on the audio content read from the staged file,
// so tests do not need to know the generated temp path.
type MockTranscriber struct {
	mock.Mock
	mu sync.Mutex

	CallHistory []TranscriptionCall
}

// TranscriptionCall records what the transcriber observed during one call.
type TranscriptionCall struct {
	InputFilePath string
	Content       string
	Existed       bool
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{CallHistory: make([]TranscriptionCall, 0)}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	data, err := os.ReadFile(inputFilePath)

	m.mu.Lock()
	m.CallHistory = append(m.CallHistory, TranscriptionCall{
		InputFilePath: inputFilePath,
		Content:       string(data),
		Existed:       err == nil,
	})
	m.mu.Unlock()

	args := m.Called(string(data))
	if fn, ok := args.Get(0).(func(string) string); ok {
		return fn(string(data)), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

// Paths returns the staged paths seen so far, in call order.
func (m *MockTranscriber) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.CallHistory))
	for _, call := range m.CallHistory {
		paths = append(paths, call.InputFilePath)
	}
	return paths
}

// CallCount returns how many times Transcript ran.
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CallHistory)
}
