// Package testutil provides shared helpers for tests across the application.
//
// It contains two components:
//
// 1. Mock Transcriber (mock_transcriber.go):
//   - MockTranscriber: testify mock of api.Transcriber that records what it saw on disk
//
// 2. Test Data Fixtures (fixtures.go):
//   - Upload builders for accepted, oversized and unreadable files
//   - Sample transcription results for export tests
//   - Directory assertions for temp-file cleanup checks
//
// # Usage Examples
//
//	func TestBatch(t *testing.T) {
//	    transcriber := testutil.NewMockTranscriber()
//	    transcriber.On("Transcript", "audio-a").Return("hello", nil).Once()
//
//	    adapter := api.NewAdapter(transcriber, t.TempDir(), nil)
//	    // ...
//	    transcriber.AssertExpectations(t)
//	}
package testutil
