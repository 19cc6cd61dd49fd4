package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockTranscriber returns canned transcriptions for words
type MockTranscriber struct {
	Transcriptions map[string]string
	Errors         map[string]error

	mu    sync.Mutex
	Calls []string
}

// FetchTranscription mocks a transcription lookup
func (m *MockTranscriber) FetchTranscription(ctx context.Context, word string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, word)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	if transcription, ok := m.Transcriptions[word]; ok {
		return transcription, nil
	}
	return "", fmt.Errorf("no transcription for %q", word)
}
