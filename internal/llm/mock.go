package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for the mock provider. Err, when
// set, is returned instead of a response.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider plays back a fixed script of responses and records every
// request it sees. Tests inspect Calls to assert on prompts.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

// NewMockProvider builds a mock that will answer with the given script,
// in order. An empty script makes every call fail.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.script) == 0 {
		// Script exhausted. Same shape as a real outage.
		return nil, &ErrProviderUnavailable{}
	}

	next := m.script[0]
	m.script = m.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse queues one more scripted reply.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount reports how many Generate calls have been made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
