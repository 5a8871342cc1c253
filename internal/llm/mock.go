package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse scripts one answer for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider serves scripted answers in order and records every
// request it sees. It backs tests and the "mock" provider setting.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	served int

	// Calls holds every request passed to Generate, in order.
	Calls []Request
}

// NewMockProvider scripts the given answers.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// AddResponse appends an answer to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// Generate serves the next scripted answer. Running past the end of the
// script reports the provider as unavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if m.served >= len(m.script) {
		return nil, &Fault{Reason: ReasonUnavailable}
	}
	next := m.script[m.served]
	m.served++

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content: next.Content,
		Usage:   next.Usage,
		Model:   "mock",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
