package ai

import "context"

// MockProvider is a test double for AI providers. Responses are served in
// order when more than one is queued, sticking on the last.
type MockProvider struct {
	Responses   []string
	Err         error
	Requests    []CompletionRequest // captures every request for inspection
	LastRequest *CompletionRequest
}

// NewMockProvider creates a MockProvider that returns the given responses.
func NewMockProvider(responses ...string) *MockProvider {
	return &MockProvider{Responses: responses}
}

func (m *MockProvider) Complete(_ context.Context, req CompletionRequest) (CompletionResponse, error) {
	m.Requests = append(m.Requests, req)
	m.LastRequest = &m.Requests[len(m.Requests)-1]
	if m.Err != nil {
		return CompletionResponse{}, m.Err
	}

	content := ""
	if len(m.Responses) > 0 {
		idx := len(m.Requests) - 1
		if idx >= len(m.Responses) {
			idx = len(m.Responses) - 1
		}
		content = m.Responses[idx]
	}

	return CompletionResponse{
		Content:      content,
		Model:        "mock",
		InputTokens:  10,
		OutputTokens: len(content),
	}, nil
}

func (m *MockProvider) Models() []ModelInfo {
	return []ModelInfo{
		{ID: "mock", Name: "Mock Model", MaxTokens: 4096, Description: "Test mock"},
	}
}

func (m *MockProvider) HealthCheck(_ context.Context) error {
	return m.Err
}
