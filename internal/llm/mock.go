package llm

import "context"

// MockProvider returns canned replies for local development and tests,
// selected by MOCK_LLM / LLM_PROVIDER=mock at startup.
type MockProvider struct {
	// Text overrides the default reply when non-empty.
	Text string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

const mockReply = `This is a mock reply from the local development provider.
It spans a few lines so flows that split replies into lists
have something to work with.`

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	text := m.Text
	if text == "" {
		text = mockReply
	}
	return &Response{
		Text:         text,
		InputTokens:  100,
		OutputTokens: 50,
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}
