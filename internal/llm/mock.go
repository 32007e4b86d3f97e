package llm

import "context"

// MockBackend is a canned chat backend for testing.
type MockBackend struct {
	Response string
	Tokens   int
	Err      error

	Calls        int
	LastMessages []Message
	LastOptions  Options
}

// Complete returns the canned response or error and records the call.
func (m *MockBackend) Complete(ctx context.Context, messages []Message, opts Options) (*Completion, error) {
	m.Calls++
	m.LastMessages = messages
	m.LastOptions = opts

	if m.Err != nil {
		return nil, m.Err
	}
	return &Completion{Content: m.Response, TotalTokens: m.Tokens}, nil
}
