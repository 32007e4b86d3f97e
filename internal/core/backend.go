package core

import (
	"context"

	"rtutor/internal/llm"
)

// Backend abstracts the generative-text capability consumed by the agents.
// Implemented by *llm.Client, *llm.MockBackend, and *DemoBackend, so the
// live, test, and fallback paths all flow through the same interface.
type Backend interface {
	Complete(ctx context.Context, messages []llm.Message, opts llm.Options) (*llm.Completion, error)
}
