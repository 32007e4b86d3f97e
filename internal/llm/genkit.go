package llm

import (
	"context"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// RegisterDeepSeekProvider registers the chat client as a Genkit model
// provider, so flows built on Genkit can call the same backend the pipeline
// agents use.
func RegisterDeepSeekProvider(ctx context.Context, client *Client) (*genkit.Genkit, error) {
	g := genkit.Init(ctx)

	genkit.DefineModel(
		g,
		"deepseek/chat",
		&ai.ModelOptions{
			Label: "DeepSeek Chat",
			Supports: &ai.ModelSupports{
				Multiturn:  true,
				SystemRole: true,
			},
		},
		func(ctx context.Context, req *ai.ModelRequest, cb ai.ModelStreamCallback) (*ai.ModelResponse, error) {
			messages := convertMessages(req.Messages)

			completion, err := client.Complete(ctx, messages, Options{})
			if err != nil {
				return nil, err
			}

			return &ai.ModelResponse{
				Request: req,
				Message: &ai.Message{
					Content: []*ai.Part{
						ai.NewTextPart(completion.Content),
					},
				},
			}, nil
		},
	)

	return g, nil
}

// convertMessages flattens Genkit messages into chat-completions messages.
func convertMessages(msgs []*ai.Message) []Message {
	converted := make([]Message, 0, len(msgs))
	for _, msg := range msgs {
		var sb strings.Builder
		for _, part := range msg.Content {
			if part.IsText() {
				sb.WriteString(part.Text)
			}
		}

		role := "user"
		switch msg.Role {
		case ai.RoleSystem:
			role = "system"
		case ai.RoleModel:
			role = "assistant"
		}

		converted = append(converted, Message{Role: role, Content: sb.String()})
	}
	return converted
}
