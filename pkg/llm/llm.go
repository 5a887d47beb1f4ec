package llm

import "context"

// LLM is a hosted text-generation endpoint. Chat sends one system prompt and
// one user prompt and returns the model's free-form text.
type LLM interface {
	Chat(ctx context.Context, system, prompt string) (string, error)
	Model() string
}
