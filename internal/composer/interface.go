package composer

import (
	"context"

	"hotel-assistant/internal/model"
)

// GenerateOptions tunes a single generation call.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

// TextGenerator turns a prompt into text. It may fail for network or quota reasons.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// Composer builds generation prompts and post-processes their answers.
type Composer interface {
	ComposeChatPrompt(ctx context.Context, message string, history []model.Message) (Composition, error)
	ComposeDirectPrompt(ctx context.Context, prompt string, history []model.Message) (Composition, error)
	QuickReplies(message, intentKey string) []string
	FallbackText() string
}
