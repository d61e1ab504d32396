package composer

import (
	"context"
	"fmt"

	"hotel-assistant/pkg/llmprovider"
)

type llmGenerator struct {
	manager *llmprovider.Manager
}

// NewLLMGenerator adapts the provider manager to TextGenerator.
func NewLLMGenerator(m *llmprovider.Manager) TextGenerator {
	return &llmGenerator{manager: m}
}

func (g *llmGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	resp, err := g.manager.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Text: prompt},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixGenerate, err)
	}
	return resp.Text, nil
}
