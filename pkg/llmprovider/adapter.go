package llmprovider

import (
	"context"

	"hotel-assistant/pkg/deepseek"
	"hotel-assistant/pkg/gemini"
	"hotel-assistant/pkg/qwen"
)

// Provider names
const (
	ProviderGemini   = "gemini"
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]qwen.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = qwen.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderQwen,
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return ProviderQwen
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, deepseek.Message{Role: deepseek.RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, deepseek.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Model:       a.client.Model(),
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: ProviderDeepSeek,
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return ProviderDeepSeek
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func usageOf(in, out, total int) *Usage {
	return &Usage{InputTokens: in, OutputTokens: out, TotalTokens: total}
}
