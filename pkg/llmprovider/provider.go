package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Conversation roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents one conversation turn
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

// Validate reports ErrInvalidRequest when there is nothing to send.
func (r *Request) Validate() error {
	if r == nil || len(r.Messages) == 0 {
		return ErrInvalidRequest
	}
	for _, m := range r.Messages {
		if strings.TrimSpace(m.Text) != "" {
			return nil
		}
	}
	return ErrInvalidRequest
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
