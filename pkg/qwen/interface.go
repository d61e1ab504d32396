package qwen

import "context"

// IQwen talks to the OpenAI compatible DashScope endpoint.
type IQwen interface {
	// GenerateContent sends SystemInstruction as a leading system message.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
