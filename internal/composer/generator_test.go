package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-assistant/pkg/llmprovider"
	"hotel-assistant/pkg/log"
)

type stubProvider struct {
	got  *llmprovider.Request
	text string
	err  error
}

func (p *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.got = req
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{Text: p.text, ProviderName: "stub", ModelName: "stub-1"}, nil
}

func (p *stubProvider) Name() string  { return "stub" }
func (p *stubProvider) Model() string { return "stub-1" }

func TestLLMGenerator(t *testing.T) {
	t.Run("passes prompt and options", func(t *testing.T) {
		p := &stubProvider{text: "Xin chào quý khách"}
		gen := NewLLMGenerator(llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, log.NewNop()))

		out, err := gen.Generate(context.Background(), "hello", GenerateOptions{Temperature: 0.3, MaxTokens: 256})
		require.NoError(t, err)
		assert.Equal(t, "Xin chào quý khách", out)
		require.Len(t, p.got.Messages, 1)
		assert.Equal(t, llmprovider.RoleUser, p.got.Messages[0].Role)
		assert.Equal(t, "hello", p.got.Messages[0].Text)
		assert.Equal(t, 0.3, p.got.Temperature)
		assert.Equal(t, 256, p.got.MaxTokens)
	})

	t.Run("wraps failure", func(t *testing.T) {
		p := &stubProvider{err: errors.New("quota")}
		gen := NewLLMGenerator(llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, log.NewNop()))

		_, err := gen.Generate(context.Background(), "hello", GenerateOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, llmprovider.ErrAllProvidersFailed)
	})
}
