package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	delay      time.Duration

	mu        sync.Mutex
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Text: "Hello"}}}
}

func okResponse(provider string) *Response {
	return &Response{
		Text:         "Hello from " + provider,
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.calls() != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.calls())
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn messages, got: %d, %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}

	// Primary should be called RetryAttempts times (2)
	if primary.calls() != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.calls())
	}
	if secondary.calls() != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.calls())
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 info and 1 warn messages, got: %d, %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", shouldFail: true}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "secondary" {
		t.Errorf("Expected last ProviderError from secondary, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.calls() != 2 || secondary.calls() != 2 {
		t.Errorf("Expected 2 calls each, got: %d, %d", primary.calls(), secondary.calls())
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.calls() != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.calls())
	}
	if secondary.calls() != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.calls())
	}
}

func TestGenerateContent_EmptyTextFallsBack(t *testing.T) {
	blank := &mockProvider{name: "blank", model: "m", response: &Response{Text: "  ", Usage: &Usage{}}}
	secondary := &mockProvider{name: "secondary", model: "m", response: okResponse("secondary")}

	manager := NewManager([]Provider{blank, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected fallback to secondary, got: %s", resp.ProviderName)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "m", delay: time.Second, response: okResponse("slow")}
	never := &mockProvider{name: "never", model: "m", response: okResponse("never")}

	manager := NewManager([]Provider{slow, never}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("Expected ErrProviderTimeout, got: %v", err)
	}
	if never.calls() != 0 {
		t.Errorf("Expected second provider not to be called after timeout, got %d", never.calls())
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	p := &mockProvider{name: "p", model: "m", response: okResponse("p")}
	manager := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, &mockLogger{})

	for _, req := range []*Request{nil, {}, {Messages: []Message{{Role: RoleUser, Text: "  "}}}} {
		if _, err := manager.GenerateContent(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("Expected ErrInvalidRequest, got: %v", err)
		}
	}
	if p.calls() != 0 {
		t.Errorf("Expected provider not to be called, got %d", p.calls())
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager([]Provider{}, &Config{FallbackEnabled: true, RetryAttempts: 3}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

func TestProviders(t *testing.T) {
	manager := NewManager([]Provider{
		&mockProvider{name: "qwen"},
		&mockProvider{name: "gemini"},
	}, &Config{}, &mockLogger{})

	got := manager.Providers()
	if len(got) != 2 || got[0] != "qwen" || got[1] != "gemini" {
		t.Errorf("Providers() = %v", got)
	}
}
