package deepseek

import "time"

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"

	// DeepSeek answers slower than the other providers under load.
	DefaultTimeout = 60 * time.Second

	RoleSystem = "system"

	chatCompletionsPath = "/chat/completions"
	maxErrorBody        = 4 << 10
)
