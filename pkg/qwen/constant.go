package qwen

import "time"

const (
	DefaultModel   = "qwen-plus"
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DefaultTimeout = 30 * time.Second

	RoleSystem = "system"

	chatCompletionsPath = "/chat/completions"
	maxErrorBody        = 4 << 10
)
