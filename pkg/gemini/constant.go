package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// Gemini names the assistant turn "model"; callers may pass "assistant".
	RoleUser      = "user"
	RoleModel     = "model"
	RoleAssistant = "assistant"

	generatePathFormat = "%s/models/%s:generateContent?key=%s"
	maxErrorBody       = 4 << 10
)
