package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"hotel-assistant/internal/chat"
)

// ValidateMessage rejects empty, blank and over-long messages. Length counts runes.
func (uc *implUseCase) ValidateMessage(message string) chat.ValidationResult {
	if strings.TrimSpace(message) == "" {
		return chat.ValidationResult{Error: chat.MsgEmptyMessage}
	}
	if utf8.RuneCountInString(message) > uc.opts.MaxMessageLength {
		return chat.ValidationResult{Error: fmt.Sprintf(chat.MsgTooLongMessage, uc.opts.MaxMessageLength)}
	}
	return chat.ValidationResult{Valid: true}
}
