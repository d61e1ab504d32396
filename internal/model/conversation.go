package model

// Conversation roles
const (
	SpeakerUser      = "user"
	SpeakerAssistant = "assistant"
)

// Message is one turn of a conversation history supplied by the caller.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
