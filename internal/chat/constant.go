package chat

// Validation messages
const (
	MsgEmptyMessage   = "Message cannot be empty"
	MsgTooLongMessage = "Message too long (max %d characters)"
)

// Defaults
const (
	DefaultMaxMessageLength = 2000
)

// InternalErrorText is shown when the pipeline cannot produce an answer at all.
const InternalErrorText = "Xin lỗi, đã có lỗi xảy ra khi xử lý tin nhắn của bạn. Vui lòng thử lại sau."
