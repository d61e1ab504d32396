package chat

import "errors"

var (
	ErrServiceUnavailable = errors.New("chat pipeline is not fully configured")
	ErrGeneration         = errors.New("text generation failed")
	ErrInternalPipeline   = errors.New("internal pipeline error")
)

// ValidationError rejects a message before classification.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
