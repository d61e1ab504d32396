package chat

import (
	"time"

	"hotel-assistant/internal/composer"
	"hotel-assistant/internal/intent"
	"hotel-assistant/internal/model"
	"hotel-assistant/internal/navigation"
)

// Kind tags which branch produced a result.
type Kind string

const (
	KindNavigation Kind = "navigation"
	KindPrompt     Kind = "prompt"
	KindChat       Kind = "chat"
	KindError      Kind = "error"
)

// FailureCode is the stable, caller-visible reason of an error-kind result.
type FailureCode string

const (
	CodeValidation         FailureCode = "VALIDATION_ERROR"
	CodeGeneration         FailureCode = "GENERATION_ERROR"
	CodeInternalPipeline   FailureCode = "INTERNAL_PIPELINE_ERROR"
	CodeServiceUnavailable FailureCode = "SERVICE_UNAVAILABLE"
)

// ProcessInput is one chat request. History is oldest first.
type ProcessInput struct {
	Message string
	History []model.Message
	User    model.UserContext
}

// ProcessedResult is the pipeline output.
// Navigation is set only for KindNavigation, Generation only for KindPrompt and
// KindChat, Failure only for KindError.
type ProcessedResult struct {
	Kind         Kind
	Text         string
	QuickReplies []string
	Metadata     Metadata

	Navigation *navigation.Result
	Generation *Generation
	Failure    *Failure
}

// IsNavigation reports whether the front end should treat the result as a page action.
func (r ProcessedResult) IsNavigation() bool {
	return r.Kind == KindNavigation
}

// Metadata describes how a result was produced.
type Metadata struct {
	Intent      *intent.Intent
	ProcessedAt time.Time
	Duration    time.Duration
}

// Generation describes a composed and generated answer.
type Generation struct {
	HasSpecificData bool
	Entities        []composer.ExtractedEntity
}

// Failure explains an error-kind result. Message is safe to show; Err is for logs only.
type Failure struct {
	Code    FailureCode
	Message string
	Err     error
}

// ValidationResult is the outcome of ValidateMessage.
type ValidationResult struct {
	Valid bool
	Error string
}
