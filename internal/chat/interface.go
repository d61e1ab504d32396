package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Process runs one message through the pipeline. It never fails: every
	// problem is reported as an error-kind result.
	Process(ctx context.Context, input ProcessInput) ProcessedResult
	ValidateMessage(message string) ValidationResult
}
