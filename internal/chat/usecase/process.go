package usecase

import (
	"context"
	"fmt"

	"hotel-assistant/internal/chat"
	"hotel-assistant/internal/intent"
)

// Process validates, classifies and dispatches one message. Panics raised by any
// stage are recovered into an INTERNAL_PIPELINE_ERROR result.
func (uc *implUseCase) Process(ctx context.Context, input chat.ProcessInput) (out chat.ProcessedResult) {
	start := uc.now()
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s: %w: panic: %v", LogPrefixProcess, chat.ErrInternalPipeline, r)
			uc.l.Errorf(ctx, "%v", err)
			out = uc.failure(chat.CodeInternalPipeline, uc.apology(), err, nil)
		}
		out.Metadata.ProcessedAt = start
		out.Metadata.Duration = uc.now().Sub(start)
	}()

	if v := uc.ValidateMessage(input.Message); !v.Valid {
		return uc.failure(chat.CodeValidation, v.Error, &chat.ValidationError{Message: v.Error}, nil)
	}

	if uc.classifier == nil {
		err := fmt.Errorf("%s: %w: classifier", LogPrefixProcess, chat.ErrServiceUnavailable)
		uc.l.Errorf(ctx, "%v", err)
		return uc.failure(chat.CodeServiceUnavailable, uc.apology(), err, nil)
	}

	role := input.User.EffectiveRole()
	in := uc.classifier.Classify(input.Message, role, input.User.Raw)
	uc.l.Debugf(ctx, "%s: type=%s subtype=%s confidence=%.2f", LogPrefixProcess, in.Type, in.Subtype, in.Confidence)

	var res chat.ProcessedResult
	switch in.Type {
	case intent.TypeNavigation:
		res = uc.navigate(ctx, input, role, in)
	case intent.TypePrompt:
		res = uc.generate(ctx, input, in, true)
	default:
		res = uc.generate(ctx, input, in, false)
	}

	res.Metadata.Intent = &in
	return res
}

func (uc *implUseCase) failure(code chat.FailureCode, text string, err error, replies []string) chat.ProcessedResult {
	if replies == nil {
		replies = []string{}
	}
	return chat.ProcessedResult{
		Kind:         chat.KindError,
		Text:         text,
		QuickReplies: replies,
		Failure: &chat.Failure{
			Code:    code,
			Message: text,
			Err:     err,
		},
	}
}

func (uc *implUseCase) apology() string {
	if uc.composer != nil {
		return uc.composer.FallbackText()
	}
	return chat.InternalErrorText
}
