package usecase

import (
	"context"
	"fmt"

	"hotel-assistant/internal/chat"
	"hotel-assistant/internal/composer"
	"hotel-assistant/internal/intent"
)

func (uc *implUseCase) generate(ctx context.Context, input chat.ProcessInput, in intent.Intent, direct bool) chat.ProcessedResult {
	if uc.composer == nil || uc.generator == nil {
		err := fmt.Errorf("%s: %w: composer or generator", LogPrefixGenerate, chat.ErrServiceUnavailable)
		uc.l.Errorf(ctx, "%v", err)
		return uc.failure(chat.CodeServiceUnavailable, uc.apology(), err, nil)
	}

	replies := uc.composer.QuickReplies(input.Message, quickReplyKey(in))

	var (
		comp composer.Composition
		err  error
	)
	if direct {
		comp, err = uc.composer.ComposeDirectPrompt(ctx, input.Message, input.History)
	} else {
		comp, err = uc.composer.ComposeChatPrompt(ctx, input.Message, input.History)
	}
	if err != nil {
		err = fmt.Errorf("%s: %w: %w", LogPrefixGenerate, chat.ErrInternalPipeline, err)
		uc.l.Errorf(ctx, "%v", err)
		return uc.failure(chat.CodeInternalPipeline, uc.composer.FallbackText(), err, replies)
	}

	genCtx, cancel := context.WithTimeout(ctx, uc.opts.GenerationTimeout)
	defer cancel()

	raw, err := uc.generator.Generate(genCtx, comp.Prompt, composer.GenerateOptions{
		Temperature: uc.opts.Temperature,
		MaxTokens:   uc.opts.MaxTokens,
	})
	if err != nil {
		err = fmt.Errorf("%s: %w: %w", LogPrefixGenerate, chat.ErrGeneration, err)
		uc.l.Errorf(ctx, "%v", err)
		return uc.failure(chat.CodeGeneration, uc.composer.FallbackText(), err, replies)
	}

	kind := chat.KindChat
	if direct {
		kind = chat.KindPrompt
	}
	return chat.ProcessedResult{
		Kind:         kind,
		Text:         composer.CleanGeneratedText(raw),
		QuickReplies: replies,
		Generation: &chat.Generation{
			HasSpecificData: comp.HasSpecificData,
			Entities:        comp.Entities,
		},
	}
}

// quickReplyKey picks the composer quick-reply table for an intent.
func quickReplyKey(in intent.Intent) string {
	switch {
	case in.Type == intent.TypePrompt:
		return composer.KeyDirectPrompt
	case in.Subtype == "bookings":
		return composer.KeyBooking
	case in.Subtype == "pricing":
		return composer.KeyPricing
	case in.Type == intent.TypeChat:
		return composer.KeyGeneral
	default:
		return composer.KeyHotelPrompt
	}
}
