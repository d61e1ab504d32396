package usecase

import (
	"context"
	"fmt"

	"hotel-assistant/internal/chat"
	"hotel-assistant/internal/intent"
)

func (uc *implUseCase) navigate(ctx context.Context, input chat.ProcessInput, role string, in intent.Intent) chat.ProcessedResult {
	if uc.resolver == nil {
		err := fmt.Errorf("%s: %w: resolver", LogPrefixNavigate, chat.ErrServiceUnavailable)
		uc.l.Errorf(ctx, "%v", err)
		return uc.failure(chat.CodeServiceUnavailable, uc.apology(), err, nil)
	}

	nav := uc.resolver.ResolvePrompt(input.Message, role, input.User.EffectiveRoleIDs())
	uc.l.Infof(ctx, "%s: action=%s route=%s", LogPrefixNavigate, nav.Action, nav.Route)

	return chat.ProcessedResult{
		Kind:         chat.KindNavigation,
		Text:         nav.Message,
		QuickReplies: uc.classifier.QuickReplies(input.Message, role, in),
		Navigation:   &nav,
	}
}
