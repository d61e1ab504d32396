package composer

import (
	"context"
	"fmt"
	"strings"

	"hotel-assistant/internal/model"
)

// ComposeChatPrompt builds a prompt with the full hotel context around message.
func (c *implComposer) ComposeChatPrompt(ctx context.Context, message string, history []model.Message) (Composition, error) {
	entities, err := c.extract(ctx, message)
	if err != nil {
		return Composition{}, fmt.Errorf("%s: %w", LogPrefixCompose, err)
	}

	sections := []string{PromptPersona}
	for _, src := range []struct {
		name  string
		fetch func(context.Context) (string, error)
	}{
		{"static", c.collab.StaticHotelContext},
		{"local", c.collab.LocalContext},
		{"dynamic", c.collab.DynamicContext},
	} {
		text, err := src.fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return Composition{}, fmt.Errorf("%s: %w", LogPrefixCompose, ctx.Err())
			}
			c.l.Warnf(ctx, "%s: %s context unavailable: %v", LogPrefixCompose, src.name, err)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			sections = append(sections, text)
		}
	}

	sections = append(sections, c.timeContext())
	if block := renderEntities(entities); block != "" {
		sections = append(sections, block)
	}
	if block := c.renderHistory(history); block != "" {
		sections = append(sections, block)
	}
	sections = append(sections, fmt.Sprintf(PromptUserMessage, message), PromptChatInstructions)

	return Composition{
		Prompt:          strings.Join(sections, "\n\n"),
		HasSpecificData: len(entities) > 0,
		Entities:        entities,
	}, nil
}

// ComposeDirectPrompt wraps a user supplied prompt with only the time block,
// extracted data and recent history.
func (c *implComposer) ComposeDirectPrompt(ctx context.Context, prompt string, history []model.Message) (Composition, error) {
	entities, err := c.extract(ctx, prompt)
	if err != nil {
		return Composition{}, fmt.Errorf("%s: %w", LogPrefixCompose, err)
	}

	sections := []string{c.timeContext()}
	if block := renderEntities(entities); block != "" {
		sections = append(sections, block)
	}
	if block := c.renderHistory(history); block != "" {
		sections = append(sections, block)
	}
	sections = append(sections, fmt.Sprintf(PromptDirectRequest, prompt), PromptDirectInstructions)

	return Composition{
		Prompt:          strings.Join(sections, "\n\n"),
		HasSpecificData: len(entities) > 0,
		Entities:        entities,
	}, nil
}

// FallbackText is the apology shown when generation fails.
func (c *implComposer) FallbackText() string {
	return fmt.Sprintf(FallbackTemplate, c.opts.SupportPhone)
}

func renderEntities(entities []ExtractedEntity) string {
	if len(entities) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(PromptSpecificDataHeader)
	for _, e := range entities {
		sb.WriteString("\n")
		sb.WriteString(e.Text)
	}
	return sb.String()
}

// renderHistory keeps the last HistoryLimit non-empty turns.
func (c *implComposer) renderHistory(history []model.Message) string {
	turns := make([]model.Message, 0, len(history))
	for _, m := range history {
		if strings.TrimSpace(m.Content) != "" {
			turns = append(turns, m)
		}
	}
	if len(turns) > c.opts.HistoryLimit {
		turns = turns[len(turns)-c.opts.HistoryLimit:]
	}
	if len(turns) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(PromptHistoryPrefix)
	for i, m := range turns {
		label := LabelUser
		if m.Role == model.SpeakerAssistant {
			label = LabelAssistant
		}
		fmt.Fprintf(&sb, "\n%d. %s: %s", i+1, label, strings.TrimSpace(m.Content))
	}
	return sb.String()
}
