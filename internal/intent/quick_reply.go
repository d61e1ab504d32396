package intent

import "strings"

// QuickReplies picks canned follow-up suggestions for a classified message.
// It is a pure function of its arguments and always returns a fresh slice.
func (c *RuleClassifier) QuickReplies(message, role string, in Intent) []string {
	role = strings.ToLower(strings.TrimSpace(role))

	switch in.Type {
	case TypeNavigation:
		return pickByKey(c.tables.navReplies, role)
	case TypeDatabaseQuery:
		if replies, ok := c.tables.categoryReplies[in.Subtype]; ok {
			return clone(replies)
		}
	case TypePrompt:
		return clone(c.tables.promptReplies)
	}

	lower := strings.ToLower(message)
	for _, topic := range c.tables.topicReplies {
		if containsAny(lower, topic.Keywords) {
			return clone(topic.Replies)
		}
	}
	return pickByKey(c.tables.roleReplies, role)
}

func pickByKey(table map[string][]string, key string) []string {
	if replies, ok := table[key]; ok {
		return clone(replies)
	}
	return clone(table[DefaultKey])
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
