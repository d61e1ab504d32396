package intent

import (
	"strings"
)

// Classify runs the fixed stage order navigation → database query → prompt → chat.
// The first satisfied stage wins. It never fails; unmapped input becomes a chat intent.
func (c *RuleClassifier) Classify(message, role string, hints map[string]any) Intent {
	if role == "" {
		if r, ok := hints[HintUserRole].(string); ok {
			role = r
		}
	}
	role = strings.ToLower(strings.TrimSpace(role))
	lower := strings.ToLower(message)

	if in, ok := c.classifyNavigation(lower); ok {
		return in
	}
	if in, ok := c.classifyDatabaseQuery(lower, role); ok {
		return in
	}
	if in, ok := c.classifyPrompt(lower); ok {
		return in
	}
	return c.classifyChat(lower, role)
}

// classifyNavigation fires only when no database keyword is present, so that
// "trang đặt phòng" is read as a booking question rather than a page switch.
func (c *RuleClassifier) classifyNavigation(lower string) (Intent, bool) {
	if !containsAny(lower, c.tables.navigationPhrases) {
		return Intent{}, false
	}
	if c.hasDatabaseKeyword(lower) {
		return Intent{}, false
	}

	return Intent{
		Type:       TypeNavigation,
		Priority:   TypeNavigation.Priority(),
		Confidence: NavigationConfidence,
		Subtype:    SubtypePageNavigation,
		Keywords:   matchAll(lower, c.tables.navigationPhrases),
	}, true
}

func (c *RuleClassifier) hasDatabaseKeyword(lower string) bool {
	for _, cat := range c.tables.categories {
		if containsAny(lower, cat.Keywords) {
			return true
		}
	}
	return false
}

func (c *RuleClassifier) classifyDatabaseQuery(lower, role string) (Intent, bool) {
	var (
		best        *Category
		bestMatched []string
		bestScore   float64
	)

	roleKeywords := c.tables.roleKeywords[role]

	for i := range c.tables.categories {
		cat := &c.tables.categories[i]

		matched := matchAll(lower, cat.Keywords)
		if len(matched) == 0 {
			continue
		}

		score := float64(len(matched)) / float64(len(cat.Keywords))
		if anyContainsAny(matched, roleKeywords) {
			score += RoleKeywordBonus
		}
		score += c.tables.categoryRoleBoost[cat.Name][role]
		score = clampConfidence(score)

		// strictly greater keeps the earliest declared category on ties
		if best == nil || score > bestScore {
			best, bestMatched, bestScore = cat, matched, score
		}
	}

	if best == nil {
		return Intent{}, false
	}

	return Intent{
		Type:       TypeDatabaseQuery,
		Priority:   TypeDatabaseQuery.Priority(),
		Confidence: bestScore,
		Subtype:    best.Name,
		Keywords:   bestMatched,
		QueryType:  queryTypeFor(lower, best.QueryTypes),
	}, true
}

func (c *RuleClassifier) classifyPrompt(lower string) (Intent, bool) {
	matched := matchAll(lower, c.tables.promptKeywords)
	matched = append(matched, matchAll(lower, c.tables.promptIndicators)...)
	if len(matched) == 0 {
		return Intent{}, false
	}

	return Intent{
		Type:       TypePrompt,
		Priority:   TypePrompt.Priority(),
		Confidence: PromptConfidence,
		Subtype:    SubtypeAIAssistance,
		Keywords:   matched,
	}, true
}

func (c *RuleClassifier) classifyChat(lower, role string) Intent {
	subtype, ok := c.tables.chatSubtypes[role]
	if !ok {
		subtype = SubtypeGeneralChat
	}

	return Intent{
		Type:       TypeChat,
		Priority:   TypeChat.Priority(),
		Confidence: ChatConfidence,
		Subtype:    subtype,
		Keywords:   matchAll(lower, c.tables.roleKeywords[role]),
	}
}

func queryTypeFor(lower string, rules []QueryTypeRule) string {
	for _, r := range rules {
		if strings.Contains(lower, r.Keyword) {
			return r.QueryType
		}
	}
	return QueryTypeGeneral
}

func clampConfidence(v float64) float64 {
	if v > MaxConfidence {
		return MaxConfidence
	}
	return v
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// matchAll returns the phrases contained in s, in table order. Never nil.
func matchAll(s string, phrases []string) []string {
	out := []string{}
	for _, p := range phrases {
		if strings.Contains(s, p) {
			out = append(out, p)
		}
	}
	return out
}

// anyContainsAny reports whether any matched keyword textually contains any of needles.
func anyContainsAny(matched, needles []string) bool {
	for _, m := range matched {
		if containsAny(m, needles) {
			return true
		}
	}
	return false
}
