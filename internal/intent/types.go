package intent

// Type is the action category of a user message.
type Type string

const (
	TypeNavigation    Type = "navigation"
	TypeDatabaseQuery Type = "database_query"
	TypePrompt        Type = "prompt"
	TypeChat          Type = "chat"
)

// Priority returns the fixed priority of the type (1 is highest).
// It is informational only and never used to re-rank a classification.
func (t Type) Priority() int {
	switch t {
	case TypeNavigation:
		return 1
	case TypeDatabaseQuery:
		return 2
	case TypePrompt:
		return 3
	default:
		return 4
	}
}

// Intent is the outcome of one classification.
type Intent struct {
	Type       Type     `json:"type"`
	Priority   int      `json:"priority"`
	Confidence float64  `json:"confidence"`
	Subtype    string   `json:"subtype"`
	Keywords   []string `json:"keywords"`
	QueryType  string   `json:"queryType,omitempty"`
}

// Category is one database-query category with its ordered keyword and query-type lists.
type Category struct {
	Name       string          `yaml:"name"`
	Keywords   []string        `yaml:"keywords"`
	QueryTypes []QueryTypeRule `yaml:"query_types"`
}

// QueryTypeRule maps a sub-keyword to a query type inside a category.
type QueryTypeRule struct {
	Keyword   string `yaml:"keyword"`
	QueryType string `yaml:"query_type"`
}

// TopicReplies is a quick-reply set chosen when any of its keywords occurs in the message.
type TopicReplies struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Replies  []string `yaml:"replies"`
}

type quickReplyFile struct {
	Navigation map[string][]string `yaml:"navigation"`
	Categories map[string][]string `yaml:"categories"`
	Prompt     []string            `yaml:"prompt"`
	Topics     []TopicReplies      `yaml:"topics"`
	Roles      map[string][]string `yaml:"roles"`
}

type tablesFile struct {
	NavigationPhrases []string                      `yaml:"navigation_phrases"`
	Categories        []Category                    `yaml:"categories"`
	RoleKeywords      map[string][]string           `yaml:"role_keywords"`
	CategoryRoleBoost map[string]map[string]float64 `yaml:"category_role_boost"`
	PromptKeywords    []string                      `yaml:"prompt_keywords"`
	PromptIndicators  []string                      `yaml:"prompt_indicators"`
	ChatSubtypes      map[string]string             `yaml:"chat_subtypes"`
	QuickReplies      quickReplyFile                `yaml:"quick_replies"`
}
