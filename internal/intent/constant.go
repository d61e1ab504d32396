package intent

// Confidence levels
const (
	MaxConfidence        = 0.95
	NavigationConfidence = 0.95
	PromptConfidence     = 0.8
	ChatConfidence       = 0.7
	RoleKeywordBonus     = 0.2
)

// Subtypes
const (
	SubtypePageNavigation = "page_navigation"
	SubtypeAIAssistance   = "ai_assistance"
	SubtypeGeneralChat    = "general_chat"
	QueryTypeGeneral      = "general_query"
)

// DefaultKey selects the fallback entry of a role keyed table.
const DefaultKey = "default"

// Hint keys read from the classification context
const (
	HintUserRole = "userRole"
)
