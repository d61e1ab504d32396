package usecase

import "time"

const (
	LogPrefixProcess  = "internal.chat.usecase.Process"
	LogPrefixNavigate = "internal.chat.usecase.navigate"
	LogPrefixGenerate = "internal.chat.usecase.generate"
)

const DefaultGenerationTimeout = 45 * time.Second
