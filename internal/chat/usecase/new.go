package usecase

import (
	"time"

	"hotel-assistant/internal/chat"
	"hotel-assistant/internal/composer"
	"hotel-assistant/internal/intent"
	"hotel-assistant/internal/navigation"
	pkgLog "hotel-assistant/pkg/log"
)

// Options configures the pipeline.
type Options struct {
	MaxMessageLength  int
	GenerationTimeout time.Duration
	Temperature       float64
	MaxTokens         int
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	classifier intent.Classifier
	resolver   navigation.Resolver
	composer   composer.Composer
	generator  composer.TextGenerator
	opts       Options
	now        func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a chat UseCase. Missing collaborators are not an error here: requests
// that need them are answered with SERVICE_UNAVAILABLE.
func New(
	l pkgLog.Logger,
	classifier intent.Classifier,
	resolver navigation.Resolver,
	comp composer.Composer,
	gen composer.TextGenerator,
	opts Options,
) *implUseCase {
	if opts.MaxMessageLength <= 0 {
		opts.MaxMessageLength = chat.DefaultMaxMessageLength
	}
	if opts.GenerationTimeout <= 0 {
		opts.GenerationTimeout = DefaultGenerationTimeout
	}
	return &implUseCase{
		l:          l,
		classifier: classifier,
		resolver:   resolver,
		composer:   comp,
		generator:  gen,
		opts:       opts,
		now:        time.Now,
	}
}
