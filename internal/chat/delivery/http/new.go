package http

import (
	"hotel-assistant/internal/chat"
	"hotel-assistant/internal/intent"
	"hotel-assistant/internal/navigation"
	"hotel-assistant/pkg/log"
)

type handler struct {
	l          log.Logger
	uc         chat.UseCase
	classifier intent.Classifier
	resolver   navigation.Resolver
}

// New creates the HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, classifier intent.Classifier, resolver navigation.Resolver) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		classifier: classifier,
		resolver:   resolver,
	}
}
