package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/chat"
	"hotel-assistant/internal/intent"
	"hotel-assistant/internal/middleware"
	"hotel-assistant/internal/navigation"
	"hotel-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Chat domain
	chatUC     chat.UseCase
	classifier intent.Classifier
	resolver   navigation.Resolver
	mw         middleware.Middleware

	// readiness probe, nil means always ready
	ready func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Chat domain
	ChatUseCase chat.UseCase
	Classifier  intent.Classifier
	Resolver    navigation.Resolver
	Middleware  middleware.Middleware

	Ready func() error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		chatUC:          cfg.ChatUseCase,
		classifier:      cfg.Classifier,
		resolver:        cfg.Resolver,
		mw:              cfg.Middleware,
		ready:           cfg.Ready,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = DefaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil || srv.classifier == nil || srv.resolver == nil {
		return errors.New("chat use case, classifier and resolver are required")
	}
	return nil
}
