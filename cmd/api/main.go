package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-assistant/config"
	_ "hotel-assistant/docs" // Swagger docs
	chatUC "hotel-assistant/internal/chat/usecase"
	"hotel-assistant/internal/composer"
	"hotel-assistant/internal/hotelctx/filestore"
	"hotel-assistant/internal/httpserver"
	"hotel-assistant/internal/intent"
	"hotel-assistant/internal/middleware"
	"hotel-assistant/internal/navigation"
	"hotel-assistant/internal/routes"
	"hotel-assistant/pkg/datemath"
	"hotel-assistant/pkg/llmprovider"
	"hotel-assistant/pkg/log"
)

// @title       Hotel Assistant API
// @description Intent routing and response orchestration for the hotel chat assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Hotel Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Keyword and route tables
	tables, err := loadIntentTables(cfg.Assistant.TablesPath)
	if err != nil {
		logger.Error(ctx, "Failed to load intent tables: ", err)
		return
	}
	routeTable, err := loadRouteTable(cfg.Assistant.RoutesPath)
	if err != nil {
		logger.Error(ctx, "Failed to load route table: ", err)
		return
	}

	// 4. Hotel facts
	store, err := filestore.New(filestore.Config{
		DataPath:  cfg.Hotel.DataPath,
		CacheTTL:  cfg.Hotel.CacheTTL,
		CacheSize: cfg.Hotel.CacheSize,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load hotel data: ", err)
		return
	}

	// DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Assistant.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. LLM providers (optional: without them generation answers SERVICE_UNAVAILABLE)
	var generator composer.TextGenerator
	manager, err := newProviderManager(ctx, cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "LLM providers unavailable, generation disabled: %v", err)
	} else {
		generator = composer.NewLLMGenerator(manager)
		logger.Infof(ctx, "LLM providers: %v", manager.Providers())
	}

	// 6. Chat pipeline
	classifier := intent.New(tables)
	resolver := navigation.New(routeTable)
	comp := composer.New(logger, store, dateMathParser, composer.Options{
		HistoryLimit: cfg.Assistant.HistoryLimit,
		SupportPhone: cfg.Assistant.SupportPhone,
	})
	uc := chatUC.New(logger, classifier, resolver, comp, generator, chatUC.Options{
		MaxMessageLength:  cfg.Assistant.MaxMessageLength,
		GenerationTimeout: cfg.Assistant.GenerationTimeout,
		Temperature:       cfg.Assistant.Temperature,
		MaxTokens:         cfg.Assistant.MaxTokens,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		ChatUseCase:     uc,
		Classifier:      classifier,
		Resolver:        resolver,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
			Burst:            cfg.RateLimit.Burst,
			MaxClients:       cfg.RateLimit.MaxClients,
		}),
		Ready: func() error {
			if generator == nil {
				return errors.New("no LLM provider initialized")
			}
			return nil
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func loadIntentTables(path string) (*intent.Tables, error) {
	if path == "" {
		return intent.LoadDefaultTables()
	}
	return intent.LoadTablesFile(path)
}

func loadRouteTable(path string) (*routes.Table, error) {
	if path == "" {
		return routes.LoadDefault()
	}
	return routes.LoadFile(path)
}

func newProviderManager(ctx context.Context, cfg config.LLMConfig, l log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg, l)
	if err != nil {
		return nil, err
	}

	retryDelay, err := parseDuration(cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	maxTotal, err := parseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, err
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, l), nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
