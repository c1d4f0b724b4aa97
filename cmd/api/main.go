package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"krishisaathi/config"
	_ "krishisaathi/docs" // Swagger docs
	"krishisaathi/internal/advisory"
	"krishisaathi/internal/advisory/usecase"
	"krishisaathi/internal/alert"
	"krishisaathi/internal/conversation"
	"krishisaathi/internal/farmer/memory"
	"krishisaathi/internal/httpserver"
	"krishisaathi/internal/i18n"
	"krishisaathi/internal/knowledge"
	"krishisaathi/pkg/llmprovider"
	"krishisaathi/pkg/log"
)

// @title       KrishiSaathi Advisory API
// @description Multilingual farmer advisory: crop, pest, disease and scheme guidance with generative and rule-based answers.
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

	logger.Info(ctx, "Starting KrishiSaathi...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Generative providers (optional: without them the rule engine answers)
	var llm *llmprovider.Manager
	if len(cfg.LLM.Providers) > 0 {
		providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
		if provErr != nil {
			logger.Warnf(ctx, "LLM providers unavailable, rule-based answers only: %v", provErr)
		} else {
			llm = llmprovider.NewManager(providers, &llmprovider.Config{
				FallbackEnabled: cfg.LLM.FallbackEnabled,
				RetryAttempts:   cfg.LLM.RetryAttempts,
				RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
				MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
			}, logger)
			logger.Infof(ctx, "LLM providers initialized: %d", len(providers))
		}
	} else {
		logger.Warn(ctx, "No LLM providers configured, rule-based answers only")
	}

	// 4. Knowledge base, conversation store, farmer repository
	kb := knowledge.Load()
	store := conversation.New(
		conversation.WithMaxConversations(cfg.Chat.MaxConversations),
		conversation.WithTTL(parseDuration(cfg.Chat.ConversationTTL, 2*time.Hour)),
	)
	farmers := memory.New()
	translator := i18n.NewStatic()

	// 5. Advisory use case. The nil check matters: a typed nil *Manager in
	// the generator interface would defeat the use case's own nil guard.
	var advisoryUC advisory.UseCase
	if llm != nil {
		advisoryUC = usecase.New(logger, llm, kb, store, farmers, translator)
	} else {
		advisoryUC = usecase.New(logger, nil, kb, store, farmers, translator)
	}

	// 6. Weather alert scheduler (optional)
	if cfg.Alert.Enabled {
		scheduler := alert.New(
			logger,
			farmers,
			alert.NewStaticFetcher(alert.Weather{Condition: "clear"}),
			alert.NewLogSender(logger),
			parseDuration(cfg.Alert.Interval, alert.DefaultInterval),
		)
		go scheduler.Run(ctx)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AdvisoryUC:      advisoryUC,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
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

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
