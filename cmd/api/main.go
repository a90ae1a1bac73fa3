package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agentforge/config"
	_ "agentforge/docs" // Swagger docs
	agentHandler "agentforge/internal/agent/handler"
	assistantHTTP "agentforge/internal/assistant/delivery/http"
	assistantUC "agentforge/internal/assistant/usecase"
	convJob "agentforge/internal/conversation/delivery/job"
	convRepo "agentforge/internal/conversation/repository/sqlite"
	convUC "agentforge/internal/conversation/usecase"
	evalRepo "agentforge/internal/evaluation/repository/sqlite"
	evalUC "agentforge/internal/evaluation/usecase"
	"agentforge/internal/httpserver"
	"agentforge/internal/middleware"
	"agentforge/internal/model"
	"agentforge/internal/router"
	"agentforge/pkg/embedding"
	"agentforge/pkg/llmprovider"
	"agentforge/pkg/log"
	"agentforge/pkg/sqlite"
)

// @title       AgentForge API
// @description Semantic routing to specialist LLM agents, LLM-as-judge scoring and human feedback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "agentforge: %v", err)
		stop()
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting AgentForge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Conversation.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// 4. Conversation log + retention pruning
	conversationRepo, err := convRepo.New(ctx, db, logger)
	if err != nil {
		return err
	}
	conversationUC := convUC.New(conversationRepo, cfg.Conversation.MaxContextMessages, logger)

	pruner, err := convJob.New(conversationUC, cfg.Conversation.PruneSchedule, cfg.Conversation.Retention, logger)
	if err != nil {
		return err
	}
	pruner.Start(ctx)
	defer pruner.Stop()

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("initialize LLM providers: %w", err)
	}
	llm := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	// 6. Embeddings + router
	encoder, err := embedding.NewFromConfig(ctx, embedding.ProviderConfig{
		Provider:  cfg.Embedding.Provider,
		Model:     cfg.Embedding.Model,
		APIKey:    cfg.Embedding.APIKey,
		BaseURL:   cfg.Embedding.BaseURL,
		CacheSize: cfg.Embedding.CacheSize,
		CacheTTL:  cfg.Embedding.CacheTTL,
	})
	if err != nil {
		return fmt.Errorf("initialize %s encoder: %w", cfg.Embedding.Provider, err)
	}

	var catalog *router.Catalog
	if cfg.Router.CatalogPath != "" {
		if catalog, err = router.LoadCatalog(cfg.Router.CatalogPath); err != nil {
			return err
		}
	}

	defaultCategory, err := model.ParseCategory(cfg.Router.DefaultCategory)
	if err != nil {
		return fmt.Errorf("router.default_category: %w", err)
	}

	semanticRouter, err := router.New(ctx, encoder, llm, catalog, router.Config{
		Threshold:       router.Float(cfg.Router.Threshold),
		DefaultCategory: defaultCategory,
		FallbackTimeout: cfg.Router.FallbackTimeout,
		BatchSize:       cfg.Embedding.BatchSize,
	}, logger)
	if err != nil {
		return err
	}

	// 7. Category handlers
	handlers, err := agentHandler.NewRegistry(llm, conversationUC, agentHandler.Config{
		Timeout:     cfg.Handler.Timeout,
		Temperature: llmprovider.Float(cfg.Handler.Temperature),
		MaxTokens:   cfg.Handler.MaxTokens,
	}, logger)
	if err != nil {
		return err
	}

	// 8. Evaluation
	feedbackRepo, err := evalRepo.New(ctx, db, logger)
	if err != nil {
		return err
	}
	evaluationUC := evalUC.New(llm, feedbackRepo, cfg.Handler.Timeout, logger)

	// 9. Assistant + HTTP
	uc := assistantUC.New(semanticRouter, handlers, evaluationUC, logger)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		MetricsEnabled:   cfg.Metrics.Enabled,
		Middleware:       middleware.New(logger, middleware.Config{RequestsPerMin: cfg.RateLimit.RequestsPerMin}),
		AssistantHandler: assistantHTTP.New(logger, uc),
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 10. Run
	return httpServer.Run(ctx)
}
