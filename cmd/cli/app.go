package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"agentforge/config"
	agentHandler "agentforge/internal/agent/handler"
	"agentforge/internal/assistant"
	assistantUC "agentforge/internal/assistant/usecase"
	convRepo "agentforge/internal/conversation/repository/memory"
	convUC "agentforge/internal/conversation/usecase"
	evalRepo "agentforge/internal/evaluation/repository/memory"
	evalUC "agentforge/internal/evaluation/usecase"
	"agentforge/internal/model"
	"agentforge/internal/router"
	"agentforge/pkg/embedding"
	"agentforge/pkg/llmprovider"
	"agentforge/pkg/log"
)

// app is the in-process assistant used by one CLI invocation.
// Conversation turns and feedback live in memory for the lifetime of the command.
type app struct {
	uc assistant.UseCase
	zl *zap.Logger
}

func (a *app) Close() {
	_ = a.zl.Sync()
}

// noRouter is used when the command never classifies, so the catalog is not encoded.
type noRouter struct{}

func (noRouter) Route(context.Context, string) (router.Decision, error) {
	return router.Decision{}, fmt.Errorf("routing is disabled for this command")
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFile(opts.configPath)
	}
	return config.Load()
}

func newApp(ctx context.Context, opts *rootOptions, withRouter bool) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	zl, err := newStderrLogger(opts.logLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewZap(zl)

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM providers: %w", err)
	}
	llm := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), logger)

	var r router.Router = noRouter{}
	if withRouter {
		if r, err = newRouter(ctx, cfg, llm, logger); err != nil {
			return nil, err
		}
	}

	conversation := convUC.New(convRepo.New(), cfg.Conversation.MaxContextMessages, logger)
	handlers, err := agentHandler.NewRegistry(llm, conversation, agentHandler.Config{
		Timeout:     cfg.Handler.Timeout,
		Temperature: llmprovider.Float(cfg.Handler.Temperature),
		MaxTokens:   cfg.Handler.MaxTokens,
	}, logger)
	if err != nil {
		return nil, err
	}

	eval := evalUC.New(llm, evalRepo.New(), cfg.Handler.Timeout, logger)

	return &app{
		uc: assistantUC.New(r, handlers, eval, logger),
		zl: zl,
	}, nil
}

// newStderrLogger keeps stdout free for command output.
func newStderrLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func newRouter(ctx context.Context, cfg *config.Config, llm router.Generator, l log.Logger) (router.Router, error) {
	encoder, err := embedding.NewFromConfig(ctx, embedding.ProviderConfig{
		Provider:  cfg.Embedding.Provider,
		Model:     cfg.Embedding.Model,
		APIKey:    cfg.Embedding.APIKey,
		BaseURL:   cfg.Embedding.BaseURL,
		CacheSize: cfg.Embedding.CacheSize,
		CacheTTL:  cfg.Embedding.CacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize %s encoder: %w", cfg.Embedding.Provider, err)
	}

	var catalog *router.Catalog
	if cfg.Router.CatalogPath != "" {
		if catalog, err = router.LoadCatalog(cfg.Router.CatalogPath); err != nil {
			return nil, err
		}
	}

	defaultCategory, err := model.ParseCategory(cfg.Router.DefaultCategory)
	if err != nil {
		return nil, fmt.Errorf("router.default_category: %w", err)
	}

	return router.New(ctx, encoder, llm, catalog, router.Config{
		Threshold:       router.Float(cfg.Router.Threshold),
		DefaultCategory: defaultCategory,
		FallbackTimeout: cfg.Router.FallbackTimeout,
		BatchSize:       cfg.Embedding.BatchSize,
	}, l)
}
