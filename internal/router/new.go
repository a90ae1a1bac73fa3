package router

import (
	"context"
	"fmt"
	"time"

	"agentforge/internal/model"
	"agentforge/pkg/embedding"
	"agentforge/pkg/llmprovider"
	"agentforge/pkg/log"
)

// Router resolves free text to a category.
type Router interface {
	Route(ctx context.Context, text string) (Decision, error)
}

// Generator is the language-model call used for low-confidence requests.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes routing. Zero values take the defaults.
type Config struct {
	// Threshold is the similarity a match must exceed. nil uses DefaultThreshold;
	// any value in [-1,1), zero included, is taken as given.
	Threshold       *float64
	DefaultCategory model.Category
	FallbackTimeout time.Duration
	BatchSize       int
}

// SemanticRouter routes by embedding similarity, then by asking the model.
type SemanticRouter struct {
	encoder embedding.Encoder
	llm     Generator
	l       log.Logger

	routes     []Route
	embeddings []embedding.Vector

	threshold       float64
	defaultCategory model.Category
	fallbackTimeout time.Duration
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New encodes every catalog phrase once and returns a ready router.
// A nil catalog uses DefaultCatalog; a nil logger discards records.
func New(ctx context.Context, encoder embedding.Encoder, llm Generator, catalog *Catalog, cfg Config, l log.Logger) (*SemanticRouter, error) {
	if encoder == nil {
		return nil, ErrNoEncoder
	}
	if llm == nil {
		return nil, ErrNoGenerator
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	threshold := DefaultThreshold
	if cfg.Threshold != nil {
		threshold = *cfg.Threshold
	}
	if threshold < -1 || threshold >= 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = model.Categories()[0]
	}
	if !cfg.DefaultCategory.IsValid() {
		return nil, fmt.Errorf("router: default category: %w: %q", model.ErrUnknownCategory, cfg.DefaultCategory)
	}
	if cfg.FallbackTimeout <= 0 {
		cfg.FallbackTimeout = DefaultFallbackTimeout
	}

	l = log.OrNop(l)
	routes := catalog.Routes()
	vecs, err := embedding.EncodeBatched(ctx, encoder, catalog.phrases(), cfg.BatchSize, embedding.DefaultConcurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: encode catalog: %v", ErrEncoderUnavailable, err)
	}

	l.Infof(ctx, "%s: encoded %d catalog phrases with %s", LogPrefixNew, len(routes), encoder.Model())

	return &SemanticRouter{
		encoder:         encoder,
		llm:             llm,
		l:               l,
		routes:          routes,
		embeddings:      vecs,
		threshold:       threshold,
		defaultCategory: cfg.DefaultCategory,
		fallbackTimeout: cfg.FallbackTimeout,
	}, nil
}

// Float returns a pointer to v, for Config.Threshold.
func Float(v float64) *float64 {
	return &v
}

// Threshold returns the similarity above which semantic matches win.
func (r *SemanticRouter) Threshold() float64 {
	return r.threshold
}
