// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agentforge"

var (
	RouteDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "router",
		Name:      "decisions_total",
		Help:      "Routing decisions by method (semantic, llm_fallback) and resolved category",
	}, []string{"method", "category"})

	RouteFallbackDefaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "router",
		Name:      "fallback_default_total",
		Help:      "Fallback classifications that resolved to the default category, by reason",
	}, []string{"reason"})

	RouteConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "router",
		Name:      "max_similarity",
		Help:      "Best cosine similarity between the input and the route catalog",
		Buckets:   []float64{0, 0.15, 0.3, 0.45, 0.6, 0.75, 0.9, 1},
	})

	EmbeddingLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "embedding",
		Name:      "latency_seconds",
		Help:      "Latency of encoder calls",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.2, 0.5, 1.0, 3.0},
	}, []string{"model"})

	EmbeddingCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "embedding",
		Name:      "cache_lookups_total",
		Help:      "Embedding cache lookups by result (hit, miss)",
	}, []string{"result"})

	HandlerLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "handler",
		Name:      "latency_seconds",
		Help:      "End-to-end category handler latency",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"category"})

	HandlerErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "handler",
		Name:      "errors_total",
		Help:      "Category handler failures",
	}, []string{"category"})

	HandlerQuality = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "handler",
		Name:      "quality_overall",
		Help:      "Overall heuristic quality score of handler output",
		Buckets:   []float64{0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
	}, []string{"category"})

	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "requests_total",
		Help:      "LLM provider calls by provider and outcome (success, failure)",
	}, []string{"provider", "outcome"})

	ProviderTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "tokens_total",
		Help:      "Tokens reported by LLM providers by direction (input, output)",
	}, []string{"provider", "direction"})

	JudgeVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "evaluation",
		Name:      "judge_verdicts_total",
		Help:      "Judge replies by outcome (valid, invalid_json, error)",
	}, []string{"outcome"})

	FeedbackRatings = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "evaluation",
		Name:      "feedback_rating",
		Help:      "Human ratings recorded through the feedback endpoint",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})
)
