package log

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_KeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core))

	ctx := WithRequestID(context.Background(), "req-1")
	l.Info(ctx, "intent.routing", "method", "semantic", "target", "PromptOptimizer")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "intent.routing" {
		t.Errorf("unexpected message %q", e.Message)
	}
	fields := e.ContextMap()
	if fields["method"] != "semantic" || fields["target"] != "PromptOptimizer" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["request_id"] != "req-1" {
		t.Errorf("expected request_id field, got %v", fields["request_id"])
	}
}

func TestZapLogger_PlainArgs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core))

	l.Error(context.Background(), "Failed to run server: ", errors.New("boom"))
	l.Warnf(context.Background(), "%s: %d", "retry", 3)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "Failed to run server: boom" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if entries[1].Message != "retry: 3" {
		t.Errorf("unexpected message %q", entries[1].Message)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOrNop(t *testing.T) {
	l := OrNop(nil)
	if l == nil {
		t.Fatal("expected no-op logger")
	}
	// Must not panic.
	l.Panic(context.Background(), "ignored")
	l.Fatalf(context.Background(), "%s", "ignored")
}
