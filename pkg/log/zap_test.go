package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"event-planning-assistant/pkg/log"
)

func TestZapLogger_RequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewZap(zap.New(core))

	t.Run("with request id", func(t *testing.T) {
		ctx := log.WithRequestID(context.Background(), "req-123")
		l.Infof(ctx, "resolved %d vendors", 3)

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Message != "resolved 3 vendors" {
			t.Errorf("unexpected message: %q", entries[0].Message)
		}
		if got := entries[0].ContextMap()["request_id"]; got != "req-123" {
			t.Errorf("expected request_id req-123, got %v", got)
		}
	})

	t.Run("without request id", func(t *testing.T) {
		l.Warn(context.Background(), "place search degraded")

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if _, ok := entries[0].ContextMap()["request_id"]; ok {
			t.Errorf("did not expect request_id field")
		}
	})
}

func TestRequestIDFromContext(t *testing.T) {
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
	ctx := log.WithRequestID(context.Background(), "abc")
	if got := log.RequestIDFromContext(ctx); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}

func TestInit_UnknownLevelFallsBack(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "verbose", Mode: "debug", Encoding: "console"})
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Debug(context.Background(), "dropped at info level")
}
