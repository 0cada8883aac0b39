package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected msg=%s in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("request_id", "r-1", "user", "U1").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "request_id=r-1", "user=U1", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_ContextPairsPrecedeCallPairs(t *testing.T) {
	log, buf := newTestLogger(t)

	ctx := ContextWith(context.Background(), "command", "crops")
	ctx = ContextWith(ctx, "role", "FARMER")
	log.Warn(ctx, "load failed", "error", "boom")

	out := buf.String()
	cmd := strings.Index(out, "command=crops")
	role := strings.Index(out, "role=FARMER")
	errAt := strings.Index(out, "error=boom")
	if cmd < 0 || role < 0 || errAt < 0 {
		t.Fatalf("expected context and call pairs in output, got:\n%s", out)
	}
	if !(cmd < role && role < errAt) {
		t.Fatalf("expected context pairs before call pairs, got:\n%s", out)
	}
}

func TestSlogLogger_BelowLevelIsDropped(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	log := NewSlogLogger(slog.New(h))

	ctx := ContextWith(context.Background(), "command", "crops")
	log.Debug(ctx, "dbg")
	log.Info(ctx, "inf")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got:\n%s", buf.String())
	}

	if log.With() != Logger(log) {
		t.Fatalf("expected With without pairs to return the same logger")
	}
}

func TestContextWith_DoesNotLeakIntoParent(t *testing.T) {
	parent := ContextWith(context.Background(), "a", 1)
	_ = ContextWith(parent, "b", 2)

	if got := contextArgs(parent); len(got) != 2 {
		t.Fatalf("parent context changed: %v", got)
	}
	if ContextWith(parent) != parent {
		t.Fatalf("expected ContextWith without pairs to return ctx unchanged")
	}
}
