package gk

import (
	"context"
	"testing"
)

func TestDirFromContext(t *testing.T) {
	ctx := context.Background()
	if got := DirFromContext(ctx); got != "." {
		t.Errorf("expected default dir %q, got %q", ".", got)
	}

	ctx = ContextWithDir(ctx, "/tmp/project")
	if got := DirFromContext(ctx); got != "/tmp/project" {
		t.Errorf("expected %q, got %q", "/tmp/project", got)
	}
}

func TestVerbose(t *testing.T) {
	ctx := context.Background()
	if Verbose(ctx) {
		t.Error("verbose should default to false")
	}
	if !Verbose(ContextWithVerbose(ctx, true)) {
		t.Error("expected verbose to be true")
	}
}

func TestLoggerFromContext(t *testing.T) {
	if LoggerFromContext(context.Background()) == nil {
		t.Fatal("expected non-nil fallback logger")
	}

	l := NopLogger()
	ctx := ContextWithLogger(context.Background(), l)
	if got := LoggerFromContext(ctx); got != l {
		t.Error("expected to get the same logger back")
	}
}

func TestNewLogger_RejectsUnknownFormat(t *testing.T) {
	t.Setenv(EnvLogFormat, "")
	if _, err := NewLogger("test", LogConfig{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewLogger_EnvOverridesFormat(t *testing.T) {
	t.Setenv(EnvLogFormat, "json")
	if _, err := NewLogger("test", LogConfig{Format: "xml"}); err != nil {
		t.Fatalf("expected env format to take precedence, got %v", err)
	}
}
