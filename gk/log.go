package gk

import (
	"fmt"
	"os"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Environment variables that override the configured log settings.
const (
	EnvLogLevel  = "GEMMAKIT_LOG_LEVEL"
	EnvLogFormat = "GEMMAKIT_LOG_FORMAT"
)

// Logger is the diagnostic logger used across gemmakit.
// Console output meant for the user goes through Output instead.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LogConfig selects the level and format of the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewLogger builds a go-logger backed Logger named after the calling tool.
// GEMMAKIT_LOG_LEVEL and GEMMAKIT_LOG_FORMAT take precedence over cfg.
func NewLogger(name string, cfg LogConfig) (Logger, error) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Format = v
	}

	options := []glog.Option{}
	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	root := glog.NewLogger(options...)
	return root.GetLogger(name), nil
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "", "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
