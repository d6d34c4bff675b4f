package gk

import (
	"context"
)

// contextKey is the type for context keys in this package.
type contextKey int

const (
	// dirKey is the context key for the working directory of commands and files.
	dirKey contextKey = iota
	// verboseKey is the context key for verbose mode.
	verboseKey
	// outputKey is the context key for the console output.
	outputKey
	// loggerKey is the context key for the diagnostic logger.
	loggerKey
)

// DirFromContext returns the working directory from the context.
// Returns "." if no directory is set (meaning the process working directory).
func DirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(dirKey).(string); ok && dir != "" {
		return dir
	}
	return "."
}

// Verbose returns whether verbose mode is enabled in the context.
func Verbose(ctx context.Context) bool {
	if v, ok := ctx.Value(verboseKey).(bool); ok {
		return v
	}
	return false
}

// OutputFromContext returns the console output from the context.
// Falls back to StdOutput when none is set.
func OutputFromContext(ctx context.Context) *Output {
	if out, ok := ctx.Value(outputKey).(*Output); ok && out != nil {
		return out
	}
	return StdOutput()
}

// LoggerFromContext returns the diagnostic logger from the context.
// Falls back to a logger that discards everything.
func LoggerFromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok && l != nil {
		return l
	}
	return NopLogger()
}

// ContextWithDir returns a new context with the given working directory.
//
//	ctx = gk.ContextWithDir(ctx, "notebooks")
//	gk.Shell(ctx, "pip install -r requirements.txt") // runs in notebooks/
func ContextWithDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, dirKey, dir)
}

// ContextWithVerbose returns a new context with verbose mode set.
func ContextWithVerbose(ctx context.Context, verbose bool) context.Context {
	return context.WithValue(ctx, verboseKey, verbose)
}

// ContextWithOutput returns a new context carrying the given output.
func ContextWithOutput(ctx context.Context, out *Output) context.Context {
	return context.WithValue(ctx, outputKey, out)
}

// ContextWithLogger returns a new context carrying the given logger.
func ContextWithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Printf formats and prints to the context output's stdout.
func Printf(ctx context.Context, format string, a ...any) {
	OutputFromContext(ctx).Printf(format, a...)
}

// Println prints to the context output's stdout with a newline.
func Println(ctx context.Context, a ...any) {
	OutputFromContext(ctx).Println(a...)
}
