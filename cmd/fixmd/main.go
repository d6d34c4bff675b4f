// Command fixmd fixes blank-line spacing in the project's Markdown files
// and applies a few known one-off corrections.
//
// Usage:
//
//	go run ./cmd/fixmd [-v] [-config gemmakit.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fredrikaverpil/gemmakit/config"
	"github.com/fredrikaverpil/gemmakit/gk"
	"github.com/fredrikaverpil/gemmakit/mdfix"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("fixmd", flag.ExitOnError)
	var verbose bool
	var configPath string
	fs.BoolVar(&verbose, "v", false, "verbose mode")
	fs.StringVar(&configPath, "config", "", "path to "+config.FileName)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	cfg, err := config.Load(".", configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	log, err := gk.NewLogger("fixmd", cfg.Log)
	if err != nil {
		return err
	}

	ctx := gk.ContextWithOutput(context.Background(), gk.StdOutput())
	ctx = gk.ContextWithLogger(ctx, log)
	ctx = gk.ContextWithVerbose(ctx, verbose)

	_, err = mdfix.Run(ctx, cfg.MarkdownOptions())
	return err
}
