// Command install provisions the Python packages used by the Gemma notebooks
// and creates .env from .env.example.
//
// Usage:
//
//	go run ./cmd/install [-v] [-config gemmakit.yaml]
//
// The exit status is 1 only when no adequate Python interpreter is found.
// Failed package installs are listed in the summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fredrikaverpil/gemmakit/config"
	"github.com/fredrikaverpil/gemmakit/gk"
	"github.com/fredrikaverpil/gemmakit/install"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("install", flag.ExitOnError)
	var verbose, showVersion bool
	var configPath string
	fs.BoolVar(&verbose, "v", false, "stream package manager output and debug logs")
	fs.BoolVar(&showVersion, "version", false, "show version")
	fs.StringVar(&configPath, "config", "", "path to "+config.FileName)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	if showVersion {
		fmt.Printf("install %s\n", gk.Version())
		return nil
	}

	cfg, err := config.Load(".", configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	log, err := gk.NewLogger("install", cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = gk.ContextWithVerbose(ctx, verbose)
	ctx = gk.ContextWithOutput(ctx, gk.StdOutput())
	ctx = gk.ContextWithLogger(ctx, log)

	_, err = install.New(cfg.InstallOptions()).Install(ctx)
	return err
}
