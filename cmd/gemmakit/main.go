// Command gemmakit runs the project's setup tasks through goyek.
//
// Usage:
//
//	go run ./cmd/gemmakit [flags] [tasks]
//	go run ./cmd/gemmakit install md-fix
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/boot"

	"github.com/fredrikaverpil/gemmakit/config"
	"github.com/fredrikaverpil/gemmakit/gk"
	"github.com/fredrikaverpil/gemmakit/tasks"
)

func main() {
	cfg, err := config.Load(".", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log, err := gk.NewLogger("gemmakit", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	t := tasks.New(cfg, tasks.Options{
		Log:     log,
		Verbose: tasks.FlagVerbose(flag.CommandLine),
	})
	goyek.SetDefault(t.All)
	boot.Main()
}
