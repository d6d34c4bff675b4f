// Package tasks exposes the installer and the markdown fixer as goyek tasks.
package tasks

import (
	"context"
	"flag"
	"io"

	"github.com/goyek/goyek/v3"

	"github.com/fredrikaverpil/gemmakit/config"
	"github.com/fredrikaverpil/gemmakit/gk"
	"github.com/fredrikaverpil/gemmakit/install"
	"github.com/fredrikaverpil/gemmakit/mdfix"
)

// Tasks holds all registered tasks.
type Tasks struct {
	// All installs packages and fixes the documentation.
	All *goyek.DefinedTask

	// Install runs the package installer.
	Install *goyek.DefinedTask

	// MarkdownFix fixes spacing and known issues in the documentation.
	MarkdownFix *goyek.DefinedTask

	// MarkdownLint fails when issues remain that the fixer does not handle.
	MarkdownLint *goyek.DefinedTask
}

// Options configures New. Zero values select the defaults.
type Options struct {
	// Log receives diagnostics. Defaults to gk.NopLogger.
	Log gk.Logger
	// Verbose reports whether command output should be streamed.
	// It is called when a task starts, after flags are parsed.
	Verbose func() bool
}

// FlagVerbose returns a Verbose func reading the boolean "v" flag of fs,
// the flag goyek's boot package registers on flag.CommandLine.
func FlagVerbose(fs *flag.FlagSet) func() bool {
	return func() bool {
		f := fs.Lookup("v")
		return f != nil && f.Value.String() == "true"
	}
}

// New defines the tasks for cfg in goyek's default flow.
// Tasks run in the process working directory.
func New(cfg config.Config, opts Options) *Tasks {
	cfg = cfg.WithDefaults()
	if opts.Log == nil {
		opts.Log = gk.NopLogger()
	}
	taskContext := func(a *goyek.A) context.Context {
		return contextFor(a.Context(), a.Output(), opts)
	}
	t := &Tasks{}

	t.Install = goyek.Define(goyek.Task{
		Name:  "install",
		Usage: "install Python packages and create .env",
		Action: func(a *goyek.A) {
			ctx := taskContext(a)
			report, err := install.New(cfg.InstallOptions()).Install(ctx)
			if err != nil {
				a.Fatal(err)
			}
			if !report.OK() {
				a.Logf("%d installation step(s) had issues", len(report.Failed))
			}
		},
	})

	t.MarkdownFix = goyek.Define(goyek.Task{
		Name:  "md-fix",
		Usage: "fix blank-line spacing in Markdown files",
		Action: func(a *goyek.A) {
			opts := cfg.MarkdownOptions()
			opts.SkipLint = true
			if _, err := mdfix.Run(taskContext(a), opts); err != nil {
				a.Fatal(err)
			}
		},
	})

	t.MarkdownLint = goyek.Define(goyek.Task{
		Name:  "md-lint",
		Usage: "report Markdown issues the fixer leaves behind",
		Action: func(a *goyek.A) {
			findings, err := mdfix.LintFiles(gk.DirFromContext(a.Context()), cfg.Markdown.Files)
			if err != nil {
				a.Fatal(err)
			}
			for _, f := range findings {
				a.Error(f.String())
			}
		},
	})

	t.All = goyek.Define(goyek.Task{
		Name:  "all",
		Usage: "run install and md-fix",
		Deps:  goyek.Deps{t.Install, t.MarkdownFix},
	})

	return t
}

// contextFor wires the task output, the logger and the verbose setting
// into ctx.
func contextFor(ctx context.Context, w io.Writer, opts Options) context.Context {
	ctx = gk.ContextWithOutput(ctx, gk.NewOutput(w, w))
	ctx = gk.ContextWithLogger(ctx, opts.Log)
	return gk.ContextWithVerbose(ctx, opts.Verbose != nil && opts.Verbose())
}
