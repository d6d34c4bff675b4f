package gk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// WaitDelay is the time to wait after sending SIGINT before sending SIGKILL.
const WaitDelay = 5 * time.Second

// Result holds the captured output of a finished command.
type Result struct {
	Stdout string
	Stderr string
}

// Shell runs a command line through the platform shell
// (sh -c on unix, cmd /C elsewhere).
//
// Stdout and stderr are captured separately. If verbose mode is enabled,
// output is also streamed to the context output as it is produced.
// The command runs in the directory specified by DirFromContext(ctx).
func Shell(ctx context.Context, command string) (Result, error) {
	name, args := shellCommand(command)
	return run(ctx, name, args...)
}

// Capture runs the named program with arguments, capturing its output.
// It behaves like Shell but does not go through a shell.
func Capture(ctx context.Context, name string, args ...string) (Result, error) {
	return run(ctx, name, args...)
}

func run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = DirFromContext(ctx)
	cmd.WaitDelay = WaitDelay
	setGracefulShutdown(cmd)

	var stdout, stderr bytes.Buffer
	if Verbose(ctx) {
		out := OutputFromContext(ctx)
		cmd.Stdout = io.MultiWriter(&stdout, out.Stdout)
		cmd.Stderr = io.MultiWriter(&stderr, out.Stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	log := LoggerFromContext(ctx)
	start := time.Now()
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	log.Debug("command finished", "cmd", commandLine(name, args), "dir", cmd.Dir, "duration", time.Since(start), "err", err)
	if err != nil {
		return res, fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return res, nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
