//go:build unix

package gk

import (
	"os/exec"
	"syscall"
)

// setGracefulShutdown configures the command for graceful shutdown.
// On Unix, this sets up SIGINT as the interrupt signal.
func setGracefulShutdown(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGINT)
	}
}

// shellCommand returns the program and arguments that run command through sh.
func shellCommand(command string) (string, []string) {
	return "sh", []string{"-c", command}
}
