//go:build !unix

package gk

import "os/exec"

// setGracefulShutdown configures the command for graceful shutdown.
// On non-Unix platforms, this is a no-op as SIGINT is not available.
// cmd.Cancel defaults to os.Process.Kill.
func setGracefulShutdown(cmd *exec.Cmd) {
	_ = cmd
}

// shellCommand returns the program and arguments that run command through cmd.exe.
func shellCommand(command string) (string, []string) {
	return "cmd", []string{"/C", command}
}
