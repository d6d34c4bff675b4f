//go:build unix

package gk

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShell_CapturesStdoutAndStderr(t *testing.T) {
	res, err := Shell(context.Background(), "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "out\n" {
		t.Errorf("stdout: expected %q, got %q", "out\n", res.Stdout)
	}
	if res.Stderr != "err\n" {
		t.Errorf("stderr: expected %q, got %q", "err\n", res.Stderr)
	}
}

func TestShell_FailureKeepsStderr(t *testing.T) {
	res, err := Shell(context.Background(), "echo boom 1>&2; exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "exit status 3") {
		t.Errorf("expected exit status in error, got %v", err)
	}
	if res.Stderr != "boom\n" {
		t.Errorf("stderr: expected %q, got %q", "boom\n", res.Stderr)
	}
}

func TestShell_RunsInContextDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := ContextWithDir(context.Background(), dir)
	res, err := Shell(ctx, "ls")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Stdout, "marker") {
		t.Errorf("expected command to run in %s, got listing %q", dir, res.Stdout)
	}
}

func TestShell_VerboseStreamsToOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := ContextWithOutput(context.Background(), NewOutput(&stdout, &stderr))
	ctx = ContextWithVerbose(ctx, true)

	res, err := Shell(ctx, "echo streamed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "streamed\n" {
		t.Errorf("captured stdout: expected %q, got %q", "streamed\n", res.Stdout)
	}
	if stdout.String() != "streamed\n" {
		t.Errorf("streamed stdout: expected %q, got %q", "streamed\n", stdout.String())
	}
}

func TestCapture_MissingBinary(t *testing.T) {
	_, err := Capture(context.Background(), "gemmakit-definitely-not-installed")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}
