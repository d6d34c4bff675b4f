package install

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/fredrikaverpil/gemmakit/gk"
)

func testContext(t *testing.T, dir string) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := gk.ContextWithOutput(context.Background(), gk.NewOutput(&buf, &buf))
	ctx = gk.ContextWithDir(ctx, dir)
	return ctx, &buf
}

func probeVersion(v PythonVersion) ProbeFunc {
	return func(context.Context) (PythonVersion, error) { return v, nil }
}

func TestInstall_RunsEveryStepInOrder(t *testing.T) {
	ctx, _ := testContext(t, t.TempDir())

	var ran []string
	inst := New(Options{
		Probe: probeVersion(PythonVersion{3, 11, 4}),
		Run: func(_ context.Context, command string) (gk.Result, error) {
			ran = append(ran, command)
			return gk.Result{}, nil
		},
	})

	report, err := inst.Install(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.OK() {
		t.Errorf("expected no failures, got %v", report.Failed)
	}

	want := make([]string, 0, len(DefaultSteps))
	for _, s := range DefaultSteps {
		want = append(want, s.Command)
	}
	if !slices.Equal(ran, want) {
		t.Errorf("ran %v, want %v", ran, want)
	}
}

func TestInstall_ContinuesAfterFailure(t *testing.T) {
	ctx, buf := testContext(t, t.TempDir())

	steps := []Step{
		{Command: "ok-1", Description: "First"},
		{Command: "broken", Description: "Broken"},
		{Command: "ok-2", Description: "Last"},
	}
	var ran []string
	inst := New(Options{
		Steps: steps,
		Probe: probeVersion(PythonVersion{3, 10, 0}),
		Run: func(_ context.Context, command string) (gk.Result, error) {
			ran = append(ran, command)
			if command == "broken" {
				return gk.Result{Stderr: "ERROR: No matching distribution\n"}, errors.New("exit status 1")
			}
			return gk.Result{}, nil
		},
	})

	report, err := inst.Install(ctx)
	if err != nil {
		t.Fatalf("step failures must not be returned as errors: %v", err)
	}
	if !slices.Equal(ran, []string{"ok-1", "broken", "ok-2"}) {
		t.Errorf("expected all steps to run, ran %v", ran)
	}
	if !slices.Equal(report.Failed, []string{"Broken"}) {
		t.Errorf("expected failed [Broken], got %v", report.Failed)
	}

	out := buf.String()
	for _, want := range []string{
		"→ Broken...",
		"✗ Broken failed",
		"Error: ERROR: No matching distribution",
		"✓ Last completed",
		"⚠ The following installations had issues:",
		"  - Broken",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestInstall_PythonTooOld(t *testing.T) {
	ctx, buf := testContext(t, t.TempDir())

	ran := false
	inst := New(Options{
		Probe: probeVersion(PythonVersion{3, 7, 9}),
		Run: func(context.Context, string) (gk.Result, error) {
			ran = true
			return gk.Result{}, nil
		},
	})

	_, err := inst.Install(ctx)
	if !errors.Is(err, ErrPythonVersion) {
		t.Fatalf("expected ErrPythonVersion, got %v", err)
	}
	if ran {
		t.Error("no step should run when the interpreter check fails")
	}
	if !strings.Contains(buf.String(), "✗ Python version must be 3.8 or higher") {
		t.Errorf("expected version failure line, got\n%s", buf.String())
	}
}

func TestInstall_NoPython(t *testing.T) {
	ctx, _ := testContext(t, t.TempDir())

	inst := New(Options{
		Probe: func(context.Context) (PythonVersion, error) { return PythonVersion{}, ErrNoPython },
	})

	if _, err := inst.Install(ctx); !errors.Is(err, ErrNoPython) {
		t.Fatalf("expected ErrNoPython, got %v", err)
	}
}

func TestInstall_TwiceKeepsEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultEnvTemplate), []byte("GOOGLE_API_KEY=\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	inst := New(Options{
		Steps: []Step{{Command: "noop", Description: "Noop"}},
		Probe: probeVersion(PythonVersion{3, 12, 0}),
		Run:   func(context.Context, string) (gk.Result, error) { return gk.Result{}, nil },
	})

	ctx, _ := testContext(t, dir)
	report, err := inst.Install(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if report.Env != EnvCreated {
		t.Errorf("first run: expected %v, got %v", EnvCreated, report.Env)
	}

	envPath := filepath.Join(dir, DefaultEnvFile)
	if err := os.WriteFile(envPath, []byte("GOOGLE_API_KEY=abc\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, buf := testContext(t, dir)
	report, err = inst.Install(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if report.Env != EnvExists {
		t.Errorf("second run: expected %v, got %v", EnvExists, report.Env)
	}
	data, err := os.ReadFile(envPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "GOOGLE_API_KEY=abc\n" {
		t.Errorf(".env was overwritten: %q", data)
	}
	if !strings.Contains(buf.String(), "✓ .env file already exists") {
		t.Errorf("expected already-exists line, got\n%s", buf.String())
	}
}

func TestInstall_SummaryAllGood(t *testing.T) {
	ctx, buf := testContext(t, t.TempDir())

	inst := New(Options{
		Steps: []Step{{Command: "noop", Description: "Noop"}},
		Probe: probeVersion(PythonVersion{3, 8, 0}),
		Run:   func(context.Context, string) (gk.Result, error) { return gk.Result{}, nil },
	})

	if _, err := inst.Install(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"  " + Title,
		"Python version: 3.8.0",
		"✓ Python version is adequate (3.8+)",
		"⚠ .env.example not found, skipping .env creation",
		"✓ All packages installed successfully!",
		"1. Edit .env and add your GOOGLE_API_KEY",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
