// Package install provisions the Python packages the Gemma notebooks need
// and scaffolds the local .env file.
package install

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fredrikaverpil/gemmakit/gk"
)

// Title is printed in the installer banner.
const Title = "Gemma Kaggle Project - Installation Script"

// ErrPythonVersion is returned when the interpreter is older than MinPython.
var ErrPythonVersion = errors.New("python version must be 3.8 or higher")

// RunFunc runs one step's command line.
type RunFunc func(ctx context.Context, command string) (gk.Result, error)

// ProbeFunc reports the version of the Python interpreter steps will use.
type ProbeFunc func(ctx context.Context) (PythonVersion, error)

// Options configures an Installer. Zero values select the defaults.
type Options struct {
	// Steps run in order. Defaults to DefaultSteps.
	Steps []Step
	// Python lists interpreter names to probe. Defaults to DefaultPythonCandidates.
	Python []string
	// EnvFile and EnvTemplate are relative to the context directory.
	EnvFile     string
	EnvTemplate string

	// Run and Probe replace command execution, mainly for tests.
	Run   RunFunc
	Probe ProbeFunc
}

// Installer runs the installation steps and sets up the env file.
type Installer struct {
	steps       []Step
	envFile     string
	envTemplate string
	run         RunFunc
	probe       ProbeFunc
}

// New creates an Installer from opts.
func New(opts Options) *Installer {
	inst := &Installer{
		steps:       opts.Steps,
		envFile:     opts.EnvFile,
		envTemplate: opts.EnvTemplate,
		run:         opts.Run,
		probe:       opts.Probe,
	}
	if len(inst.steps) == 0 {
		inst.steps = DefaultSteps
	}
	if inst.envFile == "" {
		inst.envFile = DefaultEnvFile
	}
	if inst.envTemplate == "" {
		inst.envTemplate = DefaultEnvTemplate
	}
	if inst.run == nil {
		inst.run = gk.Shell
	}
	if inst.probe == nil {
		candidates := opts.Python
		if len(candidates) == 0 {
			candidates = DefaultPythonCandidates
		}
		inst.probe = func(ctx context.Context) (PythonVersion, error) {
			return ProbePython(ctx, candidates)
		}
	}
	return inst
}

// Report summarizes an installation run.
type Report struct {
	Python PythonVersion
	// Failed holds the descriptions of failed steps, in run order.
	Failed []string
	Env    EnvStatus
	// EnvErr is set when the env file could not be written.
	EnvErr error
}

// OK reports whether every step succeeded.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

// Install checks the interpreter, runs every step and creates the env file.
//
// Step and env-file failures are recorded in the report and never abort the
// run. The only error returned is an interpreter problem, wrapping
// ErrPythonVersion or ErrNoPython.
func (inst *Installer) Install(ctx context.Context) (*Report, error) {
	out := gk.OutputFromContext(ctx)
	log := gk.LoggerFromContext(ctx)

	out.Header(Title)

	out.Header("Checking Python Version")
	version, err := inst.checkPython(ctx)
	if err != nil {
		return nil, err
	}
	report := &Report{Python: version}

	out.Header("Installing Required Packages")
	for _, step := range inst.steps {
		if !inst.runStep(ctx, step) {
			report.Failed = append(report.Failed, step.Description)
		}
	}
	log.Info("installation steps finished", "total", len(inst.steps), "failed", len(report.Failed))

	out.Header("Setting Up Environment")
	report.Env, report.EnvErr = inst.setupEnv(ctx)

	out.Header("Installation Summary")
	printSummary(out, report)
	printNextSteps(out, inst.envFile)

	return report, nil
}

func (inst *Installer) checkPython(ctx context.Context) (PythonVersion, error) {
	out := gk.OutputFromContext(ctx)

	version, err := inst.probe(ctx)
	if err != nil {
		out.Fail("Python interpreter not found")
		return PythonVersion{}, fmt.Errorf("check python: %w", err)
	}

	out.Printf("Python version: %s\n", version)
	if !VersionAdequate(version) {
		out.Fail("Python version must be %d.%d or higher", MinPython.Major, MinPython.Minor)
		return version, fmt.Errorf("python %s: %w", version, ErrPythonVersion)
	}
	out.Pass("Python version is adequate (%d.%d+)", MinPython.Major, MinPython.Minor)
	return version, nil
}

func (inst *Installer) runStep(ctx context.Context, step Step) bool {
	out := gk.OutputFromContext(ctx)
	log := gk.LoggerFromContext(ctx)

	out.Step("%s...", step.Description)
	res, err := inst.run(ctx, step.Command)
	if err != nil {
		out.Fail("%s failed", step.Description)
		out.Printf("Error: %s\n", strings.TrimRight(res.Stderr, "\n"))
		log.Warn("installation step failed", "step", step.Description, "err", err)
		return false
	}
	out.Pass("%s completed", step.Description)
	return true
}

func (inst *Installer) setupEnv(ctx context.Context) (EnvStatus, error) {
	out := gk.OutputFromContext(ctx)

	status, err := CreateEnvFile(gk.DirFromContext(ctx), inst.envFile, inst.envTemplate)
	switch status {
	case EnvExists:
		out.Pass("%s file already exists", inst.envFile)
	case EnvCreated:
		out.Pass("Created %s file from template", inst.envFile)
		out.Warn("Remember to add your GOOGLE_API_KEY to %s", inst.envFile)
	case EnvTemplateMissing:
		out.Warn("%s not found, skipping %s creation", inst.envTemplate, inst.envFile)
	default:
		out.Fail("Failed to create %s file: %v", inst.envFile, err)
		gk.LoggerFromContext(ctx).Error("env file setup failed", "path", filepath.Join(gk.DirFromContext(ctx), inst.envFile), "err", err)
	}
	return status, err
}

func printSummary(out *gk.Output, report *Report) {
	if report.OK() {
		out.Pass("All packages installed successfully!")
		return
	}
	out.Warn("The following installations had issues:")
	for _, item := range report.Failed {
		out.Printf("  - %s\n", item)
	}
	out.Println("\nYou may need to install these manually.")
}

func printNextSteps(out *gk.Output, envFile string) {
	out.Println()
	out.Rule()
	out.Println("Next Steps:")
	out.Rule()
	out.Printf("1. Edit %s and add your GOOGLE_API_KEY\n", envFile)
	out.Println("   Get key from: https://aistudio.google.com/app/apikey")
	out.Println("\n2. Run setup verification:")
	out.Println("   jupyter notebook setup.ipynb")
	out.Println("\n3. Review the getting started guide:")
	out.Println("   Open GETTING_STARTED.md")
	out.Println("\n4. Join Discord:")
	out.Println("   https://discord.gg/kaggle")
	out.Rule()
	out.Println()
}
