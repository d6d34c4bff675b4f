package mdfix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fredrikaverpil/gemmakit/gk"
)

// DefaultFiles are the documentation files formatted by Run, in order.
var DefaultFiles = []string{"COURSE_INFO.md", "GEMMA_INFO.md", "README.md"}

// Options configures Run. Zero values select the defaults.
type Options struct {
	Files   []string
	Patches []Patch
	// SkipLint disables the report of remaining issues.
	SkipLint bool
}

// Run applies the known patches, then fixes the spacing of every file in
// the context directory. Any missing or unreadable file aborts the run.
// Remaining lint findings are printed and returned; they are not errors.
func Run(ctx context.Context, opts Options) ([]Finding, error) {
	out := gk.OutputFromContext(ctx)
	log := gk.LoggerFromContext(ctx)
	dir := gk.DirFromContext(ctx)

	files := opts.Files
	if len(files) == 0 {
		files = DefaultFiles
	}
	patches := opts.Patches
	if patches == nil {
		patches = KnownPatches
	}

	changed, err := ApplyPatches(dir, patches)
	if err != nil {
		return nil, err
	}
	log.Debug("patches applied", "changed", changed)
	out.Println("Fixed specific issues")

	for _, name := range files {
		path := filepath.Join(dir, name)
		modified, err := FixFile(path)
		if err != nil {
			return nil, fmt.Errorf("fix %s: %w", name, err)
		}
		log.Debug("file formatted", "file", name, "modified", modified)
		out.Printf("Fixed %s\n", name)
	}

	out.Println("\nAll markdown files fixed!")
	out.Println("\nNote: Some warnings may remain - they are cosmetic and don't affect functionality.")

	if opts.SkipLint {
		return nil, nil
	}
	findings, err := LintFiles(dir, files)
	if err != nil {
		return nil, err
	}
	for _, f := range findings {
		out.Warn("%s", f)
	}
	return findings, nil
}

// LintFiles runs Lint over each file under dir.
func LintFiles(dir string, files []string) ([]Finding, error) {
	var findings []Finding
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("lint %s: %w", name, err)
		}
		findings = append(findings, Lint(name, data)...)
	}
	return findings, nil
}
