package mdfix

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Patch is a one-off literal fix tied to the exact contents of one file.
type Patch struct {
	// File is relative to the working directory.
	File  string
	Name  string
	Apply func(content string) string
}

// KnownPatches are the fixes applied before formatting.
var KnownPatches = []Patch{
	{File: "GEMMA_INFO.md", Name: "wrap Gemma terms URL", Apply: WrapTermsURL},
	{File: "README.md", Name: "tag environment code block", Apply: TagEnvCodeBlock},
}

const (
	termsURL        = "https://ai.google.dev/gemma/terms"
	envKeyMarker    = "GOOGLE_API_KEY"
	envBlockFirst   = 155
	envBlockLast    = 165
	envBlockTag     = "```text"
	envBlockMinLine = 5
)

// WrapTermsURL wraps the bare Gemma terms URL at the end of a line in angle brackets.
func WrapTermsURL(content string) string {
	return strings.ReplaceAll(content, termsURL+"\n", "<"+termsURL+">\n")
}

// TagEnvCodeBlock adds a "text" language to the untagged code block that
// shows the GOOGLE_API_KEY setting in the README.
//
// Only the first bare opening fence between lines 155 and 165 (0-based) with
// GOOGLE_API_KEY on one of the two lines above it is changed. Closing fences
// are skipped so a second run cannot tag the end of the block.
func TagEnvCodeBlock(content string) string {
	lines := strings.Split(content, "\n")
	fences := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		isFence := strings.HasPrefix(trimmed, fence)
		opening := isFence && fences%2 == 0
		if isFence {
			fences++
		}
		if i < envBlockFirst || i > envBlockLast {
			continue
		}
		if trimmed != fence || !opening || i <= envBlockMinLine {
			continue
		}
		if strings.Contains(lines[i-1], envKeyMarker) || strings.Contains(lines[i-2], envKeyMarker) {
			lines[i] = envBlockTag
			break
		}
	}
	return strings.Join(lines, "\n")
}

// ApplyPatches applies each patch to its file under dir, writing only files
// that change. A missing file is an error.
func ApplyPatches(dir string, patches []Patch) ([]string, error) {
	var changed []string
	for _, p := range patches {
		path := filepath.Join(dir, p.File)
		data, err := os.ReadFile(path)
		if err != nil {
			return changed, fmt.Errorf("patch %q: %w", p.Name, err)
		}
		content, err := decodeMarkdown(path, data)
		if err != nil {
			return changed, fmt.Errorf("patch %q: %w", p.Name, err)
		}
		patched := p.Apply(content)
		if patched == string(data) {
			continue
		}
		if err := writeFilePreservingMode(path, []byte(patched)); err != nil {
			return changed, fmt.Errorf("patch %q: %w", p.Name, err)
		}
		changed = append(changed, p.File)
	}
	return changed, nil
}
