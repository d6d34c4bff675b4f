// Package mdfix normalizes blank-line spacing around headings, list items
// and code fences in the project's documentation.
//
// Lines are classified with prefix heuristics only. There is no markdown
// parsing here, so a "# comment" inside a code block counts as a heading.
package mdfix

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// fence is the code fence delimiter.
const fence = "```"

// blank is the line inserted as a separator.
const blank = "\n"

// Kind is the heuristic classification of a line.
type Kind int

const (
	Other Kind = iota
	Heading
	ListItem
	Fence
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case ListItem:
		return "list"
	case Fence:
		return "fence"
	default:
		return "other"
	}
}

// Classify returns the kind of line.
//
// A list item starts with "-" or "*", or starts with a digit and has a "."
// within its first five characters (leading whitespace included).
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, fence):
		return Fence
	case strings.HasPrefix(trimmed, "#"):
		return Heading
	case strings.HasPrefix(trimmed, "-"), strings.HasPrefix(trimmed, "*"):
		return ListItem
	case startsWithDigit(trimmed) && strings.Contains(prefix(line, 5), "."):
		return ListItem
	default:
		return Other
	}
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

// prefix returns the first n characters of s, counted in runes.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return s
	}
	return string(r[:n])
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// FixLines returns lines with separator lines inserted:
//   - before a heading, when the previous emitted line is not blank;
//   - after a heading, when the next line is neither blank nor a heading;
//   - before a list item, when the previous emitted line is neither blank nor a heading;
//   - before a fence, when the previous emitted line is not blank.
//
// Input lines are kept in order and unchanged.
func FixLines(lines []string) []string {
	fixed := make([]string, 0, len(lines)+len(lines)/4)
	for i, line := range lines {
		kind := Classify(line)

		if len(fixed) > 0 {
			prev := fixed[len(fixed)-1]
			switch kind {
			case Heading, Fence:
				if !isBlank(prev) {
					fixed = append(fixed, blank)
				}
			case ListItem:
				if !isBlank(prev) && Classify(prev) != Heading {
					fixed = append(fixed, blank)
				}
			}
		}

		fixed = append(fixed, line)

		if kind == Heading && i+1 < len(lines) {
			next := lines[i+1]
			if !isBlank(next) && Classify(next) != Heading {
				fixed = append(fixed, blank)
			}
		}
	}
	return fixed
}

// SplitLines splits content into lines that keep their "\n" terminators.
func SplitLines(content string) []string {
	lines := strings.SplitAfter(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Fix applies FixLines to the lines of content.
func Fix(content string) string {
	return strings.Join(FixLines(SplitLines(content)), "")
}

// FixFile rewrites the file at path in place and reports whether it changed.
func FixFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read markdown: %w", err)
	}
	content, err := decodeMarkdown(path, data)
	if err != nil {
		return false, err
	}
	fixed := Fix(content)
	if fixed == string(data) {
		return false, nil
	}
	if err := writeFilePreservingMode(path, []byte(fixed)); err != nil {
		return false, err
	}
	return true, nil
}

// decodeMarkdown validates data as UTF-8 and converts CRLF and CR line
// endings to LF. Files are always written back with LF endings.
func decodeMarkdown(path string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read markdown %s: invalid UTF-8", path)
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n"), nil
}

func writeFilePreservingMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
