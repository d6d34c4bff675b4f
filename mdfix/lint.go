package mdfix

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Rule identifiers follow markdownlint's numbering.
const (
	RuleBareURL       = "MD034"
	RuleFenceLanguage = "MD040"
)

// Finding is an issue that the spacing heuristics do not fix.
type Finding struct {
	File string
	// Line is 1-based; 0 when the position is unknown.
	Line    int
	Rule    string
	Message string
}

func (f Finding) String() string {
	if f.Line == 0 {
		return fmt.Sprintf("%s: %s %s", f.File, f.Rule, f.Message)
	}
	return fmt.Sprintf("%s:%d: %s %s", f.File, f.Line, f.Rule, f.Message)
}

// newLintParser returns a goldmark instance without the linkify extension,
// so bare URLs stay plain text nodes.
func newLintParser() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		),
	)
}

var (
	schemeHTTP  = []byte("http://")
	schemeHTTPS = []byte("https://")
)

// Lint parses source and reports fenced code blocks without a language and
// bare URLs in running text. Findings are sorted by line.
func Lint(name string, source []byte) []Finding {
	doc := newLintParser().Parser().Parse(text.NewReader(source))

	var findings []Finding
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			if node.Info == nil {
				findings = append(findings, Finding{
					File:    name,
					Line:    fenceLine(node, source),
					Rule:    RuleFenceLanguage,
					Message: "fenced code block without language",
				})
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan, *ast.Link, *ast.AutoLink, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			value := node.Segment.Value(source)
			if bytes.Contains(value, schemeHTTP) || bytes.Contains(value, schemeHTTPS) {
				findings = append(findings, Finding{
					File:    name,
					Line:    lineAt(source, node.Segment.Start),
					Rule:    RuleBareURL,
					Message: "bare URL used",
				})
			}
		}
		return ast.WalkContinue, nil
	})

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Line < findings[j].Line
	})
	return findings
}

// fenceLine returns the line of the opening fence, derived from the first
// content line. Empty blocks have no position and report 0.
func fenceLine(node *ast.FencedCodeBlock, source []byte) int {
	lines := node.Lines()
	if lines.Len() == 0 {
		return 0
	}
	return lineAt(source, lines.At(0).Start) - 1
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
