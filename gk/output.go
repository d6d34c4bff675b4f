package gk

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// HeaderWidth is the width of the rule printed around section headers.
const HeaderWidth = 60

// Status marks printed in front of result lines.
const (
	MarkPass = "✓"
	MarkFail = "✗"
	MarkWarn = "⚠"
	MarkStep = "→"
)

// Output holds stdout and stderr writers for console output.
type Output struct {
	Stdout io.Writer
	Stderr io.Writer

	colors bool
}

// StdOutput returns an Output that writes to os.Stdout and os.Stderr.
// Colors are enabled when stdout is a terminal and NO_COLOR is unset.
func StdOutput() *Output {
	return NewOutput(os.Stdout, os.Stderr)
}

// NewOutput returns an Output writing to the given writers.
func NewOutput(stdout, stderr io.Writer) *Output {
	return &Output{
		Stdout: stdout,
		Stderr: stderr,
		colors: wantColors(stdout),
	}
}

// wantColors reports whether w is a terminal that accepts ANSI colors.
func wantColors(w io.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f)
}

// isTerminal returns true if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Printf formats and prints to stdout.
func (o *Output) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.Stdout, format, a...)
}

// Println prints to stdout with a newline.
func (o *Output) Println(a ...any) {
	_, _ = fmt.Fprintln(o.Stdout, a...)
}

// Header prints a section header framed by rules:
//
//	============================================================
//	  text
//	============================================================
func (o *Output) Header(text string) {
	rule := strings.Repeat("=", HeaderWidth)
	o.Printf("\n%s\n  %s\n%s\n\n", rule, text, rule)
}

// Rule prints a single horizontal rule.
func (o *Output) Rule() {
	o.Println(strings.Repeat("=", HeaderWidth))
}

// Pass prints a success line.
func (o *Output) Pass(format string, a ...any) {
	o.status(color.FgGreen, MarkPass, format, a...)
}

// Fail prints a failure line.
func (o *Output) Fail(format string, a ...any) {
	o.status(color.FgRed, MarkFail, format, a...)
}

// Warn prints a warning line.
func (o *Output) Warn(format string, a ...any) {
	o.status(color.FgYellow, MarkWarn, format, a...)
}

// Step prints a progress line for work that is about to start.
func (o *Output) Step(format string, a ...any) {
	o.status(color.FgCyan, MarkStep, format, a...)
}

func (o *Output) status(attr color.Attribute, mark, format string, a ...any) {
	c := color.New(attr)
	if o.colors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	o.Printf("%s %s\n", c.Sprint(mark), fmt.Sprintf(format, a...))
}
