package tasks

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/fredrikaverpil/gemmakit/gk"
)

func TestFlagVerbose(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"set", []string{"-v"}, true},
		{"unset", nil, false},
		{"explicit false", []string{"-v=false"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.Bool("v", false, "")
			verbose := FlagVerbose(fs)
			if err := fs.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			if got := verbose(); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFlagVerbose_Undefined(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if FlagVerbose(fs)() {
		t.Error("missing flag should not enable verbose mode")
	}
}

func TestContextFor(t *testing.T) {
	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := contextFor(context.Background(), &buf, Options{
			Log:     gk.NopLogger(),
			Verbose: func() bool { return true },
		})
		if !gk.Verbose(ctx) {
			t.Error("expected verbose context")
		}
		gk.OutputFromContext(ctx).Println("hello")
		if buf.String() != "hello\n" {
			t.Errorf("expected output to reach the task writer, got %q", buf.String())
		}
	})

	t.Run("quiet", func(t *testing.T) {
		ctx := contextFor(context.Background(), &bytes.Buffer{}, Options{Log: gk.NopLogger()})
		if gk.Verbose(ctx) {
			t.Error("expected non-verbose context without a Verbose func")
		}
	})
}
