package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2latex "github.com/yehyu2004/go-md2latex"
	"github.com/yehyu2004/go-md2latex/internal/config"
)

func TestRunDispatch(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected int
		stdout   string
		stderr   string
	}{
		{"no args prints usage", nil, ExitUsage, "", "Usage"},
		{"help", []string{"help"}, ExitSuccess, "Usage", ""},
		{"help flag", []string{"--help"}, ExitSuccess, "Usage", ""},
		{"version", []string{"version"}, ExitSuccess, "md2latex dev", ""},
		{"unknown command", []string{"frobnicate"}, ExitUsage, "", `unknown command "frobnicate"`},
		{"convert without input", []string{"convert", "--tex-only"}, ExitUsage, "", "no input"},
		{"convert bad flag", []string{"convert", "--no-such-flag"}, ExitUsage, "", "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, stdout, stderr := testEnvironment()
			if got := run(tt.args, env); got != tt.expected {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.expected)
			}
			if tt.stdout != "" && !strings.Contains(stdout.String(), tt.stdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), tt.stdout)
			}
			if tt.stderr != "" && !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestErrorWithHint(t *testing.T) {
	flags := &convertFlags{}

	t.Run("engine not found", func(t *testing.T) {
		err := fmt.Errorf("compiling PDF: %w", md2latex.ErrEngineNotFound)
		msg := errorWithHint(err, flags)
		if !strings.Contains(msg, "hint:") || !strings.Contains(msg, md2latex.DefaultEngine) {
			t.Errorf("msg = %q, want engine hint", msg)
		}
	})

	t.Run("engine flag named in hint", func(t *testing.T) {
		withEngine := &convertFlags{engine: "xelatex"}
		msg := errorWithHint(md2latex.ErrEngineNotFound, withEngine)
		if !strings.Contains(msg, "xelatex") {
			t.Errorf("msg = %q, want configured engine named", msg)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		msg := errorWithHint(context.DeadlineExceeded, flags)
		if !strings.Contains(msg, "--timeout") {
			t.Errorf("msg = %q, want timeout hint", msg)
		}
	})

	t.Run("config not found", func(t *testing.T) {
		msg := errorWithHint(config.ErrConfigNotFound, flags)
		if !strings.Contains(msg, "--config") {
			t.Errorf("msg = %q, want config hint", msg)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		msg := errorWithHint(ErrWriteOutput, flags)
		if !strings.Contains(msg, "writable") {
			t.Errorf("msg = %q, want output directory hint", msg)
		}
	})

	t.Run("no hint for other errors", func(t *testing.T) {
		msg := errorWithHint(ErrNoInput, flags)
		if strings.Contains(msg, "hint:") {
			t.Errorf("msg = %q, want no hint", msg)
		}
	})
}

func TestRunConvertCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeMarkdown(t, dir, "doc.md", "# Title\n\ntext\n")

	env, _, stderr := testEnvironment()
	code := run([]string{"convert", "--tex-only", "-q", input}, env)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, want %d (stderr: %s)", code, ExitSuccess, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "doc.tex"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), `\section{Title}`) {
		t.Errorf("output missing rendered heading:\n%s", data)
	}
}
