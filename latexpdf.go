package md2latex

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/yehyu2004/go-md2latex/internal/process"
)

// knownEngines lists the LaTeX engines the compiler can drive.
var knownEngines = map[string]bool{
	"pdflatex": true,
	"xelatex":  true,
	"lualatex": true,
}

// compilePasses runs the engine twice so cross-references and the table of
// contents settle.
const compilePasses = 2

// jobName is the basename used for the temporary .tex and .pdf files.
const jobName = "document"

// pdfCompiler abstracts LaTeX-to-PDF compilation.
type pdfCompiler interface {
	Compile(ctx context.Context, latexSource string) ([]byte, error)
	Close() error
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, stderr string, err error)
}

// execRunner implements CommandRunner using os/exec. The child runs in its
// own process group so cancellation kills any helpers the engine spawned.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	process.SetGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process != nil {
			process.KillGroup(cmd.Process.Pid)
		}
		return nil
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// engineCompiler compiles LaTeX source by invoking an external engine
// (pdflatex, xelatex, lualatex) in a temporary directory.
type engineCompiler struct {
	engine   string
	timeout  time.Duration
	runner   CommandRunner
	lookPath func(string) (string, error)
}

// newEngineCompiler creates a compiler with a real command runner.
func newEngineCompiler(engine string, timeout time.Duration) *engineCompiler {
	return &engineCompiler{
		engine:   engine,
		timeout:  timeout,
		runner:   execRunner{},
		lookPath: exec.LookPath,
	}
}

// Compile writes latexSource to a temporary directory, runs the engine
// there, and returns the produced PDF bytes.
func (c *engineCompiler) Compile(ctx context.Context, latexSource string) ([]byte, error) {
	if _, err := c.lookPath(c.engine); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, c.engine)
	}

	dir, err := os.MkdirTemp("", "go-md2latex-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	texPath := filepath.Join(dir, jobName+".tex")
	if err := os.WriteFile(texPath, []byte(latexSource), 0o600); err != nil {
		return nil, fmt.Errorf("writing LaTeX source: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	for pass := 0; pass < compilePasses; pass++ {
		// Engines report errors on stdout, not stderr.
		stdout, _, err := c.runner.Run(ctx, dir, c.engine,
			"-interaction=nonstopmode", "-halt-on-error", jobName+".tex")
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %s", ErrCompile, tailLines(stdout, 5))
		}
	}

	pdf, err := os.ReadFile(filepath.Join(dir, jobName+".pdf"))
	if err != nil {
		return nil, fmt.Errorf("%w: engine produced no PDF", ErrCompile)
	}
	return pdf, nil
}

// Close releases resources. The engine compiler holds none.
func (c *engineCompiler) Close() error {
	return nil
}

// tailLines returns the last n non-empty lines of s, for error messages.
// Engine logs run to hundreds of lines; the failure is at the end.
func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	var kept []string
	for i := len(lines) - 1; i >= 0 && len(kept) < n; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		kept = append([]string{lines[i]}, kept...)
	}
	return strings.Join(kept, "\n")
}
