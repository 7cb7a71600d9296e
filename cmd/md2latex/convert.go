package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2latex "github.com/yehyu2004/go-md2latex"
	"github.com/yehyu2004/go-md2latex/internal/config"
	"github.com/yehyu2004/go-md2latex/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2latex.Input) (*md2latex.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2latex.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (*md2latex.Converter, error)
	Release(*md2latex.Converter)
	Size() int
	Close() error
}

// Compile-time interface implementation check.
var _ Pool = (*md2latex.ConverterPool)(nil)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve input path
	if len(positionalArgs) == 0 {
		return ErrNoInput
	}
	inputPath := positionalArgs[0]

	// Discover files to convert
	texOnly := cfg.Build.TexOnly
	files, err := discoverFiles(inputPath, flags.output, cfg.Output.DefaultDir, texOnly)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	input := buildInputTemplate(cfg, texOnly)

	pool := env.NewPool(md2latex.ResolvePoolSize(cfg.Build.Workers), converterOptions(cfg)...)
	defer func() { _ = pool.Close() }()

	results := convertBatch(ctx, files, input, pool)

	return reportResults(results, flags.common.quiet, env)
}

// converterOptions translates merged config into library options.
func converterOptions(cfg *config.Config) []md2latex.Option {
	var opts []md2latex.Option
	if cfg.Build.Engine != "" {
		opts = append(opts, md2latex.WithEngine(cfg.Build.Engine))
	}
	if cfg.Build.TimeoutSeconds > 0 {
		opts = append(opts, md2latex.WithTimeout(time.Duration(cfg.Build.TimeoutSeconds)*time.Second))
	}
	if cfg.Document.Template != "" {
		opts = append(opts, md2latex.WithTemplate(cfg.Document.Template))
	}
	if cfg.Document.HighlightStyle != "" {
		opts = append(opts, md2latex.WithHighlightStyle(cfg.Document.HighlightStyle))
	}
	return opts
}

// buildInputTemplate builds the Input shared by every file in the batch.
// Markdown is filled per file.
func buildInputTemplate(cfg *config.Config, texOnly bool) md2latex.Input {
	settings := md2latex.DefaultDocumentSettings()
	if cfg.Document.Class != "" {
		settings.Class = cfg.Document.Class
	}
	if cfg.Document.Paper != "" {
		settings.Paper = cfg.Document.Paper
	}
	if cfg.Document.FontSize != 0 {
		settings.FontSize = cfg.Document.FontSize
	}
	if cfg.Document.Margin != 0 {
		settings.Margin = cfg.Document.Margin
	}

	return md2latex.Input{
		LaTeXOnly: texOnly,
		Document:  settings,
		Meta: &md2latex.Metadata{
			Title:  cfg.Meta.Title,
			Author: cfg.Meta.Author,
			Date:   cfg.Meta.Date,
		},
	}
}

// mergeFlags overlays explicitly set CLI flags onto the config.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Build.Engine = flags.engine
	}
	if flags.texOnly {
		cfg.Build.TexOnly = true
	}
	if flags.timeout > 0 {
		cfg.Build.TimeoutSeconds = int(flags.timeout / time.Second)
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}

	if flags.document.class != "" {
		cfg.Document.Class = flags.document.class
	}
	if flags.document.paper != "" {
		cfg.Document.Paper = flags.document.paper
	}
	if flags.document.fontSize != 0 {
		cfg.Document.FontSize = flags.document.fontSize
	}
	if flags.document.margin != 0 {
		cfg.Document.Margin = flags.document.margin
	}
	if flags.document.template != "" {
		cfg.Document.Template = flags.document.template
	}
	if flags.document.style != "" {
		cfg.Document.HighlightStyle = flags.document.style
	}

	if flags.meta.title != "" {
		cfg.Meta.Title = flags.meta.title
	}
	if flags.meta.author != "" {
		cfg.Meta.Author = flags.meta.author
	}
	if flags.meta.date != "" {
		cfg.Meta.Date = flags.meta.date
	}
}

// discoverFiles resolves the input path to the list of files to convert.
// A single file converts in place (or into outputDir); a directory is
// walked recursively for Markdown files.
func discoverFiles(inputPath, flagOutputDir, configOutputDir string, texOnly bool) ([]FileToConvert, error) {
	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = configOutputDir
	}

	ext := ".pdf"
	if texOnly {
		ext = ".tex"
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdownFile(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: outputPathFor(inputPath, inputPath, outputDir, ext),
		}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: outputPathFor(path, inputPath, outputDir, ext),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// outputPathFor maps an input file to its output path, preserving the
// directory structure relative to the input root when outputDir is set.
func outputPathFor(inputFile, inputRoot, outputDir, ext string) string {
	out := fileutil.WithExtension(inputFile, ext)
	if outputDir == "" {
		return out
	}

	rel, err := filepath.Rel(filepath.Dir(inputRoot), out)
	if err != nil {
		rel = filepath.Base(out)
	}
	return filepath.Join(outputDir, rel)
}

// convertBatch converts files in parallel, bounded by the pool size.
func convertBatch(ctx context.Context, files []FileToConvert, input md2latex.Input, pool Pool) []ConversionResult {
	jobs := make(chan FileToConvert)
	results := make([]ConversionResult, 0, len(files))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < pool.Size(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				res := convertOne(ctx, file, input, pool)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	return results
}

// convertOne converts a single file through a pooled converter.
func convertOne(ctx context.Context, file FileToConvert, input md2latex.Input, pool Pool) ConversionResult {
	start := time.Now()
	res := ConversionResult{InputPath: file.InputPath, OutputPath: file.OutputPath}

	content, err := os.ReadFile(file.InputPath) // #nosec G304 -- path discovered from user input
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return res
	}
	input.Markdown = string(content)

	conv, err := pool.Acquire()
	if err != nil {
		res.Err = err
		return res
	}
	defer pool.Release(conv)

	result, err := conv.Convert(ctx, input)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	output := result.PDF
	if input.LaTeXOnly {
		output = result.LaTeX
	}
	res.Err = writeOutput(file.OutputPath, output)
	res.Duration = time.Since(start)
	return res
}

// configSearchPaths lists candidate config locations for hint text.
func configSearchPaths(nameOrPath string) []string {
	if nameOrPath == "" || fileutil.IsFilePath(nameOrPath) {
		return []string{nameOrPath}
	}
	return config.SearchPaths(nameOrPath)
}

// writeOutput writes data to path, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// reportResults prints per-file outcomes and returns the first error so the
// process exits non-zero when any file failed.
func reportResults(results []ConversionResult, quiet bool, env *Environment) error {
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "error: %s: %v\n", r.InputPath, r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if !quiet {
			fmt.Fprintf(env.Stdout, "Created %s (%.1fs)\n", r.OutputPath, r.Duration.Seconds())
		}
	}
	return firstErr
}
