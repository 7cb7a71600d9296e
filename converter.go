package md2latex

import (
	"context"
	"fmt"
	"time"

	"github.com/yehyu2004/go-md2latex/internal/assets"
	"github.com/yehyu2004/go-md2latex/internal/dateutil"
	"github.com/yehyu2004/go-md2latex/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.LaTeXRenderer        = (*pipeline.GoldmarkRenderer)(nil)
	_ pdfCompiler                   = (*engineCompiler)(nil)
	_ CommandRunner                 = (*execRunner)(nil)
)

// Converter orchestrates the Markdown-to-LaTeX conversion pipeline.
// Create with NewConverter, use Convert for conversion, and Close when done.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.MarkdownPreprocessor
	renderer     pipeline.LaTeXRenderer
	assembler    *pipeline.DocumentAssembler
	compiler     pdfCompiler
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithEngine,
// WithTemplate). Returns error on unknown engine or template.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:        defaultTimeout,
			engine:         DefaultEngine,
			template:       assets.DefaultTemplateName,
			highlightStyle: pipeline.DefaultHighlightStyle,
		},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if !knownEngines[c.cfg.engine] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, c.cfg.engine)
	}

	// Create renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		c.renderer = pipeline.NewGoldmarkRenderer(pipeline.NewCodeHighlighter(c.cfg.highlightStyle))
	}

	shell, err := assets.LoadTemplate(c.cfg.template)
	if err != nil {
		return nil, err
	}
	c.assembler, err = pipeline.NewDocumentAssembler(shell)
	if err != nil {
		return nil, err
	}

	// Create PDF compiler if not injected (e.g., by tests)
	if c.compiler == nil {
		c.compiler = newEngineCompiler(c.cfg.engine, c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing LaTeX
// source and, unless skipped, the compiled PDF. The context is used for
// cancellation and timeout.
//
// With Input.Fragment set, only the fragment transform runs: math-region
// splitting plus prose transcoding, with no document shell and no Markdown
// block structure. Fragment results are never compiled.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	if input.Fragment {
		return &ConvertResult{LaTeX: []byte(pipeline.TextToLaTeX(input.Markdown))}, nil
	}

	meta, body, err := pipeline.ExtractFrontMatter(input.Markdown)
	if err != nil {
		return nil, err
	}
	resolved, err := resolveMetadata(meta, input.Meta)
	if err != nil {
		return nil, err
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Extract math regions so Goldmark and the escape table never see them
	protected, mathSpans := pipeline.ProtectMath(mdContent)

	// Render the body
	bodyTex, err := c.renderer.RenderBody(ctx, protected)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	bodyTex = pipeline.RestoreMath(bodyTex, mathSpans)
	bodyTex = pipeline.RestoreHighlights(bodyTex)

	// Assemble the complete document
	settings := input.Document
	if settings == nil {
		settings = DefaultDocumentSettings()
	}
	doc, err := c.assembler.Assemble(pipeline.DocumentData{
		Class:    settings.Class,
		Paper:    settings.Paper,
		FontSize: settings.FontSize,
		Margin:   settings.Margin,
		Title:    resolved.Title,
		Author:   resolved.Author,
		Date:     resolved.Date,
		Body:     bodyTex,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	res := &ConvertResult{
		LaTeX: []byte(doc),
		Meta:  resolved,
	}

	// Skip PDF compilation if LaTeXOnly mode
	if input.LaTeXOnly {
		return res, nil
	}

	pdf, err := c.compiler.Compile(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("compiling PDF: %w", err)
	}

	res.PDF = pdf
	return res, nil
}

// Close releases compiler resources.
func (c *Converter) Close() error {
	if c.compiler != nil {
		return c.compiler.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input
// manually. CLI users have their input validated earlier at config load
// time. Both paths converge here.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return input.Document.Validate()
}

// resolveMetadata merges front matter over the caller-provided defaults and
// resolves "auto" dates.
func resolveMetadata(front *pipeline.Metadata, defaults *Metadata) (Metadata, error) {
	var meta Metadata
	if defaults != nil {
		meta = *defaults
	}
	if front != nil {
		if front.Title != "" {
			meta.Title = front.Title
		}
		if front.Author != "" {
			meta.Author = front.Author
		}
		if front.Date != "" {
			meta.Date = front.Date
		}
	}

	date, err := dateutil.Resolve(meta.Date, time.Now())
	if err != nil {
		return Metadata{}, fmt.Errorf("resolving date: %w", err)
	}
	meta.Date = date
	return meta, nil
}
