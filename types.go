package md2latex

import (
	"fmt"
	"time"
)

// Document class constants (standard LaTeX classes).
const (
	ClassArticle = "article"
	ClassReport  = "report"
	ClassBook    = "book"
)

// Paper size constants.
const (
	PaperA4     = "a4"
	PaperLetter = "letter"
)

// Font size bounds in points. The standard classes accept only 10, 11 or 12.
const (
	MinFontSize     = 10
	MaxFontSize     = 12
	DefaultFontSize = 11
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// DocumentSettings configures the LaTeX document shell.
type DocumentSettings struct {
	Class    string  // "article", "report", "book"
	Paper    string  // "a4", "letter"
	FontSize int     // points: 10, 11, 12
	Margin   float64 // inches, applied to all sides
}

// DefaultDocumentSettings returns document settings with default values.
func DefaultDocumentSettings() *DocumentSettings {
	return &DocumentSettings{
		Class:    ClassArticle,
		Paper:    PaperA4,
		FontSize: DefaultFontSize,
		Margin:   DefaultMargin,
	}
}

// Validate checks that document settings are valid.
// Returns nil if d is nil (nil means use defaults).
func (d *DocumentSettings) Validate() error {
	if d == nil {
		return nil
	}

	switch d.Class {
	case ClassArticle, ClassReport, ClassBook:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidClass, d.Class)
	}

	switch d.Paper {
	case PaperA4, PaperLetter:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPaper, d.Paper)
	}

	if d.FontSize < MinFontSize || d.FontSize > MaxFontSize {
		return fmt.Errorf("%w: %d (must be %d, %d or %d)", ErrInvalidFontSize, d.FontSize, MinFontSize, MinFontSize+1, MaxFontSize)
	}

	if d.Margin < MinMargin || d.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, d.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Metadata carries document metadata for the title block. Fields left empty
// here can be filled from YAML front matter in the input document, which
// takes priority.
type Metadata struct {
	Title  string
	Author string
	Date   string // supports "auto" and "auto:FORMAT"
}

// Input contains conversion parameters.
type Input struct {
	Markdown  string            // Markdown content (required)
	Fragment  bool              // convert as a text fragment: no document shell, no block structure
	LaTeXOnly bool              // skip PDF compilation (no LaTeX engine required)
	Document  *DocumentSettings // document shell settings (optional, nil = defaults)
	Meta      *Metadata         // metadata defaults (optional; front matter wins)
}

// ConvertResult holds the outputs of a conversion. LaTeX is always set; PDF
// is nil when compilation was skipped.
type ConvertResult struct {
	LaTeX []byte
	PDF   []byte
	Meta  Metadata // resolved metadata (front matter merged over Input.Meta)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout        time.Duration
	engine         string
	template       string
	highlightStyle string
}

// defaultTimeout bounds a single PDF compilation.
const defaultTimeout = 2 * time.Minute

// DefaultEngine is the LaTeX engine used when none is configured.
const DefaultEngine = "pdflatex"

// WithTimeout sets the PDF compilation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2latex: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the LaTeX engine binary ("pdflatex", "xelatex",
// "lualatex"). Validated by NewConverter.
func WithEngine(engine string) Option {
	return func(c *Converter) {
		c.cfg.engine = engine
	}
}

// WithTemplate selects an embedded document shell template by name.
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.template = name
	}
}

// WithHighlightStyle selects the chroma style for fenced code blocks.
// Unknown names fall back to the chroma default style.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}
