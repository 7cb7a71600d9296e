package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters. They pass
// through Goldmark unchanged and through the escape table unchanged, and are
// rewritten to \hl{...} after the body has been rendered.
const (
	highlightStartPlaceholder = ""
	highlightEndPlaceholder   = ""
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Highlight syntax ==text==
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark parsing.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for
// rendering.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	content = ConvertHighlights(content)
	content = CompressBlankLines(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to 2 maximum.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// ConvertHighlights transforms ==text== into placeholder-delimited spans.
// RestoreHighlights completes the feature after body rendering.
func ConvertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content,
		highlightStartPlaceholder+"$1"+highlightEndPlaceholder)
}

// RestoreHighlights converts highlight placeholders to \hl commands.
// Done after rendering so the braces of \hl{} never hit the escape table.
func RestoreHighlights(latex string) string {
	latex = strings.ReplaceAll(latex, highlightStartPlaceholder, `\hl{`)
	latex = strings.ReplaceAll(latex, highlightEndPlaceholder, `}`)
	return latex
}
