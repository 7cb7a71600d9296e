package md2latex

import "github.com/yehyu2004/go-md2latex/internal/pipeline"

// ConvertText converts a mixed Markdown/math text fragment to LaTeX source.
//
// The input is partitioned on $...$ and $$...$$ delimiters. Math regions
// pass through byte for byte. Everything else has its LaTeX-reserved
// characters escaped, **bold** and *italic* rewritten to \textbf and
// \textit, and runs of blank lines collapsed to \bigskip paragraph breaks.
// An unmatched opening delimiter is treated as plain text, not an error.
//
// ConvertText is a total function: every string input, including the empty
// string, maps to a defined output. It is stateless and safe for concurrent
// use. The result is a fragment for embedding in a larger document; see
// Converter for complete documents.
func ConvertText(s string) string {
	return pipeline.TextToLaTeX(s)
}

// EscapeString neutralizes LaTeX-reserved characters in s without any
// Markdown conversion or math awareness. Intended for contexts such as
// document titles where Markdown syntax is not expected. It applies the
// same ordered escape table as ConvertText.
func EscapeString(s string) string {
	return pipeline.EscapeText(s)
}
