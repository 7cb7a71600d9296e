package pipeline

import (
	"regexp"
	"strings"
)

// replacement is one entry in the ordered LaTeX escape table.
type replacement struct {
	from string
	to   string
}

// latexEscapes is the ordered substitution table for LaTeX-reserved
// characters. Backslash comes first: the table is applied in a single
// simultaneous pass, so braces and backslashes introduced by replacement
// text are never re-escaped by later entries.
var latexEscapes = []replacement{
	{`\`, `\textbackslash{}`},
	{`&`, `\&`},
	{`%`, `\%`},
	{`#`, `\#`},
	{`_`, `\_`},
	{`{`, `\{`},
	{`}`, `\}`},
	{`~`, `\textasciitilde{}`},
	{`^`, `\textasciicircum{}`},
}

var latexEscaper = newEscaper(latexEscapes)

// newEscaper builds a single-pass replacer from an ordered table. Entries
// earlier in the table take priority when two could match at the same index.
func newEscaper(table []replacement) *strings.Replacer {
	pairs := make([]string, 0, len(table)*2)
	for _, r := range table {
		pairs = append(pairs, r.from, r.to)
	}
	return strings.NewReplacer(pairs...)
}

// Precompiled regex patterns for performance.
var (
	// Markdown bold **text**, non-greedy. Converted before italic so a
	// stray ** is consumed as bold syntax rather than two italics.
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

	// Markdown italic *text*, non-greedy.
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)

	// Two or more consecutive newlines form a paragraph break.
	paragraphGap = regexp.MustCompile(`\n{2,}`)
)

// EscapeText neutralizes every LaTeX-reserved character in s using the
// ordered escape table. It applies no Markdown conversion and is intended
// for contexts such as document titles where Markdown is not expected.
func EscapeText(s string) string {
	return latexEscaper.Replace(s)
}

// ProseToLaTeX converts a prose segment to LaTeX source: reserved characters
// are escaped first, then Markdown bold and italic emphasis are rewritten to
// \textbf and \textit, then runs of blank lines collapse to a single
// \bigskip paragraph break.
//
// Escaping runs before the Markdown rewrites so the command names injected
// here, which legitimately contain backslashes and braces, survive intact.
// ProseToLaTeX is total: every input maps to a defined output.
func ProseToLaTeX(s string) string {
	s = EscapeText(s)
	s = boldPattern.ReplaceAllString(s, `\textbf{$1}`)
	s = italicPattern.ReplaceAllString(s, `\textit{$1}`)
	s = paragraphGap.ReplaceAllString(s, "\n\\bigskip\n")
	return s
}

// TextToLaTeX converts mixed Markdown/math text to a LaTeX fragment. Math
// regions pass through byte for byte; everything else goes through
// ProseToLaTeX.
func TextToLaTeX(s string) string {
	segments := SplitMath(s)

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, seg := range segments {
		if seg.Math {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(ProseToLaTeX(seg.Text))
	}
	return b.String()
}
