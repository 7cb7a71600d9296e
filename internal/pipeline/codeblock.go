package pipeline

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// verbatimEscaper neutralizes the three characters made active by
// commandchars inside a fancyvrb Verbatim environment.
var verbatimEscaper = newEscaper([]replacement{
	{`\`, `\textbackslash{}`},
	{`{`, `\{`},
	{`}`, `\}`},
})

// CodeHighlighter renders fenced code blocks as fancyvrb Verbatim
// environments with per-token colouring from a chroma style.
type CodeHighlighter struct {
	style *chroma.Style
}

// NewCodeHighlighter creates a highlighter using the named chroma style.
// Unknown style names fall back to the chroma default.
func NewCodeHighlighter(styleName string) *CodeHighlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &CodeHighlighter{style: style}
}

// Highlight returns LaTeX source for a code block. Code with no language, an
// unknown language, or a failed tokenisation falls back to an uncoloured
// verbatim block.
func (h *CodeHighlighter) Highlight(language, code string) string {
	code = strings.TrimRight(code, "\n")

	lexer := lexers.Get(language)
	if lexer == nil {
		return plainVerbatim(code)
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return plainVerbatim(code)
	}

	var b strings.Builder
	b.Grow(len(code) * 2)
	b.WriteString("\\begin{Verbatim}[commandchars=\\\\\\{\\}]\n")
	for _, token := range iterator.Tokens() {
		h.writeToken(&b, token)
	}
	b.WriteString("\n\\end{Verbatim}")
	return b.String()
}

// writeToken emits one token, wrapping each physical line separately:
// fancyvrb does not allow a command group to span a line break.
func (h *CodeHighlighter) writeToken(b *strings.Builder, token chroma.Token) {
	entry := h.style.Get(token.Type)
	for i, line := range strings.Split(token.Value, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		b.WriteString(h.decorate(verbatimEscaper.Replace(line), entry))
	}
}

// decorate applies the style entry's colour and weight to escaped text.
func (h *CodeHighlighter) decorate(text string, entry chroma.StyleEntry) string {
	if entry.Bold == chroma.Yes {
		text = `\textbf{` + text + `}`
	}
	if entry.Italic == chroma.Yes {
		text = `\textit{` + text + `}`
	}
	if entry.Colour.IsSet() {
		hex := strings.ToUpper(strings.TrimPrefix(entry.Colour.String(), "#"))
		text = fmt.Sprintf(`\textcolor[HTML]{%s}{%s}`, hex, text)
	}
	return text
}

// plainVerbatim wraps code in a plain verbatim environment, where no
// characters are active and no escaping is needed.
func plainVerbatim(code string) string {
	return "\\begin{verbatim}\n" + code + "\n\\end{verbatim}"
}
