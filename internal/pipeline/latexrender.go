package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// sectionCommands maps Markdown heading levels to LaTeX sectioning commands.
// Levels 5 and 6 share \subparagraph, the deepest command standard classes
// provide.
var sectionCommands = [...]string{
	1: `\section`,
	2: `\subsection`,
	3: `\subsubsection`,
	4: `\paragraph`,
	5: `\subparagraph`,
	6: `\subparagraph`,
}

// hrefEscaper escapes the characters hyperref cannot take raw in a URL
// argument.
var hrefEscaper = newEscaper([]replacement{
	{`%`, `\%`},
	{`#`, `\#`},
})

// LaTeXRenderer defines the contract for Markdown body rendering.
type LaTeXRenderer interface {
	RenderBody(ctx context.Context, markdown string) (string, error)
}

// GoldmarkRenderer renders a Markdown document to LaTeX body source by
// walking the Goldmark AST. Inline emphasis is handled structurally here,
// so text nodes only pass through the character escape table.
type GoldmarkRenderer struct {
	md          goldmark.Markdown
	highlighter *CodeHighlighter
}

// NewGoldmarkRenderer creates a renderer with strikethrough support and the
// given code highlighter.
func NewGoldmarkRenderer(highlighter *CodeHighlighter) *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
	)
	return &GoldmarkRenderer{md: md, highlighter: highlighter}
}

// RenderBody converts Markdown content to LaTeX body source.
func (r *GoldmarkRenderer) RenderBody(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(source))

	w := &latexWriter{source: source, highlighter: r.highlighter}
	if err := ast.Walk(doc, w.walk); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return strings.TrimRight(w.b.String(), "\n") + "\n", nil
}

// latexWriter accumulates LaTeX source while walking the AST.
type latexWriter struct {
	b           strings.Builder
	source      []byte
	highlighter *CodeHighlighter
}

func (w *latexWriter) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Heading:
		if entering {
			w.b.WriteString(sectionCommands[n.Level] + "{")
		} else {
			w.b.WriteString("}\n\n")
		}

	case *ast.Paragraph:
		if !entering {
			w.b.WriteString("\n\n")
		}

	case *ast.TextBlock:
		// Tight list item content.
		if !entering {
			w.b.WriteString("\n")
		}

	case *ast.Text:
		if entering {
			w.b.WriteString(EscapeText(string(n.Segment.Value(w.source))))
			switch {
			case n.HardLineBreak():
				w.b.WriteString("\\\\\n")
			case n.SoftLineBreak():
				w.b.WriteString("\n")
			}
		}

	case *ast.String:
		if entering {
			w.b.WriteString(EscapeText(string(n.Value)))
		}

	case *ast.Emphasis:
		if n.Level == 2 {
			w.writeWrap(entering, `\textbf{`)
		} else {
			w.writeWrap(entering, `\textit{`)
		}

	case *east.Strikethrough:
		w.writeWrap(entering, `\sout{`)

	case *ast.CodeSpan:
		w.writeWrap(entering, `\texttt{`)

	case *ast.Link:
		if entering {
			w.b.WriteString(`\href{` + hrefEscaper.Replace(string(n.Destination)) + `}{`)
		} else {
			w.b.WriteString("}")
		}

	case *ast.AutoLink:
		if entering {
			w.b.WriteString(`\url{` + hrefEscaper.Replace(string(n.URL(w.source))) + `}`)
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		if entering {
			// Alt text is dropped; LaTeX has no use for it.
			w.b.WriteString(`\includegraphics[width=\linewidth]{` + string(n.Destination) + `}`)
		}
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock:
		if entering {
			lang := string(n.Language(w.source))
			w.b.WriteString(w.highlighter.Highlight(lang, w.blockLines(n)))
			w.b.WriteString("\n\n")
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			w.b.WriteString(plainVerbatim(strings.TrimRight(w.blockLines(n), "\n")))
			w.b.WriteString("\n\n")
		}
		return ast.WalkSkipChildren, nil

	case *ast.Blockquote:
		if entering {
			w.b.WriteString("\\begin{quote}\n")
		} else {
			w.b.WriteString("\\end{quote}\n\n")
		}

	case *ast.List:
		env := "itemize"
		if n.IsOrdered() {
			env = "enumerate"
		}
		if entering {
			w.b.WriteString("\\begin{" + env + "}\n")
		} else {
			w.b.WriteString("\\end{" + env + "}\n\n")
		}

	case *ast.ListItem:
		if entering {
			w.b.WriteString(`\item `)
		}

	case *ast.ThematicBreak:
		if entering {
			w.b.WriteString("\\noindent\\rule{\\linewidth}{0.4pt}\n\n")
		}

	case *ast.HTMLBlock, *ast.RawHTML:
		// Raw HTML has no LaTeX rendering; dropped.
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// writeWrap opens a command group on entering and closes it on leaving.
func (w *latexWriter) writeWrap(entering bool, open string) {
	if entering {
		w.b.WriteString(open)
	} else {
		w.b.WriteString("}")
	}
}

// blockLines collects the raw source lines of a block node.
func (w *latexWriter) blockLines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.source))
	}
	return b.String()
}
