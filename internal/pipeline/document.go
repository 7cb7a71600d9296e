package pipeline

import (
	"fmt"
	"strings"
	"text/template"
)

// DocumentData feeds a document shell template. Title, Author and Date are
// escaped by the assembler; Body is inserted as-is since it is already
// LaTeX source.
type DocumentData struct {
	Class    string
	Paper    string
	FontSize int
	Margin   float64
	Title    string
	Author   string
	Date     string
	Body     string
}

// DocumentAssembler wraps a rendered LaTeX body in a complete document using
// a shell template.
type DocumentAssembler struct {
	tmpl *template.Template
}

// NewDocumentAssembler parses a shell template source.
func NewDocumentAssembler(shell string) (*DocumentAssembler, error) {
	tmpl, err := template.New("document").Parse(shell)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &DocumentAssembler{tmpl: tmpl}, nil
}

// Assemble executes the shell template with data. Metadata fields run
// through the escape table first: titles come from untrusted front matter
// and Markdown syntax is not expected there.
func (a *DocumentAssembler) Assemble(data DocumentData) (string, error) {
	escaped := data
	escaped.Title = EscapeText(data.Title)
	escaped.Author = EscapeText(data.Author)
	escaped.Date = EscapeText(data.Date)

	var b strings.Builder
	if err := a.tmpl.Execute(&b, escaped); err != nil {
		return "", fmt.Errorf("assembling document: %w", err)
	}
	return b.String(), nil
}
