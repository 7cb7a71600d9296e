// Package assets provides the embedded LaTeX document shell templates.
//
// A shell template wraps a rendered body in a complete compilable document:
// documentclass line, package set, optional \maketitle block. Templates are
// text/template sources executed with pipeline.DocumentData.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultTemplateName is used when no template is specified.
const DefaultTemplateName = "default"

// ErrTemplateNotFound indicates an unknown template name.
var ErrTemplateNotFound = errors.New("template not found")

// LoadTemplate returns the source of the named embedded shell template.
func LoadTemplate(name string) (string, error) {
	data, err := templateFS.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q (available: %s)",
			ErrTemplateNotFound, name, strings.Join(ListTemplates(), ", "))
	}
	return string(data), nil
}

// ListTemplates returns the names of all embedded shell templates, sorted.
func ListTemplates() []string {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		// The directory is embedded at compile time; this cannot happen.
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".tmpl"))
	}
	sort.Strings(names)
	return names
}
