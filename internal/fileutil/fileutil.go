// Package fileutil provides small filesystem predicates shared by the CLI
// and the config loader.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsFilePath reports whether s looks like a file path rather than a bare
// name (contains a path separator).
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// IsMarkdownFile reports whether path has a Markdown extension.
func IsMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// WithExtension replaces the extension of path with ext (including the dot).
func WithExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
