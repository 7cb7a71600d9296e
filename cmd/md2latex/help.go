package main

import (
	"fmt"
	"io"
)

// usageText is the top-level help output.
const usageText = `md2latex converts Markdown documents to LaTeX and PDF.

Usage:
  md2latex convert [flags] <input.md | directory>
  md2latex doctor
  md2latex help
  md2latex version

Commands:
  convert    Convert Markdown files to LaTeX/PDF
  doctor     Check for LaTeX engines on PATH
  help       Show this help
  version    Print the version

Run "md2latex convert --help" for conversion flags.

Examples:
  md2latex convert notes.md
  md2latex convert --tex-only --class report notes.md
  md2latex convert -o build/ --workers 4 docs/
`

// printUsage writes the top-level help text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
