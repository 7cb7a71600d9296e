// Package pipeline implements the Markdown-to-LaTeX conversion pipeline.
//
// This package handles the stages between raw Markdown input and a complete
// LaTeX document:
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Math-region splitting and protection ($...$ and $$...$$ spans)
//   - LaTeX character escaping and fragment transcoding
//   - Markdown to LaTeX body rendering via the Goldmark AST
//   - Code block highlighting via chroma
//   - Document assembly (preamble, metadata, body)
//
// PDF compilation is handled separately by the root md2latex package, which
// invokes an external LaTeX engine. This separation keeps the pipeline close
// to a pure text transform: every stage here works on strings, performs no
// I/O, and fails only on template or parser errors.
package pipeline
