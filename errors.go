package md2latex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrRender        = errors.New("LaTeX rendering failed")

	// Compilation errors.
	ErrCompile        = errors.New("PDF compilation failed")
	ErrEngineNotFound = errors.New("LaTeX engine not found")
	ErrUnknownEngine  = errors.New("unknown LaTeX engine")

	// Document settings validation errors.
	ErrInvalidClass    = errors.New("invalid document class")
	ErrInvalidPaper    = errors.New("invalid paper size")
	ErrInvalidFontSize = errors.New("invalid font size")
	ErrInvalidMargin   = errors.New("invalid margin")
)
