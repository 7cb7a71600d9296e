package main

import (
	"errors"

	md2latex "github.com/yehyu2004/go-md2latex"
	"github.com/yehyu2004/go-md2latex/internal/config"
)

// Exit codes for the md2latex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitCompiler = 4 // LaTeX engine errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrNoInput),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, ErrInvalidWorkerCount),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, md2latex.ErrEmptyMarkdown),
		errors.Is(err, md2latex.ErrUnknownEngine),
		errors.Is(err, md2latex.ErrInvalidClass),
		errors.Is(err, md2latex.ErrInvalidPaper),
		errors.Is(err, md2latex.ErrInvalidFontSize),
		errors.Is(err, md2latex.ErrInvalidMargin):
		return ExitUsage

	case errors.Is(err, ErrReadMarkdown),
		errors.Is(err, ErrWriteOutput):
		return ExitIO

	case errors.Is(err, md2latex.ErrEngineNotFound),
		errors.Is(err, md2latex.ErrCompile):
		return ExitCompiler
	}

	return ExitGeneral
}
