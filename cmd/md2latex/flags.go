package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document shell flags.
type documentFlags struct {
	class    string
	paper    string
	fontSize int
	margin   float64
	template string
	style    string
}

// metaFlags holds document metadata flags.
type metaFlags struct {
	title  string
	author string
	date   string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	document documentFlags
	meta     metaFlags
	output   string
	texOnly  bool
	engine   string
	timeout  time.Duration
	workers  int
}

// newConvertFlagSet builds the pflag set for the convert command, binding
// each flag to f. Zero/empty defaults mean "not set": config values and
// library defaults fill the gaps during merging.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	fs.StringVarP(&f.common.config, "config", "c", "", "config file path or name")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "verbose output")

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: alongside input)")
	fs.BoolVar(&f.texOnly, "tex-only", false, "emit .tex only, skip PDF compilation")
	fs.StringVar(&f.engine, "engine", "", "LaTeX engine: pdflatex, xelatex, lualatex")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-document compilation timeout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	fs.StringVar(&f.document.class, "class", "", "document class: article, report, book")
	fs.StringVar(&f.document.paper, "paper", "", "paper size: a4, letter")
	fs.IntVar(&f.document.fontSize, "font-size", 0, "font size in points: 10, 11, 12")
	fs.Float64Var(&f.document.margin, "margin", 0, "page margin in inches")
	fs.StringVar(&f.document.template, "template", "", "document shell template name")
	fs.StringVar(&f.document.style, "style", "", "code highlight style")

	fs.StringVar(&f.meta.title, "title", "", "document title")
	fs.StringVar(&f.meta.author, "author", "", "document author")
	fs.StringVar(&f.meta.date, "date", "", `document date ("auto" for today)`)

	return fs
}

// validateWorkers rejects nonsensical worker counts before pool creation.
func validateWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}
	return nil
}
