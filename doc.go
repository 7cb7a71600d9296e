// Package md2latex converts Markdown documents and text fragments to LaTeX,
// with optional PDF compilation through an external LaTeX engine.
//
// # Quick Start
//
// Create a converter, convert markdown, and close when done:
//
//	conv, err := md2latex.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, md2latex.Input{
//	    Markdown:  "# Hello\n\nCompute $E=mc^2$.",
//	    LaTeXOnly: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.tex", result.LaTeX, 0644)
//
// The result always contains the LaTeX source (result.LaTeX). With
// Input.LaTeXOnly unset, result.PDF holds the compiled PDF, which requires a
// LaTeX engine (pdflatex, xelatex, or lualatex) on PATH.
//
// # Conversion Pipeline
//
// Document conversion follows these stages:
//
//  1. YAML front matter extraction (title, author, date)
//  2. Markdown preprocessing (line normalization, ==highlight== syntax)
//  3. Math-region protection ($...$ and $$...$$ pass through verbatim)
//  4. Markdown to LaTeX body rendering via the Goldmark AST, with code
//     blocks highlighted through chroma
//  5. Document assembly (documentclass, packages, \maketitle)
//  6. PDF compilation via the configured engine (optional)
//
// # Fragment Conversion
//
// For user-authored snippets destined for a larger document, ConvertText
// applies only the text transform: math regions are preserved verbatim,
// LaTeX-reserved characters are escaped, and **bold**, *italic* and
// paragraph breaks are rewritten. EscapeString applies the escape table
// alone, for titles and other non-Markdown contexts. Both are pure
// functions, safe for concurrent use.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2latex.NewConverter(
//	    md2latex.WithTimeout(5 * time.Minute),
//	    md2latex.WithEngine("xelatex"),
//	    md2latex.WithHighlightStyle("monokai"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, md2latex.Input{
//	    Markdown: content,
//	    Document: &md2latex.DocumentSettings{
//	        Class:    md2latex.ClassReport,
//	        Paper:    md2latex.PaperA4,
//	        FontSize: 11,
//	        Margin:   1.0,
//	    },
//	    Meta: &md2latex.Metadata{Title: "Problem Set 3", Date: "auto"},
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to bound concurrent engine
// processes:
//
//	pool := md2latex.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
package md2latex
