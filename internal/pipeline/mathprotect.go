package pipeline

import (
	"strconv"
	"strings"
)

// Math placeholders use a separate Private Use Area pair so a protected
// document can also carry highlight placeholders without collision.
const (
	mathStartPlaceholder = ""
	mathEndPlaceholder   = ""
)

// ProtectMath replaces every math segment in content with an indexed
// placeholder and returns the protected text plus the extracted math spans.
// The placeholders survive Goldmark parsing and LaTeX escaping untouched,
// so the spans can be restored verbatim after rendering.
func ProtectMath(content string) (string, []string) {
	segments := SplitMath(content)

	var protected []string
	var b strings.Builder
	b.Grow(len(content))
	for _, seg := range segments {
		if !seg.Math {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(mathPlaceholder(len(protected)))
		protected = append(protected, seg.Text)
	}
	return b.String(), protected
}

// RestoreMath swaps indexed placeholders back for the original math spans.
// Placeholders missing from latex (for example inside a dropped HTML block)
// are simply left out of the result.
func RestoreMath(latex string, protected []string) string {
	for i, math := range protected {
		latex = strings.Replace(latex, mathPlaceholder(i), math, 1)
	}
	return latex
}

func mathPlaceholder(i int) string {
	return mathStartPlaceholder + strconv.Itoa(i) + mathEndPlaceholder
}
